package shopping

import (
	"errors"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"Milk":             "milk",
		"  milk  ":         "milk",
		"\tGreek Yogurt\n": "greek yogurt",
		"":                 "",
	}
	for input, want := range cases {
		if got := NormalizeName(input); got != want {
			t.Fatalf("NormalizeName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestOrderPair(t *testing.T) {
	a, b := OrderPair("Milk", " eggs")
	if a != "eggs" || b != "milk" {
		t.Fatalf("expected (eggs, milk), got (%s, %s)", a, b)
	}

	a2, b2 := OrderPair("eggs", "milk")
	if a != a2 || b != b2 {
		t.Fatalf("expected order to be independent of argument order")
	}
}

func TestNamesOf(t *testing.T) {
	set := NamesOf([]Item{{Name: "Milk"}, {Name: " bread "}})
	if !set.Has("milk") || !set.Has("BREAD") {
		t.Fatalf("expected set to contain milk and bread, got %v", set)
	}
	if set.Has("eggs") {
		t.Fatalf("did not expect eggs in set")
	}
}

func TestParseFrequency(t *testing.T) {
	for _, f := range Frequencies {
		got, err := ParseFrequency(string(f))
		if err != nil {
			t.Fatalf("ParseFrequency(%q) returned error: %v", f, err)
		}
		if got != f {
			t.Fatalf("expected %q, got %q", f, got)
		}
	}

	if got, err := ParseFrequency(" Weekly "); err != nil || got != FrequencyWeekly {
		t.Fatalf("expected weekly, got %q (err=%v)", got, err)
	}

	if _, err := ParseFrequency("daily"); !errors.Is(err, ErrInvalidFrequency) {
		t.Fatalf("expected ErrInvalidFrequency, got %v", err)
	}
}

func TestFrequencyIntervalDays(t *testing.T) {
	cases := []struct {
		freq Frequency
		days int
		ok   bool
	}{
		{FrequencyAlways, 0, false},
		{FrequencyWeekly, 7, true},
		{FrequencyBiweekly, 14, true},
		{FrequencyMonthly, 30, true},
		{Frequency("yearly"), 0, false},
	}
	for _, tc := range cases {
		days, ok := tc.freq.IntervalDays()
		if days != tc.days || ok != tc.ok {
			t.Fatalf("%s: expected (%d, %v), got (%d, %v)", tc.freq, tc.days, tc.ok, days, ok)
		}
	}
}

func TestItemPairOther(t *testing.T) {
	pair := ItemPair{Item1: "eggs", Item2: "milk"}

	if other, ok := pair.Other("milk"); !ok || other != "eggs" {
		t.Fatalf("expected eggs, got %q (ok=%v)", other, ok)
	}
	if other, ok := pair.Other("eggs"); !ok || other != "milk" {
		t.Fatalf("expected milk, got %q (ok=%v)", other, ok)
	}
	if _, ok := pair.Other("bread"); ok {
		t.Fatalf("bread is not a member of the pair")
	}
}

func TestReasonValid(t *testing.T) {
	for _, r := range []Reason{ReasonStaple, ReasonFrequency, ReasonPair} {
		if !r.Valid() {
			t.Fatalf("expected %q to be valid", r)
		}
	}
	if Reason("manual").Valid() {
		t.Fatalf("expected unknown reason to be invalid")
	}
}
