package shopping

import "testing"

func TestDepartmentLabel(t *testing.T) {
	var missing *Department
	if got := missing.Label(); got != NoDepartment {
		t.Fatalf("nil department label = %q, want %q", got, NoDepartment)
	}

	plain := &Department{ID: "deli", Name: "Deli"}
	if got := plain.Label(); got != "Deli" {
		t.Fatalf("label without icon = %q", got)
	}

	dairy := &Department{ID: "dairy-eggs", Name: "Dairy & Eggs", Icon: "🥛"}
	if got := dairy.Label(); got != "🥛 Dairy & Eggs" {
		t.Fatalf("label with icon = %q", got)
	}
}

func TestDepartmentIndexFallsBack(t *testing.T) {
	idx := NewDepartmentIndex(DefaultDepartments)

	if got := idx.Label("bakery"); got != "🍞 Bakery" {
		t.Fatalf("Label(bakery) = %q", got)
	}
	for _, id := range []string{"", "pantry"} {
		if got := idx.Label(id); got != NoDepartment {
			t.Fatalf("Label(%q) = %q, want %q", id, got, NoDepartment)
		}
	}
}

func TestDefaultDepartmentsAreOrdered(t *testing.T) {
	if len(DefaultDepartments) != 11 {
		t.Fatalf("expected 11 default departments, got %d", len(DefaultDepartments))
	}
	seen := map[string]bool{}
	for i, d := range DefaultDepartments {
		if d.SortOrder != i {
			t.Fatalf("department %s has sort order %d, want %d", d.ID, d.SortOrder, i)
		}
		if !d.IsDefault {
			t.Fatalf("department %s should be marked default", d.ID)
		}
		if seen[d.ID] {
			t.Fatalf("duplicate department id %s", d.ID)
		}
		seen[d.ID] = true
	}
}
