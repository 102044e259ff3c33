// Package shopping holds the record types shared by the suggestion engine, the
// SQLite store and the CLI/MCP surfaces.
package shopping

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrEmptyName is returned when a name is blank after normalization.
	ErrEmptyName = errors.New("name must not be empty")
	// ErrInvalidFrequency is returned for a cadence outside the known set.
	ErrInvalidFrequency = errors.New("invalid staple frequency")
)

type Frequency string

const (
	FrequencyAlways   Frequency = "always"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// Frequencies lists the cadences in display order.
var Frequencies = []Frequency{FrequencyAlways, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly}

// ParseFrequency accepts a cadence name in any case.
func ParseFrequency(value string) (Frequency, error) {
	f := Frequency(strings.ToLower(strings.TrimSpace(value)))
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q (valid values: always, weekly, biweekly, monthly)", ErrInvalidFrequency, value)
	}
	return f, nil
}

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyAlways, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
		return true
	default:
		return false
	}
}

// IntervalDays is the minimum number of days between reminders. Always has no
// interval and reports ok=false, as does an unknown cadence.
func (f Frequency) IntervalDays() (days int, ok bool) {
	switch f {
	case FrequencyWeekly:
		return 7, true
	case FrequencyBiweekly:
		return 14, true
	case FrequencyMonthly:
		return 30, true
	default:
		return 0, false
	}
}

// Staple is an item the user flagged to be reminded about on a cadence.
type Staple struct {
	ID            string
	Name          string
	DepartmentID  string
	Frequency     Frequency
	LastPurchased *time.Time
	CreatedAt     time.Time
}

// StapleUpdate carries the fields of a partial staple update. Nil fields are
// left untouched.
type StapleUpdate struct {
	Name         *string
	DepartmentID *string
	Frequency    *Frequency
}

func (u StapleUpdate) IsEmpty() bool {
	return u.Name == nil && u.DepartmentID == nil && u.Frequency == nil
}

// RecentItem aggregates how often a normalized name was added to any list.
type RecentItem struct {
	ID           string
	Name         string
	DepartmentID string
	UseCount     int
	LastUsedAt   time.Time
}

// ItemPair counts how often two items were checked off together. Item1 sorts
// before Item2.
type ItemPair struct {
	ID       string
	Item1    string
	Item2    string
	Count    int
	LastSeen time.Time
}

// Other returns the member of the pair that is not name, and whether name was
// a member at all.
func (p ItemPair) Other(name string) (string, bool) {
	switch name {
	case p.Item1:
		return p.Item2, true
	case p.Item2:
		return p.Item1, true
	default:
		return "", false
	}
}

type List struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Item is an entry on a shopping list.
type Item struct {
	ID           string
	ListID       string
	Name         string
	DepartmentID string
	IsChecked    bool
	CheckedAt    *time.Time
	CreatedAt    time.Time
}

// Reason tags which heuristic produced a suggestion.
type Reason string

const (
	ReasonStaple    Reason = "staple"
	ReasonFrequency Reason = "frequency"
	ReasonPair      Reason = "pair"
)

func (r Reason) Valid() bool {
	switch r {
	case ReasonStaple, ReasonFrequency, ReasonPair:
		return true
	default:
		return false
	}
}

// Suggestion is a ranked recommendation to add an item to the active list.
// It is recomputed on every request and never stored.
type Suggestion struct {
	ID           string
	Name         string
	DepartmentID string
	Reason       Reason
	Details      string
	Priority     int
}
