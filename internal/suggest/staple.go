package suggest

import (
	"fmt"
	"time"

	"github.com/basket-md/basket/internal/shopping"
)

const dayMillis int64 = 24 * 60 * 60 * 1000

// elapsedMillis measures from t to now. A nil t counts from the Unix epoch.
func elapsedMillis(t *time.Time, now time.Time) int64 {
	var from int64
	if t != nil {
		from = t.UnixMilli()
	}
	return now.UnixMilli() - from
}

// wholeDays floors elapsed milliseconds to days.
func wholeDays(ms int64) int64 {
	days := ms / dayMillis
	if ms%dayMillis != 0 && ms < 0 {
		days--
	}
	return days
}

// CheckStaple reports whether a staple is due for a reminder at now and the
// human-readable reason shown with it.
func CheckStaple(staple shopping.Staple, now time.Time) (bool, string) {
	if staple.Frequency == shopping.FrequencyAlways {
		return true, "You marked this as a staple item"
	}

	interval, ok := staple.Frequency.IntervalDays()
	if !ok {
		return false, ""
	}

	elapsed := elapsedMillis(staple.LastPurchased, now)
	due := elapsed >= int64(interval)*dayMillis

	if staple.LastPurchased != nil {
		return due, fmt.Sprintf("Last bought %d days ago (%s reminder)", wholeDays(elapsed), staple.Frequency)
	}
	return due, fmt.Sprintf("%s reminder", staple.Frequency)
}

func newStapleSuggestion(staple shopping.Staple, details string) shopping.Suggestion {
	return shopping.Suggestion{
		ID:           "staple-" + staple.ID,
		Name:         staple.Name,
		DepartmentID: staple.DepartmentID,
		Reason:       shopping.ReasonStaple,
		Details:      details,
		Priority:     StaplePriority,
	}
}
