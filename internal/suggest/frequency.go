package suggest

import (
	"context"
	"fmt"
	"time"

	"github.com/basket-md/basket/internal/shopping"
)

const (
	frequencyCandidates  = 20
	frequencyMinUses     = 5
	frequencyMaxIdleDays = 60
	frequencyMaxPriority = 9
)

// frequencySuggestions proposes habitually bought items that are missing from
// the list and were used recently enough to still be relevant.
func (e *Engine) frequencySuggestions(ctx context.Context, current shopping.NameSet, now time.Time) ([]shopping.Suggestion, error) {
	recent, err := e.store.TopRecentItems(ctx, frequencyCandidates)
	if err != nil {
		return nil, fmt.Errorf("load recent items: %w", err)
	}

	var suggestions []shopping.Suggestion
	for _, item := range recent {
		if current.Has(item.Name) {
			continue
		}
		if item.UseCount < frequencyMinUses {
			continue
		}
		if elapsedMillis(&item.LastUsedAt, now) > frequencyMaxIdleDays*dayMillis {
			continue
		}
		suggestions = append(suggestions, newFrequencySuggestion(item))
	}
	return suggestions, nil
}

func newFrequencySuggestion(item shopping.RecentItem) shopping.Suggestion {
	return shopping.Suggestion{
		ID:           "freq-" + item.ID,
		Name:         item.Name,
		DepartmentID: item.DepartmentID,
		Reason:       shopping.ReasonFrequency,
		Details:      fmt.Sprintf("You buy this often (%d times)", item.UseCount),
		Priority:     min(frequencyMaxPriority, item.UseCount/2),
	}
}
