package suggest

import (
	"context"
	"fmt"

	"github.com/basket-md/basket/internal/shopping"
)

const (
	pairMinCount    = 3
	pairBasePrio    = 3
	pairMaxPriority = 8
)

// pairSuggestions scores every item that was bought together with something
// already on the list. A pair whose members are both on the list adds
// nothing; counts of several pairs pointing at the same item add up.
func (e *Engine) pairSuggestions(ctx context.Context, current shopping.NameSet) ([]shopping.Suggestion, error) {
	pairs, err := e.store.ListItemPairs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load item pairs: %w", err)
	}

	totals := make(map[string]int)
	var order []string
	for _, pair := range pairs {
		has1, has2 := current.Has(pair.Item1), current.Has(pair.Item2)
		var candidate string
		switch {
		case has1 && has2:
			continue
		case has1:
			candidate = pair.Item2
		case has2:
			candidate = pair.Item1
		default:
			continue
		}
		if _, seen := totals[candidate]; !seen {
			order = append(order, candidate)
		}
		totals[candidate] += pair.Count
	}

	var suggestions []shopping.Suggestion
	for _, name := range order {
		total := totals[name]
		if total < pairMinCount {
			continue
		}

		department := ""
		recent, err := e.store.FindRecentItemByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("resolve department of %q: %w", name, err)
		}
		if recent != nil {
			department = recent.DepartmentID
		}

		suggestions = append(suggestions, newPairSuggestion(name, department, total))
	}
	return suggestions, nil
}

func newPairSuggestion(name, departmentID string, total int) shopping.Suggestion {
	return shopping.Suggestion{
		ID:           "pair-" + name,
		Name:         name,
		DepartmentID: departmentID,
		Reason:       shopping.ReasonPair,
		Details:      "Often bought with your other items",
		Priority:     min(pairMaxPriority, pairBasePrio+total/2),
	}
}
