package suggest

import (
	"context"
	"fmt"

	"github.com/basket-md/basket/internal/shopping"
)

// TrackPairs counts every unordered pair of the list's checked items as
// bought together once more and returns the number of pair records written.
// The count is recomputed from the whole checked set, so calling it twice for
// the same trip counts that trip twice.
func (e *Engine) TrackPairs(ctx context.Context, listID string) (int, error) {
	checked, err := e.store.CheckedItems(ctx, listID)
	if err != nil {
		return 0, fmt.Errorf("load checked items: %w", err)
	}
	if len(checked) < 2 {
		return 0, nil
	}

	names := make([]string, 0, len(checked))
	for _, item := range checked {
		if name := shopping.NormalizeName(item.Name); name != "" {
			names = append(names, name)
		}
	}

	written := 0
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			item1, item2 := shopping.OrderPair(names[i], names[j])
			if item1 == item2 {
				continue
			}
			if err := e.bumpPair(ctx, item1, item2); err != nil {
				return written, err
			}
			written++
		}
	}
	return written, nil
}

func (e *Engine) bumpPair(ctx context.Context, item1, item2 string) error {
	now := e.now()

	existing, err := e.store.FindItemPair(ctx, item1, item2)
	if err != nil {
		return fmt.Errorf("find pair (%s, %s): %w", item1, item2, err)
	}
	if existing != nil {
		if err := e.store.UpdateItemPairCount(ctx, existing.ID, existing.Count+1, now); err != nil {
			return fmt.Errorf("update pair (%s, %s): %w", item1, item2, err)
		}
		return nil
	}

	pair := shopping.ItemPair{
		ID:       e.newID(),
		Item1:    item1,
		Item2:    item2,
		Count:    1,
		LastSeen: now,
	}
	if err := e.store.InsertItemPair(ctx, pair); err != nil {
		return fmt.Errorf("insert pair (%s, %s): %w", item1, item2, err)
	}
	return nil
}

// TrackItemPairs is TrackPairs for event handlers: failures are logged and
// the pairs written before the failure are still reported.
func (e *Engine) TrackItemPairs(ctx context.Context, listID string) int {
	written, err := e.TrackPairs(ctx, listID)
	if err != nil {
		e.logger.Error("tracking item pairs", "list", listID, "written", written, "error", err)
	}
	return written
}

// MarkStaplePurchased stamps the staple named itemName as bought now. It
// reports false when no staple has that name.
func (e *Engine) MarkStaplePurchased(ctx context.Context, itemName string) (bool, error) {
	name := shopping.NormalizeName(itemName)
	if name == "" {
		return false, nil
	}

	staple, err := e.store.FindStapleByName(ctx, name)
	if err != nil {
		return false, fmt.Errorf("find staple %q: %w", name, err)
	}
	if staple == nil {
		return false, nil
	}

	updated, err := e.store.SetStapleLastPurchased(ctx, staple.ID, e.now())
	if err != nil {
		return false, fmt.Errorf("mark staple %q purchased: %w", name, err)
	}
	return updated, nil
}

// UpdateStaplePurchased is MarkStaplePurchased with failures logged and
// swallowed.
func (e *Engine) UpdateStaplePurchased(ctx context.Context, itemName string) bool {
	updated, err := e.MarkStaplePurchased(ctx, itemName)
	if err != nil {
		e.logger.Error("updating staple purchase", "item", itemName, "error", err)
		return false
	}
	return updated
}
