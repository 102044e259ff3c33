package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/basket-md/basket/internal/shopping"
)

// ItemRepository is the read side of list items.
type ItemRepository struct {
	ctx *Context
}

func NewItemRepository(dbCtx *Context) *ItemRepository {
	return &ItemRepository{ctx: dbCtx}
}

func (r *ItemRepository) FindByID(ctx context.Context, id string) (*shopping.Item, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("item repository: missing database context")
	}

	row, err := queries.FindItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find item %s: %w", id, err)
	}

	item := ItemFromRow(row)
	return &item, nil
}

func (r *ItemRepository) FindByList(ctx context.Context, listID string) ([]shopping.Item, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("item repository: missing database context")
	}

	rows, err := queries.ListItemsByList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("list items of %s: %w", listID, err)
	}
	return itemsFromRows(rows), nil
}

// FindChecked returns the checked items of a list in check-off order.
func (r *ItemRepository) FindChecked(ctx context.Context, listID string) ([]shopping.Item, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("item repository: missing database context")
	}

	rows, err := queries.ListCheckedItemsByList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("list checked items of %s: %w", listID, err)
	}
	return itemsFromRows(rows), nil
}
