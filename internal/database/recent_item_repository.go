package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/basket-md/basket/internal/shopping"
)

// RecentItemRepository reads the per-name usage ledger. Writes happen in
// services.ItemService together with the item insert.
type RecentItemRepository struct {
	ctx *Context
}

func NewRecentItemRepository(dbCtx *Context) *RecentItemRepository {
	return &RecentItemRepository{ctx: dbCtx}
}

// Top returns the most used names, ties broken by recency then ID.
func (r *RecentItemRepository) Top(ctx context.Context, limit int) ([]shopping.RecentItem, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("recent item repository: missing database context")
	}

	rows, err := queries.ListTopRecentItems(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("list top recent items: %w", err)
	}

	result := make([]shopping.RecentItem, 0, len(rows))
	for _, row := range rows {
		result = append(result, RecentItemFromRow(row))
	}
	return result, nil
}

func (r *RecentItemRepository) FindAll(ctx context.Context) ([]shopping.RecentItem, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("recent item repository: missing database context")
	}

	rows, err := queries.ListRecentItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recent items: %w", err)
	}

	result := make([]shopping.RecentItem, 0, len(rows))
	for _, row := range rows {
		result = append(result, RecentItemFromRow(row))
	}
	return result, nil
}

// FindByName matches case-insensitively.
func (r *RecentItemRepository) FindByName(ctx context.Context, name string) (*shopping.RecentItem, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("recent item repository: missing database context")
	}

	row, err := queries.FindRecentItemByName(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find recent item %q: %w", name, err)
	}

	item := RecentItemFromRow(row)
	return &item, nil
}
