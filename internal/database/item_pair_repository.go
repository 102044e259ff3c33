package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sqldb "github.com/basket-md/basket/internal/database/sqlc"
	"github.com/basket-md/basket/internal/shopping"
)

type ItemPairRepository struct {
	ctx *Context
}

func NewItemPairRepository(dbCtx *Context) *ItemPairRepository {
	return &ItemPairRepository{ctx: dbCtx}
}

func (r *ItemPairRepository) FindAll(ctx context.Context) ([]shopping.ItemPair, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("item pair repository: missing database context")
	}

	rows, err := queries.ListItemPairs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list item pairs: %w", err)
	}

	result := make([]shopping.ItemPair, 0, len(rows))
	for _, row := range rows {
		result = append(result, ItemPairFromRow(row))
	}
	return result, nil
}

// Find expects item1 < item2, as produced by shopping.OrderPair.
func (r *ItemPairRepository) Find(ctx context.Context, item1, item2 string) (*shopping.ItemPair, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("item pair repository: missing database context")
	}

	row, err := queries.FindItemPair(ctx, sqldb.FindItemPairParams{Item1: item1, Item2: item2})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find item pair (%s, %s): %w", item1, item2, err)
	}

	pair := ItemPairFromRow(row)
	return &pair, nil
}

func (r *ItemPairRepository) Create(ctx context.Context, pair shopping.ItemPair) error {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return fmt.Errorf("item pair repository: missing database context")
	}

	err := queries.InsertItemPair(ctx, sqldb.InsertItemPairParams{
		ID:       pair.ID,
		Item1:    pair.Item1,
		Item2:    pair.Item2,
		Count:    int64(pair.Count),
		LastSeen: toMillis(pair.LastSeen),
	})
	if err != nil {
		return fmt.Errorf("insert item pair (%s, %s): %w", pair.Item1, pair.Item2, err)
	}
	return nil
}

func (r *ItemPairRepository) UpdateCount(ctx context.Context, id string, count int, lastSeen time.Time) (bool, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return false, fmt.Errorf("item pair repository: missing database context")
	}

	affected, err := queries.UpdateItemPairCount(ctx, sqldb.UpdateItemPairCountParams{
		Count:    int64(count),
		LastSeen: toMillis(lastSeen),
		ID:       id,
	})
	if err != nil {
		return false, fmt.Errorf("update item pair %s: %w", id, err)
	}
	return affected > 0, nil
}
