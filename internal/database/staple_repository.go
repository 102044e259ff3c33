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

type StapleRepository struct {
	ctx *Context
}

func NewStapleRepository(dbCtx *Context) *StapleRepository {
	return &StapleRepository{ctx: dbCtx}
}

func (r *StapleRepository) FindAll(ctx context.Context) ([]shopping.Staple, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("staple repository: missing database context")
	}

	rows, err := queries.ListStaples(ctx)
	if err != nil {
		return nil, fmt.Errorf("list staples: %w", err)
	}

	result := make([]shopping.Staple, 0, len(rows))
	for _, row := range rows {
		result = append(result, StapleFromRow(row))
	}
	return result, nil
}

func (r *StapleRepository) FindByID(ctx context.Context, id string) (*shopping.Staple, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("staple repository: missing database context")
	}

	row, err := queries.FindStapleByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find staple %s: %w", id, err)
	}

	staple := StapleFromRow(row)
	return &staple, nil
}

// FindByName looks a staple up by its stored (normalized) name.
func (r *StapleRepository) FindByName(ctx context.Context, name string) (*shopping.Staple, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("staple repository: missing database context")
	}

	row, err := queries.FindStapleByName(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find staple %q: %w", name, err)
	}

	staple := StapleFromRow(row)
	return &staple, nil
}

func (r *StapleRepository) Create(ctx context.Context, staple shopping.Staple) error {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return fmt.Errorf("staple repository: missing database context")
	}

	if err := queries.InsertStaple(ctx, StapleInsertParams(staple)); err != nil {
		return fmt.Errorf("insert staple: %w", err)
	}
	return nil
}

func (r *StapleRepository) Update(ctx context.Context, id string, update shopping.StapleUpdate) (bool, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return false, fmt.Errorf("staple repository: missing database context")
	}

	affected, err := queries.UpdateStaple(ctx, StapleUpdateParams(id, update))
	if err != nil {
		return false, fmt.Errorf("update staple %s: %w", id, err)
	}
	return affected > 0, nil
}

func (r *StapleRepository) SetLastPurchased(ctx context.Context, id string, at time.Time) (bool, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return false, fmt.Errorf("staple repository: missing database context")
	}

	affected, err := queries.SetStapleLastPurchased(ctx, sqldb.SetStapleLastPurchasedParams{
		LastPurchased: timePtrToNullInt64(&at),
		ID:            id,
	})
	if err != nil {
		return false, fmt.Errorf("mark staple %s purchased: %w", id, err)
	}
	return affected > 0, nil
}

func (r *StapleRepository) Delete(ctx context.Context, id string) (bool, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return false, fmt.Errorf("staple repository: missing database context")
	}

	affected, err := queries.DeleteStapleByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete staple %s: %w", id, err)
	}
	return affected > 0, nil
}
