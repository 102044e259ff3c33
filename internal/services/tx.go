package services

import (
	"context"
	"fmt"

	"github.com/basket-md/basket/internal/database"
	sqldb "github.com/basket-md/basket/internal/database/sqlc"
)

func withTx(ctx context.Context, dbCtx *database.Context, service string, fn func(context.Context, *sqldb.Queries) error) error {
	if dbCtx == nil || dbCtx.DB == nil {
		return fmt.Errorf("%s: missing database context", service)
	}

	tx, err := dbCtx.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	queries := sqldb.New(tx)

	if err := fn(ctx, queries); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return nil
}

func queriesFor(dbCtx *database.Context, service string) (*sqldb.Queries, error) {
	if dbCtx == nil {
		return nil, fmt.Errorf("%s: missing database context", service)
	}
	if dbCtx.Queries == nil {
		if dbCtx.DB == nil {
			return nil, fmt.Errorf("%s: database handle not initialised", service)
		}
		dbCtx.Queries = sqldb.New(dbCtx.DB)
	}
	return dbCtx.Queries, nil
}
