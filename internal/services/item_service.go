package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/basket-md/basket/internal/database"
	sqldb "github.com/basket-md/basket/internal/database/sqlc"
	"github.com/basket-md/basket/internal/shopping"
)

// ItemService manages the items on a list and keeps the recent-item ledger
// in step with them.
type ItemService struct {
	ctx   *database.Context
	now   func() time.Time
	newID func() string
}

func NewItemService(ctx *database.Context) *ItemService {
	return &ItemService{ctx: ctx, now: time.Now, newID: uuid.NewString}
}

// Add puts an item on a list. In the same transaction it records one more use
// of the item's normalized name and bumps the list's UpdatedAt.
func (s *ItemService) Add(ctx context.Context, listID, name, departmentID string) (*shopping.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shopping.ErrEmptyName
	}

	now := s.now()
	item := shopping.Item{
		ID:           s.newID(),
		ListID:       listID,
		Name:         name,
		DepartmentID: departmentID,
		CreatedAt:    now,
	}

	err := withTx(ctx, s.ctx, "item service", func(txCtx context.Context, q *sqldb.Queries) error {
		if _, err := q.FindListByID(txCtx, listID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("list %s: %w", listID, database.ErrNotFound)
			}
			return err
		}

		if err := q.InsertItem(txCtx, database.ItemInsertParams(item)); err != nil {
			return fmt.Errorf("insert item: %w", err)
		}

		recent := database.RecentItemUpsertParams(s.newID(), shopping.NormalizeName(name), departmentID, now)
		if err := q.UpsertRecentItem(txCtx, recent); err != nil {
			return fmt.Errorf("record recent item: %w", err)
		}

		return q.TouchList(txCtx, database.TouchListParams(listID, now))
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// SetChecked checks or unchecks an item. It reports false when the item does
// not exist.
func (s *ItemService) SetChecked(ctx context.Context, itemID string, checked bool) (bool, error) {
	q, err := queriesFor(s.ctx, "item service")
	if err != nil {
		return false, err
	}
	affected, err := q.SetItemChecked(ctx, database.ItemCheckedParams(itemID, checked, s.now()))
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *ItemService) GetByID(ctx context.Context, id string) (*shopping.Item, error) {
	return database.NewItemRepository(s.ctx).FindByID(ctx, id)
}

func (s *ItemService) ListByList(ctx context.Context, listID string) ([]shopping.Item, error) {
	return database.NewItemRepository(s.ctx).FindByList(ctx, listID)
}

// FindInList matches an item name case-insensitively, oldest first.
func (s *ItemService) FindInList(ctx context.Context, listID, name string) (*shopping.Item, error) {
	q, err := queriesFor(s.ctx, "item service")
	if err != nil {
		return nil, err
	}
	row, err := q.FindItemByListAndName(ctx, sqldb.FindItemByListAndNameParams{
		ListID: listID,
		Name:   strings.TrimSpace(name),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	item := database.ItemFromRow(row)
	return &item, nil
}

// Resolve finds an item of the list by ID or by name.
func (s *ItemService) Resolve(ctx context.Context, listID, ref string) (*shopping.Item, error) {
	item, err := s.GetByID(ctx, ref)
	if err != nil {
		return nil, err
	}
	if item != nil && item.ListID == listID {
		return item, nil
	}

	item, err = s.FindInList(ctx, listID, ref)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("item %q: %w", ref, database.ErrNotFound)
	}
	return item, nil
}

func (s *ItemService) Delete(ctx context.Context, id string) (bool, error) {
	q, err := queriesFor(s.ctx, "item service")
	if err != nil {
		return false, err
	}
	affected, err := q.DeleteItemByID(ctx, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
