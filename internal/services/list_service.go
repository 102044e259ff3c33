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
	"github.com/basket-md/basket/internal/shopping"
)

// ListService manages shopping lists.
type ListService struct {
	ctx   *database.Context
	now   func() time.Time
	newID func() string
}

func NewListService(ctx *database.Context) *ListService {
	return &ListService{ctx: ctx, now: time.Now, newID: uuid.NewString}
}

func (s *ListService) Create(ctx context.Context, name string) (*shopping.List, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shopping.ErrEmptyName
	}

	q, err := queriesFor(s.ctx, "list service")
	if err != nil {
		return nil, err
	}

	now := s.now()
	list := shopping.List{ID: s.newID(), Name: name, CreatedAt: now, UpdatedAt: now}
	if err := q.InsertList(ctx, database.ListInsertParams(list)); err != nil {
		return nil, fmt.Errorf("create list %q: %w", name, err)
	}
	return &list, nil
}

func (s *ListService) GetByID(ctx context.Context, id string) (*shopping.List, error) {
	q, err := queriesFor(s.ctx, "list service")
	if err != nil {
		return nil, err
	}
	row, err := q.FindListByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	list := database.ListFromRow(row)
	return &list, nil
}

// FindByName matches case-insensitively and prefers the newest list.
func (s *ListService) FindByName(ctx context.Context, name string) (*shopping.List, error) {
	q, err := queriesFor(s.ctx, "list service")
	if err != nil {
		return nil, err
	}
	row, err := q.FindListByName(ctx, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	list := database.ListFromRow(row)
	return &list, nil
}

// Resolve accepts a list ID or name.
func (s *ListService) Resolve(ctx context.Context, ref string) (*shopping.List, error) {
	list, err := s.GetByID(ctx, ref)
	if err != nil {
		return nil, err
	}
	if list != nil {
		return list, nil
	}

	list, err = s.FindByName(ctx, ref)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, fmt.Errorf("list %q: %w", ref, database.ErrNotFound)
	}
	return list, nil
}

func (s *ListService) GetAll(ctx context.Context) ([]shopping.List, error) {
	q, err := queriesFor(s.ctx, "list service")
	if err != nil {
		return nil, err
	}

	rows, err := q.ListLists(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]shopping.List, 0, len(rows))
	for _, row := range rows {
		result = append(result, database.ListFromRow(row))
	}
	return result, nil
}

// Delete removes the list and, through the foreign key, its items.
func (s *ListService) Delete(ctx context.Context, id string) (bool, error) {
	q, err := queriesFor(s.ctx, "list service")
	if err != nil {
		return false, err
	}
	affected, err := q.DeleteListByID(ctx, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
