package suggest

import (
	"context"
	"fmt"

	"github.com/basket-md/basket/internal/shopping"
)

// AddStaple registers name as a staple. Names are stored normalized and must
// be unique after normalization.
func (e *Engine) AddStaple(ctx context.Context, name, departmentID string, frequency shopping.Frequency) (shopping.Staple, error) {
	normalized := shopping.NormalizeName(name)
	if normalized == "" {
		return shopping.Staple{}, shopping.ErrEmptyName
	}
	if !frequency.Valid() {
		return shopping.Staple{}, fmt.Errorf("%w: %q", shopping.ErrInvalidFrequency, frequency)
	}

	existing, err := e.store.FindStapleByName(ctx, normalized)
	if err != nil {
		return shopping.Staple{}, fmt.Errorf("find staple %q: %w", normalized, err)
	}
	if existing != nil {
		return shopping.Staple{}, fmt.Errorf("%w: %s", ErrDuplicateStaple, normalized)
	}

	staple := shopping.Staple{
		ID:           e.newID(),
		Name:         normalized,
		DepartmentID: departmentID,
		Frequency:    frequency,
		CreatedAt:    e.now(),
	}
	if err := e.store.InsertStaple(ctx, staple); err != nil {
		return shopping.Staple{}, fmt.Errorf("add staple %q: %w", normalized, err)
	}
	return staple, nil
}

// RemoveStaple deletes the staple; ErrStapleNotFound if it does not exist.
func (e *Engine) RemoveStaple(ctx context.Context, stapleID string) error {
	deleted, err := e.store.DeleteStaple(ctx, stapleID)
	if err != nil {
		return fmt.Errorf("remove staple %s: %w", stapleID, err)
	}
	if !deleted {
		return fmt.Errorf("%w: %s", ErrStapleNotFound, stapleID)
	}
	return nil
}

// UpdateStaple applies the non-nil fields of update. A new name is
// normalized and may not collide with another staple.
func (e *Engine) UpdateStaple(ctx context.Context, stapleID string, update shopping.StapleUpdate) error {
	current, err := e.store.FindStapleByID(ctx, stapleID)
	if err != nil {
		return fmt.Errorf("find staple %s: %w", stapleID, err)
	}
	if current == nil {
		return fmt.Errorf("%w: %s", ErrStapleNotFound, stapleID)
	}

	if update.Frequency != nil && !update.Frequency.Valid() {
		return fmt.Errorf("%w: %q", shopping.ErrInvalidFrequency, *update.Frequency)
	}

	if update.Name != nil {
		normalized := shopping.NormalizeName(*update.Name)
		if normalized == "" {
			return shopping.ErrEmptyName
		}
		if normalized != current.Name {
			other, err := e.store.FindStapleByName(ctx, normalized)
			if err != nil {
				return fmt.Errorf("find staple %q: %w", normalized, err)
			}
			if other != nil {
				return fmt.Errorf("%w: %s", ErrDuplicateStaple, normalized)
			}
		}
		update.Name = &normalized
	}

	if update.IsEmpty() {
		return nil
	}

	updated, err := e.store.UpdateStaple(ctx, stapleID, update)
	if err != nil {
		return fmt.Errorf("update staple %s: %w", stapleID, err)
	}
	if !updated {
		return fmt.Errorf("%w: %s", ErrStapleNotFound, stapleID)
	}
	return nil
}

// ListStaples returns every staple ordered by name.
func (e *Engine) ListStaples(ctx context.Context) ([]shopping.Staple, error) {
	staples, err := e.store.ListStaples(ctx)
	if err != nil {
		return nil, fmt.Errorf("list staples: %w", err)
	}
	return staples, nil
}
