// Package usecase composes the list and item services with the suggestion
// engine into the operations exposed by the CLI and the MCP server.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/basket-md/basket/internal/database"
	"github.com/basket-md/basket/internal/services"
	"github.com/basket-md/basket/internal/shopping"
	"github.com/basket-md/basket/internal/suggest"
)

var ErrSuggestionNotFound = errors.New("suggestion not found")

type Basket struct {
	lists       *services.ListService
	items       *services.ItemService
	departments *services.DepartmentService
	engine      *suggest.Engine
}

// NewBasket wires the services and an engine backed by the SQLite store.
// opts are passed through to the engine.
func NewBasket(dbCtx *database.Context, opts ...suggest.Option) *Basket {
	return &Basket{
		lists:       services.NewListService(dbCtx),
		items:       services.NewItemService(dbCtx),
		departments: services.NewDepartmentService(dbCtx),
		engine:      suggest.New(database.NewRecordStore(dbCtx), opts...),
	}
}

func (u *Basket) CreateList(ctx context.Context, name string) (*shopping.List, error) {
	return u.lists.Create(ctx, name)
}

func (u *Basket) Lists(ctx context.Context) ([]shopping.List, error) {
	return u.lists.GetAll(ctx)
}

// ShowList resolves a list by ID or name and returns it with its items.
func (u *Basket) ShowList(ctx context.Context, listRef string) (*shopping.List, []shopping.Item, error) {
	list, err := u.lists.Resolve(ctx, listRef)
	if err != nil {
		return nil, nil, err
	}
	items, err := u.items.ListByList(ctx, list.ID)
	if err != nil {
		return nil, nil, err
	}
	return list, items, nil
}

func (u *Basket) DeleteList(ctx context.Context, listRef string) (*shopping.List, error) {
	list, err := u.lists.Resolve(ctx, listRef)
	if err != nil {
		return nil, err
	}
	if _, err := u.lists.Delete(ctx, list.ID); err != nil {
		return nil, err
	}
	return list, nil
}

// AddItem adds name to the list. department may be a department ID, a
// department name or empty.
func (u *Basket) AddItem(ctx context.Context, listRef, name, department string) (*shopping.Item, error) {
	list, err := u.lists.Resolve(ctx, listRef)
	if err != nil {
		return nil, err
	}
	departmentID, err := u.resolveDepartment(ctx, department)
	if err != nil {
		return nil, err
	}
	return u.items.Add(ctx, list.ID, name, departmentID)
}

// CheckItem checks or unchecks an item. Checking an item that is a staple
// records the purchase on the staple.
func (u *Basket) CheckItem(ctx context.Context, listRef, itemRef string, checked bool) (*shopping.Item, error) {
	list, err := u.lists.Resolve(ctx, listRef)
	if err != nil {
		return nil, err
	}
	item, err := u.items.Resolve(ctx, list.ID, itemRef)
	if err != nil {
		return nil, err
	}
	if _, err := u.items.SetChecked(ctx, item.ID, checked); err != nil {
		return nil, err
	}
	if checked {
		u.engine.UpdateStaplePurchased(ctx, item.Name)
	}
	return u.items.GetByID(ctx, item.ID)
}

func (u *Basket) RemoveItem(ctx context.Context, listRef, itemRef string) (*shopping.Item, error) {
	list, err := u.lists.Resolve(ctx, listRef)
	if err != nil {
		return nil, err
	}
	item, err := u.items.Resolve(ctx, list.ID, itemRef)
	if err != nil {
		return nil, err
	}
	if _, err := u.items.Delete(ctx, item.ID); err != nil {
		return nil, err
	}
	return item, nil
}

// Suggest returns the ranked suggestions for a list. Engine failures are
// logged and yield an empty result; only resolving the list can fail.
func (u *Basket) Suggest(ctx context.Context, listRef string) ([]shopping.Suggestion, error) {
	_, items, err := u.ShowList(ctx, listRef)
	if err != nil {
		return nil, err
	}
	return u.engine.GetSuggestions(ctx, items), nil
}

// AcceptSuggestion adds the suggestion identified by ref (its ID or item
// name) to the list, then records a staple purchase for the name.
func (u *Basket) AcceptSuggestion(ctx context.Context, listRef, ref string) (*shopping.Item, *shopping.Suggestion, error) {
	list, items, err := u.ShowList(ctx, listRef)
	if err != nil {
		return nil, nil, err
	}

	suggestion := findSuggestion(u.engine.GetSuggestions(ctx, items), ref)
	if suggestion == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrSuggestionNotFound, ref)
	}

	item, err := u.items.Add(ctx, list.ID, suggestion.Name, suggestion.DepartmentID)
	if err != nil {
		return nil, nil, err
	}
	u.engine.UpdateStaplePurchased(ctx, item.Name)
	return item, suggestion, nil
}

func findSuggestion(suggestions []shopping.Suggestion, ref string) *shopping.Suggestion {
	name := shopping.NormalizeName(ref)
	for i := range suggestions {
		if suggestions[i].ID == ref || shopping.NormalizeName(suggestions[i].Name) == name {
			return &suggestions[i]
		}
	}
	return nil
}

// CompleteTrip records co-occurrence for every pair of checked items on the
// list and returns the number of pairs recorded.
func (u *Basket) CompleteTrip(ctx context.Context, listRef string) (int, error) {
	list, err := u.lists.Resolve(ctx, listRef)
	if err != nil {
		return 0, err
	}
	return u.engine.TrackItemPairs(ctx, list.ID), nil
}

func (u *Basket) AddStaple(ctx context.Context, name, department, frequency string) (shopping.Staple, error) {
	f, err := shopping.ParseFrequency(frequency)
	if err != nil {
		return shopping.Staple{}, err
	}
	departmentID, err := u.resolveDepartment(ctx, department)
	if err != nil {
		return shopping.Staple{}, err
	}
	return u.engine.AddStaple(ctx, name, departmentID, f)
}

func (u *Basket) Staples(ctx context.Context) ([]shopping.Staple, error) {
	return u.engine.ListStaples(ctx)
}

// ResolveStaple finds a staple by ID or by name.
func (u *Basket) ResolveStaple(ctx context.Context, ref string) (*shopping.Staple, error) {
	staples, err := u.engine.ListStaples(ctx)
	if err != nil {
		return nil, err
	}
	name := shopping.NormalizeName(ref)
	for i := range staples {
		if staples[i].ID == ref || staples[i].Name == name {
			return &staples[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", suggest.ErrStapleNotFound, ref)
}

func (u *Basket) UpdateStaple(ctx context.Context, ref string, update shopping.StapleUpdate) (*shopping.Staple, error) {
	staple, err := u.ResolveStaple(ctx, ref)
	if err != nil {
		return nil, err
	}
	if update.DepartmentID != nil {
		departmentID, err := u.resolveDepartment(ctx, *update.DepartmentID)
		if err != nil {
			return nil, err
		}
		update.DepartmentID = &departmentID
	}
	if err := u.engine.UpdateStaple(ctx, staple.ID, update); err != nil {
		return nil, err
	}
	return u.ResolveStaple(ctx, staple.ID)
}

func (u *Basket) RemoveStaple(ctx context.Context, ref string) (*shopping.Staple, error) {
	staple, err := u.ResolveStaple(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := u.engine.RemoveStaple(ctx, staple.ID); err != nil {
		return nil, err
	}
	return staple, nil
}

func (u *Basket) Departments(ctx context.Context) ([]shopping.Department, error) {
	return u.departments.GetAll(ctx)
}

// DepartmentIndex loads the departments for rendering department labels.
func (u *Basket) DepartmentIndex(ctx context.Context) (shopping.DepartmentIndex, error) {
	return u.departments.Index(ctx)
}

// resolveDepartment maps a department ID or name to its ID. An empty
// reference means no department.
func (u *Basket) resolveDepartment(ctx context.Context, ref string) (string, error) {
	if strings.TrimSpace(ref) == "" {
		return "", nil
	}
	department, err := u.departments.Resolve(ctx, ref)
	if err != nil {
		return "", err
	}
	return department.ID, nil
}
