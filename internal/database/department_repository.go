package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sqldb "github.com/basket-md/basket/internal/database/sqlc"
	"github.com/basket-md/basket/internal/shopping"
)

type DepartmentRepository struct {
	ctx *Context
}

func NewDepartmentRepository(dbCtx *Context) *DepartmentRepository {
	return &DepartmentRepository{ctx: dbCtx}
}

// FindAll returns departments in display order.
func (r *DepartmentRepository) FindAll(ctx context.Context) ([]shopping.Department, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("department repository: missing database context")
	}

	rows, err := queries.ListDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}

	result := make([]shopping.Department, 0, len(rows))
	for _, row := range rows {
		result = append(result, DepartmentFromRow(row))
	}
	return result, nil
}

func (r *DepartmentRepository) FindByID(ctx context.Context, id string) (*shopping.Department, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("department repository: missing database context")
	}

	row, err := queries.FindDepartmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find department %s: %w", id, err)
	}

	department := DepartmentFromRow(row)
	return &department, nil
}

// FindByName matches case-insensitively.
func (r *DepartmentRepository) FindByName(ctx context.Context, name string) (*shopping.Department, error) {
	queries := queriesFromContext(r.ctx)
	if queries == nil {
		return nil, fmt.Errorf("department repository: missing database context")
	}

	row, err := queries.FindDepartmentByName(ctx, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find department %q: %w", name, err)
	}

	department := DepartmentFromRow(row)
	return &department, nil
}

// SeedDefaultDepartments inserts shopping.DefaultDepartments when the table is
// empty and reports how many rows it wrote.
func SeedDefaultDepartments(ctx context.Context, q *sqldb.Queries) (int64, error) {
	count, err := q.CountDepartments(ctx)
	if err != nil {
		return 0, fmt.Errorf("count departments: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	var seeded int64
	for _, d := range shopping.DefaultDepartments {
		n, err := q.ImportDepartment(ctx, DepartmentImportParams(d))
		if err != nil {
			return seeded, fmt.Errorf("seed department %s: %w", d.ID, err)
		}
		seeded += n
	}
	return seeded, nil
}
