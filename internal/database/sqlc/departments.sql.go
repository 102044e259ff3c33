package sqldb

import (
	"context"
)

const listDepartments = `SELECT id, name, icon, color, sort_order, is_default FROM departments
ORDER BY sort_order, name`

func (q *Queries) ListDepartments(ctx context.Context) ([]Department, error) {
	rows, err := q.db.QueryContext(ctx, listDepartments)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Department
	for rows.Next() {
		var i Department
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Icon,
			&i.Color,
			&i.SortOrder,
			&i.IsDefault,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const findDepartmentByID = `SELECT id, name, icon, color, sort_order, is_default FROM departments
WHERE id = ?`

func (q *Queries) FindDepartmentByID(ctx context.Context, id string) (Department, error) {
	row := q.db.QueryRowContext(ctx, findDepartmentByID, id)
	var i Department
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Icon,
		&i.Color,
		&i.SortOrder,
		&i.IsDefault,
	)
	return i, err
}

const findDepartmentByName = `SELECT id, name, icon, color, sort_order, is_default FROM departments
WHERE name = ? COLLATE NOCASE
ORDER BY sort_order
LIMIT 1`

func (q *Queries) FindDepartmentByName(ctx context.Context, name string) (Department, error) {
	row := q.db.QueryRowContext(ctx, findDepartmentByName, name)
	var i Department
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Icon,
		&i.Color,
		&i.SortOrder,
		&i.IsDefault,
	)
	return i, err
}

const countDepartments = `SELECT COUNT(*) FROM departments`

func (q *Queries) CountDepartments(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countDepartments)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const importDepartment = `INSERT INTO departments (id, name, icon, color, sort_order, is_default)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT DO NOTHING`

type ImportDepartmentParams struct {
	ID        string
	Name      string
	Icon      string
	Color     string
	SortOrder int64
	IsDefault int64
}

func (q *Queries) ImportDepartment(ctx context.Context, arg ImportDepartmentParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, importDepartment,
		arg.ID,
		arg.Name,
		arg.Icon,
		arg.Color,
		arg.SortOrder,
		arg.IsDefault,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
