package sqldb

import (
	"context"
)

const listTopRecentItems = `SELECT id, name, department_id, use_count, last_used_at FROM recent_items
ORDER BY use_count DESC, last_used_at DESC, id
LIMIT ?`

func (q *Queries) ListTopRecentItems(ctx context.Context, limit int64) ([]RecentItem, error) {
	rows, err := q.db.QueryContext(ctx, listTopRecentItems, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RecentItem
	for rows.Next() {
		var i RecentItem
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.DepartmentID,
			&i.UseCount,
			&i.LastUsedAt,
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

const listRecentItems = `SELECT id, name, department_id, use_count, last_used_at FROM recent_items
ORDER BY last_used_at DESC, id`

func (q *Queries) ListRecentItems(ctx context.Context) ([]RecentItem, error) {
	rows, err := q.db.QueryContext(ctx, listRecentItems)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RecentItem
	for rows.Next() {
		var i RecentItem
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.DepartmentID,
			&i.UseCount,
			&i.LastUsedAt,
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

const findRecentItemByName = `SELECT id, name, department_id, use_count, last_used_at FROM recent_items
WHERE name = ? COLLATE NOCASE
ORDER BY use_count DESC
LIMIT 1`

func (q *Queries) FindRecentItemByName(ctx context.Context, name string) (RecentItem, error) {
	row := q.db.QueryRowContext(ctx, findRecentItemByName, name)
	var i RecentItem
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.DepartmentID,
		&i.UseCount,
		&i.LastUsedAt,
	)
	return i, err
}

const upsertRecentItem = `INSERT INTO recent_items (id, name, department_id, use_count, last_used_at)
VALUES (?, ?, ?, 1, ?)
ON CONFLICT (name) DO UPDATE
SET use_count = recent_items.use_count + 1,
    last_used_at = excluded.last_used_at,
    department_id = excluded.department_id`

type UpsertRecentItemParams struct {
	ID           string
	Name         string
	DepartmentID string
	LastUsedAt   int64
}

func (q *Queries) UpsertRecentItem(ctx context.Context, arg UpsertRecentItemParams) error {
	_, err := q.db.ExecContext(ctx, upsertRecentItem,
		arg.ID,
		arg.Name,
		arg.DepartmentID,
		arg.LastUsedAt,
	)
	return err
}

const importRecentItem = `INSERT INTO recent_items (id, name, department_id, use_count, last_used_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT DO NOTHING`

type ImportRecentItemParams struct {
	ID           string
	Name         string
	DepartmentID string
	UseCount     int64
	LastUsedAt   int64
}

func (q *Queries) ImportRecentItem(ctx context.Context, arg ImportRecentItemParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, importRecentItem,
		arg.ID,
		arg.Name,
		arg.DepartmentID,
		arg.UseCount,
		arg.LastUsedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
