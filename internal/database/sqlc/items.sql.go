package sqldb

import (
	"context"
	"database/sql"
)

const insertItem = `INSERT INTO items (id, list_id, name, department_id, is_checked, checked_at, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`

type InsertItemParams struct {
	ID           string
	ListID       string
	Name         string
	DepartmentID string
	IsChecked    int64
	CheckedAt    sql.NullInt64
	CreatedAt    int64
}

func (q *Queries) InsertItem(ctx context.Context, arg InsertItemParams) error {
	_, err := q.db.ExecContext(ctx, insertItem,
		arg.ID,
		arg.ListID,
		arg.Name,
		arg.DepartmentID,
		arg.IsChecked,
		arg.CheckedAt,
		arg.CreatedAt,
	)
	return err
}

const importItem = `INSERT INTO items (id, list_id, name, department_id, is_checked, checked_at, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT DO NOTHING`

type ImportItemParams struct {
	ID           string
	ListID       string
	Name         string
	DepartmentID string
	IsChecked    int64
	CheckedAt    sql.NullInt64
	CreatedAt    int64
}

func (q *Queries) ImportItem(ctx context.Context, arg ImportItemParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, importItem,
		arg.ID,
		arg.ListID,
		arg.Name,
		arg.DepartmentID,
		arg.IsChecked,
		arg.CheckedAt,
		arg.CreatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const findItemByID = `SELECT id, list_id, name, department_id, is_checked, checked_at, created_at FROM items
WHERE id = ?`

func (q *Queries) FindItemByID(ctx context.Context, id string) (Item, error) {
	row := q.db.QueryRowContext(ctx, findItemByID, id)
	var i Item
	err := row.Scan(
		&i.ID,
		&i.ListID,
		&i.Name,
		&i.DepartmentID,
		&i.IsChecked,
		&i.CheckedAt,
		&i.CreatedAt,
	)
	return i, err
}

const findItemByListAndName = `SELECT id, list_id, name, department_id, is_checked, checked_at, created_at FROM items
WHERE list_id = ? AND name = ? COLLATE NOCASE
ORDER BY created_at
LIMIT 1`

type FindItemByListAndNameParams struct {
	ListID string
	Name   string
}

func (q *Queries) FindItemByListAndName(ctx context.Context, arg FindItemByListAndNameParams) (Item, error) {
	row := q.db.QueryRowContext(ctx, findItemByListAndName, arg.ListID, arg.Name)
	var i Item
	err := row.Scan(
		&i.ID,
		&i.ListID,
		&i.Name,
		&i.DepartmentID,
		&i.IsChecked,
		&i.CheckedAt,
		&i.CreatedAt,
	)
	return i, err
}

const listItemsByList = `SELECT id, list_id, name, department_id, is_checked, checked_at, created_at FROM items
WHERE list_id = ?
ORDER BY created_at, id`

func (q *Queries) ListItemsByList(ctx context.Context, listID string) ([]Item, error) {
	return q.queryItems(ctx, listItemsByList, listID)
}

const listCheckedItemsByList = `SELECT id, list_id, name, department_id, is_checked, checked_at, created_at FROM items
WHERE list_id = ? AND is_checked = 1
ORDER BY checked_at, id`

func (q *Queries) ListCheckedItemsByList(ctx context.Context, listID string) ([]Item, error) {
	return q.queryItems(ctx, listCheckedItemsByList, listID)
}

const listAllItems = `SELECT id, list_id, name, department_id, is_checked, checked_at, created_at FROM items
ORDER BY list_id, created_at, id`

func (q *Queries) ListAllItems(ctx context.Context) ([]Item, error) {
	return q.queryItems(ctx, listAllItems)
}

func (q *Queries) queryItems(ctx context.Context, query string, args ...any) ([]Item, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Item
	for rows.Next() {
		var i Item
		if err := rows.Scan(
			&i.ID,
			&i.ListID,
			&i.Name,
			&i.DepartmentID,
			&i.IsChecked,
			&i.CheckedAt,
			&i.CreatedAt,
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

const setItemChecked = `UPDATE items SET is_checked = ?, checked_at = ? WHERE id = ?`

type SetItemCheckedParams struct {
	IsChecked int64
	CheckedAt sql.NullInt64
	ID        string
}

func (q *Queries) SetItemChecked(ctx context.Context, arg SetItemCheckedParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, setItemChecked, arg.IsChecked, arg.CheckedAt, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteItemByID = `DELETE FROM items WHERE id = ?`

func (q *Queries) DeleteItemByID(ctx context.Context, id string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteItemByID, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
