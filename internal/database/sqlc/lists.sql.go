package sqldb

import (
	"context"
)

const insertList = `INSERT INTO shopping_lists (id, name, created_at, updated_at)
VALUES (?, ?, ?, ?)`

type InsertListParams struct {
	ID        string
	Name      string
	CreatedAt int64
	UpdatedAt int64
}

func (q *Queries) InsertList(ctx context.Context, arg InsertListParams) error {
	_, err := q.db.ExecContext(ctx, insertList,
		arg.ID,
		arg.Name,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const importList = `INSERT INTO shopping_lists (id, name, created_at, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT DO NOTHING`

type ImportListParams struct {
	ID        string
	Name      string
	CreatedAt int64
	UpdatedAt int64
}

func (q *Queries) ImportList(ctx context.Context, arg ImportListParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, importList,
		arg.ID,
		arg.Name,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const findListByID = `SELECT id, name, created_at, updated_at FROM shopping_lists
WHERE id = ?`

func (q *Queries) FindListByID(ctx context.Context, id string) (ShoppingList, error) {
	row := q.db.QueryRowContext(ctx, findListByID, id)
	var i ShoppingList
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const findListByName = `SELECT id, name, created_at, updated_at FROM shopping_lists
WHERE name = ? COLLATE NOCASE
ORDER BY created_at DESC
LIMIT 1`

func (q *Queries) FindListByName(ctx context.Context, name string) (ShoppingList, error) {
	row := q.db.QueryRowContext(ctx, findListByName, name)
	var i ShoppingList
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listLists = `SELECT id, name, created_at, updated_at FROM shopping_lists
ORDER BY created_at DESC, id`

func (q *Queries) ListLists(ctx context.Context) ([]ShoppingList, error) {
	rows, err := q.db.QueryContext(ctx, listLists)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ShoppingList
	for rows.Next() {
		var i ShoppingList
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const touchList = `UPDATE shopping_lists SET updated_at = ? WHERE id = ?`

type TouchListParams struct {
	UpdatedAt int64
	ID        string
}

func (q *Queries) TouchList(ctx context.Context, arg TouchListParams) error {
	_, err := q.db.ExecContext(ctx, touchList, arg.UpdatedAt, arg.ID)
	return err
}

const deleteListByID = `DELETE FROM shopping_lists WHERE id = ?`

func (q *Queries) DeleteListByID(ctx context.Context, id string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteListByID, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
