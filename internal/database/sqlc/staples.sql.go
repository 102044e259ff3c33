package sqldb

import (
	"context"
	"database/sql"
)

const listStaples = `SELECT id, name, department_id, frequency, last_purchased, created_at FROM staples
ORDER BY name`

func (q *Queries) ListStaples(ctx context.Context) ([]Staple, error) {
	rows, err := q.db.QueryContext(ctx, listStaples)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Staple
	for rows.Next() {
		var i Staple
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.DepartmentID,
			&i.Frequency,
			&i.LastPurchased,
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

const findStapleByID = `SELECT id, name, department_id, frequency, last_purchased, created_at FROM staples
WHERE id = ?`

func (q *Queries) FindStapleByID(ctx context.Context, id string) (Staple, error) {
	row := q.db.QueryRowContext(ctx, findStapleByID, id)
	var i Staple
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.DepartmentID,
		&i.Frequency,
		&i.LastPurchased,
		&i.CreatedAt,
	)
	return i, err
}

const findStapleByName = `SELECT id, name, department_id, frequency, last_purchased, created_at FROM staples
WHERE name = ?`

func (q *Queries) FindStapleByName(ctx context.Context, name string) (Staple, error) {
	row := q.db.QueryRowContext(ctx, findStapleByName, name)
	var i Staple
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.DepartmentID,
		&i.Frequency,
		&i.LastPurchased,
		&i.CreatedAt,
	)
	return i, err
}

const insertStaple = `INSERT INTO staples (id, name, department_id, frequency, last_purchased, created_at)
VALUES (?, ?, ?, ?, ?, ?)`

type InsertStapleParams struct {
	ID            string
	Name          string
	DepartmentID  string
	Frequency     string
	LastPurchased sql.NullInt64
	CreatedAt     int64
}

func (q *Queries) InsertStaple(ctx context.Context, arg InsertStapleParams) error {
	_, err := q.db.ExecContext(ctx, insertStaple,
		arg.ID,
		arg.Name,
		arg.DepartmentID,
		arg.Frequency,
		arg.LastPurchased,
		arg.CreatedAt,
	)
	return err
}

const importStaple = `INSERT INTO staples (id, name, department_id, frequency, last_purchased, created_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT DO NOTHING`

type ImportStapleParams struct {
	ID            string
	Name          string
	DepartmentID  string
	Frequency     string
	LastPurchased sql.NullInt64
	CreatedAt     int64
}

func (q *Queries) ImportStaple(ctx context.Context, arg ImportStapleParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, importStaple,
		arg.ID,
		arg.Name,
		arg.DepartmentID,
		arg.Frequency,
		arg.LastPurchased,
		arg.CreatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const updateStaple = `UPDATE staples
SET name = COALESCE(?1, name),
    department_id = COALESCE(?2, department_id),
    frequency = COALESCE(?3, frequency)
WHERE id = ?4`

type UpdateStapleParams struct {
	Name         sql.NullString
	DepartmentID sql.NullString
	Frequency    sql.NullString
	ID           string
}

func (q *Queries) UpdateStaple(ctx context.Context, arg UpdateStapleParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateStaple,
		arg.Name,
		arg.DepartmentID,
		arg.Frequency,
		arg.ID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const setStapleLastPurchased = `UPDATE staples SET last_purchased = ? WHERE id = ?`

type SetStapleLastPurchasedParams struct {
	LastPurchased sql.NullInt64
	ID            string
}

func (q *Queries) SetStapleLastPurchased(ctx context.Context, arg SetStapleLastPurchasedParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, setStapleLastPurchased, arg.LastPurchased, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteStapleByID = `DELETE FROM staples WHERE id = ?`

func (q *Queries) DeleteStapleByID(ctx context.Context, id string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteStapleByID, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
