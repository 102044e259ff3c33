package sqldb

import (
	"context"
)

const listItemPairs = `SELECT id, item1, item2, count, last_seen FROM item_pairs
ORDER BY item1, item2`

func (q *Queries) ListItemPairs(ctx context.Context) ([]ItemPair, error) {
	rows, err := q.db.QueryContext(ctx, listItemPairs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ItemPair
	for rows.Next() {
		var i ItemPair
		if err := rows.Scan(
			&i.ID,
			&i.Item1,
			&i.Item2,
			&i.Count,
			&i.LastSeen,
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

const findItemPair = `SELECT id, item1, item2, count, last_seen FROM item_pairs
WHERE item1 = ? AND item2 = ?`

type FindItemPairParams struct {
	Item1 string
	Item2 string
}

func (q *Queries) FindItemPair(ctx context.Context, arg FindItemPairParams) (ItemPair, error) {
	row := q.db.QueryRowContext(ctx, findItemPair, arg.Item1, arg.Item2)
	var i ItemPair
	err := row.Scan(
		&i.ID,
		&i.Item1,
		&i.Item2,
		&i.Count,
		&i.LastSeen,
	)
	return i, err
}

const insertItemPair = `INSERT INTO item_pairs (id, item1, item2, count, last_seen)
VALUES (?, ?, ?, ?, ?)`

type InsertItemPairParams struct {
	ID       string
	Item1    string
	Item2    string
	Count    int64
	LastSeen int64
}

func (q *Queries) InsertItemPair(ctx context.Context, arg InsertItemPairParams) error {
	_, err := q.db.ExecContext(ctx, insertItemPair,
		arg.ID,
		arg.Item1,
		arg.Item2,
		arg.Count,
		arg.LastSeen,
	)
	return err
}

const importItemPair = `INSERT INTO item_pairs (id, item1, item2, count, last_seen)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT DO NOTHING`

type ImportItemPairParams struct {
	ID       string
	Item1    string
	Item2    string
	Count    int64
	LastSeen int64
}

func (q *Queries) ImportItemPair(ctx context.Context, arg ImportItemPairParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, importItemPair,
		arg.ID,
		arg.Item1,
		arg.Item2,
		arg.Count,
		arg.LastSeen,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const updateItemPairCount = `UPDATE item_pairs SET count = ?, last_seen = ? WHERE id = ?`

type UpdateItemPairCountParams struct {
	Count    int64
	LastSeen int64
	ID       string
}

func (q *Queries) UpdateItemPairCount(ctx context.Context, arg UpdateItemPairCountParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateItemPairCount, arg.Count, arg.LastSeen, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
