package sqldb

import "context"

const deleteAllItemPairs = `DELETE FROM item_pairs`

func (q *Queries) DeleteAllItemPairs(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllItemPairs)
	return err
}

const deleteAllStaples = `DELETE FROM staples`

func (q *Queries) DeleteAllStaples(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllStaples)
	return err
}

const deleteAllRecentItems = `DELETE FROM recent_items`

func (q *Queries) DeleteAllRecentItems(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllRecentItems)
	return err
}

const deleteAllItems = `DELETE FROM items`

func (q *Queries) DeleteAllItems(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllItems)
	return err
}

const deleteAllLists = `DELETE FROM shopping_lists`

func (q *Queries) DeleteAllLists(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllLists)
	return err
}

const deleteAllDepartments = `DELETE FROM departments`

func (q *Queries) DeleteAllDepartments(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, deleteAllDepartments)
	return err
}
