package sqldb

import "database/sql"

type Department struct {
	ID        string
	Name      string
	Icon      string
	Color     string
	SortOrder int64
	IsDefault int64
}

type Item struct {
	ID           string
	ListID       string
	Name         string
	DepartmentID string
	IsChecked    int64
	CheckedAt    sql.NullInt64
	CreatedAt    int64
}

type ItemPair struct {
	ID       string
	Item1    string
	Item2    string
	Count    int64
	LastSeen int64
}

type RecentItem struct {
	ID           string
	Name         string
	DepartmentID string
	UseCount     int64
	LastUsedAt   int64
}

type ShoppingList struct {
	ID        string
	Name      string
	CreatedAt int64
	UpdatedAt int64
}

type Staple struct {
	ID            string
	Name          string
	DepartmentID  string
	Frequency     string
	LastPurchased sql.NullInt64
	CreatedAt     int64
}
