package database

import (
	"time"

	sqldb "github.com/basket-md/basket/internal/database/sqlc"
	"github.com/basket-md/basket/internal/shopping"
)

// StapleFromRow converts a staples row to the shared record type.
func StapleFromRow(row sqldb.Staple) shopping.Staple {
	return shopping.Staple{
		ID:            row.ID,
		Name:          row.Name,
		DepartmentID:  row.DepartmentID,
		Frequency:     shopping.Frequency(row.Frequency),
		LastPurchased: optionalTime(row.LastPurchased),
		CreatedAt:     fromMillis(row.CreatedAt),
	}
}

// StapleInsertParams builds insert parameters. Name and frequency are stored
// as given; callers normalize and validate them first.
func StapleInsertParams(s shopping.Staple) sqldb.InsertStapleParams {
	return sqldb.InsertStapleParams{
		ID:            s.ID,
		Name:          s.Name,
		DepartmentID:  s.DepartmentID,
		Frequency:     string(s.Frequency),
		LastPurchased: timePtrToNullInt64(s.LastPurchased),
		CreatedAt:     toMillis(s.CreatedAt),
	}
}

// StapleUpdateParams maps a partial update onto the COALESCE-based query.
func StapleUpdateParams(id string, update shopping.StapleUpdate) sqldb.UpdateStapleParams {
	params := sqldb.UpdateStapleParams{
		Name:         stringPtrToNullString(update.Name),
		DepartmentID: stringPtrToNullString(update.DepartmentID),
		ID:           id,
	}
	if update.Frequency != nil {
		freq := string(*update.Frequency)
		params.Frequency = stringPtrToNullString(&freq)
	}
	return params
}

func RecentItemFromRow(row sqldb.RecentItem) shopping.RecentItem {
	return shopping.RecentItem{
		ID:           row.ID,
		Name:         row.Name,
		DepartmentID: row.DepartmentID,
		UseCount:     int(row.UseCount),
		LastUsedAt:   fromMillis(row.LastUsedAt),
	}
}

func ItemPairFromRow(row sqldb.ItemPair) shopping.ItemPair {
	return shopping.ItemPair{
		ID:       row.ID,
		Item1:    row.Item1,
		Item2:    row.Item2,
		Count:    int(row.Count),
		LastSeen: fromMillis(row.LastSeen),
	}
}

func ItemFromRow(row sqldb.Item) shopping.Item {
	return shopping.Item{
		ID:           row.ID,
		ListID:       row.ListID,
		Name:         row.Name,
		DepartmentID: row.DepartmentID,
		IsChecked:    row.IsChecked != 0,
		CheckedAt:    optionalTime(row.CheckedAt),
		CreatedAt:    fromMillis(row.CreatedAt),
	}
}

// ItemInsertParams builds insert parameters for an item row.
func ItemInsertParams(item shopping.Item) sqldb.InsertItemParams {
	return sqldb.InsertItemParams{
		ID:           item.ID,
		ListID:       item.ListID,
		Name:         item.Name,
		DepartmentID: item.DepartmentID,
		IsChecked:    boolToInt64(item.IsChecked),
		CheckedAt:    timePtrToNullInt64(item.CheckedAt),
		CreatedAt:    toMillis(item.CreatedAt),
	}
}

func ListFromRow(row sqldb.ShoppingList) shopping.List {
	return shopping.List{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: fromMillis(row.CreatedAt),
		UpdatedAt: fromMillis(row.UpdatedAt),
	}
}

func itemsFromRows(rows []sqldb.Item) []shopping.Item {
	result := make([]shopping.Item, 0, len(rows))
	for _, row := range rows {
		result = append(result, ItemFromRow(row))
	}
	return result
}

func ListInsertParams(list shopping.List) sqldb.InsertListParams {
	return sqldb.InsertListParams{
		ID:        list.ID,
		Name:      list.Name,
		CreatedAt: toMillis(list.CreatedAt),
		UpdatedAt: toMillis(list.UpdatedAt),
	}
}

func TouchListParams(listID string, at time.Time) sqldb.TouchListParams {
	return sqldb.TouchListParams{UpdatedAt: toMillis(at), ID: listID}
}

// ItemCheckedParams sets or clears the checked flag. CheckedAt is cleared
// when the item is unchecked.
func ItemCheckedParams(itemID string, checked bool, at time.Time) sqldb.SetItemCheckedParams {
	params := sqldb.SetItemCheckedParams{IsChecked: boolToInt64(checked), ID: itemID}
	if checked {
		params.CheckedAt = timePtrToNullInt64(&at)
	}
	return params
}

// RecentItemUpsertParams records one more use of a normalized name.
func RecentItemUpsertParams(id, name, departmentID string, at time.Time) sqldb.UpsertRecentItemParams {
	return sqldb.UpsertRecentItemParams{
		ID:           id,
		Name:         name,
		DepartmentID: departmentID,
		LastUsedAt:   toMillis(at),
	}
}

func DepartmentFromRow(row sqldb.Department) shopping.Department {
	return shopping.Department{
		ID:        row.ID,
		Name:      row.Name,
		Icon:      row.Icon,
		Color:     row.Color,
		SortOrder: int(row.SortOrder),
		IsDefault: row.IsDefault != 0,
	}
}

func DepartmentImportParams(d shopping.Department) sqldb.ImportDepartmentParams {
	return sqldb.ImportDepartmentParams{
		ID:        d.ID,
		Name:      d.Name,
		Icon:      d.Icon,
		Color:     d.Color,
		SortOrder: int64(d.SortOrder),
		IsDefault: boolToInt64(d.IsDefault),
	}
}
