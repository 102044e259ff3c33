// Package application implements the workflows that span several services,
// such as exporting and restoring a full snapshot of the store.
package application

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/basket-md/basket/internal/backup"
	"github.com/basket-md/basket/internal/database"
	sqldb "github.com/basket-md/basket/internal/database/sqlc"
	"github.com/basket-md/basket/internal/shopping"
)

// SnapshotVersion is written into every export and is the only version
// accepted on import.
const SnapshotVersion = "1"

var (
	ErrUnsupportedSnapshot = errors.New("unsupported snapshot version")
	ErrHashMismatch        = errors.New("snapshot hash mismatch")
)

// Snapshot is the JSON backup format. Timestamps are Unix milliseconds.
type Snapshot struct {
	Version       string               `json:"version"`
	ExportedAt    time.Time            `json:"exportedAt"`
	Departments   []SnapshotDepartment `json:"departments"`
	ShoppingLists []SnapshotList       `json:"shoppingLists"`
	Items         []SnapshotItem       `json:"items"`
	RecentItems   []SnapshotRecentItem `json:"recentItems"`
	Staples       []SnapshotStaple     `json:"staples"`
	ItemPairs     []SnapshotItemPair   `json:"itemPairs"`
}

type SnapshotDepartment struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	SortOrder int64  `json:"sortOrder"`
	IsDefault bool   `json:"isDefault"`
}

type SnapshotList struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

type SnapshotItem struct {
	ID           string `json:"id"`
	ListID       string `json:"listId"`
	Name         string `json:"name"`
	DepartmentID string `json:"departmentId"`
	IsChecked    bool   `json:"isChecked"`
	CheckedAt    *int64 `json:"checkedAt"`
	CreatedAt    int64  `json:"createdAt"`
}

type SnapshotRecentItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DepartmentID string `json:"departmentId"`
	UseCount     int64  `json:"useCount"`
	LastUsedAt   int64  `json:"lastUsedAt"`
}

type SnapshotStaple struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DepartmentID  string `json:"departmentId"`
	Frequency     string `json:"frequency"`
	LastPurchased *int64 `json:"lastPurchased,omitempty"`
	CreatedAt     int64  `json:"createdAt"`
}

type SnapshotItemPair struct {
	ID       string `json:"id"`
	Item1    string `json:"item1"`
	Item2    string `json:"item2"`
	Count    int64  `json:"count"`
	LastSeen int64  `json:"lastSeen"`
}

// ImportResult counts the records that were actually inserted. SkippedItems
// counts items dropped because their list is neither in the snapshot nor in
// the store.
type ImportResult struct {
	Departments  int64
	Lists        int64
	Items        int64
	RecentItems  int64
	Staples      int64
	ItemPairs    int64
	SkippedItems int64
}

func (r ImportResult) Total() int64 {
	return r.Departments + r.Lists + r.Items + r.RecentItems + r.Staples + r.ItemPairs
}

// ExportSnapshot reads every table inside one read transaction.
func ExportSnapshot(ctx context.Context, dbCtx *database.Context, at time.Time) (*Snapshot, error) {
	if dbCtx == nil || dbCtx.DB == nil {
		return nil, fmt.Errorf("export: missing database context")
	}

	tx, err := dbCtx.DB.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()
	q := sqldb.New(tx)

	snap := &Snapshot{Version: SnapshotVersion, ExportedAt: at.UTC()}

	departments, err := q.ListDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("export departments: %w", err)
	}
	for _, row := range departments {
		snap.Departments = append(snap.Departments, SnapshotDepartment{
			ID:        row.ID,
			Name:      row.Name,
			Icon:      row.Icon,
			Color:     row.Color,
			SortOrder: row.SortOrder,
			IsDefault: row.IsDefault != 0,
		})
	}

	lists, err := q.ListLists(ctx)
	if err != nil {
		return nil, fmt.Errorf("export lists: %w", err)
	}
	for _, row := range lists {
		snap.ShoppingLists = append(snap.ShoppingLists, SnapshotList(row))
	}

	items, err := q.ListAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("export items: %w", err)
	}
	for _, row := range items {
		snap.Items = append(snap.Items, SnapshotItem{
			ID:           row.ID,
			ListID:       row.ListID,
			Name:         row.Name,
			DepartmentID: row.DepartmentID,
			IsChecked:    row.IsChecked != 0,
			CheckedAt:    nullInt64Ptr(row.CheckedAt),
			CreatedAt:    row.CreatedAt,
		})
	}

	recent, err := q.ListRecentItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("export recent items: %w", err)
	}
	for _, row := range recent {
		snap.RecentItems = append(snap.RecentItems, SnapshotRecentItem(row))
	}

	staples, err := q.ListStaples(ctx)
	if err != nil {
		return nil, fmt.Errorf("export staples: %w", err)
	}
	for _, row := range staples {
		snap.Staples = append(snap.Staples, SnapshotStaple{
			ID:            row.ID,
			Name:          row.Name,
			DepartmentID:  row.DepartmentID,
			Frequency:     row.Frequency,
			LastPurchased: nullInt64Ptr(row.LastPurchased),
			CreatedAt:     row.CreatedAt,
		})
	}

	pairs, err := q.ListItemPairs(ctx)
	if err != nil {
		return nil, fmt.Errorf("export item pairs: %w", err)
	}
	for _, row := range pairs {
		snap.ItemPairs = append(snap.ItemPairs, SnapshotItemPair(row))
	}

	return snap, nil
}

func EncodeSnapshot(snap *Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSnapshot, snap.Version)
	}
	return &snap, nil
}

// WriteBackup exports the store and saves it to path (or the backups
// directory when path is empty). It returns the file path and its hash.
func WriteBackup(ctx context.Context, dbCtx *database.Context, path string, at time.Time) (string, string, error) {
	snap, err := ExportSnapshot(ctx, dbCtx, at)
	if err != nil {
		return "", "", err
	}
	content, err := EncodeSnapshot(snap)
	if err != nil {
		return "", "", err
	}
	return backup.Save(path, content, at)
}

// RestoreBackup reads a snapshot file, checks it against expectedHash when
// one is given, and imports it.
func RestoreBackup(ctx context.Context, dbCtx *database.Context, path, expectedHash string, replace bool) (ImportResult, error) {
	if expectedHash != "" {
		ok, err := backup.VerifyFile(path, expectedHash)
		if err != nil {
			return ImportResult{}, err
		}
		if !ok {
			return ImportResult{}, fmt.Errorf("%w: %s", ErrHashMismatch, path)
		}
	}

	content, err := backup.ReadFile(path)
	if err != nil {
		return ImportResult{}, err
	}
	snap, err := DecodeSnapshot(content)
	if err != nil {
		return ImportResult{}, err
	}
	return ImportSnapshot(ctx, dbCtx, snap, replace)
}

// ImportSnapshot merges snap into the store in one transaction. Records whose
// ID or unique name already exists are skipped, as are items whose list
// cannot be found. With replace set, every table is cleared first and the
// default departments are restored if the snapshot carries none.
func ImportSnapshot(ctx context.Context, dbCtx *database.Context, snap *Snapshot, replace bool) (ImportResult, error) {
	if dbCtx == nil || dbCtx.DB == nil {
		return ImportResult{}, fmt.Errorf("import: missing database context")
	}
	if snap == nil || snap.Version != SnapshotVersion {
		return ImportResult{}, ErrUnsupportedSnapshot
	}

	tx, err := dbCtx.DB.BeginTx(ctx, nil)
	if err != nil {
		return ImportResult{}, err
	}
	q := sqldb.New(tx)

	result, err := importRecords(ctx, q, snap, replace)
	if err != nil {
		_ = tx.Rollback()
		return ImportResult{}, err
	}
	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return ImportResult{}, err
	}
	return result, nil
}

func importRecords(ctx context.Context, q *sqldb.Queries, snap *Snapshot, replace bool) (ImportResult, error) {
	var result ImportResult

	if replace {
		if err := database.ClearTables(ctx, q); err != nil {
			return result, err
		}
	}

	for _, d := range snap.Departments {
		if d.ID == "" || d.Name == "" {
			continue
		}
		n, err := q.ImportDepartment(ctx, sqldb.ImportDepartmentParams{
			ID:        d.ID,
			Name:      d.Name,
			Icon:      d.Icon,
			Color:     d.Color,
			SortOrder: d.SortOrder,
			IsDefault: boolToInt64(d.IsDefault),
		})
		if err != nil {
			return result, fmt.Errorf("import department %s: %w", d.ID, err)
		}
		result.Departments += n
	}
	if replace {
		if _, err := database.SeedDefaultDepartments(ctx, q); err != nil {
			return result, err
		}
	}

	knownLists := make(map[string]bool, len(snap.ShoppingLists))
	for _, list := range snap.ShoppingLists {
		n, err := q.ImportList(ctx, sqldb.ImportListParams(list))
		if err != nil {
			return result, fmt.Errorf("import list %s: %w", list.ID, err)
		}
		result.Lists += n
		knownLists[list.ID] = true
	}

	for _, item := range snap.Items {
		exists, err := listExists(ctx, q, knownLists, item.ListID)
		if err != nil {
			return result, fmt.Errorf("import item %s: %w", item.ID, err)
		}
		if !exists {
			result.SkippedItems++
			continue
		}
		n, err := q.ImportItem(ctx, sqldb.ImportItemParams{
			ID:           item.ID,
			ListID:       item.ListID,
			Name:         item.Name,
			DepartmentID: item.DepartmentID,
			IsChecked:    boolToInt64(item.IsChecked),
			CheckedAt:    int64PtrToNull(item.CheckedAt),
			CreatedAt:    item.CreatedAt,
		})
		if err != nil {
			return result, fmt.Errorf("import item %s: %w", item.ID, err)
		}
		result.Items += n
	}

	for _, recent := range snap.RecentItems {
		name := shopping.NormalizeName(recent.Name)
		if name == "" || recent.UseCount < 1 {
			continue
		}
		n, err := q.ImportRecentItem(ctx, sqldb.ImportRecentItemParams{
			ID:           recent.ID,
			Name:         name,
			DepartmentID: recent.DepartmentID,
			UseCount:     recent.UseCount,
			LastUsedAt:   recent.LastUsedAt,
		})
		if err != nil {
			return result, fmt.Errorf("import recent item %s: %w", recent.ID, err)
		}
		result.RecentItems += n
	}

	for _, staple := range snap.Staples {
		name := shopping.NormalizeName(staple.Name)
		frequency, err := shopping.ParseFrequency(staple.Frequency)
		if err != nil {
			return result, fmt.Errorf("import staple %s: %w", staple.ID, err)
		}
		if name == "" {
			continue
		}
		n, err := q.ImportStaple(ctx, sqldb.ImportStapleParams{
			ID:            staple.ID,
			Name:          name,
			DepartmentID:  staple.DepartmentID,
			Frequency:     string(frequency),
			LastPurchased: int64PtrToNull(staple.LastPurchased),
			CreatedAt:     staple.CreatedAt,
		})
		if err != nil {
			return result, fmt.Errorf("import staple %s: %w", staple.ID, err)
		}
		result.Staples += n
	}

	for _, pair := range snap.ItemPairs {
		item1, item2 := shopping.OrderPair(pair.Item1, pair.Item2)
		if item1 == "" || item1 == item2 || pair.Count < 1 {
			continue
		}
		n, err := q.ImportItemPair(ctx, sqldb.ImportItemPairParams{
			ID:       pair.ID,
			Item1:    item1,
			Item2:    item2,
			Count:    pair.Count,
			LastSeen: pair.LastSeen,
		})
		if err != nil {
			return result, fmt.Errorf("import item pair %s: %w", pair.ID, err)
		}
		result.ItemPairs += n
	}

	return result, nil
}

// listExists consults known first and caches store lookups in it.
func listExists(ctx context.Context, q *sqldb.Queries, known map[string]bool, listID string) (bool, error) {
	if exists, ok := known[listID]; ok {
		return exists, nil
	}
	_, err := q.FindListByID(ctx, listID)
	switch {
	case err == nil:
		known[listID] = true
	case errors.Is(err, sql.ErrNoRows):
		known[listID] = false
	default:
		return false, err
	}
	return known[listID], nil
}

func nullInt64Ptr(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	v := ni.Int64
	return &v
}

func int64PtrToNull(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func boolToInt64(value bool) int64 {
	if value {
		return 1
	}
	return 0
}
