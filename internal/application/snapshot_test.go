package application

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basket-md/basket/internal/database"
	"github.com/basket-md/basket/internal/services"
	"github.com/basket-md/basket/internal/shopping"
	"github.com/basket-md/basket/internal/suggest"
)

func newTestDB(t *testing.T) *database.Context {
	t.Helper()
	dbCtx, err := database.CreateDatabase(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, database.CloseDatabase(dbCtx))
	})
	return dbCtx
}

// seed fills a store with one list, two checked items, a staple and the
// ledger rows those writes produce.
func seed(t *testing.T, dbCtx *database.Context) {
	t.Helper()
	ctx := context.Background()

	list, err := services.NewListService(dbCtx).Create(ctx, "Weekly shop")
	require.NoError(t, err)

	items := services.NewItemService(dbCtx)
	for _, name := range []string{"Milk", "Eggs"} {
		item, err := items.Add(ctx, list.ID, name, "dairy-eggs")
		require.NoError(t, err)
		_, err = items.SetChecked(ctx, item.ID, true)
		require.NoError(t, err)
	}

	engine := suggest.New(database.NewRecordStore(dbCtx))
	_, err = engine.AddStaple(ctx, "Coffee", "beverages", shopping.FrequencyWeekly)
	require.NoError(t, err)
	require.True(t, engine.UpdateStaplePurchased(ctx, "coffee"))
	_, err = engine.TrackPairs(ctx, list.ID)
	require.NoError(t, err)
}

func TestExportSnapshot(t *testing.T) {
	dbCtx := newTestDB(t)
	seed(t, dbCtx)

	at := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	snap, err := ExportSnapshot(context.Background(), dbCtx, at)
	require.NoError(t, err)

	assert.Equal(t, SnapshotVersion, snap.Version)
	assert.True(t, snap.ExportedAt.Equal(at))
	require.Len(t, snap.Departments, len(shopping.DefaultDepartments))
	assert.Equal(t, SnapshotDepartment{ID: "produce", Name: "Produce", Icon: "🥬", Color: "#10B981", SortOrder: 0, IsDefault: true}, snap.Departments[0])
	assert.Len(t, snap.ShoppingLists, 1)
	assert.Len(t, snap.Items, 2)
	assert.Len(t, snap.RecentItems, 2)
	require.Len(t, snap.Staples, 1)
	assert.NotNil(t, snap.Staples[0].LastPurchased)
	require.Len(t, snap.ItemPairs, 1)
	assert.Equal(t, "eggs", snap.ItemPairs[0].Item1)
	assert.Equal(t, "milk", snap.ItemPairs[0].Item2)
	for _, item := range snap.Items {
		assert.True(t, item.IsChecked)
		assert.NotNil(t, item.CheckedAt)
	}
}

func TestSnapshotRoundTripIntoEmptyStore(t *testing.T) {
	ctx := context.Background()
	source := newTestDB(t)
	seed(t, source)

	snap, err := ExportSnapshot(ctx, source, time.Now())
	require.NoError(t, err)
	content, err := EncodeSnapshot(snap)
	require.NoError(t, err)
	decoded, err := DecodeSnapshot(content)
	require.NoError(t, err)

	target := newTestDB(t)
	result, err := ImportSnapshot(ctx, target, decoded, false)
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Lists: 1, Items: 2, RecentItems: 2, Staples: 1, ItemPairs: 1}, result)

	again, err := ImportSnapshot(ctx, target, decoded, false)
	require.NoError(t, err)
	assert.Zero(t, again.Total(), "merging the same snapshot twice inserts nothing")

	reexported, err := ExportSnapshot(ctx, target, snap.ExportedAt)
	require.NoError(t, err)
	assert.Equal(t, snap.Staples, reexported.Staples)
	assert.Equal(t, snap.ItemPairs, reexported.ItemPairs)
	assert.Equal(t, snap.Items, reexported.Items)
}

func TestImportSnapshotMergeSkipsExistingNames(t *testing.T) {
	ctx := context.Background()
	dbCtx := newTestDB(t)

	engine := suggest.New(database.NewRecordStore(dbCtx))
	_, err := engine.AddStaple(ctx, "coffee", "", shopping.FrequencyAlways)
	require.NoError(t, err)

	snap := &Snapshot{
		Version: SnapshotVersion,
		Staples: []SnapshotStaple{
			{ID: "other-id", Name: " Coffee ", Frequency: "weekly"},
			{ID: "tea-id", Name: "Tea", Frequency: "Monthly"},
		},
		ItemPairs: []SnapshotItemPair{
			{ID: "p1", Item1: "Milk", Item2: "eggs", Count: 4},
			{ID: "p2", Item1: "milk", Item2: "MILK", Count: 4},
		},
	}

	result, err := ImportSnapshot(ctx, dbCtx, snap, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Staples)
	assert.Equal(t, int64(1), result.ItemPairs)

	staples, err := engine.ListStaples(ctx)
	require.NoError(t, err)
	require.Len(t, staples, 2)
	assert.Equal(t, "coffee", staples[0].Name)
	assert.Equal(t, shopping.FrequencyAlways, staples[0].Frequency)
	assert.Equal(t, "tea", staples[1].Name)
}

func TestImportSnapshotReplace(t *testing.T) {
	ctx := context.Background()
	dbCtx := newTestDB(t)
	seed(t, dbCtx)

	snap := &Snapshot{
		Version: SnapshotVersion,
		Staples: []SnapshotStaple{{ID: "s1", Name: "rice", Frequency: "monthly"}},
	}
	_, err := ImportSnapshot(ctx, dbCtx, snap, true)
	require.NoError(t, err)

	exported, err := ExportSnapshot(ctx, dbCtx, time.Now())
	require.NoError(t, err)
	assert.Empty(t, exported.ShoppingLists)
	assert.Empty(t, exported.ItemPairs)
	require.Len(t, exported.Staples, 1)
	assert.Equal(t, "rice", exported.Staples[0].Name)
	assert.Len(t, exported.Departments, len(shopping.DefaultDepartments), "defaults are restored when the snapshot has none")
}

func TestImportSnapshotReplaceKeepsSnapshotDepartments(t *testing.T) {
	ctx := context.Background()
	dbCtx := newTestDB(t)

	snap := &Snapshot{
		Version: SnapshotVersion,
		Departments: []SnapshotDepartment{
			{ID: "deli", Name: "Deli", Icon: "🥪", Color: "#000000", SortOrder: 0},
		},
	}
	result, err := ImportSnapshot(ctx, dbCtx, snap, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Departments)

	departments, err := services.NewDepartmentService(dbCtx).GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, departments, 1)
	assert.Equal(t, "🥪 Deli", departments[0].Label())

	merged, err := ImportSnapshot(ctx, dbCtx, &Snapshot{
		Version:     SnapshotVersion,
		Departments: []SnapshotDepartment{{ID: "deli", Name: "Renamed"}, {ID: "bakery", Name: "Bakery"}},
	}, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), merged.Departments, "existing department IDs are kept")
}

func TestImportSnapshotSkipsItemsWithoutList(t *testing.T) {
	ctx := context.Background()
	dbCtx := newTestDB(t)

	existing, err := services.NewListService(dbCtx).Create(ctx, "Already here")
	require.NoError(t, err)

	snap := &Snapshot{
		Version:       SnapshotVersion,
		ShoppingLists: []SnapshotList{{ID: "l1", Name: "Imported"}},
		Items: []SnapshotItem{
			{ID: "i1", ListID: "l1", Name: "milk"},
			{ID: "i2", ListID: existing.ID, Name: "eggs"},
			{ID: "i3", ListID: "gone", Name: "bread"},
		},
		Staples: []SnapshotStaple{{ID: "s1", Name: "rice", Frequency: "monthly"}},
	}
	result, err := ImportSnapshot(ctx, dbCtx, snap, false)
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Lists: 1, Items: 2, Staples: 1, SkippedItems: 1}, result)
	assert.Equal(t, int64(4), result.Total())

	exported, err := ExportSnapshot(ctx, dbCtx, time.Now())
	require.NoError(t, err)
	assert.Len(t, exported.Items, 2)
	assert.Len(t, exported.Staples, 1)
}

func TestImportSnapshotRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	dbCtx := newTestDB(t)

	snap := &Snapshot{
		Version: SnapshotVersion,
		Staples: []SnapshotStaple{
			{ID: "s1", Name: "rice", Frequency: "monthly"},
			{ID: "s2", Name: "salt", Frequency: "yearly"},
		},
	}
	_, err := ImportSnapshot(ctx, dbCtx, snap, false)
	require.ErrorIs(t, err, shopping.ErrInvalidFrequency)

	staples, err := suggest.New(database.NewRecordStore(dbCtx)).ListStaples(ctx)
	require.NoError(t, err)
	assert.Empty(t, staples)
}

func TestDecodeSnapshotRejectsUnknownVersion(t *testing.T) {
	_, err := DecodeSnapshot([]byte(`{"version":"4.0.0"}`))
	assert.ErrorIs(t, err, ErrUnsupportedSnapshot)

	_, err = DecodeSnapshot([]byte(`not json`))
	assert.Error(t, err)
}

func TestWriteAndRestoreBackup(t *testing.T) {
	t.Setenv("BASKET_DIR", t.TempDir())
	ctx := context.Background()

	source := newTestDB(t)
	seed(t, source)

	path, hash, err := WriteBackup(ctx, source, "", time.Now())
	require.NoError(t, err)
	require.FileExists(t, path)

	target := newTestDB(t)
	result, err := RestoreBackup(ctx, target, path, hash, false)
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.Total())

	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1"}`), 0o600))
	_, err = RestoreBackup(ctx, target, path, hash, false)
	assert.True(t, errors.Is(err, ErrHashMismatch), "got %v", err)
}
