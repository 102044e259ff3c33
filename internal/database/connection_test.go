package database

import (
	"database/sql"
	"os"
	"testing"

	"github.com/basket-md/basket/internal/config"
)

func setupTestDB(t *testing.T) *Context {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("BASKET_DIR", tmp)

	ctx, err := CreateDatabase("")
	if err != nil {
		t.Fatalf("CreateDatabase returned error: %v", err)
	}

	t.Cleanup(func() {
		if err := CloseDatabase(ctx); err != nil {
			t.Fatalf("CloseDatabase error: %v", err)
		}
	})

	return ctx
}

func TestDatabaseCreationAndMigration(t *testing.T) {
	ctx := setupTestDB(t)

	dbPath := config.GetDBPath()
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("expected database file to exist at %s: %v", dbPath, err)
	}

	version, dirty, err := SchemaVersion(ctx)
	if err != nil {
		t.Fatalf("SchemaVersion returned error: %v", err)
	}
	if version != 3 || dirty {
		t.Fatalf("expected clean schema version 3, got %d (dirty=%v)", version, dirty)
	}

	tables := []string{"shopping_lists", "items", "recent_items", "staples", "item_pairs", "departments"}
	for _, table := range tables {
		if !tableExists(t, ctx.DB, table) {
			t.Fatalf("expected table %s to exist", table)
		}
	}
}

func TestCreateDatabaseIsIdempotent(t *testing.T) {
	first := setupTestDB(t)
	insertStapleRow(t, first.DB, "s1", "milk", "weekly")

	second, err := CreateDatabase("")
	if err != nil {
		t.Fatalf("reopening database failed: %v", err)
	}
	defer func() {
		_ = CloseDatabase(second)
	}()

	assertCount(t, second.DB, "staples", 1)
	assertCount(t, second.DB, "departments", 11)
}

func TestCreateDatabaseSeedsDefaultDepartments(t *testing.T) {
	ctx := setupTestDB(t)

	assertCount(t, ctx.DB, "departments", 11)

	var name, icon string
	if err := ctx.DB.QueryRow(`SELECT name, icon FROM departments WHERE sort_order = 0`).Scan(&name, &icon); err != nil {
		t.Fatalf("query first department failed: %v", err)
	}
	if name != "Produce" || icon != "🥬" {
		t.Fatalf("unexpected first department %q %q", icon, name)
	}
}

func TestInMemoryDatabase(t *testing.T) {
	ctx, err := CreateDatabase(":memory:")
	if err != nil {
		t.Fatalf("CreateDatabase returned error: %v", err)
	}
	defer func() {
		_ = CloseDatabase(ctx)
	}()

	if !tableExists(t, ctx.DB, "item_pairs") {
		t.Fatalf("expected migrations to run against the in-memory database")
	}
}

func TestClearDatabaseRemovesAllRows(t *testing.T) {
	ctx := setupTestDB(t)

	insertListRow(t, ctx.DB, "l1", "Weekly shop")
	insertItemRow(t, ctx.DB, "i1", "l1", "milk", true)
	insertStapleRow(t, ctx.DB, "s1", "milk", "weekly")
	insertPairRow(t, ctx.DB, "p1", "eggs", "milk", 2)
	if _, err := ctx.DB.Exec(`INSERT INTO recent_items(id, name, use_count, last_used_at) VALUES('r1', 'milk', 3, 0)`); err != nil {
		t.Fatalf("insert recent item failed: %v", err)
	}
	if _, err := ctx.DB.Exec(`DELETE FROM departments WHERE id = 'bakery'`); err != nil {
		t.Fatalf("delete department failed: %v", err)
	}
	if _, err := ctx.DB.Exec(`INSERT INTO departments(id, name, sort_order) VALUES('deli', 'Deli', 11)`); err != nil {
		t.Fatalf("insert department failed: %v", err)
	}

	if err := ClearDatabase(ctx); err != nil {
		t.Fatalf("ClearDatabase returned error: %v", err)
	}

	for _, table := range []string{"shopping_lists", "items", "recent_items", "staples", "item_pairs"} {
		assertCount(t, ctx.DB, table, 0)
	}

	assertCount(t, ctx.DB, "departments", 11)
	var custom int
	if err := ctx.DB.QueryRow(`SELECT COUNT(*) FROM departments WHERE id = 'deli'`).Scan(&custom); err != nil {
		t.Fatalf("count custom departments failed: %v", err)
	}
	if custom != 0 {
		t.Fatalf("expected custom department to be cleared")
	}
	var bakery int
	if err := ctx.DB.QueryRow(`SELECT COUNT(*) FROM departments WHERE id = 'bakery'`).Scan(&bakery); err != nil {
		t.Fatalf("count bakery failed: %v", err)
	}
	if bakery != 1 {
		t.Fatalf("expected bakery to be restored")
	}
}

func TestSchemaRejectsUnorderedPair(t *testing.T) {
	ctx := setupTestDB(t)

	_, err := ctx.DB.Exec(`INSERT INTO item_pairs(id, item1, item2, count, last_seen) VALUES('p1', 'milk', 'eggs', 1, 0)`)
	if err == nil {
		t.Fatalf("expected CHECK constraint to reject item1 > item2")
	}
}

func TestDeletingListCascadesItems(t *testing.T) {
	ctx := setupTestDB(t)

	insertListRow(t, ctx.DB, "l1", "Weekly shop")
	insertItemRow(t, ctx.DB, "i1", "l1", "milk", false)

	if _, err := ctx.DB.Exec(`DELETE FROM shopping_lists WHERE id = 'l1'`); err != nil {
		t.Fatalf("delete list failed: %v", err)
	}
	assertCount(t, ctx.DB, "items", 0)
}

func tableExists(t *testing.T, db *sql.DB, table string) bool {
	t.Helper()
	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		t.Fatalf("tableExists query failed for %s: %v", table, err)
	}
	return true
}

func insertListRow(t *testing.T, db *sql.DB, id, name string) {
	t.Helper()
	if _, err := db.Exec(`INSERT INTO shopping_lists(id, name, created_at, updated_at) VALUES(?, ?, 0, 0)`, id, name); err != nil {
		t.Fatalf("insertListRow failed: %v", err)
	}
}

func insertItemRow(t *testing.T, db *sql.DB, id, listID, name string, checked bool) {
	t.Helper()
	var checkedAt any
	if checked {
		checkedAt = int64(1000)
	}
	if _, err := db.Exec(`INSERT INTO items(id, list_id, name, is_checked, checked_at, created_at) VALUES(?, ?, ?, ?, ?, 0)`,
		id, listID, name, boolToInt64(checked), checkedAt); err != nil {
		t.Fatalf("insertItemRow failed: %v", err)
	}
}

func insertStapleRow(t *testing.T, db *sql.DB, id, name, frequency string) {
	t.Helper()
	if _, err := db.Exec(`INSERT INTO staples(id, name, frequency, created_at) VALUES(?, ?, ?, 0)`, id, name, frequency); err != nil {
		t.Fatalf("insertStapleRow failed: %v", err)
	}
}

func insertPairRow(t *testing.T, db *sql.DB, id, item1, item2 string, count int) {
	t.Helper()
	if _, err := db.Exec(`INSERT INTO item_pairs(id, item1, item2, count, last_seen) VALUES(?, ?, ?, ?, 0)`, id, item1, item2, count); err != nil {
		t.Fatalf("insertPairRow failed: %v", err)
	}
}

func assertCount(t *testing.T, db *sql.DB, table string, expected int) {
	t.Helper()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		t.Fatalf("count query failed for %s: %v", table, err)
	}
	if count != expected {
		t.Fatalf("expected %s to have %d rows, got %d", table, expected, count)
	}
}
