package database

import (
	"context"
	"testing"
	"time"

	"github.com/basket-md/basket/internal/shopping"
	"github.com/basket-md/basket/internal/suggest"
)

func TestRecordStoreDrivesEngine(t *testing.T) {
	ctx := context.Background()
	dbCtx := setupTestDB(t)
	store := NewRecordStore(dbCtx)

	now := time.UnixMilli(1_700_000_000_000)
	engine := suggest.New(store, suggest.WithClock(func() time.Time { return now }))

	if _, err := engine.AddStaple(ctx, "Coffee", "pantry", shopping.FrequencyAlways); err != nil {
		t.Fatalf("AddStaple returned error: %v", err)
	}
	if _, err := dbCtx.DB.Exec(`INSERT INTO recent_items(id, name, department_id, use_count, last_used_at) VALUES('r1', 'eggs', 'dairy', 2, ?)`, now.UnixMilli()); err != nil {
		t.Fatalf("insert recent item failed: %v", err)
	}
	insertPairRow(t, dbCtx.DB, "p1", "eggs", "milk", 3)

	suggestions, err := engine.Suggest(ctx, []shopping.Item{{Name: "Milk"}})
	if err != nil {
		t.Fatalf("Suggest returned error: %v", err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("expected staple and pair suggestions, got %#v", suggestions)
	}
	if suggestions[0].Name != "coffee" || suggestions[0].Reason != shopping.ReasonStaple {
		t.Fatalf("expected staple first, got %#v", suggestions[0])
	}
	pair := suggestions[1]
	if pair.Name != "eggs" || pair.Reason != shopping.ReasonPair || pair.Priority != 4 || pair.DepartmentID != "dairy" {
		t.Fatalf("unexpected pair suggestion: %#v", pair)
	}
}

func TestRecordStoreTracksPairs(t *testing.T) {
	ctx := context.Background()
	dbCtx := setupTestDB(t)
	store := NewRecordStore(dbCtx)
	engine := suggest.New(store)

	insertListRow(t, dbCtx.DB, "l1", "Weekly shop")
	insertItemRow(t, dbCtx.DB, "i1", "l1", "Milk", true)
	insertItemRow(t, dbCtx.DB, "i2", "l1", "Eggs", true)
	insertItemRow(t, dbCtx.DB, "i3", "l1", "Bread", true)

	written, err := engine.TrackPairs(ctx, "l1")
	if err != nil || written != 3 {
		t.Fatalf("TrackPairs returned (%d, %v)", written, err)
	}
	if written := engine.TrackItemPairs(ctx, "l1"); written != 3 {
		t.Fatalf("expected second call to write 3 pairs, got %d", written)
	}

	pairs, err := store.ListItemPairs(ctx)
	if err != nil {
		t.Fatalf("ListItemPairs returned error: %v", err)
	}
	if len(pairs) != 3 {
		t.Fatalf("expected 3 pairs, got %d", len(pairs))
	}
	for _, pair := range pairs {
		if pair.Count != 2 {
			t.Fatalf("expected count 2 after two calls, got %#v", pair)
		}
		if pair.Item1 >= pair.Item2 {
			t.Fatalf("expected ordered pair, got %#v", pair)
		}
	}
}
