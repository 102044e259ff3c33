package suggest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basket-md/basket/internal/shopping"
)

func TestTrackPairsCreatesThenIncrements(t *testing.T) {
	store := newMemoryStore()
	store.checked["list-1"] = items("Milk", "eggs ", "Bread")
	engine, _ := newTestEngine(t, store)
	ctx := context.Background()

	written, err := engine.TrackPairs(ctx, "list-1")
	require.NoError(t, err)
	assert.Equal(t, 3, written)
	require.Len(t, store.pairs, 3)
	for _, key := range [][2]string{{"bread", "eggs"}, {"bread", "milk"}, {"eggs", "milk"}} {
		pair := store.pair(key[0], key[1])
		require.NotNil(t, pair, "missing pair %v", key)
		assert.Equal(t, 1, pair.Count)
		assert.True(t, pair.LastSeen.Equal(testNow))
	}

	assert.Equal(t, 3, engine.TrackItemPairs(ctx, "list-1"))
	require.Len(t, store.pairs, 3)
	for _, pair := range store.pairs {
		assert.Equal(t, 2, pair.Count, "pair (%s, %s)", pair.Item1, pair.Item2)
	}
}

func TestTrackPairsNeedsTwoCheckedItems(t *testing.T) {
	store := newMemoryStore()
	store.checked["list-1"] = items("milk")
	engine, _ := newTestEngine(t, store)

	written, err := engine.TrackPairs(context.Background(), "list-1")
	require.NoError(t, err)
	assert.Zero(t, written)
	assert.Empty(t, store.pairs)
}

func TestTrackPairsSkipsSelfPairs(t *testing.T) {
	store := newMemoryStore()
	store.checked["list-1"] = items("Milk", "milk ", "eggs")
	engine, _ := newTestEngine(t, store)

	written, err := engine.TrackPairs(context.Background(), "list-1")
	require.NoError(t, err)
	assert.Equal(t, 2, written)
	require.Len(t, store.pairs, 1)
	assert.Equal(t, 2, store.pairs[0].Count, "both milk entries pair with eggs")
}

func TestTrackItemPairsSwallowsFailures(t *testing.T) {
	store := newMemoryStore()
	store.checked["list-1"] = items("milk", "eggs")
	store.failPairs = errors.New("read only")
	engine, logs := newTestEngine(t, store)

	assert.Zero(t, engine.TrackItemPairs(context.Background(), "list-1"))
	assert.Contains(t, logs.String(), "tracking item pairs")

	_, err := engine.TrackPairs(context.Background(), "list-1")
	assert.ErrorIs(t, err, store.failPairs)
}

func TestTrackItemPairsReportsPartialWrites(t *testing.T) {
	store := newMemoryStore()
	store.checked["list-1"] = items("milk", "eggs", "bread")
	store.maxPairs = 2
	engine, logs := newTestEngine(t, store)

	assert.Equal(t, 2, engine.TrackItemPairs(context.Background(), "list-1"))
	assert.Len(t, store.pairs, 2)
	assert.Contains(t, logs.String(), "written=2")
	assert.Contains(t, logs.String(), "pair store full")
}

func TestMarkStaplePurchased(t *testing.T) {
	store := newMemoryStore()
	store.staples["s1"] = shopping.Staple{ID: "s1", Name: "milk", Frequency: shopping.FrequencyWeekly}
	engine, _ := newTestEngine(t, store)
	ctx := context.Background()

	updated, err := engine.MarkStaplePurchased(ctx, "  MILK ")
	require.NoError(t, err)
	assert.True(t, updated)
	require.NotNil(t, store.staples["s1"].LastPurchased)
	assert.True(t, store.staples["s1"].LastPurchased.Equal(testNow))

	updated, err = engine.MarkStaplePurchased(ctx, "bread")
	require.NoError(t, err)
	assert.False(t, updated)

	due, _ := CheckStaple(store.staples["s1"], testNow)
	assert.False(t, due, "a staple bought just now is not due")
}

func TestUpdateStaplePurchasedSwallowsFailures(t *testing.T) {
	store := newMemoryStore()
	store.failStaples = errors.New("locked")
	engine, logs := newTestEngine(t, store)

	assert.False(t, engine.UpdateStaplePurchased(context.Background(), "milk"))
	assert.Contains(t, logs.String(), "updating staple purchase")
}
