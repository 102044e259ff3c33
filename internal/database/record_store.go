package database

import (
	"context"
	"time"

	"github.com/basket-md/basket/internal/shopping"
	"github.com/basket-md/basket/internal/suggest"
)

var _ suggest.Store = (*RecordStore)(nil)

// RecordStore is the SQLite-backed suggest.Store. Each call runs as its own
// statement against the shared connection pool.
type RecordStore struct {
	staples *StapleRepository
	recent  *RecentItemRepository
	pairs   *ItemPairRepository
	items   *ItemRepository
}

func NewRecordStore(dbCtx *Context) *RecordStore {
	return &RecordStore{
		staples: NewStapleRepository(dbCtx),
		recent:  NewRecentItemRepository(dbCtx),
		pairs:   NewItemPairRepository(dbCtx),
		items:   NewItemRepository(dbCtx),
	}
}

func (s *RecordStore) ListStaples(ctx context.Context) ([]shopping.Staple, error) {
	return s.staples.FindAll(ctx)
}

func (s *RecordStore) FindStapleByID(ctx context.Context, id string) (*shopping.Staple, error) {
	return s.staples.FindByID(ctx, id)
}

func (s *RecordStore) FindStapleByName(ctx context.Context, name string) (*shopping.Staple, error) {
	return s.staples.FindByName(ctx, name)
}

func (s *RecordStore) InsertStaple(ctx context.Context, staple shopping.Staple) error {
	return s.staples.Create(ctx, staple)
}

func (s *RecordStore) UpdateStaple(ctx context.Context, id string, update shopping.StapleUpdate) (bool, error) {
	return s.staples.Update(ctx, id, update)
}

func (s *RecordStore) SetStapleLastPurchased(ctx context.Context, id string, at time.Time) (bool, error) {
	return s.staples.SetLastPurchased(ctx, id, at)
}

func (s *RecordStore) DeleteStaple(ctx context.Context, id string) (bool, error) {
	return s.staples.Delete(ctx, id)
}

func (s *RecordStore) TopRecentItems(ctx context.Context, limit int) ([]shopping.RecentItem, error) {
	return s.recent.Top(ctx, limit)
}

func (s *RecordStore) FindRecentItemByName(ctx context.Context, name string) (*shopping.RecentItem, error) {
	return s.recent.FindByName(ctx, name)
}

func (s *RecordStore) ListItemPairs(ctx context.Context) ([]shopping.ItemPair, error) {
	return s.pairs.FindAll(ctx)
}

func (s *RecordStore) FindItemPair(ctx context.Context, item1, item2 string) (*shopping.ItemPair, error) {
	return s.pairs.Find(ctx, item1, item2)
}

func (s *RecordStore) InsertItemPair(ctx context.Context, pair shopping.ItemPair) error {
	return s.pairs.Create(ctx, pair)
}

func (s *RecordStore) UpdateItemPairCount(ctx context.Context, id string, count int, lastSeen time.Time) error {
	_, err := s.pairs.UpdateCount(ctx, id, count, lastSeen)
	return err
}

func (s *RecordStore) CheckedItems(ctx context.Context, listID string) ([]shopping.Item, error) {
	return s.items.FindChecked(ctx, listID)
}
