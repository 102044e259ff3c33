package suggest

import (
	"context"
	"time"

	"github.com/basket-md/basket/internal/shopping"
)

// Finders return (nil, nil) when no record matches.

type StapleStore interface {
	ListStaples(ctx context.Context) ([]shopping.Staple, error)
	FindStapleByID(ctx context.Context, id string) (*shopping.Staple, error)
	// FindStapleByName matches the stored normalized name exactly.
	FindStapleByName(ctx context.Context, name string) (*shopping.Staple, error)
	InsertStaple(ctx context.Context, staple shopping.Staple) error
	UpdateStaple(ctx context.Context, id string, update shopping.StapleUpdate) (bool, error)
	SetStapleLastPurchased(ctx context.Context, id string, at time.Time) (bool, error)
	DeleteStaple(ctx context.Context, id string) (bool, error)
}

type RecentItemStore interface {
	// TopRecentItems orders by use count, then last use, then ID.
	TopRecentItems(ctx context.Context, limit int) ([]shopping.RecentItem, error)
	// FindRecentItemByName matches case-insensitively.
	FindRecentItemByName(ctx context.Context, name string) (*shopping.RecentItem, error)
}

type PairStore interface {
	ListItemPairs(ctx context.Context) ([]shopping.ItemPair, error)
	FindItemPair(ctx context.Context, item1, item2 string) (*shopping.ItemPair, error)
	InsertItemPair(ctx context.Context, pair shopping.ItemPair) error
	UpdateItemPairCount(ctx context.Context, id string, count int, lastSeen time.Time) error
}

type ItemReader interface {
	CheckedItems(ctx context.Context, listID string) ([]shopping.Item, error)
}

// Store is everything the engine reads and writes.
type Store interface {
	StapleStore
	RecentItemStore
	PairStore
	ItemReader
}
