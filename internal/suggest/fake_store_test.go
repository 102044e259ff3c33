package suggest

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/basket-md/basket/internal/shopping"
)

// memoryStore is an in-memory Store. The fail* fields inject errors into the
// matching group of methods. A positive maxPairs makes InsertItemPair fail
// once that many pairs are stored.
type memoryStore struct {
	mu      sync.Mutex
	staples map[string]shopping.Staple
	recent  []shopping.RecentItem
	pairs   []shopping.ItemPair
	checked map[string][]shopping.Item

	failStaples error
	failRecent  error
	failPairs   error
	failChecked error
	maxPairs    int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		staples: map[string]shopping.Staple{},
		checked: map[string][]shopping.Item{},
	}
}

func (s *memoryStore) ListStaples(_ context.Context) ([]shopping.Staple, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failStaples != nil {
		return nil, s.failStaples
	}
	result := make([]shopping.Staple, 0, len(s.staples))
	for _, staple := range s.staples {
		result = append(result, staple)
	}
	slices.SortFunc(result, func(a, b shopping.Staple) int { return cmp.Compare(a.Name, b.Name) })
	return result, nil
}

func (s *memoryStore) FindStapleByID(_ context.Context, id string) (*shopping.Staple, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failStaples != nil {
		return nil, s.failStaples
	}
	staple, ok := s.staples[id]
	if !ok {
		return nil, nil
	}
	return &staple, nil
}

func (s *memoryStore) FindStapleByName(_ context.Context, name string) (*shopping.Staple, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failStaples != nil {
		return nil, s.failStaples
	}
	for _, staple := range s.staples {
		if staple.Name == name {
			return &staple, nil
		}
	}
	return nil, nil
}

func (s *memoryStore) InsertStaple(_ context.Context, staple shopping.Staple) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failStaples != nil {
		return s.failStaples
	}
	s.staples[staple.ID] = staple
	return nil
}

func (s *memoryStore) UpdateStaple(_ context.Context, id string, update shopping.StapleUpdate) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failStaples != nil {
		return false, s.failStaples
	}
	staple, ok := s.staples[id]
	if !ok {
		return false, nil
	}
	if update.Name != nil {
		staple.Name = *update.Name
	}
	if update.DepartmentID != nil {
		staple.DepartmentID = *update.DepartmentID
	}
	if update.Frequency != nil {
		staple.Frequency = *update.Frequency
	}
	s.staples[id] = staple
	return true, nil
}

func (s *memoryStore) SetStapleLastPurchased(_ context.Context, id string, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failStaples != nil {
		return false, s.failStaples
	}
	staple, ok := s.staples[id]
	if !ok {
		return false, nil
	}
	staple.LastPurchased = &at
	s.staples[id] = staple
	return true, nil
}

func (s *memoryStore) DeleteStaple(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failStaples != nil {
		return false, s.failStaples
	}
	if _, ok := s.staples[id]; !ok {
		return false, nil
	}
	delete(s.staples, id)
	return true, nil
}

func (s *memoryStore) TopRecentItems(_ context.Context, limit int) ([]shopping.RecentItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failRecent != nil {
		return nil, s.failRecent
	}
	result := slices.Clone(s.recent)
	slices.SortFunc(result, func(a, b shopping.RecentItem) int {
		if c := cmp.Compare(b.UseCount, a.UseCount); c != 0 {
			return c
		}
		if c := b.LastUsedAt.Compare(a.LastUsedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *memoryStore) FindRecentItemByName(_ context.Context, name string) (*shopping.RecentItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failRecent != nil {
		return nil, s.failRecent
	}
	for _, item := range s.recent {
		if strings.EqualFold(item.Name, name) {
			return &item, nil
		}
	}
	return nil, nil
}

func (s *memoryStore) ListItemPairs(_ context.Context) ([]shopping.ItemPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failPairs != nil {
		return nil, s.failPairs
	}
	result := slices.Clone(s.pairs)
	slices.SortFunc(result, func(a, b shopping.ItemPair) int {
		if c := cmp.Compare(a.Item1, b.Item1); c != 0 {
			return c
		}
		return cmp.Compare(a.Item2, b.Item2)
	})
	return result, nil
}

func (s *memoryStore) FindItemPair(_ context.Context, item1, item2 string) (*shopping.ItemPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failPairs != nil {
		return nil, s.failPairs
	}
	for _, pair := range s.pairs {
		if pair.Item1 == item1 && pair.Item2 == item2 {
			return &pair, nil
		}
	}
	return nil, nil
}

func (s *memoryStore) InsertItemPair(_ context.Context, pair shopping.ItemPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failPairs != nil {
		return s.failPairs
	}
	if s.maxPairs > 0 && len(s.pairs) >= s.maxPairs {
		return fmt.Errorf("pair store full at %d", s.maxPairs)
	}
	for _, existing := range s.pairs {
		if existing.Item1 == pair.Item1 && existing.Item2 == pair.Item2 {
			return fmt.Errorf("duplicate pair (%s, %s)", pair.Item1, pair.Item2)
		}
	}
	s.pairs = append(s.pairs, pair)
	return nil
}

func (s *memoryStore) UpdateItemPairCount(_ context.Context, id string, count int, lastSeen time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failPairs != nil {
		return s.failPairs
	}
	for i := range s.pairs {
		if s.pairs[i].ID == id {
			s.pairs[i].Count = count
			s.pairs[i].LastSeen = lastSeen
			return nil
		}
	}
	return fmt.Errorf("pair %s not found", id)
}

func (s *memoryStore) CheckedItems(_ context.Context, listID string) ([]shopping.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failChecked != nil {
		return nil, s.failChecked
	}
	return slices.Clone(s.checked[listID]), nil
}

func (s *memoryStore) pair(item1, item2 string) *shopping.ItemPair {
	for _, pair := range s.pairs {
		if pair.Item1 == item1 && pair.Item2 == item2 {
			return &pair
		}
	}
	return nil
}

var testNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func daysAgo(days int) time.Time {
	return testNow.Add(-time.Duration(days) * 24 * time.Hour)
}

// newTestEngine wires a fixed clock, sequential IDs and a buffered logger.
func newTestEngine(t *testing.T, store Store) (*Engine, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	seq := 0
	engine := New(store,
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
	)
	return engine, &logs
}

func items(names ...string) []shopping.Item {
	result := make([]shopping.Item, 0, len(names))
	for i, name := range names {
		result = append(result, shopping.Item{ID: fmt.Sprintf("item-%d", i), ListID: "list-1", Name: name})
	}
	return result
}
