// Package suggest computes "you might have forgotten" recommendations for an
// in-progress shopping list and records the purchase history they are based
// on.
package suggest

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/basket-md/basket/internal/shopping"
)

const (
	// MaxSuggestions caps the ranked result.
	MaxSuggestions = 5
	// StaplePriority outranks every other heuristic.
	StaplePriority = 10
)

// Engine combines the staple, frequency and co-occurrence heuristics over a
// record store.
type Engine struct {
	store  Store
	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithLogger sets the logger used for swallowed store failures.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithIDGenerator replaces the UUID generator used for new records.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) {
		e.newID = newID
	}
}

// New returns an Engine reading and writing through store.
func New(store Store, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		now:    time.Now,
		newID:  uuid.NewString,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Suggest returns at most MaxSuggestions suggestions for a list holding
// currentItems, highest priority first. Any store failure aborts the whole
// computation.
func (e *Engine) Suggest(ctx context.Context, currentItems []shopping.Item) ([]shopping.Suggestion, error) {
	current := shopping.NamesOf(currentItems)
	now := e.now()

	var staples, frequent, paired []shopping.Suggestion

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		staples, err = e.stapleSuggestions(gctx, current, now)
		return err
	})
	g.Go(func() error {
		var err error
		frequent, err = e.frequencySuggestions(gctx, current, now)
		return err
	})
	if len(currentItems) > 0 {
		g.Go(func() error {
			var err error
			paired, err = e.pairSuggestions(gctx, current)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rank(staples, frequent, paired), nil
}

// GetSuggestions is Suggest for callers that cannot act on an error: a
// failure is logged and yields an empty result.
func (e *Engine) GetSuggestions(ctx context.Context, currentItems []shopping.Item) []shopping.Suggestion {
	suggestions, err := e.Suggest(ctx, currentItems)
	if err != nil {
		e.logger.Error("computing suggestions", "error", err)
		return []shopping.Suggestion{}
	}
	return suggestions
}

func (e *Engine) stapleSuggestions(ctx context.Context, current shopping.NameSet, now time.Time) ([]shopping.Suggestion, error) {
	staples, err := e.store.ListStaples(ctx)
	if err != nil {
		return nil, fmt.Errorf("load staples: %w", err)
	}

	var suggestions []shopping.Suggestion
	for _, staple := range staples {
		if current.Has(staple.Name) {
			continue
		}
		if due, reason := CheckStaple(staple, now); due {
			suggestions = append(suggestions, newStapleSuggestion(staple, reason))
		}
	}
	return suggestions, nil
}

// rank concatenates the groups in order, sorts by priority keeping that order
// among equals, drops repeated names and truncates.
func rank(groups ...[]shopping.Suggestion) []shopping.Suggestion {
	var all []shopping.Suggestion
	for _, group := range groups {
		all = append(all, group...)
	}

	slices.SortStableFunc(all, func(a, b shopping.Suggestion) int {
		return cmp.Compare(b.Priority, a.Priority)
	})

	seen := make(shopping.NameSet, len(all))
	result := make([]shopping.Suggestion, 0, MaxSuggestions)
	for _, s := range all {
		if len(result) == MaxSuggestions {
			break
		}
		if seen.Has(s.Name) {
			continue
		}
		seen[shopping.NormalizeName(s.Name)] = struct{}{}
		result = append(result, s)
	}
	return result
}
