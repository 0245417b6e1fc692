package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/jsamuelsen/quotesync/internal/domain"
	"github.com/jsamuelsen/quotesync/internal/ports"
)

// QuoteStore is the single owner of the quote list and the category filter.
// Every mutation is persisted before it returns; a failed save rolls the
// in-memory list back so memory and storage never diverge.
type QuoteStore struct {
	mu      sync.RWMutex
	quotes  []domain.Quote
	storage ports.KeyValueStore
	onSize  func(int)
	logger  *slog.Logger
}

// QuoteStoreConfig contains dependencies for the quote store.
type QuoteStoreConfig struct {
	// Storage persists the list and the filter.
	Storage ports.KeyValueStore

	// OnSize is called with the list length after every load or mutation.
	OnSize func(int)

	Logger *slog.Logger
}

// NewQuoteStore creates an empty store. Call Load before use.
// Panics if Storage is nil.
func NewQuoteStore(cfg QuoteStoreConfig) *QuoteStore {
	if cfg.Storage == nil {
		panic("app: QuoteStoreConfig.Storage is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	onSize := cfg.OnSize
	if onSize == nil {
		onSize = func(int) {}
	}

	return &QuoteStore{
		storage: cfg.Storage,
		onSize:  onSize,
		logger:  logger,
	}
}

// Load reads the persisted list. A missing or malformed value yields the
// seed quotes; storage I/O failures are returned.
func (s *QuoteStore) Load(ctx context.Context) error {
	raw, err := s.storage.Get(ctx, ports.KeyQuotes)

	var loaded []domain.Quote

	switch {
	case domain.IsNotFound(err):
		loaded = domain.SeedQuotes()
	case err != nil:
		return fmt.Errorf("loading quotes: %w", err)
	default:
		if jsonErr := json.Unmarshal(raw, &loaded); jsonErr != nil || loaded == nil {
			s.logger.WarnContext(ctx, "persisted quotes unreadable, using seed quotes",
				slog.Any("error", domain.NewParseError(ports.KeyQuotes, jsonErr)),
			)

			loaded = domain.SeedQuotes()
		}
	}

	s.mu.Lock()
	s.quotes = loaded
	s.mu.Unlock()

	s.onSize(len(loaded))
	s.logger.DebugContext(ctx, "quotes loaded", slog.Int("count", len(loaded)))

	return nil
}

// Save writes the full list to storage, overwriting the previous value.
func (s *QuoteStore) Save(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.saveLocked(ctx)
}

func (s *QuoteStore) saveLocked(ctx context.Context) error {
	list := s.quotes
	if list == nil {
		list = []domain.Quote{}
	}

	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding quotes: %w", err)
	}

	if err := s.storage.Set(ctx, ports.KeyQuotes, raw); err != nil {
		return fmt.Errorf("saving quotes: %w", err)
	}

	return nil
}

// mutate applies fn to the list under the write lock and persists the result.
func (s *QuoteStore) mutate(ctx context.Context, fn func([]domain.Quote) []domain.Quote) error {
	s.mu.Lock()

	prev := s.quotes
	s.quotes = fn(slices.Clone(prev))

	if err := s.saveLocked(ctx); err != nil {
		s.quotes = prev
		s.mu.Unlock()

		return err
	}

	n := len(s.quotes)
	s.mu.Unlock()

	s.onSize(n)

	return nil
}

// Append validates q and adds it to the end of the list as given.
func (s *QuoteStore) Append(ctx context.Context, q domain.Quote) error {
	if err := q.Validate(); err != nil {
		return err
	}

	return s.mutate(ctx, func(list []domain.Quote) []domain.Quote {
		return append(list, q)
	})
}

// ReplaceAll swaps the whole list for quotes without validation.
func (s *QuoteStore) ReplaceAll(ctx context.Context, quotes []domain.Quote) error {
	replacement := slices.Clone(quotes)
	if replacement == nil {
		replacement = []domain.Quote{}
	}

	return s.mutate(ctx, func([]domain.Quote) []domain.Quote {
		return replacement
	})
}

// ImportBulk appends quotes in order without validation.
func (s *QuoteStore) ImportBulk(ctx context.Context, quotes []domain.Quote) error {
	return s.mutate(ctx, func(list []domain.Quote) []domain.Quote {
		return append(list, quotes...)
	})
}

// Quotes returns a copy of the list in store order.
func (s *QuoteStore) Quotes() []domain.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := slices.Clone(s.quotes)
	if out == nil {
		out = []domain.Quote{}
	}

	return out
}

// Len returns the number of stored quotes.
func (s *QuoteStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.quotes)
}

// Categories returns the distinct categories of the current list, sorted.
func (s *QuoteStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, len(s.quotes))
	categories := make([]string, 0, len(s.quotes))

	for _, q := range s.quotes {
		if _, ok := seen[q.Category]; ok {
			continue
		}

		seen[q.Category] = struct{}{}
		categories = append(categories, q.Category)
	}

	slices.Sort(categories)

	return categories
}

// Filter returns the persisted category filter, or domain.FilterAll when unset.
func (s *QuoteStore) Filter(ctx context.Context) (string, error) {
	raw, err := s.storage.Get(ctx, ports.KeyLastSelectedCategory)
	if domain.IsNotFound(err) {
		return domain.FilterAll, nil
	}

	if err != nil {
		return "", fmt.Errorf("loading filter: %w", err)
	}

	if len(raw) == 0 {
		return domain.FilterAll, nil
	}

	return string(raw), nil
}

// SetFilter persists the category filter. The name is not checked against
// the known categories; an unknown one simply selects nothing.
func (s *QuoteStore) SetFilter(ctx context.Context, name string) error {
	if name == "" {
		return domain.NewValidationError("category", "is required")
	}

	if err := s.storage.Set(ctx, ports.KeyLastSelectedCategory, []byte(name)); err != nil {
		return fmt.Errorf("saving filter: %w", err)
	}

	return nil
}

// Filtered returns the list projected through the current filter.
func (s *QuoteStore) Filtered(ctx context.Context) ([]domain.Quote, error) {
	filter, err := s.Filter(ctx)
	if err != nil {
		return nil, err
	}

	return FilterQuotes(s.Quotes(), filter), nil
}

// FilterQuotes keeps the quotes whose category equals filter.
// domain.FilterAll keeps everything.
func FilterQuotes(quotes []domain.Quote, filter string) []domain.Quote {
	if filter == domain.FilterAll {
		return quotes
	}

	out := make([]domain.Quote, 0, len(quotes))

	for _, q := range quotes {
		if q.Category == filter {
			out = append(out, q)
		}
	}

	return out
}
