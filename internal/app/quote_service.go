// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/jsamuelsen/quotesync/internal/domain"
	"github.com/jsamuelsen/quotesync/internal/ports"
)

// User-visible notices.
const (
	NoticeMissingFields = "Please enter both a quote and a category."
	NoticeAdded         = "Quote added successfully!"
	NoticeImported      = "Quotes imported successfully!"
)

// QuoteService orchestrates the widget use cases.
// It depends on port interfaces, not concrete implementations,
// following the Dependency Inversion Principle.
type QuoteService struct {
	store    *QuoteStore
	session  ports.KeyValueStore
	renderer ports.Renderer
	intn     func(n int) int
	logger   *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Store *QuoteStore

	// Session holds the last viewed quote for the lifetime of the process.
	Session ports.KeyValueStore

	Renderer ports.Renderer

	// Intn returns a uniform integer in [0, n). Defaults to math/rand/v2.
	Intn func(n int) int

	Logger *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
// Panics if Store, Session or Renderer is nil.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Store == nil {
		panic("app: QuoteServiceConfig.Store is required")
	}

	if cfg.Session == nil {
		panic("app: QuoteServiceConfig.Session is required")
	}

	if cfg.Renderer == nil {
		panic("app: QuoteServiceConfig.Renderer is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	intn := cfg.Intn
	if intn == nil {
		intn = rand.IntN
	}

	return &QuoteService{
		store:    cfg.Store,
		session:  cfg.Session,
		renderer: cfg.Renderer,
		intn:     intn,
		logger:   logger,
	}
}

// AddQuote validates and appends a quote, then re-renders the filtered list.
// Empty fields are rejected with a ValidationError and a warning notice.
func (s *QuoteService) AddQuote(ctx context.Context, text, category string) (domain.Quote, error) {
	added := domain.Quote{Text: text, Category: category}

	err := s.store.Append(ctx, added)
	if err != nil {
		if domain.IsValidation(err) {
			s.renderer.Notify(ctx, ports.NoticeWarning, NoticeMissingFields)
		}

		s.logger.WarnContext(ctx, "adding quote failed", slog.Any("error", err))

		return domain.Quote{}, err
	}

	s.logger.InfoContext(ctx, "quote added",
		slog.String("category", added.Category),
		slog.Int("count", s.store.Len()),
	)

	// The quote is stored; a failed redraw does not undo that.
	if _, err := s.View(ctx); err != nil {
		s.logger.WarnContext(ctx, "refreshing display failed", slog.Any("error", err))
	}

	s.renderer.Notify(ctx, ports.NoticeInfo, NoticeAdded)

	return added, nil
}

// ShowRandom picks a quote uniformly from the filtered list, renders it and
// records it as the last viewed quote.
func (s *QuoteService) ShowRandom(ctx context.Context) (domain.Quote, error) {
	filtered, err := s.store.Filtered(ctx)
	if err != nil {
		return domain.Quote{}, err
	}

	return s.showRandomOf(ctx, filtered)
}

func (s *QuoteService) showRandomOf(ctx context.Context, filtered []domain.Quote) (domain.Quote, error) {
	if len(filtered) == 0 {
		return domain.Quote{}, domain.NewNotFoundError("quote", "")
	}

	quote := filtered[s.intn(len(filtered))]

	if err := s.renderer.RenderOne(ctx, quote); err != nil {
		return domain.Quote{}, fmt.Errorf("rendering quote: %w", err)
	}

	raw, err := json.Marshal(quote)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("encoding last viewed quote: %w", err)
	}

	if err := s.session.Set(ctx, ports.KeyLastViewedQuote, raw); err != nil {
		return domain.Quote{}, fmt.Errorf("saving last viewed quote: %w", err)
	}

	s.logger.DebugContext(ctx, "random quote shown", slog.String("category", quote.Category))

	return quote, nil
}

// LastViewed returns the quote most recently shown by ShowRandom.
// Returns a NotFoundError when nothing has been shown in this session.
func (s *QuoteService) LastViewed(ctx context.Context) (domain.Quote, error) {
	raw, err := s.session.Get(ctx, ports.KeyLastViewedQuote)
	if domain.IsNotFound(err) {
		return domain.Quote{}, domain.NewNotFoundError("last viewed quote", "")
	}

	if err != nil {
		return domain.Quote{}, fmt.Errorf("loading last viewed quote: %w", err)
	}

	var quote domain.Quote
	if err := json.Unmarshal(raw, &quote); err != nil {
		return domain.Quote{}, domain.NewParseError(ports.KeyLastViewedQuote, err)
	}

	return quote, nil
}

// Restore redraws the surface at startup: the last viewed quote when the
// session has one, otherwise a fresh random pick from the filtered list.
// An empty selection renders the empty list.
func (s *QuoteService) Restore(ctx context.Context) error {
	last, filtered, err := Parallel2(ctx, s.restorableLastViewed, s.store.Filtered)
	if err != nil {
		return fmt.Errorf("restoring display: %w", err)
	}

	if last != nil {
		return s.renderer.RenderOne(ctx, *last)
	}

	if _, err := s.showRandomOf(ctx, filtered); err != nil {
		if !domain.IsNotFound(err) {
			return fmt.Errorf("restoring display: %w", err)
		}

		return s.renderer.Render(ctx, filtered)
	}

	return nil
}

// restorableLastViewed returns nil when nothing can be restored.
// An unreadable session entry is removed so the next pick replaces it.
func (s *QuoteService) restorableLastViewed(ctx context.Context) (*domain.Quote, error) {
	q, err := s.LastViewed(ctx)

	switch {
	case err == nil:
		return &q, nil
	case domain.IsNotFound(err):
		return nil, nil
	case domain.IsParse(err):
		s.logger.WarnContext(ctx, "dropping unreadable last viewed quote", slog.Any("error", err))

		if err := s.session.Delete(ctx, ports.KeyLastViewedQuote); err != nil {
			return nil, fmt.Errorf("clearing last viewed quote: %w", err)
		}

		return nil, nil
	default:
		return nil, err
	}
}

// View renders and returns the filtered list.
func (s *QuoteService) View(ctx context.Context) ([]domain.Quote, error) {
	filtered, err := s.store.Filtered(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.renderer.Render(ctx, filtered); err != nil {
		return nil, fmt.Errorf("rendering quotes: %w", err)
	}

	return filtered, nil
}

// Count returns the number of stored quotes regardless of the filter.
func (s *QuoteService) Count() int {
	return s.store.Len()
}

// Categories returns the distinct categories, sorted.
func (s *QuoteService) Categories() []string {
	return s.store.Categories()
}

// Filter returns the current category filter.
func (s *QuoteService) Filter(ctx context.Context) (string, error) {
	return s.store.Filter(ctx)
}

// SetFilter persists a new filter and renders the matching quotes.
func (s *QuoteService) SetFilter(ctx context.Context, name string) ([]domain.Quote, error) {
	if err := s.store.SetFilter(ctx, name); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "filter changed", slog.String("category", name))

	return s.View(ctx)
}

// Export writes the full list as an indented JSON array.
func (s *QuoteService) Export(ctx context.Context, w io.Writer) error {
	quotes := s.store.Quotes()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(quotes); err != nil {
		return fmt.Errorf("exporting quotes: %w", err)
	}

	s.logger.InfoContext(ctx, "quotes exported", slog.Int("count", len(quotes)))

	return nil
}

// Import appends the quotes read from r as a JSON array.
// Malformed input returns a ParseError and leaves the store untouched.
func (s *QuoteService) Import(ctx context.Context, r io.Reader) (int, error) {
	dec := json.NewDecoder(r)

	var quotes []domain.Quote
	if err := dec.Decode(&quotes); err != nil {
		return 0, domain.NewParseError("import", err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return 0, domain.NewParseError("import", errors.New("unexpected data after JSON array"))
	}

	if quotes == nil {
		return 0, domain.NewParseError("import", errors.New("expected a JSON array"))
	}

	if err := s.store.ImportBulk(ctx, quotes); err != nil {
		return 0, err
	}

	s.logger.InfoContext(ctx, "quotes imported", slog.Int("count", len(quotes)))

	if _, err := s.View(ctx); err != nil {
		s.logger.WarnContext(ctx, "refreshing display failed", slog.Any("error", err))
	}

	s.renderer.Notify(ctx, ports.NoticeInfo, NoticeImported)

	return len(quotes), nil
}
