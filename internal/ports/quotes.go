// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrUnavailable, etc.)
//   - Keep interfaces small and focused
package ports

import (
	"context"

	"github.com/jsamuelsen/quotesync/internal/domain"
)

// Storage keys shared by the persistent and session stores.
const (
	// KeyQuotes holds the JSON array of quotes in persistent storage.
	KeyQuotes = "quotes"

	// KeyLastSelectedCategory holds the selected filter in persistent storage.
	KeyLastSelectedCategory = "lastSelectedCategory"

	// KeyLastViewedQuote holds the last shown quote in session storage.
	KeyLastViewedQuote = "lastViewedQuote"
)

// KeyValueStore is a string-keyed byte store.
// The persistent implementation survives restarts; the session
// implementation lives only as long as the process.
type KeyValueStore interface {
	// Get retrieves the value stored under key.
	// Returns domain.ErrNotFound if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any prior value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key.
	// Does not return an error if the key does not exist.
	Delete(ctx context.Context, key string) error
}

// RemoteQuoteClient reads and writes the remote quote list.
//
// Key considerations:
//   - Handle timeouts via context deadline
//   - Map external errors to domain errors
//   - Transform external DTOs to domain types
type RemoteQuoteClient interface {
	// FetchQuotes retrieves the full remote list.
	// Returns domain.ErrUnavailable if the endpoint is unreachable or answers non-2xx.
	FetchQuotes(ctx context.Context) ([]domain.Quote, error)

	// PushQuotes sends the full local list to the remote endpoint.
	// Returns domain.ErrUnavailable if the endpoint is unreachable or answers non-2xx.
	PushQuotes(ctx context.Context, quotes []domain.Quote) error
}

// NoticeLevel classifies user-visible notices.
type NoticeLevel string

const (
	// NoticeInfo confirms a completed action.
	NoticeInfo NoticeLevel = "info"

	// NoticeWarning reports a rejected action or an applied remote change.
	NoticeWarning NoticeLevel = "warning"
)

// Renderer projects quotes onto a display surface.
type Renderer interface {
	// Render replaces the whole surface with one entry per quote, in order.
	Render(ctx context.Context, quotes []domain.Quote) error

	// RenderOne replaces the surface with a single quote.
	RenderOne(ctx context.Context, quote domain.Quote) error

	// Notify shows a short message to the user.
	Notify(ctx context.Context, level NoticeLevel, message string)
}
