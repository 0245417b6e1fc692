package dto

import "github.com/jsamuelsen/quotesync/internal/domain"

// QuoteResponse is the HTTP representation of a quote.
type QuoteResponse struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// NewQuoteResponse converts a domain quote.
func NewQuoteResponse(q domain.Quote) QuoteResponse {
	return QuoteResponse{Text: q.Text, Category: q.Category}
}

// QuoteListResponse wraps a list of quotes with the filter that produced it.
type QuoteListResponse struct {
	Filter string          `json:"filter"`
	Count  int             `json:"count"`
	Quotes []QuoteResponse `json:"quotes"`
}

// NewQuoteListResponse converts a list of domain quotes.
func NewQuoteListResponse(filter string, quotes []domain.Quote) QuoteListResponse {
	items := make([]QuoteResponse, len(quotes))
	for i, q := range quotes {
		items[i] = NewQuoteResponse(q)
	}

	return QuoteListResponse{Filter: filter, Count: len(items), Quotes: items}
}

// AddQuoteRequest is the body of POST /api/v1/quotes.
// Fields are bound as sent; QuoteService.AddQuote rejects empty ones.
type AddQuoteRequest struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// SetFilterRequest is the body of PUT /api/v1/filter.
type SetFilterRequest struct {
	Category string `json:"category" validate:"required,max=200"`
}

// FilterResponse reports the current filter.
type FilterResponse struct {
	Category string `json:"category"`
}

// CategoriesResponse lists the distinct categories.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ImportResponse reports the result of an import.
type ImportResponse struct {
	Imported int    `json:"imported"`
	Total    int    `json:"total"`
	Message  string `json:"message"`
}

// SyncResponse reports the result of a manual sync.
type SyncResponse struct {
	Conflict   bool   `json:"conflict"`
	Fetched    int    `json:"fetched"`
	Pushed     bool   `json:"pushed"`
	Shared     bool   `json:"shared"`
	DurationMS int64  `json:"durationMs"`
	FetchError string `json:"fetchError,omitempty"`
	PushError  string `json:"pushError,omitempty"`
}
