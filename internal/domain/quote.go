// Package domain contains core business entities and rules.
package domain

// FilterAll is the filter value that selects every category.
const FilterAll = "all"

// Quote is a single quotation shown in the widget.
// Quotes have no identity beyond their text; duplicates are allowed.
type Quote struct {
	// Text is the quotation itself.
	Text string `json:"text"`

	// Category groups quotes for filtering.
	Category string `json:"category"`
}

// Validate checks that both fields are non-empty. Whitespace is content.
// Returns a ValidationError naming the first empty field.
func (q Quote) Validate() error {
	if q.Text == "" {
		return NewValidationError("text", "is required")
	}

	if q.Category == "" {
		return NewValidationError("category", "is required")
	}

	return nil
}

// SeedQuotes returns the built-in quotes used when nothing has been persisted.
// A fresh slice is returned on every call.
func SeedQuotes() []Quote {
	return []Quote{
		{Text: "The best way to predict the future is to invent it.", Category: "Motivation"},
		{Text: "Simplicity is the ultimate sophistication.", Category: "Design"},
		{Text: "Code is like humor. When you have to explain it, it’s bad.", Category: "Programming"},
	}
}

// Texts returns the text of each quote in order.
func Texts(quotes []Quote) []string {
	texts := make([]string, len(quotes))
	for i, q := range quotes {
		texts[i] = q.Text
	}

	return texts
}
