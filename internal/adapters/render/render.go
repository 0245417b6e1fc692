// Package render projects the quote list onto a display surface.
//
// A Renderer turns quotes into a Frame and hands it to a Surface. The
// surface decides how a frame looks: TerminalSurface prints it with
// lipgloss styling, MemorySurface keeps the last frame for the HTTP API.
// Every call replaces the whole frame; nothing is diffed.
package render

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen/quotesync/internal/domain"
	"github.com/jsamuelsen/quotesync/internal/platform/logging"
	"github.com/jsamuelsen/quotesync/internal/ports"
)

// Frame modes.
const (
	ModeList   = "list"
	ModeSingle = "single"
)

// Entry is one displayed quote.
type Entry struct {
	Text     string `json:"text"`
	Category string `json:"category"`
	Line     string `json:"line"`
}

// Frame is the full content of a surface.
type Frame struct {
	Mode       string    `json:"mode"`
	Entries    []Entry   `json:"entries"`
	RenderedAt time.Time `json:"renderedAt"`
}

// Notice is a user-visible message.
type Notice struct {
	Level   ports.NoticeLevel `json:"level"`
	Message string            `json:"message"`
	At      time.Time         `json:"at"`
}

// Surface receives frames and notices.
type Surface interface {
	Draw(frame Frame) error
	Announce(notice Notice)
}

// Renderer implements ports.Renderer on top of a Surface.
type Renderer struct {
	surface Surface
	now     func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock overrides the time source used to stamp frames and notices.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// New creates a Renderer drawing onto surface.
func New(surface Surface, opts ...Option) *Renderer {
	r := &Renderer{surface: surface, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FormatLine returns the display form of a quote.
func FormatLine(q domain.Quote) string {
	return q.Text + " - " + q.Category
}

// Render replaces the surface with one entry per quote, in order.
func (r *Renderer) Render(ctx context.Context, quotes []domain.Quote) error {
	logging.FromContext(ctx).DebugContext(ctx, "rendering quote list", slog.Int("count", len(quotes)))
	return r.surface.Draw(r.frame(ModeList, quotes))
}

// RenderOne replaces the surface with a single quote.
func (r *Renderer) RenderOne(ctx context.Context, quote domain.Quote) error {
	logging.FromContext(ctx).DebugContext(ctx, "rendering single quote", slog.String("category", quote.Category))
	return r.surface.Draw(r.frame(ModeSingle, []domain.Quote{quote}))
}

// Notify forwards a notice to the surface.
func (r *Renderer) Notify(ctx context.Context, level ports.NoticeLevel, message string) {
	logging.FromContext(ctx).InfoContext(ctx, "notice", slog.String("level", string(level)), slog.String("message", message))
	r.surface.Announce(Notice{Level: level, Message: message, At: r.now()})
}

func (r *Renderer) frame(mode string, quotes []domain.Quote) Frame {
	entries := make([]Entry, len(quotes))
	for i, q := range quotes {
		entries[i] = Entry{Text: q.Text, Category: q.Category, Line: FormatLine(q)}
	}
	return Frame{Mode: mode, Entries: entries, RenderedAt: r.now()}
}
