package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen/quotesync/internal/ports"
)

// TerminalSurface prints frames and notices to a writer.
type TerminalSurface struct {
	w        io.Writer
	text     lipgloss.Style
	category lipgloss.Style
	info     lipgloss.Style
	warning  lipgloss.Style
	empty    lipgloss.Style
}

// NewTerminalSurface creates a surface writing to w. Colors follow the
// terminal profile detected for w, so output piped to a file is plain.
func NewTerminalSurface(w io.Writer) *TerminalSurface {
	r := lipgloss.NewRenderer(w)

	return &TerminalSurface{
		w:        w,
		text:     r.NewStyle(),
		category: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#5f9fb0")),
		info:     r.NewStyle().Foreground(lipgloss.Color("#2e8b57")),
		warning:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#f39c12")),
		empty:    r.NewStyle().Faint(true),
	}
}

// Draw prints one line per entry.
func (t *TerminalSurface) Draw(frame Frame) error {
	var b strings.Builder

	if len(frame.Entries) == 0 {
		b.WriteString(t.empty.Render("No quotes to show."))
		b.WriteByte('\n')
	}

	for _, e := range frame.Entries {
		b.WriteString(t.text.Render(e.Text))
		b.WriteString(" - ")
		b.WriteString(t.category.Render(e.Category))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(t.w, b.String())
	return err
}

// Announce prints the notice on its own line.
func (t *TerminalSurface) Announce(notice Notice) {
	style := t.info
	if notice.Level == ports.NoticeWarning {
		style = t.warning
	}

	_, _ = fmt.Fprintln(t.w, style.Render(notice.Message))
}
