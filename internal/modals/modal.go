// Package modals renders the overlays opened by global shortcuts: the
// settings panel, the project settings panel and the bug report modal.
// Each overlay reads its open and section slices from the store and
// writes them only on its own close and tab events.
package modals

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bloopai/bloop-tui/internal/state"
	"github.com/bloopai/bloop-tui/internal/ui"
)

// modalWidth is the outer width of every overlay.
const modalWidth = 72

func subscribe[T comparable](r state.Reader[T], fn func(T)) func() {
	fn(r.Get())
	return r.Subscribe(fn)
}

// renderTabs renders section labels with the active one highlighted.
func renderTabs(theme *ui.Theme, labels []string, active int) string {
	tabs := make([]string, len(labels))
	for i, label := range labels {
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(theme.Muted)
		if i == active {
			style = style.Foreground(theme.Background).Background(theme.Primary).Bold(true)
		}
		tabs[i] = style.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderFrame wraps body in the themed overlay border under a title and
// an optional tab row, with hint on the last line.
func renderFrame(theme *ui.Theme, title, tabs, body, hint string) string {
	sections := []string{theme.Header.Render(title)}
	if tabs != "" {
		sections = append(sections, tabs)
	}
	sections = append(sections, "", body, "", lipgloss.NewStyle().Foreground(theme.Dimmed).Render(hint))

	return theme.Overlay.
		Width(modalWidth).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderLines renders key/value rows with aligned values.
func renderLines(theme *ui.Theme, rows [][2]string) string {
	width := 0
	for _, row := range rows {
		width = max(width, len(row[0]))
	}

	keyStyle := lipgloss.NewStyle().Foreground(theme.Muted)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Foreground)

	lines := make([]string, len(rows))
	for i, row := range rows {
		pad := strings.Repeat(" ", width-len(row[0])+2)
		lines[i] = keyStyle.Render(row[0]) + pad + valueStyle.Render(row[1])
	}
	return strings.Join(lines, "\n")
}
