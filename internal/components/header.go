package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bloopai/bloop-tui/internal/state"
	"github.com/bloopai/bloop-tui/internal/ui"
)

// Header shows the app name on the left and the search mode and theme on
// the right. It re-renders only when a slice it reads changes.
type Header struct {
	appName string
	regex   bool
	theme   *ui.Theme
	width   int

	cached  string
	dirty   bool
	renders int

	unsubscribe []func()
}

// NewHeader creates a header subscribed to the slices it shows
func NewHeader(appName string, store *state.Store, darkBackground func() bool) *Header {
	h := &Header{appName: appName, dirty: true}

	h.unsubscribe = append(h.unsubscribe,
		ui.WatchTheme(store.Theme, darkBackground, func(t *ui.Theme) {
			h.theme = t
			h.dirty = true
		}),
		subscribeValue(store.RegexSearch, func(on bool) {
			h.regex = on
			h.dirty = true
		}),
	)
	return h
}

// Close drops the header's subscriptions
func (h *Header) Close() {
	for _, u := range h.unsubscribe {
		u()
	}
	h.unsubscribe = nil
}

func (h *Header) SetWidth(width int) {
	if width != h.width {
		h.width = width
		h.dirty = true
	}
}

// Renders returns how many times the header was rebuilt
func (h *Header) Renders() int {
	return h.renders
}

func (h *Header) View() string {
	if !h.dirty {
		return h.cached
	}
	h.dirty = false
	h.renders++

	left := h.theme.AppTitle.Render(h.appName)

	rightParts := []string{}
	if h.regex {
		rightParts = append(rightParts, "regex")
	}
	rightParts = append(rightParts, "theme: "+string(h.theme.Name))

	right := lipgloss.NewStyle().
		Foreground(h.theme.Muted).
		Padding(0, 1).
		Render(strings.Join(rightParts, " • "))

	// Push the right side to the edge
	spacing := h.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 0 {
		spacing = 0
	}
	spacer := lipgloss.NewStyle().Width(spacing).Render("")

	h.cached = lipgloss.JoinHorizontal(lipgloss.Top, left, spacer, right)
	return h.cached
}

// subscribeValue seeds fn with the current value and subscribes it
func subscribeValue[T comparable](r state.Reader[T], fn func(T)) func() {
	fn(r.Get())
	return r.Subscribe(fn)
}
