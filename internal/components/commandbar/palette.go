package commandbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/bloopai/bloop-tui/internal/actions"
	"github.com/bloopai/bloop-tui/internal/ui"
)

// actionSource exposes actions to fuzzy matching by name and description.
type actionSource []actions.Action

func (s actionSource) String(i int) string {
	return string(s[i].Name) + " " + s[i].Description
}

func (s actionSource) Len() int { return len(s) }

// Palette manages action filtering, rendering, and navigation.
type Palette struct {
	all          []actions.Action
	items        []actions.Action
	index        int
	scrollOffset int // First visible item index
	theme        *ui.Theme
	width        int
}

// NewPalette creates a new palette over list.
func NewPalette(list []actions.Action, theme *ui.Theme, width int) *Palette {
	return &Palette{
		all:   list,
		theme: theme,
		width: width,
	}
}

// SetWidth updates the palette width.
func (p *Palette) SetWidth(width int) {
	p.width = width
}

// SetTheme swaps the palette colors.
func (p *Palette) SetTheme(theme *ui.Theme) {
	p.theme = theme
}

// Filter keeps the actions matching query, best match first. An empty
// query keeps every action in catalog order.
func (p *Palette) Filter(query string) {
	if query == "" {
		p.items = append([]actions.Action(nil), p.all...)
	} else {
		matches := fuzzy.FindFrom(query, actionSource(p.all))
		p.items = make([]actions.Action, len(matches))
		for i, match := range matches {
			p.items[i] = p.all[match.Index]
		}
	}

	p.index = 0
	p.scrollOffset = 0
}

// NavigateUp moves selection up in palette.
// Scrolls viewport if cursor moves above visible range.
func (p *Palette) NavigateUp() {
	if p.index > 0 {
		p.index--
		if p.index < p.scrollOffset {
			p.scrollOffset = p.index
		}
	}
}

// NavigateDown moves selection down in palette.
// Scrolls viewport if cursor moves below visible range.
func (p *Palette) NavigateDown() {
	if p.index < len(p.items)-1 {
		p.index++
		maxVisibleIndex := p.scrollOffset + MaxPaletteItems - 1
		if p.index > maxVisibleIndex {
			p.scrollOffset = p.index - MaxPaletteItems + 1
		}
	}
}

// GetSelected returns the currently selected action, or nil if empty.
func (p *Palette) GetSelected() *actions.Action {
	if p.index >= 0 && p.index < len(p.items) {
		return &p.items[p.index]
	}
	return nil
}

// IsEmpty returns true if palette has no items.
func (p *Palette) IsEmpty() bool {
	return len(p.items) == 0
}

// Size returns the number of items in palette.
func (p *Palette) Size() int {
	return len(p.items)
}

// Reset clears the palette.
func (p *Palette) Reset() {
	p.items = nil
	p.index = 0
	p.scrollOffset = 0
}

// GetHeight returns the height needed to display the palette.
func (p *Palette) GetHeight() int {
	if p.IsEmpty() {
		return 0
	}
	return min(len(p.items), MaxPaletteItems)
}

// View renders the visible items with the selection indicator and each
// action's chord aligned in a column.
func (p *Palette) View() string {
	if p.IsEmpty() {
		return lipgloss.NewStyle().
			Foreground(p.theme.Muted).
			Padding(0, 1).
			Render("No matching commands")
	}

	visibleEnd := p.scrollOffset + min(MaxPaletteItems, len(p.items)-p.scrollOffset)

	// First pass: find longest text to align shortcuts
	longestMainText := 0
	for i := p.scrollOffset; i < visibleEnd; i++ {
		longestMainText = max(longestMainText, len(mainText(p.items[i])))
	}
	shortcutColumn := longestMainText + 4

	shortcutStyle := lipgloss.NewStyle().Foreground(p.theme.Dimmed)
	selectedStyle := lipgloss.NewStyle().
		Foreground(p.theme.Background).
		Background(p.theme.Selected).
		Width(p.width).
		Padding(0, 1).
		Bold(true)
	itemStyle := lipgloss.NewStyle().
		Foreground(p.theme.Foreground).
		Width(p.width).
		Padding(0, 1)

	sections := []string{}
	for i := p.scrollOffset; i < visibleEnd; i++ {
		a := p.items[i]
		text := mainText(a)
		spacer := strings.Repeat(" ", max(shortcutColumn-len(text), 2))
		shortcut := a.Chord.Display()

		if i == p.index {
			sections = append(sections, selectedStyle.Render("▶ "+text+spacer+shortcut))
		} else {
			sections = append(sections, itemStyle.Render("  "+text+spacer+shortcutStyle.Render(shortcut)))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func mainText(a actions.Action) string {
	return a.Description + " (" + string(a.Name) + ")"
}
