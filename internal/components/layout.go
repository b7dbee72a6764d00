package components

import (
	"github.com/charmbracelet/lipgloss"
)

type Layout struct {
	width  int
	height int
}

func NewLayout(width, height int) *Layout {
	return &Layout{
		width:  width,
		height: height,
	}
}

func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// CalculateBodyHeight returns the available height for the body content
// once the given chrome heights are reserved
func (l *Layout) CalculateBodyHeight(reserved ...int) int {
	// header (1) + empty line (1) + search (2) + help (1) + message (1)
	used := 6
	for _, r := range reserved {
		used += r
	}
	bodyHeight := l.height - used
	if bodyHeight < 3 {
		bodyHeight = 3
	}
	return bodyHeight
}

// Render builds the full layout. An open overlay replaces the body,
// centred in the body area.
func (l *Layout) Render(header, search, commandBar, body, overlay, help, message string) string {
	sections := []string{}

	if header != "" {
		sections = append(sections, header, "")
	}

	if search != "" {
		sections = append(sections, search)
	}

	barHeight := 0
	if commandBar != "" {
		sections = append(sections, commandBar)
		barHeight = lipgloss.Height(commandBar)
	}

	bodyHeight := l.CalculateBodyHeight(barHeight)
	if overlay != "" {
		body = lipgloss.Place(l.width, bodyHeight, lipgloss.Center, lipgloss.Center, overlay)
	} else {
		body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)
	}
	sections = append(sections, body)

	if help != "" {
		sections = append(sections, help)
	}

	sections = append(sections, message)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
