package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bloopai/bloop-tui/internal/state"
)

// Theme defines the color scheme and styles for the TUI
type Theme struct {
	Name state.Theme

	// Core colors
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color

	// UI element colors
	Border     lipgloss.Color // Separator lines, overlay borders
	Dimmed     lipgloss.Color // Shortcut hints
	Background lipgloss.Color // Overlay background
	Selected   lipgloss.Color // Selected row background

	// Component styles
	Table     TableStyles
	AppTitle  lipgloss.Style
	Header    lipgloss.Style
	StatusBar lipgloss.Style
	Overlay   lipgloss.Style
}

// TableStyles defines styles for table components
type TableStyles struct {
	Header      lipgloss.Style
	Cell        lipgloss.Style
	SelectedRow lipgloss.Style
}

// ToTableStyles converts Theme.Table to bubbles table.Styles
func (t *Theme) ToTableStyles() table.Styles {
	return table.Styles{
		Header:   t.Table.Header,
		Cell:     t.Table.Cell,
		Selected: t.Table.SelectedRow,
	}
}

// build derives the component styles from the palette
func (t *Theme) build() *Theme {
	t.Table.Header = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true).
		Foreground(t.Primary).
		Bold(true).
		PaddingLeft(1).
		PaddingRight(1)

	t.Table.Cell = lipgloss.NewStyle().
		Foreground(t.Foreground).
		PaddingLeft(1).
		PaddingRight(1)

	t.Table.SelectedRow = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Selected).
		Bold(false)

	t.AppTitle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.Header = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Overlay = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Foreground).
		Padding(1, 2)

	return t
}

// ThemeLight returns the light palette
func ThemeLight() *Theme {
	t := &Theme{Name: state.ThemeLight}

	t.Primary = lipgloss.Color("#5A56E0")
	t.Secondary = lipgloss.Color("#02BA84")
	t.Foreground = lipgloss.Color("235")
	t.Muted = lipgloss.Color("243")
	t.Error = lipgloss.Color("#FF4672")
	t.Success = lipgloss.Color("#02BA84")

	t.Border = lipgloss.Color("250")
	t.Dimmed = lipgloss.Color("245")
	t.Background = lipgloss.Color("255")
	t.Selected = lipgloss.Color("#5A56E0")

	return t.build()
}

// ThemeDark returns the dark palette
func ThemeDark() *Theme {
	t := &Theme{Name: state.ThemeDark}

	t.Primary = lipgloss.Color("#7571F9")
	t.Secondary = lipgloss.Color("#02BF87")
	t.Foreground = lipgloss.Color("252")
	t.Muted = lipgloss.Color("243")
	t.Error = lipgloss.Color("#ED567A")
	t.Success = lipgloss.Color("#02BF87")

	t.Border = lipgloss.Color("240")
	t.Dimmed = lipgloss.Color("243")
	t.Background = lipgloss.Color("235")
	t.Selected = lipgloss.Color("57")

	return t.build()
}

// ThemeBlack returns a high contrast palette on pure black
func ThemeBlack() *Theme {
	t := &Theme{Name: state.ThemeBlack}

	t.Primary = lipgloss.Color("#FFFFFF")
	t.Secondary = lipgloss.Color("#A0A0A0")
	t.Foreground = lipgloss.Color("#E0E0E0")
	t.Muted = lipgloss.Color("#808080")
	t.Error = lipgloss.Color("#FF5555")
	t.Success = lipgloss.Color("#50FA7B")

	t.Border = lipgloss.Color("#404040")
	t.Dimmed = lipgloss.Color("#606060")
	t.Background = lipgloss.Color("#000000")
	t.Selected = lipgloss.Color("#E0E0E0")

	return t.build()
}

// GetTheme returns the palette for a theme preference. The system theme
// follows the terminal background, which darkBackground reports.
func GetTheme(name state.Theme, darkBackground func() bool) *Theme {
	switch name {
	case state.ThemeLight:
		return ThemeLight()
	case state.ThemeDark:
		return ThemeDark()
	case state.ThemeBlack:
		return ThemeBlack()
	}

	if darkBackground == nil {
		darkBackground = lipgloss.HasDarkBackground
	}
	var t *Theme
	if darkBackground() {
		t = ThemeDark()
	} else {
		t = ThemeLight()
	}
	t.Name = state.ThemeSystem
	return t
}

// WatchTheme calls apply with the palette for the current theme and again
// after every change to the theme slice.
func WatchTheme(theme state.Reader[state.Theme], darkBackground func() bool, apply func(*Theme)) (unsubscribe func()) {
	apply(GetTheme(theme.Get(), darkBackground))
	return theme.Subscribe(func(t state.Theme) {
		apply(GetTheme(t, darkBackground))
	})
}
