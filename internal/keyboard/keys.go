package keyboard

import "github.com/charmbracelet/bubbles/key"

// Keys holds the component-local key bindings. These are not global
// shortcuts: they only apply to the surface that currently has focus.
type Keys struct {
	// Command bar
	Up     key.Binding // Move selection up
	Down   key.Binding // Move selection down
	Select key.Binding // Run selected action

	// Overlays
	Close       key.Binding // Close the open overlay or command bar
	NextSection key.Binding // Next settings section
	PrevSection key.Binding // Previous settings section
	Submit      key.Binding // Send the bug report

	// Search
	FocusSearch key.Binding // Focus the search input
	Blur        key.Binding // Leave the search input

	// Global
	Palette key.Binding // Open the command bar home step
	Help    key.Binding // Toggle full help
	Quit    key.Binding // Quit application
}

// Default returns the default local key configuration
func Default() *Keys {
	return &Keys{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+k"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+j"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab", "previous section"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "send"),
		),
		FocusSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc", "tab"),
			key.WithHelp("esc", "leave search"),
		),
		Palette: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "commands"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
