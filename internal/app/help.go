package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/bloopai/bloop-tui/internal/keyboard"
)

// helpKeyMap feeds bubbles/help: local keys in the short view, every
// global shortcut in the full view.
type helpKeyMap struct {
	local  []key.Binding
	global []key.Binding
}

// helpColumnSize is how many shortcuts each full help column holds.
const helpColumnSize = 6

func newHelpKeyMap(keys *keyboard.Keys, global []key.Binding) helpKeyMap {
	return helpKeyMap{
		local:  []key.Binding{keys.FocusSearch, keys.Palette, keys.Help, keys.Quit},
		global: global,
	}
}

func (h helpKeyMap) ShortHelp() []key.Binding {
	return h.local
}

func (h helpKeyMap) FullHelp() [][]key.Binding {
	columns := [][]key.Binding{h.local}
	for start := 0; start < len(h.global); start += helpColumnSize {
		end := min(start+helpColumnSize, len(h.global))
		columns = append(columns, h.global[start:end])
	}
	return columns
}
