package keyboard

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// Target describes what had focus when a key event was delivered.
type Target int

const (
	// TargetGlobal is any surface that does not edit text.
	TargetGlobal Target = iota
	// TargetTextInput is a focused text-editing control.
	TargetTextInput
)

// bareKeyNames are host key identifiers that are modifiers on their own
// but are not bindable modifier tokens.
var bareKeyNames = map[string]bool{
	"os":       true,
	"altgraph": true,
	"capslock": true,
	"fn":       true,
}

// Event is a raw key-down (or key-up) as delivered by the host: the key
// identifier plus a flag per held modifier.
type Event struct {
	Key    string
	Ctrl   bool
	Meta   bool
	Alt    bool
	Shift  bool
	Repeat bool // host-reported auto-repeat
	Target Target
}

// Normalize turns an event into a chord. Ctrl and Meta both map to the
// primary modifier. Modifiers come only from the event flags; the case of
// the key is ignored, so Caps Lock never changes the chord. It returns
// false when the event has no terminal key, e.g. a bare modifier press.
func Normalize(ev Event) (Chord, bool) {
	key := ev.Key
	if key == "" {
		return Chord{}, false
	}
	lower := strings.ToLower(key)
	if IsModifierName(lower) || bareKeyNames[lower] {
		return Chord{}, false
	}

	var mods Modifier
	if ev.Ctrl || ev.Meta {
		mods = mods.With(ModPrimary)
	}
	if ev.Alt {
		mods = mods.With(ModAlt)
	}
	if ev.Shift {
		mods = mods.With(ModShift)
	}

	return NewChord(mods, key), true
}

// FromKeyMsg converts a Bubble Tea key message into an Event. Pastes never
// produce a terminal key so they can not trigger shortcuts. Terminals send
// no shift flag for runes, so an upper-case rune is read as shift.
func FromKeyMsg(msg tea.KeyMsg, target Target) Event {
	ev := Event{Alt: msg.Alt, Target: target}

	switch msg.Type {
	case tea.KeyRunes:
		if msg.Paste || len(msg.Runes) != 1 {
			return ev
		}
		ev.Key = string(msg.Runes)
		ev.Shift = unicode.IsUpper(msg.Runes[0])
		return ev
	case tea.KeySpace:
		ev.Key = "space"
		return ev
	}

	name := msg.String()
	if msg.Alt {
		name = strings.TrimPrefix(name, "alt+")
	}
	if rest, ok := strings.CutPrefix(name, "ctrl+"); ok {
		ev.Ctrl = true
		name = rest
	}
	if rest, ok := strings.CutPrefix(name, "shift+"); ok {
		ev.Shift = true
		name = rest
	}

	// Terminals encode ctrl+/ as ctrl+_ (0x1f)
	if ev.Ctrl && name == "_" {
		name = "/"
	}
	ev.Key = name
	return ev
}
