package keyboard

import "strings"

// Modifier is a set of logical modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModPrimary is the platform's command modifier: Cmd on macOS,
	// Ctrl elsewhere. Both names collapse to this token so bindings are
	// portable across hosts.
	ModPrimary Modifier = 1 << iota

	// ModAlt is Alt, called Option on macOS.
	ModAlt

	// ModShift is the Shift key.
	ModShift
)

// modifierOrder is the canonical order modifiers are printed in.
var modifierOrder = []Modifier{ModPrimary, ModAlt, ModShift}

// modifierNames maps every accepted spelling (lower case) to its modifier.
var modifierNames = map[string]Modifier{
	"cmd":     ModPrimary,
	"command": ModPrimary,
	"ctrl":    ModPrimary,
	"control": ModPrimary,
	"meta":    ModPrimary,
	"super":   ModPrimary,
	"mod":     ModPrimary,
	"alt":     ModAlt,
	"option":  ModAlt,
	"opt":     ModAlt,
	"shift":   ModShift,
}

// Has returns true if m contains mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns m with mod added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// token returns the canonical name of a single modifier.
func (m Modifier) token() string {
	switch m {
	case ModPrimary:
		return "cmd"
	case ModAlt:
		return "option"
	case ModShift:
		return "shift"
	}
	return ""
}

// Tokens returns the canonical modifier names in fixed order.
func (m Modifier) Tokens() []string {
	var tokens []string
	for _, mod := range modifierOrder {
		if m.Has(mod) {
			tokens = append(tokens, mod.token())
		}
	}
	return tokens
}

// String returns the canonical form, e.g. "cmd+shift".
func (m Modifier) String() string {
	return strings.Join(m.Tokens(), "+")
}

// ModifierFromName returns the modifier for a name, case-insensitively.
func ModifierFromName(name string) (Modifier, bool) {
	mod, ok := modifierNames[strings.ToLower(strings.TrimSpace(name))]
	return mod, ok
}

// IsModifierName reports whether name spells a modifier key. A key event
// whose key is a modifier name is a bare modifier press.
func IsModifierName(name string) bool {
	_, ok := ModifierFromName(name)
	return ok
}
