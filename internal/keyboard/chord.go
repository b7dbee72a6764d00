package keyboard

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptyChord           = errors.New("empty chord")
	ErrNoTerminalKey        = errors.New("chord has no terminal key")
	ErrMultipleTerminalKeys = errors.New("chord has more than one terminal key")
)

// keyAliases folds alternative spellings of named keys onto one token.
var keyAliases = map[string]string{
	" ":          "space",
	"spacebar":   "space",
	"escape":     "esc",
	"return":     "enter",
	"del":        "delete",
	"arrowup":    "up",
	"arrowdown":  "down",
	"arrowleft":  "left",
	"arrowright": "right",
}

// Chord is a key combination: a set of modifiers plus exactly one terminal
// key. Chords are comparable values; two chords are equal iff their
// modifier sets and terminal keys are equal.
type Chord struct {
	Mods Modifier
	Key  string
}

// NewChord builds a chord from modifiers and a terminal key, normalizing
// the key token.
func NewChord(mods Modifier, key string) Chord {
	return Chord{Mods: mods, Key: normalizeKey(key)}
}

// normalizeKey lower-cases a terminal key and folds aliases.
func normalizeKey(key string) string {
	if key == " " {
		return "space"
	}
	key = strings.ToLower(strings.TrimSpace(key))
	if alias, ok := keyAliases[key]; ok {
		return alias
	}
	return key
}

// Parse parses a chord such as "cmd+shift+P", "option+1" or "ctrl++".
// Modifier order is irrelevant and the terminal key is case-insensitive.
func Parse(spec string) (Chord, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Chord{}, ErrEmptyChord
	}

	// A trailing "++" means the terminal key is "+" itself
	var tokens []string
	if spec == "+" {
		tokens = []string{"+"}
	} else if strings.HasSuffix(spec, "++") {
		tokens = append(strings.Split(strings.TrimSuffix(spec, "++"), "+"), "+")
	} else {
		tokens = strings.Split(spec, "+")
	}

	chord, err := ParseTokens(tokens)
	if err != nil {
		return Chord{}, fmt.Errorf("parse chord %q: %w", spec, err)
	}
	return chord, nil
}

// MustParse is like Parse but panics on error. It is meant for chords
// written as literals in the action catalog.
func MustParse(spec string) Chord {
	chord, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return chord
}

// ParseTokens builds a chord from a token list such as
// []string{"cmd", "shift", "P"}.
func ParseTokens(tokens []string) (Chord, error) {
	if len(tokens) == 0 {
		return Chord{}, ErrEmptyChord
	}

	var chord Chord
	var terminal []string
	for _, tok := range tokens {
		if strings.TrimSpace(tok) == "" && tok != " " {
			return Chord{}, ErrEmptyChord
		}
		if mod, ok := ModifierFromName(tok); ok {
			chord.Mods = chord.Mods.With(mod)
			continue
		}
		terminal = append(terminal, tok)
	}

	switch len(terminal) {
	case 0:
		return Chord{}, ErrNoTerminalKey
	case 1:
		chord.Key = normalizeKey(terminal[0])
		return chord, nil
	default:
		return Chord{}, fmt.Errorf("%w: %s", ErrMultipleTerminalKeys, strings.Join(terminal, ", "))
	}
}

// IsZero reports whether the chord has no terminal key. A zero chord never
// resolves to an action.
func (c Chord) IsZero() bool {
	return c.Key == ""
}

// IsModified reports whether the chord carries a primary or alt modifier.
// Shift alone does not count: shift+letter is ordinary typing.
func (c Chord) IsModified() bool {
	return c.Mods.Has(ModPrimary) || c.Mods.Has(ModAlt)
}

// IsPrintable reports whether the terminal key types a character: a single
// printable rune or "space", as opposed to a named key such as "enter" or
// "f1".
func (c Chord) IsPrintable() bool {
	if c.Key == "space" {
		return true
	}
	if utf8.RuneCountInString(c.Key) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(c.Key)
	return unicode.IsPrint(r) && !unicode.IsSpace(r)
}

// String returns the canonical form: modifiers in fixed order then the
// lower-case key, e.g. "cmd+shift+p".
func (c Chord) String() string {
	if c.Mods == ModNone {
		return c.Key
	}
	return c.Mods.String() + "+" + c.Key
}

// Display returns the chord as shown to terminal users, e.g. "Ctrl+Shift+P".
func (c Chord) Display() string {
	var parts []string
	if c.Mods.Has(ModPrimary) {
		parts = append(parts, "Ctrl")
	}
	if c.Mods.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if c.Mods.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	key := c.Key
	if utf8.RuneCountInString(key) == 1 {
		key = strings.ToUpper(key)
	} else if key != "" {
		key = strings.ToUpper(key[:1]) + key[1:]
	}
	return strings.Join(append(parts, key), "+")
}

// TeaKey returns the string Bubble Tea reports for this chord. Terminals
// cannot report shift together with ctrl, so the shift bit is dropped for
// primary chords; "cmd+/" arrives as "ctrl+_".
func (c Chord) TeaKey() string {
	key := c.Key
	if key == "space" {
		key = " "
	}

	var s string
	switch {
	case c.Mods.Has(ModPrimary):
		if key == "/" {
			key = "_"
		}
		s = "ctrl+" + key
	case c.Mods.Has(ModShift) && utf8.RuneCountInString(key) == 1:
		s = strings.ToUpper(key)
	case c.Mods.Has(ModShift):
		s = "shift+" + key
	default:
		s = key
	}

	if c.Mods.Has(ModAlt) {
		s = "alt+" + s
	}
	return s
}
