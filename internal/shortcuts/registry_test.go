package shortcuts

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloopai/bloop-tui/internal/actions"
	"github.com/bloopai/bloop-tui/internal/keyboard"
	"github.com/bloopai/bloop-tui/internal/state"
)

// noop is an effect that does nothing
func noop() tea.Cmd { return nil }

func testAction(name, chord string) actions.Action {
	return actions.Action{
		Name:   actions.Name(name),
		Chord:  keyboard.MustParse(chord),
		Effect: noop,
	}
}

func TestNewRegistry_Catalog(t *testing.T) {
	store := state.NewStore(state.Options{})
	catalog := actions.Catalog(store, actions.Deps{})

	registry, err := NewRegistry(catalog...)
	require.NoError(t, err)
	assert.Equal(t, len(catalog), registry.Len())

	// No two registered actions share a chord
	seen := make(map[keyboard.Chord]actions.Name)
	for _, a := range registry.Actions() {
		prev, dup := seen[a.Chord]
		assert.False(t, dup, "%s and %s share %s", prev, a.Name, a.Chord)
		seen[a.Chord] = a.Name
	}
}

func TestRegistry_RegisterDuplicateChord(t *testing.T) {
	registry, err := NewRegistry(testAction("first", "cmd+p"))
	require.NoError(t, err)

	// Spelling and modifier order do not hide a duplicate
	err = registry.Register(testAction("second", "P+ctrl"))
	require.Error(t, err)

	var dup *DuplicateChordError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, actions.Name("first"), dup.Existing)
	assert.Equal(t, actions.Name("second"), dup.Incoming)
	assert.Equal(t, keyboard.MustParse("cmd+p"), dup.Chord)
	assert.Contains(t, err.Error(), "cmd+p")

	// First registration is kept, not replaced
	a, ok := registry.Resolve(keyboard.MustParse("cmd+p"))
	require.True(t, ok)
	assert.Equal(t, actions.Name("first"), a.Name)
	assert.Equal(t, 1, registry.Len())
}

func TestNewRegistry_ReportsEveryFault(t *testing.T) {
	registry, err := NewRegistry(
		testAction("a", "cmd+p"),
		testAction("b", "cmd+p"),
		testAction("c", "option+1"),
		testAction("d", "alt+1"),
	)
	assert.Nil(t, registry)

	var dup *DuplicateChordError
	require.True(t, errors.As(err, &dup))
	assert.Contains(t, err.Error(), `"a" and "b"`)
	assert.Contains(t, err.Error(), `"c" and "d"`)
}

func TestRegistry_RegisterRejects(t *testing.T) {
	tests := []struct {
		name   string
		action actions.Action
		err    error
	}{
		{
			name:   "plain letter",
			action: testAction("plain", "p"),
			err:    ErrUnmodifiedPrintable,
		},
		{
			name:   "shift only letter",
			action: testAction("shifted", "shift+p"),
			err:    ErrUnmodifiedPrintable,
		},
		{
			name:   "plain symbol",
			action: testAction("slash", "/"),
			err:    ErrUnmodifiedPrintable,
		},
		{
			name:   "plain space",
			action: testAction("space", "space"),
			err:    ErrUnmodifiedPrintable,
		},
		{
			name:   "no terminal key",
			action: actions.Action{Name: "mods", Chord: keyboard.Chord{Mods: keyboard.ModPrimary}, Effect: noop},
			err:    keyboard.ErrNoTerminalKey,
		},
		{
			name:   "no effect",
			action: actions.Action{Name: "empty", Chord: keyboard.MustParse("cmd+e")},
			err:    ErrNoEffect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, err := NewRegistry()
			require.NoError(t, err)

			assert.ErrorIs(t, registry.Register(tt.action), tt.err)
			assert.Equal(t, 0, registry.Len())
		})
	}
}

func TestRegistry_RegisterNamedKeyWithoutModifier(t *testing.T) {
	registry, err := NewRegistry(testAction("help", "f1"))
	require.NoError(t, err)

	_, ok := registry.Resolve(keyboard.MustParse("F1"))
	assert.True(t, ok)
}

func TestRegistry_RegisterDuplicateName(t *testing.T) {
	registry, err := NewRegistry(testAction("same", "cmd+a"))
	require.NoError(t, err)

	assert.ErrorIs(t, registry.Register(testAction("same", "cmd+b")), ErrDuplicateName)
}

func TestRegistry_ResolveModifierOnlyChords(t *testing.T) {
	store := state.NewStore(state.Options{})
	registry, err := NewRegistry(actions.Catalog(store, actions.Deps{})...)
	require.NoError(t, err)

	tokens := []string{"cmd", "option", "shift"}
	for mask := 0; mask < 1<<len(tokens); mask++ {
		var spec []string
		var mods keyboard.Modifier
		for i, tok := range tokens {
			if mask&(1<<i) != 0 {
				spec = append(spec, tok)
				m, _ := keyboard.ModifierFromName(tok)
				mods = mods.With(m)
			}
		}

		_, err := keyboard.ParseTokens(spec)
		if len(spec) > 0 {
			assert.ErrorIs(t, err, keyboard.ErrNoTerminalKey, "%v", spec)
		}

		_, ok := registry.Resolve(keyboard.Chord{Mods: mods})
		assert.False(t, ok, "%v must not resolve", spec)
	}
}

func TestRegistry_Unregister(t *testing.T) {
	registry, err := NewRegistry(
		testAction("a", "cmd+a"),
		testAction("b", "cmd+b"),
		testAction("c", "cmd+c"),
	)
	require.NoError(t, err)

	assert.True(t, registry.Unregister("b"))
	assert.False(t, registry.Unregister("b"))

	_, ok := registry.Resolve(keyboard.MustParse("cmd+b"))
	assert.False(t, ok)

	// Remaining actions keep order and stay resolvable
	names := []actions.Name{}
	for _, a := range registry.Actions() {
		names = append(names, a.Name)
	}
	assert.Equal(t, []actions.Name{"a", "c"}, names)

	c, ok := registry.Resolve(keyboard.MustParse("cmd+c"))
	require.True(t, ok)
	assert.Equal(t, actions.Name("c"), c.Name)

	// The freed chord can be bound again
	assert.NoError(t, registry.Register(testAction("b2", "cmd+b")))
}

func TestRegistry_Get(t *testing.T) {
	registry, err := NewRegistry(testAction("a", "cmd+a"))
	require.NoError(t, err)

	a, ok := registry.Get("a")
	require.True(t, ok)
	assert.Equal(t, keyboard.MustParse("cmd+a"), a.Chord)

	_, ok = registry.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_Bindings(t *testing.T) {
	registry, err := NewRegistry(
		actions.Action{Name: "regex", Description: "Toggle regex", Chord: keyboard.MustParse("cmd+/"), Effect: noop},
		actions.Action{Name: "light", Description: "Light theme", Chord: keyboard.MustParse("option+1"), Effect: noop},
	)
	require.NoError(t, err)

	bindings := registry.Bindings()
	require.Len(t, bindings, 2)
	assert.Equal(t, []string{"ctrl+_"}, bindings[0].Keys())
	assert.Equal(t, "Ctrl+/", bindings[0].Help().Key)
	assert.Equal(t, "Toggle regex", bindings[0].Help().Desc)
	assert.Equal(t, []string{"alt+1"}, bindings[1].Keys())
}
