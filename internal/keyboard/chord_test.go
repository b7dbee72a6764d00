package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want Chord
	}{
		{name: "option digit", spec: "option+1", want: Chord{Mods: ModAlt, Key: "1"}},
		{name: "cmd letter upper", spec: "cmd+P", want: Chord{Mods: ModPrimary, Key: "p"}},
		{name: "three tokens", spec: "cmd+shift+P", want: Chord{Mods: ModPrimary | ModShift, Key: "p"}},
		{name: "modifier order irrelevant", spec: "shift+cmd+p", want: Chord{Mods: ModPrimary | ModShift, Key: "p"}},
		{name: "ctrl aliases cmd", spec: "ctrl+p", want: Chord{Mods: ModPrimary, Key: "p"}},
		{name: "alt aliases option", spec: "Alt+R", want: Chord{Mods: ModAlt, Key: "r"}},
		{name: "symbol", spec: "cmd+/", want: Chord{Mods: ModPrimary, Key: "/"}},
		{name: "plus key", spec: "ctrl++", want: Chord{Mods: ModPrimary, Key: "+"}},
		{name: "named key alias", spec: "Escape", want: Chord{Key: "esc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		spec string
		err  error
	}{
		{name: "empty", spec: "  ", err: ErrEmptyChord},
		{name: "only modifiers", spec: "cmd+shift", err: ErrNoTerminalKey},
		{name: "single modifier", spec: "option", err: ErrNoTerminalKey},
		{name: "two keys", spec: "cmd+a+b", err: ErrMultipleTerminalKeys},
		{name: "dangling separator", spec: "cmd+", err: ErrEmptyChord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.spec)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParseTokens_MatchesParse(t *testing.T) {
	fromTokens, err := ParseTokens([]string{"cmd", "shift", "P"})
	require.NoError(t, err)
	fromString, err := Parse("shift+cmd+p")
	require.NoError(t, err)

	assert.Equal(t, fromString, fromTokens)
}

func TestChord_String(t *testing.T) {
	assert.Equal(t, "cmd+shift+p", MustParse("shift+ctrl+P").String())
	assert.Equal(t, "option+1", MustParse("alt+1").String())
	assert.Equal(t, "esc", MustParse("esc").String())
}

func TestChord_Display(t *testing.T) {
	assert.Equal(t, "Ctrl+Shift+P", MustParse("cmd+shift+p").Display())
	assert.Equal(t, "Alt+1", MustParse("option+1").Display())
	assert.Equal(t, "Alt+Enter", MustParse("option+enter").Display())
}

func TestChord_TeaKey(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{spec: "cmd+p", want: "ctrl+p"},
		{spec: "cmd+shift+p", want: "ctrl+p"},
		{spec: "cmd+/", want: "ctrl+_"},
		{spec: "option+1", want: "alt+1"},
		{spec: "option+shift+q", want: "alt+Q"},
		{spec: "shift+tab", want: "shift+tab"},
		{spec: "f1", want: "f1"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParse(tt.spec).TeaKey())
		})
	}
}

func TestChord_Predicates(t *testing.T) {
	assert.True(t, MustParse("cmd+p").IsModified())
	assert.True(t, MustParse("option+1").IsModified())
	assert.False(t, MustParse("shift+p").IsModified(), "shift alone is typing")

	assert.True(t, MustParse("p").IsPrintable())
	assert.True(t, MustParse("/").IsPrintable())
	assert.False(t, MustParse("enter").IsPrintable())
	assert.True(t, MustParse("space").IsPrintable())
	assert.True(t, NewChord(ModNone, " ").IsPrintable())

	assert.True(t, Chord{Mods: ModPrimary}.IsZero())
	assert.False(t, MustParse("p").IsZero())
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("cmd+shift") })
}
