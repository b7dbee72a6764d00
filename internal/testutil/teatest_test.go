package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/bloopai/bloop-tui/internal/keyboard"
)

func TestChordMsg(t *testing.T) {
	tests := []struct {
		chord string
		want  tea.KeyMsg
	}{
		{"cmd+p", tea.KeyMsg{Type: tea.KeyCtrlP}},
		{"cmd+/", tea.KeyMsg{Type: tea.KeyCtrlUnderscore}},
		{"option+1", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}, Alt: true}},
		{"option+shift+q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Q'}, Alt: true}},
		{"alt+space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}, Alt: true}},
	}

	for _, tt := range tests {
		t.Run(tt.chord, func(t *testing.T) {
			assert.Equal(t, tt.want, ChordMsg(keyboard.MustParse(tt.chord)))
		})
	}
}

func TestChordMsg_RoundTrip(t *testing.T) {
	for _, spec := range []string{"cmd+n", "cmd+d", "cmd+/", "option+r", "option+shift+q", "alt+4"} {
		chord := keyboard.MustParse(spec)

		got, ok := keyboard.Normalize(keyboard.FromKeyMsg(ChordMsg(chord), keyboard.TargetGlobal))

		assert.True(t, ok, spec)
		assert.Equal(t, chord, got, spec)
	}
}
