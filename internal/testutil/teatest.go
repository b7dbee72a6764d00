package testutil

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloopai/bloop-tui/internal/keyboard"
	"github.com/bloopai/bloop-tui/internal/types"
)

// settle is how long Send waits for the program to apply a message.
const settle = 50 * time.Millisecond

// TestProgram runs a real Bubble Tea program against an in-memory terminal
type TestProgram struct {
	program *tea.Program
	output  *syncBuffer
	t       *testing.T
}

// syncBuffer lets the test read output while the renderer writes it
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// idleInput never yields bytes; keys arrive through Send
type idleInput struct{}

func (idleInput) Read(p []byte) (int, error) {
	time.Sleep(settle)
	return 0, io.EOF
}

// NewTestProgram starts model in the background with a width x height
// window.
func NewTestProgram(t *testing.T, model tea.Model, width, height int) *TestProgram {
	t.Helper()

	output := &syncBuffer{}
	p := tea.NewProgram(
		model,
		tea.WithInput(idleInput{}),
		tea.WithOutput(output),
	)

	tp := &TestProgram{program: p, output: output, t: t}

	go func() {
		if _, err := p.Run(); err != nil {
			t.Logf("Program error: %v", err)
		}
	}()
	time.Sleep(settle)

	tp.Send(tea.WindowSizeMsg{Width: width, Height: height})
	return tp
}

// Send delivers msg and waits for it to be processed
func (tp *TestProgram) Send(msg tea.Msg) {
	tp.program.Send(msg)
	time.Sleep(settle)
}

// Type sends s one rune at a time
func (tp *TestProgram) Type(s string) {
	for _, r := range s {
		tp.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// SendKey sends a special key such as enter or esc
func (tp *TestProgram) SendKey(key tea.KeyType) {
	tp.Send(tea.KeyMsg{Type: key})
}

// SendChord sends the key message a terminal produces for chord
func (tp *TestProgram) SendChord(chord keyboard.Chord) {
	tp.Send(ChordMsg(chord))
}

// ChordMsg converts chord to a terminal key message. Terminals can not
// report shift together with ctrl, so primary+shift chords lose their
// shift.
func ChordMsg(chord keyboard.Chord) tea.KeyMsg {
	msg := tea.KeyMsg{Alt: chord.Mods.Has(keyboard.ModAlt)}
	r := []rune(chord.Key)

	if chord.Mods.Has(keyboard.ModPrimary) {
		switch {
		case chord.Key == "/":
			msg.Type = tea.KeyCtrlUnderscore
			return msg
		case len(r) == 1 && r[0] >= 'a' && r[0] <= 'z':
			msg.Type = tea.KeyCtrlA + tea.KeyType(r[0]-'a')
			return msg
		}
	}

	if len(r) == 1 {
		if chord.Mods.Has(keyboard.ModShift) {
			r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		}
		msg.Type = tea.KeyRunes
		msg.Runes = r
		return msg
	}

	if chord.Key == "space" {
		msg.Type = tea.KeySpace
		msg.Runes = []rune{' '}
	}
	return msg
}

// Output returns everything rendered so far
func (tp *TestProgram) Output() string {
	return tp.output.String()
}

// WaitForOutput polls the output until needle shows up or timeout passes
func (tp *TestProgram) WaitForOutput(needle string, timeout time.Duration) bool {
	tp.t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(tp.Output(), needle) {
			return true
		}
		time.Sleep(settle)
	}
	return false
}

// WaitForMessage waits for a status bar message of the given type
func (tp *TestProgram) WaitForMessage(msgType types.MessageType, timeout time.Duration) bool {
	tp.t.Helper()
	return tp.WaitForOutput(messagePrefix[msgType], timeout)
}

var messagePrefix = map[types.MessageType]string{
	types.MessageTypeSuccess: "✓",
	types.MessageTypeError:   "✗",
	types.MessageTypeInfo:    "ℹ",
	types.MessageTypeLoading: "Signing out",
}

// AssertContains fails the test unless the output contains expected
func (tp *TestProgram) AssertContains(expected string) {
	tp.t.Helper()

	if output := tp.Output(); !strings.Contains(output, expected) {
		tp.t.Errorf("Output does not contain %q\nGot:\n%s", expected, output)
	}
}

// AssertNotContains fails the test if the output contains notExpected
func (tp *TestProgram) AssertNotContains(notExpected string) {
	tp.t.Helper()

	if output := tp.Output(); strings.Contains(output, notExpected) {
		tp.t.Errorf("Output should not contain %q\nGot:\n%s", notExpected, output)
	}
}

// Quit stops the program
func (tp *TestProgram) Quit() {
	tp.program.Quit()
}
