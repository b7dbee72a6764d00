package commandbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bloopai/bloop-tui/internal/actions"
	"github.com/bloopai/bloop-tui/internal/keyboard"
	"github.com/bloopai/bloop-tui/internal/state"
	"github.com/bloopai/bloop-tui/internal/ui"
)

// CommandBar renders the command bar slices. Visibility and the current
// step live in the store; the bar only writes them on its own close and
// back events.
type CommandBar struct {
	store *state.Store

	visible bool
	step    state.CommandBarStep
	width   int
	theme   *ui.Theme
	keys    *keyboard.Keys

	input   textinput.Model
	palette *Palette

	unsubscribe []func()
}

// New creates a command bar listing list on its home step.
func New(store *state.Store, list []actions.Action, keys *keyboard.Keys, theme *ui.Theme) *CommandBar {
	ti := textinput.New()
	ti.Prompt = ": "
	ti.Placeholder = "Type a command"
	ti.CharLimit = 64

	cb := &CommandBar{
		store:   store,
		width:   80,
		theme:   theme,
		keys:    keys,
		input:   ti,
		palette: NewPalette(list, theme, 80),
	}

	cb.unsubscribe = append(cb.unsubscribe,
		subscribe(store.CommandBarStep, cb.onStep),
		subscribe(store.CommandBarVisible, cb.onVisible),
	)
	return cb
}

func subscribe[T comparable](r state.Reader[T], fn func(T)) func() {
	fn(r.Get())
	return r.Subscribe(fn)
}

// Close drops the bar's subscriptions.
func (cb *CommandBar) Close() {
	for _, u := range cb.unsubscribe {
		u()
	}
	cb.unsubscribe = nil
}

func (cb *CommandBar) onVisible(visible bool) {
	cb.visible = visible
	if !visible {
		cb.input.Blur()
		return
	}
	cb.resetHome()
}

func (cb *CommandBar) onStep(step state.CommandBarStep) {
	cb.step = step
	if cb.visible {
		cb.resetHome()
	}
}

// resetHome clears the query and refocuses the input on the home step.
func (cb *CommandBar) resetHome() {
	cb.input.SetValue("")
	if cb.step.ID != state.StepHome {
		cb.input.Blur()
		cb.palette.Reset()
		return
	}
	cb.input.Focus()
	cb.palette.Filter("")
}

// SetWidth updates component widths.
func (cb *CommandBar) SetWidth(width int) {
	cb.width = width
	cb.palette.SetWidth(width)
	cb.input.Width = max(width-6, 10)
}

// SetTheme swaps the palette colors.
func (cb *CommandBar) SetTheme(theme *ui.Theme) {
	cb.theme = theme
	cb.palette.SetTheme(theme)
}

// IsVisible reports whether the bar is shown.
func (cb *CommandBar) IsVisible() bool {
	return cb.visible
}

// Step returns the step being shown.
func (cb *CommandBar) Step() state.CommandBarStep {
	return cb.step
}

// InputFocused reports whether the query input is the text-editing
// control.
func (cb *CommandBar) InputFocused() bool {
	return cb.visible && cb.input.Focused()
}

// Query returns the current filter text.
func (cb *CommandBar) Query() string {
	return cb.input.Value()
}

// Palette exposes the filtered action list.
func (cb *CommandBar) Palette() *Palette {
	return cb.palette
}

// Update handles messages while the bar is visible. Esc goes back to the
// home step, or closes the bar from home.
func (cb *CommandBar) Update(msg tea.Msg) (*CommandBar, tea.Cmd) {
	if !cb.visible {
		return cb, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		cb.input, cmd = cb.input.Update(msg)
		return cb, cmd
	}

	switch {
	case key.Matches(keyMsg, cb.keys.Close):
		if cb.step.ID != state.StepHome {
			cb.store.CommandBarStep.Set(state.CommandBarStep{ID: state.StepHome})
		} else {
			cb.store.CommandBarVisible.Set(false)
		}
		return cb, nil
	}

	if cb.step.ID != state.StepHome {
		return cb, nil
	}

	switch {
	case key.Matches(keyMsg, cb.keys.Up):
		cb.palette.NavigateUp()
		return cb, nil
	case key.Matches(keyMsg, cb.keys.Down):
		cb.palette.NavigateDown()
		return cb, nil
	case key.Matches(keyMsg, cb.keys.Select):
		selected := cb.palette.GetSelected()
		if selected == nil {
			return cb, nil
		}
		return cb, selected.Effect()
	}

	before := cb.input.Value()
	var cmd tea.Cmd
	cb.input, cmd = cb.input.Update(keyMsg)
	if cb.input.Value() != before {
		cb.palette.Filter(cb.input.Value())
	}
	return cb, cmd
}

// View renders the bar between two separators. Hidden bars render empty.
func (cb *CommandBar) View() string {
	if !cb.visible {
		return ""
	}

	separator := lipgloss.NewStyle().
		Foreground(cb.theme.Border).
		Render(strings.Repeat("─", max(cb.width, 1)))

	page := pageFor(cb.step.ID)
	title := lipgloss.NewStyle().
		Foreground(cb.theme.Primary).
		Bold(true).
		Padding(0, 1).
		Render(page.title)
	hint := lipgloss.NewStyle().
		Foreground(cb.theme.Dimmed).
		Render(page.hint)

	sections := []string{separator, lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", hint)}
	if cb.step.ID == state.StepHome {
		sections = append(sections, cb.input.View(), cb.palette.View())
	} else {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(cb.theme.Muted).
			Padding(0, 1).
			Render(page.empty))
	}
	sections = append(sections, separator)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
