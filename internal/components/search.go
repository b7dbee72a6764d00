package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bloopai/bloop-tui/internal/keyboard"
	"github.com/bloopai/bloop-tui/internal/state"
	"github.com/bloopai/bloop-tui/internal/types"
	"github.com/bloopai/bloop-tui/internal/ui"
)

const (
	searchPlaceholder      = "Search code, press / to focus"
	regexSearchPlaceholder = "Search with a regular expression"
)

// Search is the code search bar. While focused it is the text-editing
// control: unmodified printable keys belong to it, not to shortcuts.
type Search struct {
	input textinput.Model
	regex bool
	theme *ui.Theme
	keys  *keyboard.Keys
	width int

	unsubscribe func()
}

// NewSearch creates a search bar following the regex slice
func NewSearch(regex state.Reader[bool], keys *keyboard.Keys, theme *ui.Theme) *Search {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 256

	s := &Search{input: ti, keys: keys, theme: theme}
	s.unsubscribe = subscribeValue(regex, func(on bool) {
		s.regex = on
		if on {
			s.input.Placeholder = regexSearchPlaceholder
		} else {
			s.input.Placeholder = searchPlaceholder
		}
	})
	return s
}

// Close drops the regex subscription
func (s *Search) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

func (s *Search) SetTheme(theme *ui.Theme) {
	s.theme = theme
}

func (s *Search) SetWidth(width int) {
	s.width = width
	s.input.Width = max(width-12, 10)
}

// Focus gives the search input the cursor
func (s *Search) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur takes the cursor away from the search input
func (s *Search) Blur() {
	s.input.Blur()
}

// Focused reports whether the search input is the text-editing control
func (s *Search) Focused() bool {
	return s.input.Focused()
}

// Value returns the current query
func (s *Search) Value() string {
	return s.input.Value()
}

// Update handles keys while focused. Enter submits the query.
func (s *Search) Update(msg tea.Msg) (*Search, tea.Cmd) {
	if !s.input.Focused() {
		return s, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, s.keys.Select):
			query, regex := s.input.Value(), s.regex
			return s, func() tea.Msg {
				return types.SearchSubmitMsg{Query: query, Regex: regex}
			}
		case key.Matches(msg, s.keys.Blur):
			s.input.Blur()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Search) View() string {
	mode := lipgloss.NewStyle().Foreground(s.theme.Dimmed)
	label := "text"
	if s.regex {
		mode = mode.Foreground(s.theme.Primary).Bold(true)
		label = ".*"
	}

	border := s.theme.Border
	if s.input.Focused() {
		border = s.theme.Primary
	}

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(border).
		Width(s.width).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, s.input.View(), "  ", mode.Render(label)))
}
