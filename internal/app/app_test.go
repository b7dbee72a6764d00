package app

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloopai/bloop-tui/internal/actions"
	"github.com/bloopai/bloop-tui/internal/config"
	"github.com/bloopai/bloop-tui/internal/shortcuts"
	"github.com/bloopai/bloop-tui/internal/state"
	"github.com/bloopai/bloop-tui/internal/types"
)

type fakeLinks struct{ opened []string }

func (f *fakeLinks) OpenLink(url string) error {
	f.opened = append(f.opened, url)
	return nil
}

type fakeAuth struct {
	calls int
	err   error
}

func (f *fakeAuth) SignOut(context.Context) error {
	f.calls++
	return f.err
}

type fakeReporter struct{ reports []string }

func (f *fakeReporter) Report(_ context.Context, description string) (string, error) {
	f.reports = append(f.reports, description)
	return "/tmp/report.yaml", nil
}

// steppingClock advances one second per call so no two keys look like
// auto-repeat unless a test says otherwise.
func steppingClock() func() time.Time {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func newTestModel(t *testing.T, cfg *config.Config) (*Model, *fakeLinks, *fakeAuth) {
	t.Helper()

	links, auth := &fakeLinks{}, &fakeAuth{}
	m, err := Build(Options{
		Config:         cfg,
		ConfigPath:     "/tmp/config.yaml",
		Links:          links,
		Auth:           auth,
		Reporter:       &fakeReporter{},
		DarkBackground: func() bool { return true },
		Now:            steppingClock(),
	})
	require.NoError(t, err)
	t.Cleanup(m.Close)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, links, auth
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

var (
	keyEsc       = tea.KeyMsg{Type: tea.KeyEsc}
	keyCtrlP     = tea.KeyMsg{Type: tea.KeyCtrlP}
	keyCtrlSlash = tea.KeyMsg{Type: tea.KeyCtrlUnderscore}
)

func keyAlt(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestBuild_Defaults(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	assert.Equal(t, state.ThemeSystem, m.Store().Theme.Get())
	assert.Equal(t, 17, m.dispatcher.Registry().Len())
	assert.Contains(t, m.View(), "bloop")
}

func TestBuild_ConfigFaults(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr error
	}{
		{
			name: "unknown theme",
			cfg:  &config.Config{Theme: "sepia"},
		},
		{
			name: "bad repeat window",
			cfg:  &config.Config{RepeatWindow: "soon"},
		},
		{
			name:    "unknown action",
			cfg:     &config.Config{Keybindings: map[string]string{"launch-rockets": "cmd+r"}},
			wantErr: actions.ErrUnknownAction,
		},
		{
			name: "duplicate chord",
			cfg:  &config.Config{Keybindings: map[string]string{string(actions.OpenSettings): "option+1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(Options{Config: tt.cfg})
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestBuild_DuplicateChordIsTyped(t *testing.T) {
	cfg := &config.Config{Keybindings: map[string]string{string(actions.OpenSettings): "option+1"}}

	_, err := Build(Options{Config: cfg})

	var dup *shortcuts.DuplicateChordError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, actions.ToggleLightTheme, dup.Existing)
	assert.Equal(t, actions.OpenSettings, dup.Incoming)
}

func TestModel_ThemeShortcut(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	send(m, keyAlt('1'))
	assert.Equal(t, state.ThemeLight, m.Store().Theme.Get())
	assert.Contains(t, m.View(), "theme: light")

	send(m, keyAlt('3'))
	assert.Equal(t, state.ThemeBlack, m.Store().Theme.Get())
	assert.Contains(t, m.View(), "theme: black")
}

func TestModel_ShortcutWhileSearchFocused(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	send(m, keyRune('/'))
	require.True(t, m.search.Focused())

	send(m, keyRune('f'), keyRune('o'), keyRune('o'))
	send(m, keyAlt('2'))

	assert.Equal(t, state.ThemeDark, m.Store().Theme.Get())
	assert.Equal(t, "foo", m.search.Value(), "the handled chord never reaches the input")
}

func TestModel_ToggleRegex(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	send(m, keyCtrlSlash)
	assert.True(t, m.Store().RegexSearch.Get())
	assert.Contains(t, m.View(), "regex")

	send(m, keyCtrlSlash)
	assert.False(t, m.Store().RegexSearch.Get())
}

func TestModel_CommandBarFlow(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	send(m, keyCtrlP)
	assert.True(t, m.Store().CommandBarVisible.Get())
	assert.Equal(t, state.StepPrivateRepos, m.Store().CommandBarStep.Get().ID)
	assert.Contains(t, m.View(), "Private repositories")

	// Esc goes back home, then closes
	send(m, keyEsc)
	assert.Equal(t, state.StepHome, m.Store().CommandBarStep.Get().ID)
	send(m, keyEsc)
	assert.False(t, m.Store().CommandBarVisible.Get())
}

func TestModel_SettingsClosesCommandBar(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	send(m, keyRune(':'))
	require.True(t, m.Store().CommandBarVisible.Get())

	send(m, keyAlt('s'))

	assert.False(t, m.Store().CommandBarVisible.Get())
	assert.True(t, m.Store().SettingsOpen.Get())
	assert.Equal(t, state.SettingsSubscription, m.Store().SettingsSection.Get())
	assert.Contains(t, m.View(), "Subscription details")
	assert.Zero(t, m.overlayConflicts)

	send(m, keyEsc)
	assert.False(t, m.Store().SettingsOpen.Get())
}

func TestModel_CommandBarTypingIsNotIntercepted(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	send(m, keyRune(':'))
	send(m, keyRune('d'), keyRune('o'), keyRune('c'), keyRune('s'))

	assert.Equal(t, "docs", m.commandBar.Query())
	assert.True(t, m.Store().CommandBarVisible.Get())
}

func TestModel_ReportBug(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	send(m, keyAlt('b'))
	require.True(t, m.Store().BugReportOpen.Get())
	assert.Contains(t, m.View(), "Report a bug")

	send(m, keyRune('x'))
	assert.Equal(t, "x", m.bugReport.Value())

	cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.False(t, m.Store().BugReportOpen.Get())
}

func TestModel_OpenAppDocs(t *testing.T) {
	m, links, _ := newTestModel(t, nil)

	cmd := send(m, keyAlt('d'))
	require.NotNil(t, cmd)

	msg, ok := cmd().(types.StatusMsg)
	require.True(t, ok)
	assert.Equal(t, []string{actions.DefaultDocsURL}, links.opened)

	send(m, msg)
	text, _ := m.userMessage.Message()
	assert.Contains(t, text, actions.DefaultDocsURL)
}

func TestModel_SignOut(t *testing.T) {
	m, _, auth := newTestModel(t, nil)

	cmd := send(m, keyAlt('Q'))
	require.NotNil(t, cmd)
	assert.True(t, m.Store().SigningOut.Get())
	assert.True(t, m.userMessage.IsLoadingMessage())

	// A second press while in flight does nothing
	send(m, keyAlt('Q'))
	assert.Zero(t, auth.calls)

	send(m, actions.SignOutResultMsg{})
	assert.False(t, m.Store().SigningOut.Get())
	text, msgType := m.userMessage.Message()
	assert.Equal(t, "Signed out", text)
	assert.Equal(t, types.MessageTypeSuccess, msgType)
}

func TestModel_SignOutFailure(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	send(m, keyAlt('Q'))
	send(m, actions.SignOutResultMsg{Err: errors.New("network down")})

	assert.False(t, m.Store().SigningOut.Get())
	text, msgType := m.userMessage.Message()
	assert.Contains(t, text, "network down")
	assert.Equal(t, types.MessageTypeError, msgType)
}

func TestModel_StatusClears(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	send(m, types.InfoMsg("first"))
	send(m, types.InfoMsg("second"))

	// A stale clear leaves the newer message alone
	send(m, types.ClearStatusMsg{MessageID: 1})
	text, _ := m.userMessage.Message()
	assert.Equal(t, "second", text)

	send(m, types.ClearStatusMsg{MessageID: 2})
	text, _ = m.userMessage.Message()
	assert.Empty(t, text)
}

func TestModel_SearchSubmit(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	send(m, types.SearchSubmitMsg{Query: "fn main", Regex: false})
	assert.Contains(t, m.View(), `Searching for "fn main" (text)`)

	send(m, types.SearchSubmitMsg{Query: "(", Regex: true})
	assert.Contains(t, m.View(), "Invalid regular expression")
}

func TestModel_OverlayConflictIsReported(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	// Settings is open when report-bug fires; nothing closes it
	send(m, keyAlt('a'))
	send(m, keyAlt('b'))

	assert.True(t, m.Store().SettingsOpen.Get())
	assert.True(t, m.Store().BugReportOpen.Get())
	assert.Equal(t, 1, m.overlayConflicts)
}

func TestModel_ConfiguredOverride(t *testing.T) {
	cfg := config.Default()
	cfg.Keybindings = map[string]string{string(actions.OpenPublicRepos): "option+u"}
	m, _, _ := newTestModel(t, cfg)

	send(m, keyAlt('u'))

	assert.True(t, m.Store().CommandBarVisible.Get())
	assert.Equal(t, state.StepPublicRepos, m.Store().CommandBarStep.Get().ID)
}

func TestModel_HelpToggle(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	assert.NotContains(t, m.View(), "Use the light theme")
	send(m, keyRune('?'))
	assert.Contains(t, m.View(), "Use the light theme")
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
