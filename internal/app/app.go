package app

import (
	"fmt"
	"regexp"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bloopai/bloop-tui/internal/actions"
	"github.com/bloopai/bloop-tui/internal/components"
	"github.com/bloopai/bloop-tui/internal/components/commandbar"
	"github.com/bloopai/bloop-tui/internal/keyboard"
	"github.com/bloopai/bloop-tui/internal/logging"
	"github.com/bloopai/bloop-tui/internal/modals"
	"github.com/bloopai/bloop-tui/internal/shortcuts"
	"github.com/bloopai/bloop-tui/internal/state"
	"github.com/bloopai/bloop-tui/internal/types"
	"github.com/bloopai/bloop-tui/internal/ui"
)

// Model is the root Bubble Tea model. Key events go to the shortcut
// dispatcher first; only keys it does not handle reach the focused
// component.
type Model struct {
	store      *state.Store
	dispatcher *shortcuts.Dispatcher
	keys       *keyboard.Keys
	theme      *ui.Theme
	log        *logging.Logger

	header          *components.Header
	search          *components.Search
	commandBar      *commandbar.CommandBar
	settings        *modals.Settings
	projectSettings *modals.ProjectSettings
	bugReport       *modals.BugReport
	userMessage     *components.UserMessage
	layout          *components.Layout
	help            help.Model
	helpKeys        helpKeyMap

	width, height int
	spinning      bool
	lastSearch    types.SearchSubmitMsg
	searchErr     error

	overlayConflicts int
	unsubscribe      []func()
}

// NewModel builds the component tree over store. Every component
// subscribes to the slices it renders.
func NewModel(store *state.Store, dispatcher *shortcuts.Dispatcher, reporter modals.Reporter, info modals.SettingsInfo, darkBackground func() bool) *Model {
	keys := keyboard.Default()
	theme := ui.GetTheme(store.Theme.Get(), darkBackground)
	registry := dispatcher.Registry()
	catalog := registry.Actions()

	m := &Model{
		store:      store,
		dispatcher: dispatcher,
		keys:       keys,
		theme:      theme,
		log:        logging.Get().With("component", "app"),

		header:          components.NewHeader(components.AppName, store, darkBackground),
		search:          components.NewSearch(store.RegexSearch, keys, theme),
		commandBar:      commandbar.New(store, catalog, keys, theme),
		settings:        modals.NewSettings(store, catalog, info, keys, theme),
		projectSettings: modals.NewProjectSettings(store, DefaultProject, keys, theme),
		bugReport:       modals.NewBugReport(store, reporter, keys, theme),
		userMessage:     components.NewUserMessage(theme),
		layout:          components.NewLayout(80, 24),
		help:            help.New(),
		helpKeys:        newHelpKeyMap(keys, registry.Bindings()),
		width:           80,
		height:          24,
	}

	m.unsubscribe = append(m.unsubscribe,
		ui.WatchTheme(store.Theme, darkBackground, m.applyTheme),
		store.SigningOut.Subscribe(m.onSigningOut),
	)
	m.setWidth(80)
	return m
}

// Close drops every subscription the model and its components hold.
func (m *Model) Close() {
	for _, u := range m.unsubscribe {
		u()
	}
	m.unsubscribe = nil
	m.header.Close()
	m.search.Close()
	m.commandBar.Close()
	m.settings.Close()
	m.projectSettings.Close()
	m.bugReport.Close()
}

// Store exposes the state slices.
func (m *Model) Store() *state.Store {
	return m.store
}

func (m *Model) applyTheme(theme *ui.Theme) {
	m.theme = theme
	m.search.SetTheme(theme)
	m.commandBar.SetTheme(theme)
	m.settings.SetTheme(theme)
	m.projectSettings.SetTheme(theme)
	m.bugReport.SetTheme(theme)
	m.userMessage.SetTheme(theme)
	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Dimmed)
	m.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	m.help.Styles.FullKey = m.help.Styles.ShortKey
	m.help.Styles.FullDesc = m.help.Styles.ShortDesc
}

func (m *Model) onSigningOut(signingOut bool) {
	if signingOut {
		m.userMessage.SetMessage("Signing out", types.MessageTypeLoading)
		return
	}
	if m.userMessage.IsLoadingMessage() {
		m.userMessage.ClearMessage()
	}
	m.spinning = false
}

// checkOverlays logs when an event left more than one overlay open.
func (m *Model) checkOverlays() {
	if open, conflict := m.store.OverlayConflict(); conflict {
		m.overlayConflicts++
		m.log.Warn("More than one overlay open", "overlays", open)
	}
}

func (m *Model) setWidth(width int) {
	m.width = width
	m.header.SetWidth(width)
	m.search.SetWidth(width)
	m.commandBar.SetWidth(width)
	m.userMessage.SetWidth(width)
	m.help.Width = width
}

func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(components.AppName)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.layout.SetSize(msg.Width, msg.Height)
		m.setWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

		res := m.dispatcher.Update(msg, m.target())
		cmd := res.Cmd
		if !res.Handled {
			cmd = m.routeKey(msg)
		}
		m.checkOverlays()
		return m, m.afterEffect(cmd)

	case types.StatusMsg:
		return m, m.setStatus(msg)

	case types.ClearStatusMsg:
		m.userMessage.ClearIfCurrent(msg.MessageID)
		return m, nil

	case actions.SignOutResultMsg:
		m.store.SigningOut.Set(false)
		if msg.Err != nil {
			m.log.Error("Sign out failed", "error", msg.Err)
			return m, m.setStatus(types.ErrorStatusMsg(fmt.Sprintf("Sign out failed: %v", msg.Err)))
		}
		return m, m.setStatus(types.SuccessMsg("Signed out"))

	case types.SearchSubmitMsg:
		m.lastSearch = msg
		m.searchErr = nil
		if msg.Regex {
			if _, err := regexp.Compile(msg.Query); err != nil {
				m.searchErr = err
			}
		}
		return m, nil
	}

	// Everything else (cursor blink, spinner ticks) goes to the parts that
	// animate
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.userMessage, cmd = m.userMessage.Update(msg)
	cmds = append(cmds, cmd)
	m.search, cmd = m.search.Update(msg)
	cmds = append(cmds, cmd)
	m.commandBar, cmd = m.commandBar.Update(msg)
	cmds = append(cmds, cmd)
	m.bugReport, cmd = m.bugReport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// target reports whether the key will land in a text-editing control.
// It follows the same order as routeKey.
func (m *Model) target() keyboard.Target {
	switch {
	case m.commandBar.IsVisible():
		if m.commandBar.InputFocused() {
			return keyboard.TargetTextInput
		}
	case m.bugReport.IsOpen():
		return keyboard.TargetTextInput
	case m.settings.IsOpen(), m.projectSettings.IsOpen():
	case m.search.Focused():
		return keyboard.TargetTextInput
	}
	return keyboard.TargetGlobal
}

// routeKey forwards a key the dispatcher did not handle to the topmost
// surface.
func (m *Model) routeKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.commandBar.IsVisible():
		m.commandBar, cmd = m.commandBar.Update(msg)
	case m.bugReport.IsOpen():
		m.bugReport, cmd = m.bugReport.Update(msg)
	case m.settings.IsOpen():
		m.settings, cmd = m.settings.Update(msg)
	case m.projectSettings.IsOpen():
		m.projectSettings, cmd = m.projectSettings.Update(msg)
	case m.search.Focused():
		m.search, cmd = m.search.Update(msg)
	case key.Matches(msg, m.keys.FocusSearch):
		cmd = m.search.Focus()
	case key.Matches(msg, m.keys.Palette):
		m.store.CommandBarStep.Set(state.CommandBarStep{ID: state.StepHome})
		m.store.CommandBarVisible.Set(true)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return cmd
}

// afterEffect starts the spinner when an effect began a long-running call.
func (m *Model) afterEffect(cmd tea.Cmd) tea.Cmd {
	if m.userMessage.IsLoadingMessage() && !m.spinning {
		m.spinning = true
		return tea.Batch(cmd, m.userMessage.GetSpinnerCmd())
	}
	return cmd
}

// setStatus shows msg and schedules its removal.
func (m *Model) setStatus(msg types.StatusMsg) tea.Cmd {
	id := m.userMessage.SetMessage(msg.Message, msg.Type)
	m.spinning = false
	return tea.Tick(components.StatusBarDisplayDuration, func(time.Time) tea.Msg {
		return types.ClearStatusMsg{MessageID: id}
	})
}

func (m *Model) View() string {
	overlay := m.bugReport.View()
	if overlay == "" {
		overlay = m.settings.View()
	}
	if overlay == "" {
		overlay = m.projectSettings.View()
	}

	return m.layout.Render(
		m.header.View(),
		m.search.View(),
		m.commandBar.View(),
		m.bodyView(),
		overlay,
		m.help.View(m.helpKeys),
		m.userMessage.View(),
	)
}

func (m *Model) bodyView() string {
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted).Padding(1, 1)

	if m.lastSearch.Query == "" {
		return muted.Render("Press / to search your code, : for commands, ? for all shortcuts.")
	}
	if m.searchErr != nil {
		return lipgloss.NewStyle().Foreground(m.theme.Error).Padding(1, 1).
			Render(fmt.Sprintf("Invalid regular expression: %v", m.searchErr))
	}

	mode := "text"
	if m.lastSearch.Regex {
		mode = "regex"
	}
	return muted.Render(fmt.Sprintf("Searching for %q (%s)", m.lastSearch.Query, mode))
}
