package modals

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bloopai/bloop-tui/internal/actions"
	"github.com/bloopai/bloop-tui/internal/keyboard"
	"github.com/bloopai/bloop-tui/internal/state"
	"github.com/bloopai/bloop-tui/internal/ui"
)

var settingsSections = []state.SettingsSection{
	state.SettingsGeneral,
	state.SettingsPreferences,
	state.SettingsSubscription,
}

// SettingsInfo is what the General section shows.
type SettingsInfo struct {
	ConfigPath string
	DocsURL    string
	SignedIn   func() bool
}

type themeItem struct {
	theme state.Theme
	desc  string
}

func (i themeItem) FilterValue() string { return string(i.theme) }
func (i themeItem) Title() string       { return string(i.theme) }
func (i themeItem) Description() string { return i.desc }

var themeDescriptions = map[state.Theme]string{
	state.ThemeLight:  "Light background",
	state.ThemeDark:   "Dark background",
	state.ThemeBlack:  "High contrast on black",
	state.ThemeSystem: "Follow the terminal background",
}

// Settings is the settings panel. General lists the keyboard shortcuts,
// Preferences picks the theme.
type Settings struct {
	store *state.Store
	info  SettingsInfo
	keys  *keyboard.Keys
	theme *ui.Theme

	open    bool
	section state.SettingsSection
	current state.Theme

	themes    list.Model
	shortcuts table.Model

	unsubscribe []func()
}

// NewSettings creates the settings panel listing the shortcuts of catalog.
func NewSettings(store *state.Store, catalog []actions.Action, info SettingsInfo, keys *keyboard.Keys, theme *ui.Theme) *Settings {
	s := &Settings{
		store:     store,
		info:      info,
		keys:      keys,
		theme:     theme,
		themes:    newThemeList(),
		shortcuts: newShortcutTable(catalog),
	}
	s.SetTheme(theme)

	s.unsubscribe = append(s.unsubscribe,
		subscribe(store.SettingsOpen, func(open bool) { s.open = open }),
		subscribe(store.SettingsSection, func(section state.SettingsSection) { s.section = section }),
		subscribe(store.Theme, s.onTheme),
	)
	return s
}

func newThemeList() list.Model {
	items := make([]list.Item, len(state.Themes))
	for i, t := range state.Themes {
		items[i] = themeItem{theme: t, desc: themeDescriptions[t]}
	}

	l := list.New(items, list.NewDefaultDelegate(), modalWidth-8, 12)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	return l
}

func newShortcutTable(catalog []actions.Action) table.Model {
	rows := make([]table.Row, len(catalog))
	for i, a := range catalog {
		rows[i] = table.Row{a.Chord.Display(), a.Description, a.Category.String()}
	}

	return table.New(
		table.WithColumns([]table.Column{
			{Title: "Shortcut", Width: 18},
			{Title: "Action", Width: 30},
			{Title: "Category", Width: 12},
		}),
		table.WithRows(rows),
		table.WithHeight(10),
		table.WithFocused(true),
	)
}

func (s *Settings) onTheme(t state.Theme) {
	s.current = t
	for i, item := range s.themes.Items() {
		if item.(themeItem).theme == t {
			s.themes.Select(i)
		}
	}
}

// Close drops the panel's subscriptions.
func (s *Settings) Close() {
	for _, u := range s.unsubscribe {
		u()
	}
	s.unsubscribe = nil
}

// SetTheme swaps the palette.
func (s *Settings) SetTheme(theme *ui.Theme) {
	s.theme = theme
	s.shortcuts.SetStyles(theme.ToTableStyles())

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Primary).BorderForeground(theme.Primary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Secondary).BorderForeground(theme.Primary)
	s.themes.SetDelegate(delegate)
}

// IsOpen reports whether the panel is shown.
func (s *Settings) IsOpen() bool {
	return s.open
}

// Section returns the section being shown.
func (s *Settings) Section() state.SettingsSection {
	return s.section
}

// Update handles keys while the panel is open.
func (s *Settings) Update(msg tea.Msg) (*Settings, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !s.open || !ok {
		return s, nil
	}

	switch {
	case key.Matches(keyMsg, s.keys.Close):
		s.store.SettingsOpen.Set(false)
		return s, nil
	case key.Matches(keyMsg, s.keys.NextSection):
		s.store.SettingsSection.Set(settingsSections[(int(s.section)+1)%len(settingsSections)])
		return s, nil
	case key.Matches(keyMsg, s.keys.PrevSection):
		n := len(settingsSections)
		s.store.SettingsSection.Set(settingsSections[(int(s.section)+n-1)%n])
		return s, nil
	}

	var cmd tea.Cmd
	switch s.section {
	case state.SettingsGeneral:
		s.shortcuts, cmd = s.shortcuts.Update(keyMsg)
	case state.SettingsPreferences:
		if key.Matches(keyMsg, s.keys.Select) {
			if item, ok := s.themes.SelectedItem().(themeItem); ok {
				s.store.Theme.Set(item.theme)
			}
			return s, nil
		}
		s.themes, cmd = s.themes.Update(keyMsg)
	}
	return s, cmd
}

// View renders the panel, or nothing when closed.
func (s *Settings) View() string {
	if !s.open {
		return ""
	}

	labels := make([]string, len(settingsSections))
	for i, section := range settingsSections {
		labels[i] = section.String()
	}
	tabs := renderTabs(s.theme, labels, int(s.section))

	var body, hint string
	switch s.section {
	case state.SettingsGeneral:
		signedIn := "no"
		if s.info.SignedIn != nil && s.info.SignedIn() {
			signedIn = "yes"
		}
		body = lipgloss.JoinVertical(lipgloss.Left,
			renderLines(s.theme, [][2]string{
				{"Config", s.info.ConfigPath},
				{"Docs", s.info.DocsURL},
				{"Signed in", signedIn},
			}),
			"",
			s.shortcuts.View(),
		)
		hint = "↑/↓ scroll  tab next section  esc close"
	case state.SettingsPreferences:
		body = lipgloss.JoinVertical(lipgloss.Left,
			renderLines(s.theme, [][2]string{{"Theme", string(s.current)}}),
			"",
			s.themes.View(),
		)
		hint = "↑/↓ choose  enter apply  tab next section  esc close"
	case state.SettingsSubscription:
		body = lipgloss.NewStyle().Foreground(s.theme.Foreground).Render(
			"Subscription details are managed from your bloop account.\n" +
				"Use the open-subscription-settings shortcut to jump here.")
		hint = "tab next section  esc close"
	}

	return renderFrame(s.theme, "Settings", tabs, body, hint)
}
