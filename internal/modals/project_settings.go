package modals

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bloopai/bloop-tui/internal/keyboard"
	"github.com/bloopai/bloop-tui/internal/state"
	"github.com/bloopai/bloop-tui/internal/ui"
)

var projectSections = []state.ProjectSettingsSection{
	state.ProjectSettingsGeneral,
	state.ProjectSettingsRepositories,
}

// ProjectSettings is the project settings panel.
type ProjectSettings struct {
	store   *state.Store
	keys    *keyboard.Keys
	theme   *ui.Theme
	project string

	open    bool
	section state.ProjectSettingsSection

	unsubscribe []func()
}

// NewProjectSettings creates the panel for the named project.
func NewProjectSettings(store *state.Store, project string, keys *keyboard.Keys, theme *ui.Theme) *ProjectSettings {
	p := &ProjectSettings{store: store, keys: keys, theme: theme, project: project}

	p.unsubscribe = append(p.unsubscribe,
		subscribe(store.ProjectSettingsOpen, func(open bool) { p.open = open }),
		subscribe(store.ProjectSettingsSection, func(section state.ProjectSettingsSection) { p.section = section }),
	)
	return p
}

// Close drops the panel's subscriptions.
func (p *ProjectSettings) Close() {
	for _, u := range p.unsubscribe {
		u()
	}
	p.unsubscribe = nil
}

func (p *ProjectSettings) SetTheme(theme *ui.Theme) {
	p.theme = theme
}

func (p *ProjectSettings) IsOpen() bool {
	return p.open
}

func (p *ProjectSettings) Section() state.ProjectSettingsSection {
	return p.section
}

// Update handles keys while the panel is open.
func (p *ProjectSettings) Update(msg tea.Msg) (*ProjectSettings, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !p.open || !ok {
		return p, nil
	}

	n := len(projectSections)
	switch {
	case key.Matches(keyMsg, p.keys.Close):
		p.store.ProjectSettingsOpen.Set(false)
	case key.Matches(keyMsg, p.keys.NextSection):
		p.store.ProjectSettingsSection.Set(projectSections[(int(p.section)+1)%n])
	case key.Matches(keyMsg, p.keys.PrevSection):
		p.store.ProjectSettingsSection.Set(projectSections[(int(p.section)+n-1)%n])
	}
	return p, nil
}

func (p *ProjectSettings) View() string {
	if !p.open {
		return ""
	}

	labels := make([]string, len(projectSections))
	for i, section := range projectSections {
		labels[i] = section.String()
	}

	var body string
	switch p.section {
	case state.ProjectSettingsGeneral:
		body = renderLines(p.theme, [][2]string{{"Project", p.project}})
	case state.ProjectSettingsRepositories:
		body = lipgloss.NewStyle().Foreground(p.theme.Muted).Render(
			"No repositories in this project yet.\nAdd one from the command bar.")
	}

	return renderFrame(p.theme, "Project settings", renderTabs(p.theme, labels, int(p.section)), body,
		"tab next section  esc close")
}
