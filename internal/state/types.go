package state

// Theme is the colour scheme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeBlack  Theme = "black"
	ThemeSystem Theme = "system"
)

// Themes lists every theme in menu order.
var Themes = []Theme{ThemeLight, ThemeDark, ThemeBlack, ThemeSystem}

// ParseTheme returns the theme named s, or false if s is unknown.
func ParseTheme(s string) (Theme, bool) {
	for _, t := range Themes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// SettingsSection selects the page shown inside the settings panel.
type SettingsSection int

const (
	SettingsGeneral SettingsSection = iota
	SettingsPreferences
	SettingsSubscription
)

func (s SettingsSection) String() string {
	switch s {
	case SettingsGeneral:
		return "General"
	case SettingsPreferences:
		return "Preferences"
	case SettingsSubscription:
		return "Subscription"
	}
	return "Unknown"
}

// ProjectSettingsSection selects the page shown inside project settings.
type ProjectSettingsSection int

const (
	ProjectSettingsGeneral ProjectSettingsSection = iota
	ProjectSettingsRepositories
)

func (s ProjectSettingsSection) String() string {
	switch s {
	case ProjectSettingsGeneral:
		return "General"
	case ProjectSettingsRepositories:
		return "Repositories"
	}
	return "Unknown"
}

// CommandBarStepID identifies a command bar page.
type CommandBarStepID int

const (
	StepHome CommandBarStepID = iota
	StepPrivateRepos
	StepPublicRepos
	StepLocalRepos
	StepDocs
	StepManageRepos
	StepCreateProject
)

func (id CommandBarStepID) String() string {
	switch id {
	case StepHome:
		return "Home"
	case StepPrivateRepos:
		return "Private repositories"
	case StepPublicRepos:
		return "Public repositories"
	case StepLocalRepos:
		return "Local repositories"
	case StepDocs:
		return "Add docs"
	case StepManageRepos:
		return "Manage repositories"
	case StepCreateProject:
		return "Create project"
	}
	return "Unknown"
}

// CommandBarStep is the page the command bar shows.
type CommandBarStep struct {
	ID CommandBarStepID
}
