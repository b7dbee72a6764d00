package actions

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloopai/bloop-tui/internal/keyboard"
	"github.com/bloopai/bloop-tui/internal/logging"
	"github.com/bloopai/bloop-tui/internal/messages"
	"github.com/bloopai/bloop-tui/internal/platform"
	"github.com/bloopai/bloop-tui/internal/state"
)

// Catalog returns the global shortcut actions in declaration order.
func Catalog(store *state.Store, deps Deps) []Action {
	if deps.DocsURL == "" {
		deps.DocsURL = DefaultDocsURL
	}
	if deps.SignOutTimeout <= 0 {
		deps.SignOutTimeout = DefaultSignOutTimeout
	}

	return []Action{
		// Theme
		{
			Name:        ToggleLightTheme,
			Description: "Use the light theme",
			Category:    CategoryTheme,
			Chord:       keyboard.MustParse("option+1"),
			Effect:      setTheme(store, state.ThemeLight),
		},
		{
			Name:        ToggleDarkTheme,
			Description: "Use the dark theme",
			Category:    CategoryTheme,
			Chord:       keyboard.MustParse("option+2"),
			Effect:      setTheme(store, state.ThemeDark),
		},
		{
			Name:        ToggleBlackTheme,
			Description: "Use the black theme",
			Category:    CategoryTheme,
			Chord:       keyboard.MustParse("option+3"),
			Effect:      setTheme(store, state.ThemeBlack),
		},
		{
			Name:        ToggleSystemTheme,
			Description: "Follow the terminal background",
			Category:    CategoryTheme,
			Chord:       keyboard.MustParse("option+4"),
			Effect:      setTheme(store, state.ThemeSystem),
		},

		// Command bar pages
		{
			Name:        OpenPrivateRepos,
			Description: "Add a private repository",
			Category:    CategoryCommandBar,
			Chord:       keyboard.MustParse("cmd+p"),
			Effect:      openCommandBarStep(store, state.StepPrivateRepos),
		},
		{
			Name:        OpenPublicRepos,
			Description: "Add a public repository",
			Category:    CategoryCommandBar,
			Chord:       keyboard.MustParse("cmd+shift+p"),
			Effect:      openCommandBarStep(store, state.StepPublicRepos),
		},
		{
			Name:        OpenLocalRepos,
			Description: "Add a local repository",
			Category:    CategoryCommandBar,
			Chord:       keyboard.MustParse("cmd+shift+o"),
			Effect:      openCommandBarStep(store, state.StepLocalRepos),
		},
		{
			Name:        OpenAddDocs,
			Description: "Index a documentation site",
			Category:    CategoryCommandBar,
			Chord:       keyboard.MustParse("cmd+d"),
			Effect:      openCommandBarStep(store, state.StepDocs),
		},
		{
			Name:        OpenManageRepos,
			Description: "Manage indexed repositories",
			Category:    CategoryCommandBar,
			Chord:       keyboard.MustParse("option+r"),
			Effect:      openCommandBarStep(store, state.StepManageRepos),
		},
		{
			Name:        CreateNewProject,
			Description: "Create a new project",
			Category:    CategoryCommandBar,
			Chord:       keyboard.MustParse("cmd+n"),
			Effect:      openCommandBarStep(store, state.StepCreateProject),
		},

		// Settings
		{
			Name:        OpenProjectSettings,
			Description: "Open project settings",
			Category:    CategorySettings,
			Chord:       keyboard.MustParse("option+p"),
			Effect:      openProjectSettings(store, state.ProjectSettingsGeneral),
		},
		{
			Name:        OpenSettings,
			Description: "Open settings",
			Category:    CategorySettings,
			Chord:       keyboard.MustParse("option+a"),
			Effect:      openSettings(store, state.SettingsGeneral),
		},
		{
			Name:        OpenSubscriptionSettings,
			Description: "Open subscription settings",
			Category:    CategorySettings,
			Chord:       keyboard.MustParse("option+s"),
			Effect:      openSettings(store, state.SettingsSubscription),
		},

		// Help
		{
			Name:        OpenAppDocs,
			Description: "Open the documentation",
			Category:    CategoryHelp,
			Chord:       keyboard.MustParse("option+d"),
			Effect:      openLink(deps.Links, deps.DocsURL),
		},
		{
			Name:        ReportBug,
			Description: "Report a bug",
			Category:    CategoryHelp,
			Chord:       keyboard.MustParse("option+b"),
			Effect:      reportBug(store),
		},

		// Account
		{
			Name:        SignOut,
			Description: "Sign out",
			Category:    CategoryAccount,
			Chord:       keyboard.MustParse("option+shift+q"),
			Effect:      signOut(store, deps),
		},

		// Search
		{
			Name:        ToggleRegex,
			Description: "Toggle regex search",
			Category:    CategorySearch,
			Chord:       keyboard.MustParse("cmd+/"),
			Effect:      toggleRegex(store),
		},
	}
}

func setTheme(store *state.Store, theme state.Theme) Effect {
	return func() tea.Cmd {
		store.Theme.Set(theme)
		return nil
	}
}

// openCommandBarStep selects the page before showing the bar so the first
// frame of the bar already renders it.
func openCommandBarStep(store *state.Store, step state.CommandBarStepID) Effect {
	return func() tea.Cmd {
		store.CommandBarStep.Set(state.CommandBarStep{ID: step})
		store.CommandBarVisible.Set(true)
		return nil
	}
}

// openSettings writes the section, then opens the panel, then closes the
// command bar. Subscribers of SettingsOpen always read the new section.
func openSettings(store *state.Store, section state.SettingsSection) Effect {
	return func() tea.Cmd {
		store.SettingsSection.Set(section)
		store.SettingsOpen.Set(true)
		store.CommandBarVisible.Set(false)
		return nil
	}
}

func openProjectSettings(store *state.Store, section state.ProjectSettingsSection) Effect {
	return func() tea.Cmd {
		store.ProjectSettingsSection.Set(section)
		store.ProjectSettingsOpen.Set(true)
		store.CommandBarVisible.Set(false)
		return nil
	}
}

func reportBug(store *state.Store) Effect {
	return func() tea.Cmd {
		store.BugReportOpen.Set(true)
		store.CommandBarVisible.Set(false)
		return nil
	}
}

func toggleRegex(store *state.Store) Effect {
	return func() tea.Cmd {
		store.RegexSearch.Update(func(prev bool) bool { return !prev })
		store.CommandBarVisible.Set(false)
		return nil
	}
}

func openLink(links LinkOpener, url string) Effect {
	return func() tea.Cmd {
		if links == nil {
			return messages.ErrorCmd("Cannot open %s: no browser available", url)
		}
		return func() tea.Msg {
			err := links.OpenLink(url)
			if errors.Is(err, platform.ErrLinkCopied) {
				return messages.InfoCmd("Copied %s to the clipboard", url)()
			}
			if err != nil {
				logging.Warn("open link failed", "url", url, "error", err)
				return messages.ErrorCmd("Open link failed: %v", err)()
			}
			return messages.InfoCmd("Opened %s", url)()
		}
	}
}

// signOut marks the sign-out as in progress and hands the call to the
// collaborator, then closes the command bar. A second trigger while one is
// in flight only closes the command bar.
func signOut(store *state.Store, deps Deps) Effect {
	return func() tea.Cmd {
		cmd := startSignOut(store, deps)
		store.CommandBarVisible.Set(false)
		return cmd
	}
}

func startSignOut(store *state.Store, deps Deps) tea.Cmd {
	if store.SigningOut.Get() {
		return nil
	}
	if deps.Auth == nil {
		return messages.ErrorCmd("Sign out failed: not signed in")
	}

	store.SigningOut.Set(true)
	auth, timeout := deps.Auth, deps.SignOutTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		var err error
		logging.Time("sign out", func() {
			err = auth.SignOut(ctx)
		})
		if err != nil {
			err = fmt.Errorf("sign out: %w", err)
		}
		return SignOutResultMsg{Err: err}
	}
}
