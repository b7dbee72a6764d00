package app

import (
	"fmt"
	"time"

	"github.com/bloopai/bloop-tui/internal/actions"
	"github.com/bloopai/bloop-tui/internal/config"
	"github.com/bloopai/bloop-tui/internal/modals"
	"github.com/bloopai/bloop-tui/internal/shortcuts"
	"github.com/bloopai/bloop-tui/internal/state"
)

// DefaultProject is the project shown in project settings until the user
// creates one.
const DefaultProject = "Default project"

// Options wires the application to its configuration and collaborators.
type Options struct {
	Config     *config.Config
	ConfigPath string

	Links    actions.LinkOpener
	Auth     actions.Authenticator
	Reporter modals.Reporter

	// DarkBackground decides the system theme; nil asks the terminal.
	DarkBackground func() bool
	// Now is the dispatcher clock, for tests.
	Now func() time.Time
}

// BuildRegistry creates the store-bound catalog with the configured chord
// overrides applied and registers it. Every configuration fault is
// reported, joined.
func BuildRegistry(cfg *config.Config, store *state.Store, deps actions.Deps) (*shortcuts.Registry, error) {
	overrides, err := cfg.Overrides()
	if err != nil {
		return nil, err
	}

	catalog, err := actions.WithOverrides(actions.Catalog(store, deps), overrides)
	if err != nil {
		return nil, err
	}

	registry, err := shortcuts.NewRegistry(catalog...)
	if err != nil {
		return nil, fmt.Errorf("invalid keybindings:\n%w", err)
	}
	return registry, nil
}

// Build creates the store, the registry and the dispatcher and returns a
// model ready to run.
func Build(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	theme, err := cfg.ThemeValue()
	if err != nil {
		return nil, err
	}
	window, err := cfg.RepeatWindowValue()
	if err != nil {
		return nil, err
	}

	store := state.NewStore(state.Options{Theme: theme})
	registry, err := BuildRegistry(cfg, store, actions.Deps{
		Links:          opts.Links,
		Auth:           opts.Auth,
		DocsURL:        cfg.DocsURL,
		SignOutTimeout: actions.DefaultSignOutTimeout,
	})
	if err != nil {
		return nil, err
	}

	dispatcher := shortcuts.NewDispatcher(registry, shortcuts.Options{
		RepeatWindow: window,
		Now:          opts.Now,
	})

	info := modals.SettingsInfo{ConfigPath: opts.ConfigPath, DocsURL: cfg.DocsURL}
	if s, ok := opts.Auth.(interface{ SignedIn() bool }); ok {
		info.SignedIn = s.SignedIn
	}

	return NewModel(store, dispatcher, opts.Reporter, info, opts.DarkBackground), nil
}
