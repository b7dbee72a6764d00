package actions

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloopai/bloop-tui/internal/keyboard"
)

// Name uniquely identifies an action.
type Name string

// Category groups actions in help and in the command bar.
type Category int

const (
	CategoryTheme Category = iota
	CategoryCommandBar
	CategorySettings
	CategorySearch
	CategoryHelp
	CategoryAccount
)

func (c Category) String() string {
	switch c {
	case CategoryTheme:
		return "Theme"
	case CategoryCommandBar:
		return "Command bar"
	case CategorySettings:
		return "Settings"
	case CategorySearch:
		return "Search"
	case CategoryHelp:
		return "Help"
	case CategoryAccount:
		return "Account"
	}
	return "Other"
}

// Effect performs an action. It writes state slices synchronously and may
// return a command carrying at most one external collaborator call, which
// Bubble Tea runs off the update loop.
type Effect func() tea.Cmd

// Action binds one chord to one effect. Actions are built once at startup
// and never mutated.
type Action struct {
	Name        Name
	Description string
	Category    Category
	Chord       keyboard.Chord
	AllowRepeat bool // fire on auto-repeat key-downs too
	Effect      Effect
}

// LinkOpener opens a URL in the host environment.
type LinkOpener interface {
	OpenLink(url string) error
}

// Authenticator clears the signed-in session. It must tolerate being
// called when already signed out.
type Authenticator interface {
	SignOut(ctx context.Context) error
}

// Deps are the external collaborators and settings actions need.
type Deps struct {
	Links          LinkOpener
	Auth           Authenticator
	DocsURL        string
	SignOutTimeout time.Duration
}

// SignOutResultMsg reports the outcome of the sign-out collaborator.
type SignOutResultMsg struct {
	Err error
}
