package state

// Options seeds a new Store.
type Options struct {
	Theme Theme
}

// Store makes every slice reachable from anywhere in the UI without
// threading values through components. Each field is a separately owned
// slice; subscribing to one never fires for writes to another.
type Store struct {
	Theme *Slice[Theme]

	SettingsOpen    *Slice[bool]
	SettingsSection *Slice[SettingsSection]

	ProjectSettingsOpen    *Slice[bool]
	ProjectSettingsSection *Slice[ProjectSettingsSection]

	BugReportOpen *Slice[bool]
	RegexSearch   *Slice[bool]

	CommandBarVisible *Slice[bool]
	CommandBarStep    *Slice[CommandBarStep]

	// SigningOut is true while the sign-out collaborator call is in flight.
	SigningOut *Slice[bool]
}

// NewStore creates a store with every overlay closed.
func NewStore(opts Options) *Store {
	theme := opts.Theme
	if theme == "" {
		theme = ThemeSystem
	}

	return &Store{
		Theme:                  NewSlice("theme", theme),
		SettingsOpen:           NewSlice("settings.open", false),
		SettingsSection:        NewSlice("settings.section", SettingsGeneral),
		ProjectSettingsOpen:    NewSlice("projectSettings.open", false),
		ProjectSettingsSection: NewSlice("projectSettings.section", ProjectSettingsGeneral),
		BugReportOpen:          NewSlice("bugReport.open", false),
		RegexSearch:            NewSlice("search.regex", false),
		CommandBarVisible:      NewSlice("commandBar.visible", false),
		CommandBarStep:         NewSlice("commandBar.step", CommandBarStep{ID: StepHome}),
		SigningOut:             NewSlice("auth.signingOut", false),
	}
}

// Overlay names a modal-like surface.
type Overlay string

const (
	OverlaySettings        Overlay = "settings"
	OverlayProjectSettings Overlay = "projectSettings"
	OverlayBugReport       Overlay = "bugReport"
	OverlayCommandBar      Overlay = "commandBar"
)

type overlaySlice struct {
	overlay Overlay
	slice   *Slice[bool]
}

// overlaySlices returns the visibility slice of every overlay in a fixed
// order.
func (s *Store) overlaySlices() []overlaySlice {
	return []overlaySlice{
		{OverlaySettings, s.SettingsOpen},
		{OverlayProjectSettings, s.ProjectSettingsOpen},
		{OverlayBugReport, s.BugReportOpen},
		{OverlayCommandBar, s.CommandBarVisible},
	}
}

// OpenOverlays returns the overlays currently open.
func (s *Store) OpenOverlays() []Overlay {
	var open []Overlay
	for _, o := range s.overlaySlices() {
		if o.slice.Get() {
			open = append(open, o.overlay)
		}
	}
	return open
}

// OverlayConflict reports whether more than one overlay is open, and
// which. Mutual exclusion is a convention kept by the actions, not a rule
// the store enforces. An action may pass through a conflicting state
// between its own writes, so check once its whole effect has run.
func (s *Store) OverlayConflict() ([]Overlay, bool) {
	open := s.OpenOverlays()
	return open, len(open) > 1
}
