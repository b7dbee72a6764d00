package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore_Defaults(t *testing.T) {
	store := NewStore(Options{})

	assert.Equal(t, ThemeSystem, store.Theme.Get())
	assert.Equal(t, SettingsGeneral, store.SettingsSection.Get())
	assert.Equal(t, StepHome, store.CommandBarStep.Get().ID)
	assert.Empty(t, store.OpenOverlays())
	assert.False(t, store.SigningOut.Get())
}

func TestNewStore_InitialTheme(t *testing.T) {
	store := NewStore(Options{Theme: ThemeBlack})
	assert.Equal(t, ThemeBlack, store.Theme.Get())
}

func TestStore_SlicesAreIndependent(t *testing.T) {
	store := NewStore(Options{})

	settingsCalls := 0
	store.SettingsOpen.Subscribe(func(bool) { settingsCalls++ })

	store.Theme.Set(ThemeDark)
	store.RegexSearch.Set(true)
	store.CommandBarVisible.Set(true)

	assert.Equal(t, 0, settingsCalls)
}

func TestStore_OpenOverlays(t *testing.T) {
	store := NewStore(Options{})

	store.BugReportOpen.Set(true)
	store.CommandBarVisible.Set(true)

	assert.Equal(t, []Overlay{OverlayBugReport, OverlayCommandBar}, store.OpenOverlays())

	store.BugReportOpen.Set(false)
	store.CommandBarVisible.Set(false)
	assert.Empty(t, store.OpenOverlays())
}

func TestStore_OverlayConflict(t *testing.T) {
	store := NewStore(Options{})

	_, conflict := store.OverlayConflict()
	assert.False(t, conflict)

	store.SettingsOpen.Set(true)
	_, conflict = store.OverlayConflict()
	assert.False(t, conflict, "one open overlay is fine")

	store.CommandBarVisible.Set(true)
	open, conflict := store.OverlayConflict()
	require.True(t, conflict)
	assert.Equal(t, []Overlay{OverlaySettings, OverlayCommandBar}, open)
}

func TestParseTheme(t *testing.T) {
	theme, ok := ParseTheme("black")
	assert.True(t, ok)
	assert.Equal(t, ThemeBlack, theme)

	_, ok = ParseTheme("sepia")
	assert.False(t, ok)
}
