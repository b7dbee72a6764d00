package components

import "time"

// UI component constants
const (
	// StatusBarDisplayDuration is how long status messages (success, error,
	// info) are displayed before automatically clearing.
	StatusBarDisplayDuration = 5 * time.Second

	// OverlayWidth is the preferred width of settings and report overlays.
	OverlayWidth = 72

	// AppName is shown in the header.
	AppName = "bloop"
)
