package commandbar

// MaxPaletteItems is the maximum number of items shown in the command palette.
// Set to 8 to fit comfortably on most terminal sizes without overwhelming the user.
const MaxPaletteItems = 8
