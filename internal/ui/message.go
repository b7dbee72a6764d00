package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bloopai/bloop-tui/internal/types"
)

// RenderMessage renders a status message with a type prefix. Loading
// messages are prefixed with spinnerView. Long messages are truncated to
// fit width.
func RenderMessage(text string, msgType types.MessageType, theme *Theme, spinnerView string, width int) string {
	if text == "" {
		return ""
	}

	maxLen := width - 4
	if maxLen < 20 {
		maxLen = 20
	}
	if r := []rune(text); len(r) > maxLen {
		text = string(r[:maxLen-1]) + "…"
	}

	var color lipgloss.Color
	var prefix string
	switch msgType {
	case types.MessageTypeSuccess:
		color, prefix = theme.Success, "✓ "
	case types.MessageTypeError:
		color, prefix = theme.Error, "✗ "
	case types.MessageTypeLoading:
		color, prefix = theme.Muted, spinnerView+" "
	default:
		color, prefix = theme.Primary, "ℹ "
	}

	return lipgloss.NewStyle().
		Foreground(color).
		Padding(0, 1).
		Render(prefix + text)
}
