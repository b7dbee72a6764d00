package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bloopai/bloop-tui/internal/types"
	"github.com/bloopai/bloop-tui/internal/ui"
)

// UserMessage manages and displays the one-line status message (success,
// errors, info, loading). Rendering is delegated to ui.RenderMessage.
type UserMessage struct {
	message     string
	messageType types.MessageType
	messageID   int
	width       int
	theme       *ui.Theme
	spinner     spinner.Model
}

// NewUserMessage creates a new user message component
func NewUserMessage(theme *ui.Theme) *UserMessage {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"✽", "✻", "✶", "·", "✢"},
		FPS:    time.Second / 6,
	}
	s.Style = lipgloss.NewStyle()

	return &UserMessage{
		theme:   theme,
		spinner: s,
	}
}

// SetTheme swaps the palette
func (um *UserMessage) SetTheme(theme *ui.Theme) {
	um.theme = theme
}

// SetMessage sets the message text and type and returns the message ID
// used to clear it later
func (um *UserMessage) SetMessage(msg string, msgType types.MessageType) int {
	um.message = msg
	um.messageType = msgType
	um.messageID++
	return um.messageID
}

// Message returns the current text and type
func (um *UserMessage) Message() (string, types.MessageType) {
	return um.message, um.messageType
}

// ClearMessage clears the current message
func (um *UserMessage) ClearMessage() {
	um.message = ""
	um.messageType = types.MessageTypeInfo
}

// ClearIfCurrent clears the message only if id is still the latest one
func (um *UserMessage) ClearIfCurrent(id int) bool {
	if id != um.messageID || um.messageType == types.MessageTypeLoading {
		return false
	}
	um.ClearMessage()
	return true
}

// GetSpinnerCmd returns the spinner tick command if showing loading message
func (um *UserMessage) GetSpinnerCmd() tea.Cmd {
	if um.messageType == types.MessageTypeLoading {
		return um.spinner.Tick
	}
	return nil
}

// IsLoadingMessage returns true if the current message is a loading message
func (um *UserMessage) IsLoadingMessage() bool {
	return um.messageType == types.MessageTypeLoading
}

// SetWidth sets the component width
func (um *UserMessage) SetWidth(width int) {
	um.width = width
}

// GetHeight returns the height (always 1 line to reserve space)
func (um *UserMessage) GetHeight() int {
	return 1
}

// Update handles spinner updates for loading messages
func (um *UserMessage) Update(msg tea.Msg) (*UserMessage, tea.Cmd) {
	if um.messageType == types.MessageTypeLoading {
		var cmd tea.Cmd
		um.spinner, cmd = um.spinner.Update(msg)
		return um, cmd
	}
	return um, nil
}

// View renders the user message
func (um *UserMessage) View() string {
	if um.message == "" {
		// Render empty line to reserve space
		return lipgloss.NewStyle().Width(um.width).Render("")
	}

	var spinnerView string
	if um.messageType == types.MessageTypeLoading {
		spinnerView = um.spinner.View()
	}

	return ui.RenderMessage(um.message, um.messageType, um.theme, spinnerView, um.width)
}
