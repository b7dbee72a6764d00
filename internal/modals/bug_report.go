package modals

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloopai/bloop-tui/internal/keyboard"
	"github.com/bloopai/bloop-tui/internal/logging"
	"github.com/bloopai/bloop-tui/internal/messages"
	"github.com/bloopai/bloop-tui/internal/state"
	"github.com/bloopai/bloop-tui/internal/ui"
)

// reportTimeout bounds how long saving a report may take.
const reportTimeout = 5 * time.Second

// Reporter saves a bug report and returns where it went.
type Reporter interface {
	Report(ctx context.Context, description string) (string, error)
}

// BugReport is the bug report modal. While open its text area is the
// text-editing control.
type BugReport struct {
	store    *state.Store
	reporter Reporter
	keys     *keyboard.Keys
	theme    *ui.Theme

	open  bool
	input textarea.Model

	unsubscribe func()
}

// NewBugReport creates the modal. A nil reporter disables sending.
func NewBugReport(store *state.Store, reporter Reporter, keys *keyboard.Keys, theme *ui.Theme) *BugReport {
	ta := textarea.New()
	ta.Placeholder = "What went wrong?"
	ta.ShowLineNumbers = false
	ta.CharLimit = 4000
	ta.SetWidth(modalWidth - 8)
	ta.SetHeight(6)

	b := &BugReport{store: store, reporter: reporter, keys: keys, theme: theme, input: ta}
	b.unsubscribe = subscribe(store.BugReportOpen, b.onOpen)
	return b
}

func (b *BugReport) onOpen(open bool) {
	b.open = open
	if open {
		b.input.Reset()
		b.input.Focus()
		return
	}
	b.input.Blur()
}

// Close drops the modal's subscription.
func (b *BugReport) Close() {
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
}

func (b *BugReport) SetTheme(theme *ui.Theme) {
	b.theme = theme
}

func (b *BugReport) IsOpen() bool {
	return b.open
}

// Focused reports whether the text area is taking input.
func (b *BugReport) Focused() bool {
	return b.open && b.input.Focused()
}

// Value returns the report text.
func (b *BugReport) Value() string {
	return b.input.Value()
}

// Update handles messages while the modal is open. Submitting closes the
// modal and saves the report off the update loop.
func (b *BugReport) Update(msg tea.Msg) (*BugReport, tea.Cmd) {
	if !b.open {
		return b, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, b.keys.Close):
			b.store.BugReportOpen.Set(false)
			return b, nil
		case key.Matches(keyMsg, b.keys.Submit):
			return b, b.submit()
		}
	}

	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	return b, cmd
}

func (b *BugReport) submit() tea.Cmd {
	description := b.input.Value()
	if b.reporter == nil {
		return messages.ErrorCmd("Bug reports are not available")
	}
	if strings.TrimSpace(description) == "" {
		return messages.ErrorCmd("Describe the problem before sending")
	}

	b.store.BugReportOpen.Set(false)
	reporter := b.reporter
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
		defer cancel()

		var path string
		var err error
		logging.Time("bug report", func() {
			path, err = reporter.Report(ctx, description)
		})
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return messages.ErrorCmd("Saving the bug report timed out")()
			}
			return messages.ErrorCmd("Bug report not saved: %v", err)()
		}
		logging.Info("Bug report saved", "path", path)
		return messages.SuccessCmd("Thanks! Bug report saved to %s", path)()
	}
}

func (b *BugReport) View() string {
	if !b.open {
		return ""
	}
	return renderFrame(b.theme, "Report a bug", "", b.input.View(), "ctrl+s send  esc cancel")
}
