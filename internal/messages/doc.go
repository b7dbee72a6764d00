// Package messages defines message handling conventions for bloop: how
// each layer reports errors, successes and information.
//
// # Collaborator and config layers (internal/platform, internal/config)
//
// Return standard Go errors wrapped with context. These layers do not
// depend on UI concerns.
//
//	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
//	    return fmt.Errorf("remove session file: %w", err)
//	}
//
// messages.WrapError(err, "context") is a clearer alternative to
// fmt.Errorf("context: %w", err).
//
// # Registry layer (internal/shortcuts)
//
// Configuration faults such as two actions claiming one chord are typed
// errors (DuplicateChordError) returned at construction. They are fatal at
// startup: the binding table must be fixed, never resolved silently.
//
// # Effect layer (internal/actions)
//
// Effects write state synchronously and return a tea.Cmd for any
// collaborator call. That command reports back with a StatusMsg built by
// ErrorCmd, SuccessCmd or InfoCmd, or with a dedicated result message when
// state must be updated afterwards (SignOutResultMsg).
//
//	return func() tea.Msg {
//	    if err := links.OpenLink(url); err != nil {
//	        return messages.ErrorCmd("Open link failed: %v", err)()
//	    }
//	    return messages.InfoCmd("Opened %s", url)()
//	}
//
// # UI layer (internal/app, internal/components)
//
// Display results through the status bar. Components do not format error
// text; they receive a ready StatusMsg.
//
//	case types.StatusMsg:
//	    id := m.userMessage.SetMessage(msg.Message, msg.Type)
//	    return m, tea.Tick(components.StatusBarDisplayDuration, ...)
//
// # Error message guidelines
//
//  1. Be specific: "Sign out failed: session file is read-only"
//  2. Start with what failed
//  3. No stack traces or Go type names in the UI
package messages
