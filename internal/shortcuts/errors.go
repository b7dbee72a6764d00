package shortcuts

import (
	"errors"
	"fmt"

	"github.com/bloopai/bloop-tui/internal/actions"
	"github.com/bloopai/bloop-tui/internal/keyboard"
)

// Registration errors
var (
	ErrDuplicateName       = errors.New("duplicate action name")
	ErrUnmodifiedPrintable = errors.New("global shortcut needs a cmd or option modifier")
	ErrNoEffect            = errors.New("action has no effect")
)

// DuplicateChordError is returned when two actions claim the same chord.
// It is a configuration fault: the binding table must be fixed.
type DuplicateChordError struct {
	Chord    keyboard.Chord
	Existing actions.Name
	Incoming actions.Name
}

func (e *DuplicateChordError) Error() string {
	return fmt.Sprintf("chord %s is bound to both %q and %q", e.Chord, e.Existing, e.Incoming)
}
