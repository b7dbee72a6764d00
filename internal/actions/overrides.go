package actions

import (
	"errors"
	"fmt"
	"sort"

	"github.com/bloopai/bloop-tui/internal/keyboard"
)

// ErrUnknownAction is returned when an override names no catalog action.
var ErrUnknownAction = errors.New("unknown action")

// WithOverrides returns a copy of list with chords rebound. The input is
// left untouched. Conflicts between the new chords are not checked here;
// the registry rejects them when the list is registered.
func WithOverrides(list []Action, overrides map[Name]keyboard.Chord) ([]Action, error) {
	index := make(map[Name]int, len(list))
	for i, a := range list {
		index[a.Name] = i
	}

	// Sorted so the reported error is stable
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, string(name))
	}
	sort.Strings(names)

	result := make([]Action, len(list))
	copy(result, list)

	var errs []error
	for _, name := range names {
		i, ok := index[Name(name)]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownAction, name))
			continue
		}
		result[i].Chord = overrides[Name(name)]
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return result, nil
}

// ByName returns the action called name.
func ByName(list []Action, name Name) (Action, bool) {
	for _, a := range list {
		if a.Name == name {
			return a, true
		}
	}
	return Action{}, false
}
