package shortcuts

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/bloopai/bloop-tui/internal/actions"
	"github.com/bloopai/bloop-tui/internal/keyboard"
)

// Registry holds the bound actions in registration order, indexed by chord
// and by name.
type Registry struct {
	actions []actions.Action
	byChord map[keyboard.Chord]actions.Name
	byName  map[actions.Name]int
}

// NewRegistry registers every action. All faults are reported together so
// a broken binding table can be fixed in one pass; on error no registry is
// returned.
func NewRegistry(list ...actions.Action) (*Registry, error) {
	r := &Registry{
		byChord: make(map[keyboard.Chord]actions.Name, len(list)),
		byName:  make(map[actions.Name]int, len(list)),
	}

	var errs []error
	for _, a := range list {
		if err := r.Register(a); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return r, nil
}

// Register adds an action. It fails with *DuplicateChordError if another
// action already owns an equal chord.
func (r *Registry) Register(a actions.Action) error {
	if a.Chord.IsZero() {
		return fmt.Errorf("register %q: %w", a.Name, keyboard.ErrNoTerminalKey)
	}
	// Plain printable keys would break typing in text inputs
	if a.Chord.IsPrintable() && !a.Chord.IsModified() {
		return fmt.Errorf("register %q with %s: %w", a.Name, a.Chord, ErrUnmodifiedPrintable)
	}
	if a.Effect == nil {
		return fmt.Errorf("register %q: %w", a.Name, ErrNoEffect)
	}
	if _, exists := r.byName[a.Name]; exists {
		return fmt.Errorf("register %q: %w", a.Name, ErrDuplicateName)
	}
	if existing, exists := r.byChord[a.Chord]; exists {
		return &DuplicateChordError{Chord: a.Chord, Existing: existing, Incoming: a.Name}
	}

	r.byChord[a.Chord] = a.Name
	r.byName[a.Name] = len(r.actions)
	r.actions = append(r.actions, a)
	return nil
}

// Resolve returns the action bound to chord.
func (r *Registry) Resolve(chord keyboard.Chord) (actions.Action, bool) {
	name, ok := r.byChord[chord]
	if !ok {
		return actions.Action{}, false
	}
	return r.actions[r.byName[name]], true
}

// Get returns the action called name.
func (r *Registry) Get(name actions.Name) (actions.Action, bool) {
	i, ok := r.byName[name]
	if !ok {
		return actions.Action{}, false
	}
	return r.actions[i], true
}

// Unregister removes the action called name and reports whether it was
// bound.
func (r *Registry) Unregister(name actions.Name) bool {
	i, ok := r.byName[name]
	if !ok {
		return false
	}

	delete(r.byChord, r.actions[i].Chord)
	delete(r.byName, name)
	r.actions = append(r.actions[:i:i], r.actions[i+1:]...)
	for j := i; j < len(r.actions); j++ {
		r.byName[r.actions[j].Name] = j
	}
	return true
}

// Actions returns the bound actions in registration order.
func (r *Registry) Actions() []actions.Action {
	result := make([]actions.Action, len(r.actions))
	copy(result, r.actions)
	return result
}

// Len returns the number of bound actions.
func (r *Registry) Len() int {
	return len(r.actions)
}

// Bindings returns a help binding per action in registration order.
func (r *Registry) Bindings() []key.Binding {
	bindings := make([]key.Binding, 0, len(r.actions))
	for _, a := range r.actions {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(a.Chord.TeaKey()),
			key.WithHelp(a.Chord.Display(), a.Description),
		))
	}
	return bindings
}
