// Package shortcuts resolves key chords to catalog actions and runs them.
//
// The Registry is the binding table. It rejects two actions with equal
// chords (DuplicateChordError) and plain printable keys without a cmd or
// option modifier, since those would steal ordinary typing. Lookups are a
// map access per keystroke.
//
// The Dispatcher normalizes each key-down, resolves it and invokes the
// action's effect exactly once. A matched chord is Handled: the host must
// not also forward it to the focused component. Auto-repeat is ignored
// unless an action opts in, and unmodified printable keys are never
// intercepted while a text input has focus. Unmatched chords pass through.
package shortcuts
