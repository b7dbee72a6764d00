package shortcuts

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloopai/bloop-tui/internal/actions"
	"github.com/bloopai/bloop-tui/internal/keyboard"
	"github.com/bloopai/bloop-tui/internal/logging"
)

// DefaultRepeatWindow is how soon an identical chord from a host without
// key-up events counts as auto-repeat. It has to cover the OS delay before
// the first repeat (660ms by default on X11, 500ms on most other systems);
// later repeats arrive faster and each one refreshes the window. The cost
// is that pressing the same shortcut twice within the window runs it once.
const DefaultRepeatWindow = 700 * time.Millisecond

// Options configure a Dispatcher.
type Options struct {
	// RepeatWindow applies to Update, whose host reports no key-ups.
	// Zero disables window-based repeat detection.
	RepeatWindow time.Duration
	// AllowRepeat turns off auto-repeat suppression for every action.
	AllowRepeat bool
	// Now is the clock, for tests.
	Now func() time.Time
}

// Result describes what the dispatcher did with one event.
type Result struct {
	Action  actions.Name
	Chord   keyboard.Chord
	Handled bool // the host must not forward the key
	Repeat  bool // matched but suppressed as auto-repeat
	Cmd     tea.Cmd
}

// Dispatcher turns key events into at most one action invocation each.
// It is not safe for concurrent use; feed it from the update loop.
type Dispatcher struct {
	registry *Registry
	opts     Options
	log      *logging.Logger

	held     map[keyboard.Chord]bool
	lastTea  keyboard.Chord
	lastTime time.Time
}

// NewDispatcher creates a dispatcher over registry.
func NewDispatcher(registry *Registry, opts Options) *Dispatcher {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Dispatcher{
		registry: registry,
		opts:     opts,
		log:      logging.Get().With("component", "dispatcher"),
		held:     make(map[keyboard.Chord]bool),
	}
}

// Registry returns the registry the dispatcher resolves against.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// KeyDown handles a key-down from a host that also delivers key-ups. A
// second key-down for a chord still held is auto-repeat.
func (d *Dispatcher) KeyDown(ev keyboard.Event) Result {
	chord, ok := keyboard.Normalize(ev)
	if !ok {
		return Result{}
	}

	repeat := ev.Repeat || d.held[chord]
	d.held[chord] = true
	return d.dispatch(chord, ev.Target, repeat)
}

// KeyUp ends auto-repeat detection for the released key. Releasing a
// modifier first still clears the chord.
func (d *Dispatcher) KeyUp(ev keyboard.Event) {
	if ev.Key == "" {
		return
	}
	if chord, ok := keyboard.Normalize(ev); ok {
		for held := range d.held {
			if held.Key == chord.Key {
				delete(d.held, held)
			}
		}
		return
	}
	// A released modifier changes every held chord
	clear(d.held)
}

// Update handles a Bubble Tea key message. Terminals send no key-ups, so
// an identical chord within RepeatWindow counts as auto-repeat.
func (d *Dispatcher) Update(msg tea.KeyMsg, target keyboard.Target) Result {
	chord, ok := keyboard.Normalize(keyboard.FromKeyMsg(msg, target))
	if !ok {
		return Result{}
	}

	now := d.opts.Now()
	repeat := d.opts.RepeatWindow > 0 &&
		chord == d.lastTea &&
		now.Sub(d.lastTime) < d.opts.RepeatWindow
	d.lastTea, d.lastTime = chord, now

	return d.dispatch(chord, target, repeat)
}

func (d *Dispatcher) dispatch(chord keyboard.Chord, target keyboard.Target, repeat bool) Result {
	// Typing in a text input always wins over unmodified chords
	if target == keyboard.TargetTextInput && !chord.IsModified() && chord.IsPrintable() {
		return Result{}
	}

	action, ok := d.registry.Resolve(chord)
	if !ok {
		return Result{}
	}

	result := Result{Action: action.Name, Chord: chord, Handled: true}
	if repeat && !action.AllowRepeat && !d.opts.AllowRepeat {
		result.Repeat = true
		return result
	}

	d.log.Debug("shortcut", "action", action.Name, "chord", chord.String())
	result.Cmd = action.Effect()
	return result
}
