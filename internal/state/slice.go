package state

// Reader is the read side of a slice handed to consumers. Only the owner
// of the *Slice may write.
type Reader[T comparable] interface {
	Get() T
	Subscribe(fn func(T)) (unsubscribe func())
}

type subscriber[T comparable] struct {
	id int
	fn func(T)
}

// Slice is an independently owned unit of shared UI state. Writes are
// synchronous: by the time Set returns, every subscriber has observed the
// new value. Slices are not safe for concurrent use; all reads and writes
// happen on the UI update loop.
type Slice[T comparable] struct {
	name   string
	value  T
	subs   []subscriber[T]
	nextID int
}

// NewSlice creates a slice holding initial.
func NewSlice[T comparable](name string, initial T) *Slice[T] {
	return &Slice[T]{name: name, value: initial}
}

// Name returns the slice name used in logs.
func (s *Slice[T]) Name() string {
	return s.name
}

// Get returns the current value.
func (s *Slice[T]) Get() T {
	return s.value
}

// Set stores v and notifies subscribers in subscription order. Setting
// the current value again is a no-op and notifies nobody.
func (s *Slice[T]) Set(v T) {
	if s.value == v {
		return
	}
	s.value = v

	// Copy so callbacks may unsubscribe while being notified
	subs := make([]subscriber[T], len(s.subs))
	copy(subs, s.subs)
	for _, sub := range subs {
		sub.fn(v)
	}
}

// Update sets the value computed from the previous one.
func (s *Slice[T]) Update(fn func(prev T) T) {
	s.Set(fn(s.value))
}

// Subscribe registers fn to be called after every change. The returned
// function removes the subscription.
func (s *Slice[T]) Subscribe(fn func(T)) func() {
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn})

	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Subscribers returns the number of active subscriptions.
func (s *Slice[T]) Subscribers() int {
	return len(s.subs)
}
