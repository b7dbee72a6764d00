package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice_SetNotifies(t *testing.T) {
	s := NewSlice("test", 1)

	var seen []int
	s.Subscribe(func(v int) { seen = append(seen, v) })

	s.Set(2)
	s.Set(3)

	assert.Equal(t, 3, s.Get())
	assert.Equal(t, []int{2, 3}, seen)
}

func TestSlice_SetSameValueDoesNotNotify(t *testing.T) {
	s := NewSlice("test", true)

	calls := 0
	s.Subscribe(func(bool) { calls++ })

	s.Set(true)
	assert.Equal(t, 0, calls)
}

func TestSlice_Update(t *testing.T) {
	s := NewSlice("regex", false)

	s.Update(func(prev bool) bool { return !prev })
	assert.True(t, s.Get())

	s.Update(func(prev bool) bool { return !prev })
	assert.False(t, s.Get())
}

func TestSlice_Unsubscribe(t *testing.T) {
	s := NewSlice("test", 0)

	var a, b int
	unsubA := s.Subscribe(func(int) { a++ })
	s.Subscribe(func(int) { b++ })

	s.Set(1)
	unsubA()
	s.Set(2)

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
	assert.Equal(t, 1, s.Subscribers())

	// Unsubscribing twice is harmless
	unsubA()
	assert.Equal(t, 1, s.Subscribers())
}

func TestSlice_UnsubscribeDuringNotify(t *testing.T) {
	s := NewSlice("test", 0)

	calls := 0
	var unsub func()
	unsub = s.Subscribe(func(int) {
		calls++
		unsub()
	})
	other := 0
	s.Subscribe(func(int) { other++ })

	s.Set(1)
	s.Set(2)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
}

func TestSlice_SubscriptionOrder(t *testing.T) {
	s := NewSlice("test", "")

	var order []string
	s.Subscribe(func(string) { order = append(order, "first") })
	s.Subscribe(func(string) { order = append(order, "second") })

	s.Set("x")
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestSlice_ReaderInterface(t *testing.T) {
	var r Reader[CommandBarStep] = NewSlice("step", CommandBarStep{ID: StepHome})
	assert.Equal(t, StepHome, r.Get().ID)
}
