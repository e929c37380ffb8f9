package sensor

import (
	"sync/atomic"

	"github.com/phanxgames/touchstrip"
)

// State accumulates engage and disengage calls into the set of pressed
// buttons. Engage and Disengage must be called from a single goroutine (the
// panel's); Bits and Changed may be used from any goroutine.
//
// Several zones may share a tag, so each button is counted: it stays pressed
// until every engage has been matched by a disengage.
type State struct {
	counts  [NumButtons]int
	bits    atomic.Uint64
	changed chan struct{}
}

// NewState returns a state with no button pressed.
func NewState() *State {
	return &State{changed: make(chan struct{}, 1)}
}

// Engage presses tag. Tags outside the device range are ignored.
func (s *State) Engage(tag touchstrip.ButtonValue) {
	if int(tag) >= NumButtons {
		return
	}
	s.counts[tag]++
	if s.counts[tag] == 1 {
		s.store(s.bits.Load() | 1<<tag)
	}
}

// Disengage releases tag.
func (s *State) Disengage(tag touchstrip.ButtonValue) {
	if int(tag) >= NumButtons || s.counts[tag] == 0 {
		return
	}
	s.counts[tag]--
	if s.counts[tag] == 0 {
		s.store(s.bits.Load() &^ (1 << tag))
	}
}

func (s *State) store(bits uint64) {
	s.bits.Store(bits)
	select {
	case s.changed <- struct{}{}:
	default:
	}
}

// Bits returns the pressed buttons, bit n set for button value n.
func (s *State) Bits() uint64 {
	return s.bits.Load()
}

// Pressed reports whether tag is pressed.
func (s *State) Pressed(tag touchstrip.ButtonValue) bool {
	return int(tag) < NumButtons && s.bits.Load()&(1<<tag) != 0
}

// Changed returns a channel that receives after the pressed set changes.
// Changes that happen before the previous signal is consumed are merged.
func (s *State) Changed() <-chan struct{} {
	return s.changed
}
