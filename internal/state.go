package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

// State anchors the current clock, current owner scope, and current
// observer for one goroutine. Every public operation reads/writes it
// through CurrentState; nothing here is safe to share across goroutines,
// by design (spec: "single-threaded per process/thread context").
type State struct {
	Clock *Clock

	CurrentOwner    *Owner
	CurrentObserver *Node
}

var states sync.Map // goid.Get() int64 -> *State

// CurrentState returns (creating if necessary) the State for the calling
// goroutine.
func CurrentState() *State {
	gid := goid.Get()

	if s, ok := states.Load(gid); ok {
		return s.(*State)
	}

	s := &State{Clock: NewClock()}
	states.Store(gid, s)
	return s
}

// WithOwner installs o as the current owner for the duration of fn,
// restoring the previous owner on every exit path including a panic.
func (s *State) WithOwner(o *Owner, fn func()) {
	prev := s.CurrentOwner
	s.CurrentOwner = o
	defer func() { s.CurrentOwner = prev }()
	fn()
}

// WithOwnerAndObserver installs both o and n for the duration of fn,
// restoring both on every exit path including a panic. Used by
// Computation.recompute, where the computation is simultaneously the
// owner new children attach to and the observer signals it reads
// register against.
func (s *State) WithOwnerAndObserver(o *Owner, n *Node, fn func()) {
	prevOwner := s.CurrentOwner
	prevObserver := s.CurrentObserver
	s.CurrentOwner = o
	s.CurrentObserver = n
	defer func() {
		s.CurrentOwner = prevOwner
		s.CurrentObserver = prevObserver
	}()
	fn()
}
