package reactive

import "github.com/solidkit/reactive/internal"

// sHandle is a named function type so a single value can be both called
// (S(fn)) and carry a method (S.Freeze(fn)) — the idiomatic Go rendering
// of spec.md §4.6's "handle S bearing S(fn) and S.freeze(fn)", which in
// the original C++ is a functor object with operator() and a member.
type sHandle func(fn func()) *Computation

// Freeze executes fn under a raising freeze: every write inside fn is
// deferred until fn returns, at which point they propagate as a single
// tick. Nested freezes (including via New bodies) only drain on the
// outermost release.
func (sHandle) Freeze(fn func()) {
	token := internal.CurrentState().Clock.Freeze(true)
	defer token.Release()
	fn()
}

// S creates a computation in the current scope (S(fn), equivalent to
// New(fn)) and batches writes (S.Freeze(fn)).
var S sHandle = New
