// Package reactive is a small synchronous reactive runtime: Signal and
// Value cells hold time-varying state, Computation reruns whenever any
// signal it read last time changes, and Root anchors the scopes those
// computations are disposed from.
//
// Every write is synchronous: it returns only once the clock has drained
// to quiescence (or panicked). Batch several writes with S.Freeze to make
// them appear simultaneous to every observer.
//
// The runtime is single-threaded per goroutine: each goroutine gets its
// own clock, owner, and observer slot (see internal.CurrentState), so
// sharing a Signal or Computation across goroutines without external
// synchronization is undefined.
package reactive
