// Package internal holds the scheduling primitives the public reactive
// package is built on: the schedulable Node, the disposal-owning Owner,
// the per-goroutine Clock, and the per-goroutine State that ties them
// together. None of this is part of the public API.
package internal

// Node is the abstract base state of anything the Clock can schedule: a
// stale flag plus the closure to run when it is drained off the pending
// queue. Both Signal and Computation hold one by pointer.
//
// Dead is set once and only once, by Computation.Dispose, and checked by
// the Clock before every Update: it is the deterministic tombstone a
// weak.Pointer alone cannot provide. A weak.Pointer only resolves to nil
// once an actual GC cycle collects the referent, which has no relation
// to when Dispose ran; without Dead, a disposed computation whose Node
// is still kept alive by a pending schedule (or by a signal's observer
// list racing a GC) would resurrect and re-run Update after disposal.
type Node struct {
	Stale  bool
	Dead   bool
	Update func()
}
