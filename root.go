package reactive

import "github.com/solidkit/reactive/internal"

// Root is the top-level owner scope computations are created under — the
// root of a disposal chain. A Root's body runs exactly once, with no
// observer installed, so writes inside it are never tracked as
// dependencies: a bare Root is not itself a computation.
type Root struct {
	owner *internal.Owner
}

// NewRoot installs a fresh, parent-less owner, runs fn once with it
// current (and no current observer), restores the previous owner and
// observer on every exit path including a panic, and returns the Root
// so its scope can be disposed later.
func NewRoot(fn func()) *Root {
	state := internal.CurrentState()
	owner := internal.NewOwner(nil)

	state.WithOwnerAndObserver(owner, nil, fn)

	return &Root{owner: owner}
}

// Dispose releases every computation and signal created under this root.
func (r *Root) Dispose() {
	r.owner.Clear()
}
