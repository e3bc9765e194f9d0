// Package search defines the contracts wired together by the best-first
// kernel: the problem description, the frontier ordering, and the
// deduplication policy.
package search

// Problem describes one search instance over states of type I.
// Implementations must be pure: Successors may depend only on the given
// state and the problem's own immutable data, never on mutable shared
// state or I/O.
type Problem[I any] interface {
	// Start returns the initial state.
	Start() I

	// IsGoal reports whether s satisfies the goal predicate.
	IsGoal(s I) bool

	// Successors returns every state reachable from s in one transition.
	// Each returned state must already have passed its own bounds and
	// legality checks; the kernel inserts them into the frontier verbatim.
	Successors(s I) []I
}

// Ordered is the constraint for states held in a priority frontier.
// Less must define a strict weak order with ascending accumulated cost as
// the primary key and a deterministic tie-break as the secondary key, so
// extraction order (and therefore the returned path) is reproducible.
type Ordered[I any] interface {
	// Less reports whether the receiver should be extracted before o.
	Less(o I) bool
}

// Fingerprinted is the constraint for states pruned by a
// FingerprintSkipper. The fingerprint must be coarser than full state
// identity yet sound: once a fingerprint has been extracted, any later
// state with the same fingerprint must be safe to discard. Under a
// cost-ascending frontier this holds whenever two states with equal
// fingerprints are interchangeable for future expansion.
type Fingerprinted[F comparable] interface {
	// Fingerprint returns the reduced deduplication key.
	Fingerprint() F
}

// Frontier is the pending-state container. Ownership of a state transfers
// into the frontier on Push and back out on Pop; no state is ever held by
// two slots at once.
type Frontier[I any] interface {
	// Push inserts a pending state.
	Push(s I)

	// Pop removes and returns the best pending state, or ok=false when the
	// frontier is empty. Which state is "best" is the strategy's choice:
	// lowest cost for a priority frontier, most recent for a stack.
	Pop() (s I, ok bool)

	// Len returns the number of pending states.
	Len() int
}

// Skipper decides whether an extracted state has effectively been seen
// before and should be discarded instead of expanded. The kernel queries
// it exactly once per extracted state, after the goal check and before
// successor generation.
type Skipper[I any] interface {
	// Skip records s as seen and reports whether it was seen before.
	Skip(s I) bool

	// Clear forgets all recorded states, readying the skipper for an
	// independent search run. Reusing a skipper across runs without
	// clearing silently prunes the second run against the first.
	Clear()
}
