// Package search implements a generic best-first search kernel decoupling
// three concerns: the search state ("item"), the frontier ordering
// ("frontier"), and the redundancy policy ("skipper").
package search

// FindBestPath runs the search described by p, ordering pending states
// with frontier and pruning re-exploration with skipper. It returns the
// first extracted state satisfying p.IsGoal, or ok=false once the frontier
// empties (exhaustion — a defined no-result, not an error).
//
// Guarantee: with a PriorityFrontier whose Less orders by ascending
// accumulated cost, and non-negative transition costs, the returned state
// is a minimum-cost goal state (Dijkstra optimality). The goal test fires
// at extraction, not insertion: the moment a goal state is popped, every
// other pending state costs at least as much, so returning immediately is
// exactly what makes the result optimal. With a StackFrontier the kernel
// is an exhaustive depth-first enumerator and the first goal found carries
// no optimality claim.
//
// The skipper is consulted exactly once per extracted state, after the
// goal check and before successor generation; a skipped state is discarded
// without expansion.
//
// FindBestPath is single-threaded and synchronous, and runs to completion
// unconditionally. Termination is guaranteed whenever the skipper bounds
// re-expansion over a finite fingerprint space (or the state space itself
// is finite and acyclic).
//
// Complexity with PriorityFrontier and FingerprintSkipper: O(S·B·log(S·B))
// time and O(S·B) memory, where S is the number of distinct fingerprints
// and B the branching factor.
func FindBestPath[I any](p Problem[I], frontier Frontier[I], skipper Skipper[I]) (I, bool) {
	// 1) Seed the frontier with the start state.
	frontier.Push(p.Start())

	// 2) Main loop: extract best, test goal, consult skipper, expand.
	var item I
	var ok bool
	for {
		if item, ok = frontier.Pop(); !ok {
			// Exhausted: no pending state remains and no goal was found.
			var zero I
			return zero, false
		}

		// Goal check precedes the skipper: a goal state must be returned
		// even when its fingerprint was reached before along another route.
		if p.IsGoal(item) {
			return item, true
		}

		if skipper.Skip(item) {
			continue
		}

		for _, next := range p.Successors(item) {
			frontier.Push(next)
		}
	}
}
