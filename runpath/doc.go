// Package runpath solves run-length-constrained shortest paths on weighted
// grids: the route may only continue straight for a bounded number of
// cells (at least Min before a turn is permitted, at most Max before a
// turn is mandatory) and may never reverse.
//
// What:
//
//   - Constraint: immutable (Min, Max) run-length bounds, validated at
//     construction by NewConstraint.
//   - State: one node of the augmented search space — position × incoming
//     direction × run length — with accumulated cost.
//   - Problem: the search-kernel instantiation. Successor generation
//     enforces the constraint: straight moves advance one cell, turns and
//     the very first move commit a compound run of exactly Min cells.
//   - BestPath / MinimumCost: run the kernel with a min-cost priority
//     frontier and a fingerprint skipper, returning the exact optimum.
//
// Why:
//
//   - Vehicle routing with momentum: a cart that cannot turn sharply.
//   - Any grid flow where direction changes carry setup or inertia rules.
//   - A worked, non-trivial instantiation of the generic search kernel.
//
// Semantics of the first move:
//
//	The start state has no incoming direction. Its first move in any
//	direction is modeled as a compound commitment of exactly Min cells —
//	the same rule as a turn — so the minimum-run constraint binds from the
//	very first cell. This is an explicit, tested rule, not an emergent one.
//
// Correctness:
//
//	The deduplication fingerprint is (position, direction, run length),
//	deliberately coarser than full state identity. Because the frontier
//	extracts states in ascending cost order, the first extraction of a
//	fingerprint is the cheapest way to ever reach it, so later duplicates
//	are safely discarded. This is the central correctness argument of the
//	kernel and is pinned by the brute-force cross-check in the tests.
//
// Complexity:
//
//   - BestPath: O(S log S) time, O(S) memory, with
//     S ≤ W × H × 4 × Max reachable fingerprints.
//
// Errors:
//
//   - ErrNilGrid: nil grid passed to a constructor.
//   - ErrBadConstraint: bounds violating 1 ≤ Min ≤ Max.
//   - ErrNoPath: the search exhausted without reaching the corner — a
//     defined no-result outcome, distinct from the construction errors.
//
// Example:
//
//	g, err := grid.Parse(input) // rows of ASCII digit weights
//	if err != nil { ... }
//	c, err := runpath.NewConstraint(4, 10)
//	if err != nil { ... }
//	cost, err := runpath.MinimumCost(g, runpath.WithConstraint(c))
//
// The grid is read-only for the duration of a search and may be shared
// across sequential searches with different constraints.
package runpath
