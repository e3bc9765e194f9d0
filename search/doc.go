// Package search provides a generic, single-threaded best-first search
// kernel with pluggable frontier ordering and deduplication.
//
// What:
//
//   - Problem[I]: the instance description — Start, IsGoal, Successors.
//   - Frontier[I]: the pending-state container. Two strategies ship:
//     PriorityFrontier (min-cost first, binary heap) and StackFrontier
//     (LIFO, exhaustive enumeration).
//   - Skipper[I]: the redundancy policy. Two strategies ship:
//     FingerprintSkipper (set of reduced state keys) and NoSkipper.
//   - FindBestPath: the kernel loop wiring the three together.
//
// Why:
//
//   - Shortest paths over implicit state spaces: states are generated on
//     demand, never materialized as a graph.
//   - One kernel, many problems: only the Problem and the state type
//     change between instantiations; ordering and pruning are reused.
//   - Provable pruning: the fingerprint contract isolates the one
//     correctness argument (cost-ascending extraction makes the first
//     visit of a fingerprint the cheapest) in a single place.
//
// The kernel loop, in order:
//
//  1. Pop the best pending state; an empty frontier means exhaustion and
//     FindBestPath returns ok=false.
//  2. If the state satisfies IsGoal, return it immediately — with a
//     cost-ascending frontier this is the optimality point.
//  3. Ask the skipper; a previously seen fingerprint discards the state.
//  4. Push every successor and continue.
//
// Complexity:
//
//   - PriorityFrontier: Push/Pop O(log n).
//   - StackFrontier: Push/Pop O(1).
//   - FingerprintSkipper: Skip O(1) expected, memory O(distinct fingerprints).
//   - FindBestPath: O(S·B·log(S·B)) time with the priority frontier and
//     fingerprint skipper, S = distinct fingerprints, B = branching factor.
//
// Concurrency:
//
//   - The kernel and both frontier/skipper implementations are not
//     goroutine-safe; each search invocation owns its frontier and skipper
//     exclusively. Problems must be read-only during the search and may
//     then be shared across sequential invocations.
//
// Use compile-time generics to instantiate the kernel; the instantiation
// set is closed per call site, so dispatch costs nothing.
package search
