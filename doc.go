// Package gridpath is a compact toolkit for exact best-first search over
// weighted grids — a generic search kernel plus a constrained shortest-path
// instantiation.
//
// 🚀 What is gridpath?
//
//	A small, focused library that brings together:
//		• Grid primitives: integer coordinates, compass directions with a full
//		  left/right/back turn algebra, immutable weight matrices, and a
//		  bounds-checked single-step move
//		• A generic best-first kernel: pluggable frontier ordering (min-cost
//		  priority heap or LIFO stack) and pluggable deduplication (fingerprint
//		  set or none)
//		• Run-length-constrained routing: Dijkstra-exact shortest paths where a
//		  straight run must last at least MinSteps and at most MaxSteps cells
//		  before a turn, and reversing is never allowed
//
// ✨ Why choose gridpath?
//
//   - Exact results – Dijkstra-family optimality, never a heuristic guess
//   - Deterministic – a total extraction order makes every run reproducible
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – the kernel works with any state type you can order and
//     fingerprint
//
// Everything is organized under three subpackages:
//
//	grid/    — coordinates, directions, turns, immutable weight matrices
//	search/  — Problem/Frontier/Skipper contracts and FindBestPath
//	runpath/ — the run-length-constrained shortest-path problem
//
// Quick ASCII example (weights, best route marked):
//
//	2 4 1        >>v
//	3 8 1   ⇒    . v
//	4 5 1        . >
//
// Dive into the package docs for full examples and complexity notes.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
