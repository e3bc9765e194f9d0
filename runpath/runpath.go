// Package runpath computes exact shortest paths across weighted grids
// under a run-length constraint: a straight run must last at least Min
// and at most Max cells before turning, and reversing is forbidden.
package runpath

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Result is the outcome of a successful BestPath search.
//
// Cost is the minimal accumulated weight of entered cells from the
// top-left to the bottom-right corner. Path and Moves are populated only
// when the search ran with WithReturnPath: Moves[i] is the direction of
// the i-th single-cell step and Path[i] the cell it entered, so Path
// starts one cell after the origin and ends on the corner.
type Result struct {
	Cost  int64
	Path  []grid.Coord
	Moves []grid.Direction
}

// BestPath finds the cheapest route from the top-left to the bottom-right
// corner of g under the configured run-length constraint.
//
// It wires the generic kernel with a fresh min-cost priority frontier and
// a fresh fingerprint skipper per invocation, so repeated calls over one
// shared grid — with the same or different constraints — never leak state
// between runs.
//
// Returns:
//
//   - Result with the minimal cost (and the route when WithReturnPath).
//   - ErrNilGrid / ErrBadConstraint for configuration errors, detected
//     before any search work.
//   - ErrNoPath when the search exhausts without reaching the corner; for
//     some constraints no route exists and this is a defined outcome,
//     not a failure.
//
// Determinism: for a fixed grid and constraint, BestPath always returns
// the same cost, and with WithReturnPath the same path, because state
// extraction is totally ordered (cost ascending, Manhattan-norm tie-break).
//
// Complexity: O(S log S) time and O(S) memory where
// S ≤ width × height × 4 directions × Max run lengths, the reachable
// fingerprint space.
func BestPath(g *grid.Grid, opts ...Option) (Result, error) {
	// 1) Build and validate the problem; configuration errors stop here.
	p, err := NewProblem(g, opts...)
	if err != nil {
		return Result{}, err
	}

	// 2) Fresh frontier and skipper for this invocation only.
	frontier := search.NewPriorityFrontier[State]()
	skipper := search.NewFingerprintSkipper[State, Key]()

	// 3) Run the kernel to completion (Found or Exhausted).
	best, found := search.FindBestPath[State](p, frontier, skipper)
	if !found {
		return Result{}, ErrNoPath
	}

	// 4) Assemble the result, replaying the trace into coordinates when
	//    path recording was requested.
	res := Result{Cost: best.Cost}
	if p.recordPath {
		res.Moves = best.trace
		res.Path = replay(p.Start().Pos, best.trace)
	}

	return res, nil
}

// MinimumCost is a convenience wrapper around BestPath returning only the
// minimal cost. Same options, same errors.
func MinimumCost(g *grid.Grid, opts ...Option) (int64, error) {
	res, err := BestPath(g, opts...)
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// replay converts a move trace into the sequence of entered coordinates,
// starting from (and excluding) the given origin.
// Complexity: O(len(moves)).
func replay(origin grid.Coord, moves []grid.Direction) []grid.Coord {
	path := make([]grid.Coord, 0, len(moves))
	pos := origin
	var d grid.Direction
	for _, d = range moves {
		pos = pos.Add(d.Delta())
		path = append(path, pos)
	}

	return path
}
