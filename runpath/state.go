package runpath

import (
	"github.com/katalvlaran/gridpath/grid"
)

// State is one node of the augmented search space: a grid position joined
// with the direction it was entered from and the length of the current
// straight run. Two invariants hold for every State produced by a Problem:
//
//   - Run equals the number of consecutive moves in Dir at the end of the
//     path that produced the state (0 only for the start state).
//   - Cost is the sum of the weights of every cell entered along that path,
//     monotonically non-decreasing because weights are non-negative.
//
// States are immutable once created.
type State struct {
	// Pos is the current grid coordinate.
	Pos grid.Coord

	// Dir is the direction of the most recent move. Meaningful only when
	// Moved is true; the start state has no incoming direction.
	Dir grid.Direction

	// Moved distinguishes the start state (false) from every expanded
	// state (true).
	Moved bool

	// Run counts consecutive moves in Dir, including the most recent one.
	Run int

	// Cost is the accumulated weight of all entered cells.
	Cost int64

	// trace records one direction per entered cell, shared-nothing per
	// state. Nil unless the problem was built with WithReturnPath.
	trace []grid.Direction
}

// Less orders states for the priority frontier: ascending accumulated
// cost, ties broken by descending Manhattan norm of the position so that
// states farther from the origin are extracted first. The tie-break makes
// extraction order — and therefore the returned path — deterministic.
// Complexity: O(1).
func (s State) Less(o State) bool {
	if s.Cost != o.Cost {
		return s.Cost < o.Cost
	}

	return s.Pos.Manhattan() > o.Pos.Manhattan()
}

// Key is the reduced deduplication fingerprint of a State: position,
// incoming direction, and run length. Cost and trace are deliberately
// dropped — under cost-ascending extraction, a fingerprint's second
// occurrence can only cost the same or more, so it is safe to discard.
type Key struct {
	Pos   grid.Coord
	Dir   grid.Direction
	Moved bool
	Run   int
}

// Fingerprint returns the deduplication key for s.
// Complexity: O(1).
func (s State) Fingerprint() Key {
	return Key{Pos: s.Pos, Dir: s.Dir, Moved: s.Moved, Run: s.Run}
}
