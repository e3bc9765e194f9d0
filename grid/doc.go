// Package grid supplies the geometry primitives for gridpath: integer
// coordinates, compass directions with a complete turn algebra, and
// immutable rectangular weight matrices with bounds-checked navigation.
//
// What:
//
//   - Coord: integer 2-D point with Add and the Manhattan (L1) norm.
//   - Direction: East/North/West/South with Left, Right, Reverse,
//     Perpendicular, and unit Delta offsets.
//   - Turn: Forward/Left/Right/Back, convertible to and from direction
//     pairs via Apply and TurnToward.
//   - Grid: deep-copied, read-only matrix of non-negative int64 weights,
//     built from a 2D slice (New) or from ASCII digit rows (Parse).
//   - Step: the single navigation primitive — move one cell in a compass
//     direction, returning the entered cell's weight, or ok=false when the
//     move would exit the matrix. Step never panics.
//
// Why:
//
//   - Search kernels: successor generation needs a move operation that is
//     impossible to misuse — out-of-bounds is a value, not a crash.
//   - Routing: cell weights model per-cell entry costs for shortest paths.
//   - Replay: the turn algebra lets callers validate a path's geometry.
//
// Complexity:
//
//   - New / Parse: O(W×H) time and memory.
//   - At / InBounds / Step and all Coord/Direction/Turn methods: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeWeight: a cell weight is negative.
//   - ErrBadDigit: a parsed byte is not an ASCII digit 0–9.
//
// Grids are immutable after construction and safe to share across
// sequential searches.
package grid
