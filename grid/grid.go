// Package grid provides immutable rectangular weight matrices and the
// bounds-checked navigation primitive used by the search packages.
//
// A Grid holds non-negative int64 cell weights. It supports:
//
//   - Construction from a 2D slice (New) or from lines of ASCII digits (Parse)
//   - O(1) bounds queries and cell lookups
//   - Step: move one cell in a compass direction, reporting the entered
//     cell's weight, or ok=false when the move would leave the matrix
//
// Grids are deep-copied on construction and never mutated afterward, so a
// single Grid may be shared (read-only) across sequential searches.
package grid

import (
	"fmt"
	"strings"
)

// Grid is an immutable rectangular matrix of non-negative cell weights.
// Construct one with New or Parse; the zero value is not usable.
type Grid struct {
	width  int
	height int
	cells  [][]int64
}

// New constructs a Grid from a non-empty, rectangular 2D slice of
// non-negative weights. The input is deep-copied to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrNegativeWeight if any cell is negative.
// Complexity: O(W×H) time and memory.
func New(values [][]int64) (*Grid, error) {
	// 1) Validate shape before copying anything.
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	// 2) Deep copy, validating weights cell by cell.
	cells := make([][]int64, h)
	var x, y int
	for y = 0; y < h; y++ {
		cells[y] = make([]int64, w)
		for x = 0; x < w; x++ {
			if values[y][x] < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d) = %d", ErrNegativeWeight, x, y, values[y][x])
			}
			cells[y][x] = values[y][x]
		}
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Parse constructs a Grid from newline-separated rows of ASCII digits,
// each digit being the weight of one cell. Leading and trailing blank
// lines are ignored; interior structure must be rectangular.
// Returns ErrEmptyGrid for empty input, ErrNonRectangular for ragged rows,
// and ErrBadDigit (wrapped with the offending byte and position) for any
// byte outside '0'–'9'.
// Complexity: O(len(input)) time, O(W×H) memory.
func Parse(input string) (*Grid, error) {
	// 1) Split into rows, dropping the surrounding blank lines that
	//    raw-string literals and trailing newlines produce.
	lines := strings.Split(strings.Trim(input, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, ErrEmptyGrid
	}

	// 2) Decode each row, enforcing rectangular shape as we go.
	w := len(lines[0])
	if w == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]int64, len(lines))
	var y, x int
	var line string
	for y, line = range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(line), w)
		}
		row := make([]int64, w)
		for x = 0; x < w; x++ {
			b := line[x]
			if b < '0' || b > '9' {
				return nil, fmt.Errorf("%w: byte %q at (%d,%d)", ErrBadDigit, b, x, y)
			}
			row[x] = int64(b - '0')
		}
		cells[y] = row
	}

	return &Grid{width: w, height: len(lines), cells: cells}, nil
}

// Width returns the number of columns.
// Complexity: O(1).
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
// Complexity: O(1).
func (g *Grid) Height() int { return g.height }

// Corner returns the bottom-right coordinate (Width-1, Height-1).
// Complexity: O(1).
func (g *Grid) Corner() Coord {
	return Coord{X: g.width - 1, Y: g.height - 1}
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// At returns the weight of the cell at c. The caller must ensure c is in
// bounds; use Step or InBounds for checked access.
// Complexity: O(1).
func (g *Grid) At(c Coord) int64 {
	return g.cells[c.Y][c.X]
}

// Step moves one cell from p in direction d. On success it returns the new
// position, the weight of the entered cell, and ok=true. If the move would
// leave the matrix it returns ok=false; it never panics, even when p itself
// is out of range.
// Complexity: O(1).
func (g *Grid) Step(p Coord, d Direction) (Coord, int64, bool) {
	next := p.Add(d.Delta())
	if !g.InBounds(next) {
		return Coord{}, 0, false
	}

	return next, g.cells[next.Y][next.X], true
}
