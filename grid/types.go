// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNegativeWeight indicates a cell with a negative weight.
	ErrNegativeWeight = errors.New("grid: cell weights must be non-negative")
	// ErrBadDigit indicates a parsed byte outside the ASCII range '0'–'9'.
	ErrBadDigit = errors.New("grid: cell must be an ASCII digit 0-9")
)

// Coord is an integer point on a grid. X selects the column, Y the row;
// (0,0) is the top-left corner and Y grows downward.
type Coord struct {
	X, Y int
}

// Add returns the component-wise sum of c and d.
// Complexity: O(1).
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Manhattan returns |X| + |Y|, the L1 norm of c.
// Useful as a deterministic secondary ordering key for search states.
// Complexity: O(1).
func (c Coord) Manhattan() int {
	x, y := c.X, c.Y
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}

	return x + y
}

// String renders c as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the four compass directions.
// The zero value is East.
type Direction uint8

const (
	// East points toward growing X.
	East Direction = iota
	// North points toward shrinking Y.
	North
	// West points toward shrinking X.
	West
	// South points toward growing Y.
	South

	// numDirections is the cardinality of Direction; used by the turn algebra.
	numDirections = 4
)

// directionDeltas maps each Direction to its unit Coord offset.
var directionDeltas = [numDirections]Coord{
	East:  {X: 1, Y: 0},
	North: {X: 0, Y: -1},
	West:  {X: -1, Y: 0},
	South: {X: 0, Y: 1},
}

// directionNames maps each Direction to its display name.
var directionNames = [numDirections]string{
	East:  "East",
	North: "North",
	West:  "West",
	South: "South",
}

// Directions returns the four compass directions in a fixed, deterministic
// order (East, North, West, South). Iterating this slice instead of an ad-hoc
// literal keeps successor generation reproducible across call sites.
// Complexity: O(1); the backing array is shared, do not mutate.
func Directions() [4]Direction {
	return [4]Direction{East, North, West, South}
}

// Delta returns the unit offset of one step in direction d.
// Complexity: O(1).
func (d Direction) Delta() Coord {
	return directionDeltas[d]
}

// Left returns the direction after a 90° counter-clockwise turn.
// Complexity: O(1).
func (d Direction) Left() Direction {
	return (d + 1) % numDirections
}

// Right returns the direction after a 90° clockwise turn.
// Complexity: O(1).
func (d Direction) Right() Direction {
	return (d + numDirections - 1) % numDirections
}

// Reverse returns the opposite direction.
// Complexity: O(1).
func (d Direction) Reverse() Direction {
	return (d + 2) % numDirections
}

// Perpendicular reports whether o is at a right angle to d.
// Complexity: O(1).
func (d Direction) Perpendicular(o Direction) bool {
	return d != o && d.Reverse() != o
}

// Apply returns the direction reached by making turn t while facing d.
// Apply and TurnToward are inverse operations:
// d.Apply(d.TurnToward(o)) == o for every pair of directions.
// Complexity: O(1).
func (d Direction) Apply(t Turn) Direction {
	switch t {
	case TurnLeft:
		return d.Left()
	case TurnRight:
		return d.Right()
	case TurnBack:
		return d.Reverse()
	default:
		return d
	}
}

// TurnToward returns the turn that rotates d onto the direction o.
// Complexity: O(1).
func (d Direction) TurnToward(o Direction) Turn {
	switch o {
	case d:
		return TurnForward
	case d.Left():
		return TurnLeft
	case d.Right():
		return TurnRight
	default:
		return TurnBack
	}
}

// String returns the compass name of d, or "Direction(n)" for out-of-range values.
func (d Direction) String() string {
	if d >= numDirections {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}

	return directionNames[d]
}

// Turn is a relative rotation between two compass directions.
type Turn uint8

const (
	// TurnForward keeps the current direction.
	TurnForward Turn = iota
	// TurnLeft rotates 90° counter-clockwise.
	TurnLeft
	// TurnRight rotates 90° clockwise.
	TurnRight
	// TurnBack rotates 180°.
	TurnBack
)

// turnNames maps each Turn to its display name.
var turnNames = [4]string{
	TurnForward: "Forward",
	TurnLeft:    "Left",
	TurnRight:   "Right",
	TurnBack:    "Back",
}

// String returns the name of t, or "Turn(n)" for out-of-range values.
func (t Turn) String() string {
	if t > TurnBack {
		return fmt.Sprintf("Turn(%d)", uint8(t))
	}

	return turnNames[t]
}
