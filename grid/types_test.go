package grid_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// Direction algebra
//----------------------------------------------------------------------------//

// TestDirection_Algebra checks the rotation identities for every direction:
// four lefts (or rights) return home, left and right cancel, and two
// reversals cancel.
func TestDirection_Algebra(t *testing.T) {
	for _, d := range grid.Directions() {
		if got := d.Left().Left().Left().Left(); got != d {
			t.Errorf("%v: four Left() = %v; want %v", d, got, d)
		}
		if got := d.Right().Right().Right().Right(); got != d {
			t.Errorf("%v: four Right() = %v; want %v", d, got, d)
		}
		if got := d.Left().Right(); got != d {
			t.Errorf("%v: Left().Right() = %v; want %v", d, got, d)
		}
		if got := d.Reverse().Reverse(); got != d {
			t.Errorf("%v: Reverse().Reverse() = %v; want %v", d, got, d)
		}
		if got := d.Left().Left(); got != d.Reverse() {
			t.Errorf("%v: two Left() = %v; want Reverse() = %v", d, got, d.Reverse())
		}
	}
}

// TestDirection_Perpendicular verifies perpendicularity against self,
// reverse, and both orthogonal neighbors.
func TestDirection_Perpendicular(t *testing.T) {
	for _, d := range grid.Directions() {
		if d.Perpendicular(d) {
			t.Errorf("%v: Perpendicular(self) = true; want false", d)
		}
		if d.Perpendicular(d.Reverse()) {
			t.Errorf("%v: Perpendicular(reverse) = true; want false", d)
		}
		if !d.Perpendicular(d.Left()) || !d.Perpendicular(d.Right()) {
			t.Errorf("%v: Perpendicular(left/right) = false; want true", d)
		}
	}
}

// TestDirection_Delta pins the unit offsets of the screen coordinate
// system: East grows X, South grows Y.
func TestDirection_Delta(t *testing.T) {
	want := map[grid.Direction]grid.Coord{
		grid.East:  {X: 1, Y: 0},
		grid.North: {X: 0, Y: -1},
		grid.West:  {X: -1, Y: 0},
		grid.South: {X: 0, Y: 1},
	}
	for d, delta := range want {
		if got := d.Delta(); got != delta {
			t.Errorf("%v.Delta() = %v; want %v", d, got, delta)
		}
	}
	// A step followed by its reverse must return to the origin.
	for _, d := range grid.Directions() {
		if got := d.Delta().Add(d.Reverse().Delta()); got != (grid.Coord{}) {
			t.Errorf("%v: Delta + reverse Delta = %v; want (0,0)", d, got)
		}
	}
}

//----------------------------------------------------------------------------//
// Turn algebra
//----------------------------------------------------------------------------//

// TestTurn_RoundTrip verifies Apply and TurnToward are inverse for every
// direction pair.
func TestTurn_RoundTrip(t *testing.T) {
	for _, d := range grid.Directions() {
		for _, o := range grid.Directions() {
			turn := d.TurnToward(o)
			if got := d.Apply(turn); got != o {
				t.Errorf("%v.Apply(%v.TurnToward(%v)=%v) = %v; want %v", d, d, o, turn, got, o)
			}
		}
	}
}

// TestTurn_Named pins the four named turns for East.
func TestTurn_Named(t *testing.T) {
	cases := []struct {
		turn grid.Turn
		want grid.Direction
	}{
		{grid.TurnForward, grid.East},
		{grid.TurnLeft, grid.North},
		{grid.TurnRight, grid.South},
		{grid.TurnBack, grid.West},
	}
	for _, tc := range cases {
		if got := grid.East.Apply(tc.turn); got != tc.want {
			t.Errorf("East.Apply(%v) = %v; want %v", tc.turn, got, tc.want)
		}
	}
}

//----------------------------------------------------------------------------//
// Coord
//----------------------------------------------------------------------------//

// TestCoord_Manhattan checks the L1 norm over sign combinations.
func TestCoord_Manhattan(t *testing.T) {
	cases := []struct {
		c    grid.Coord
		want int
	}{
		{grid.Coord{X: 0, Y: 0}, 0},
		{grid.Coord{X: 3, Y: 4}, 7},
		{grid.Coord{X: -3, Y: 4}, 7},
		{grid.Coord{X: 3, Y: -4}, 7},
		{grid.Coord{X: -3, Y: -4}, 7},
	}
	for _, tc := range cases {
		if got := tc.c.Manhattan(); got != tc.want {
			t.Errorf("%v.Manhattan() = %d; want %d", tc.c, got, tc.want)
		}
	}
}

// TestCoord_String pins the rendering used in error messages.
func TestCoord_String(t *testing.T) {
	if got := (grid.Coord{X: 2, Y: -1}).String(); got != "(2,-1)" {
		t.Errorf("String() = %q; want %q", got, "(2,-1)")
	}
}
