package runpath

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Problem is the run-length-constrained routing instance: an immutable
// weight grid plus a Constraint, implementing the search contracts
// (search.Problem[State]) for the generic kernel. The grid is never
// mutated and may be shared across sequential problems with different
// constraints.
type Problem struct {
	grid       *grid.Grid
	constraint Constraint
	recordPath bool
}

// NewProblem builds a routing problem over g. Configuration errors —
// nil grid, invalid constraint — are reported here, before any search
// begins, and are distinct from the ErrNoPath outcome.
// Complexity: O(1); the grid is referenced, not copied.
func NewProblem(g *grid.Grid, opts ...Option) (*Problem, error) {
	// 1) Apply functional options over the defaults.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the grid.
	if g == nil {
		return nil, ErrNilGrid
	}

	// 3) Validate the constraint. NewConstraint already guarantees this for
	//    well-behaved callers; re-checking catches hand-rolled zero values.
	if !cfg.Constraint.valid() {
		return nil, fmt.Errorf("%w: got %s", ErrBadConstraint, cfg.Constraint)
	}

	return &Problem{
		grid:       g,
		constraint: cfg.Constraint,
		recordPath: cfg.ReturnPath,
	}, nil
}

// Constraint returns the problem's run-length bounds.
func (p *Problem) Constraint() Constraint { return p.constraint }

// Grid returns the underlying weight grid (read-only by convention).
func (p *Problem) Grid() *grid.Grid { return p.grid }

// Start returns the initial state: top-left corner, no incoming direction,
// run length 0, cost 0. The weight of the start cell is never paid — cost
// accumulates on entering cells, and the start cell is never entered.
func (p *Problem) Start() State {
	return State{Pos: grid.Coord{X: 0, Y: 0}}
}

// IsGoal reports whether s stands on the bottom-right corner. No condition
// is placed on the final direction or run length beyond what reaching the
// corner legally required.
// Complexity: O(1).
func (p *Problem) IsGoal(s State) bool {
	return s.Pos == p.grid.Corner()
}

// Successors generates every legal transition out of s under the
// run-length constraint. For each compass direction d:
//
//   - Reversing the incoming direction is never allowed.
//   - Continuing straight (d equals the incoming direction) advances a
//     single cell and extends the run by one; it is rejected once the run
//     would exceed Constraint.Max.
//   - Turning — and the very first move, which has no incoming direction —
//     is a compound move: a commitment of exactly Constraint.Min cells in
//     d, so that a turn can never occur before the minimum straight run is
//     satisfied. The resulting run length is exactly Min.
//   - Every intermediate cell is bounds-checked via grid.Step; a compound
//     move that would exit the grid partway is rejected whole.
//   - Cost accumulates the weight of every newly entered cell.
//
// Successors is a pure function of s, the immutable grid, and the
// constraint. It allocates only the returned slice (plus trace copies when
// path recording is on).
// Complexity: O(4 × Min) per call.
func (p *Problem) Successors(s State) []State {
	next := make([]State, 0, 4)

	var d grid.Direction
	for _, d = range grid.Directions() {
		// 1) Decide the move shape for this direction.
		steps := p.constraint.min // compound move: commit Min cells
		run := 0
		if s.Moved {
			if d == s.Dir.Reverse() {
				continue // no backtracking, ever
			}
			if d == s.Dir {
				steps = 1 // straight: single step, run continues
				run = s.Run
			}
		}

		// 2) Walk the cells one by one, bounds-checking each.
		pos := s.Pos
		cost := s.Cost
		var trace []grid.Direction
		if p.recordPath {
			trace = make([]grid.Direction, len(s.trace), len(s.trace)+steps)
			copy(trace, s.trace)
		}
		legal := true
		for i := 0; i < steps; i++ {
			np, w, ok := p.grid.Step(pos, d)
			if !ok {
				legal = false // partway out of bounds rejects the whole move
				break
			}
			pos = np
			cost += w
			run++
			if p.recordPath {
				trace = append(trace, d)
			}
		}
		if !legal {
			continue
		}

		// 3) The completed run must fit the constraint. Straight moves are
		//    the only way run can exceed Max; compound moves land on Min.
		if !p.constraint.ValidRun(run) {
			continue
		}

		next = append(next, State{
			Pos:   pos,
			Dir:   d,
			Moved: true,
			Run:   run,
			Cost:  cost,
			trace: trace,
		})
	}

	return next
}
