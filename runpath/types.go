// Package runpath defines configuration types, functional options, and
// sentinel errors for run-length-constrained grid routing.
package runpath

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the runpath package.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to a constructor.
	ErrNilGrid = errors.New("runpath: grid is nil")

	// ErrBadConstraint indicates a run-length constraint violating
	// 1 ≤ MinSteps ≤ MaxSteps. The zero Constraint is invalid by design;
	// build constraints with NewConstraint.
	ErrBadConstraint = errors.New("runpath: constraint must satisfy 1 <= min <= max")

	// ErrNoPath indicates the search exhausted every reachable state without
	// satisfying the goal. This is a defined outcome, distinct from the
	// construction errors: some constraints simply admit no route (for
	// example a minimum run longer than the grid's longest straight line).
	ErrNoPath = errors.New("runpath: no path satisfies the constraint")
)

// Constraint bounds the length of a straight run: at least Min consecutive
// cells in one direction before a turn is permitted, at most Max before a
// turn is mandatory. Immutable; build with NewConstraint.
type Constraint struct {
	min, max int
}

// NewConstraint returns a Constraint with the given bounds, or
// ErrBadConstraint unless 1 ≤ min ≤ max. Validation happens here, at
// construction, never inside the search loop.
func NewConstraint(min, max int) (Constraint, error) {
	if min < 1 || max < min {
		return Constraint{}, fmt.Errorf("%w: got min=%d max=%d", ErrBadConstraint, min, max)
	}

	return Constraint{min: min, max: max}, nil
}

// DefaultConstraint returns the (1, 3) constraint: turns allowed after any
// single step, never more than three straight cells.
func DefaultConstraint() Constraint {
	return Constraint{min: 1, max: 3}
}

// Min returns the minimum straight-run length before a turn is legal.
func (c Constraint) Min() int { return c.min }

// Max returns the maximum straight-run length before a turn is mandatory.
func (c Constraint) Max() int { return c.max }

// ValidRun reports whether a completed run of the given length satisfies
// the constraint: Min ≤ run ≤ Max.
// Complexity: O(1).
func (c Constraint) ValidRun(run int) bool {
	return run >= c.min && run <= c.max
}

// valid reports whether c was produced by NewConstraint (or
// DefaultConstraint) rather than being a zero or hand-rolled value.
func (c Constraint) valid() bool {
	return c.min >= 1 && c.max >= c.min
}

// String renders the constraint as "min..max".
func (c Constraint) String() string {
	return fmt.Sprintf("%d..%d", c.min, c.max)
}

// Options configures a constrained-path search.
//
// Constraint – run-length bounds; defaults to DefaultConstraint() (1..3).
// ReturnPath – if true, BestPath records and returns the cell-by-cell route.
type Options struct {
	Constraint Constraint // Run-length bounds for straight movement
	ReturnPath bool       // Whether to record the route for the result
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithConstraint sets the run-length constraint. Pass a value built by
// NewConstraint; invalid constraints are rejected with ErrBadConstraint
// when the problem is constructed.
func WithConstraint(c Constraint) Option {
	return func(o *Options) {
		o.Constraint = c
	}
}

// WithReturnPath enables route recording: the Result of BestPath will carry
// the full cell-by-cell path and its move sequence. Recording copies the
// trace on every expansion, so leave it off when only the cost matters.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns an Options struct initialized with the defaults:
// Constraint = DefaultConstraint() (1..3), ReturnPath = false.
func DefaultOptions() Options {
	return Options{
		Constraint: DefaultConstraint(),
		ReturnPath: false,
	}
}
