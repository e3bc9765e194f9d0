// Package search_test exercises the generic kernel against a synthetic
// "ladder" problem small enough to verify by hand: states are rungs
// 0..goal, each rung offers a short hop (+1, cost 3) and a long hop
// (+2, cost 5). The cheapest route mixes hops, so priority ordering and
// stack ordering give observably different answers.
package search_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/search"
)

// rung is a test state: ladder position plus accumulated cost.
type rung struct {
	id   int
	cost int64
}

// Less orders rungs by ascending cost, ties broken by descending id so
// extraction is deterministic.
func (r rung) Less(o rung) bool {
	if r.cost != o.cost {
		return r.cost < o.cost
	}

	return r.id > o.id
}

// Fingerprint reduces a rung to its position: reaching the same rung again
// can only cost more under cost-ascending extraction.
func (r rung) Fingerprint() int { return r.id }

// ladder is the test problem: climb from rung 0 to rung goal.
// The long hop is pushed before the short hop so a LIFO frontier explores
// short hops first and finds the all-short-hop route.
type ladder struct {
	goal int
}

func (l ladder) Start() rung { return rung{id: 0} }

func (l ladder) IsGoal(r rung) bool { return r.id == l.goal }

func (l ladder) Successors(r rung) []rung {
	if r.id >= l.goal {
		return nil // never overshoot; keeps the state space finite
	}
	next := []rung{{id: r.id + 2, cost: r.cost + 5}}
	if r.id+1 <= l.goal {
		next = append(next, rung{id: r.id + 1, cost: r.cost + 3})
	}

	return next
}

//----------------------------------------------------------------------------//
// Kernel behavior
//----------------------------------------------------------------------------//

// TestFindBestPath_PriorityOptimal: with the priority frontier the kernel
// must return the cheapest route. Rung 2 is reachable as one long hop
// (cost 5) or two short hops (cost 6); the optimum is 5.
func TestFindBestPath_PriorityOptimal(t *testing.T) {
	best, found := search.FindBestPath[rung](
		ladder{goal: 2},
		search.NewPriorityFrontier[rung](),
		search.NewFingerprintSkipper[rung, int](),
	)
	if !found {
		t.Fatal("FindBestPath found=false; want true")
	}
	if best.cost != 5 {
		t.Errorf("best cost = %d; want 5", best.cost)
	}
}

// TestFindBestPath_StackDegenerate: with the stack frontier the kernel is
// an exhaustive DFS and returns the first goal it stumbles on — here the
// two-short-hop route (cost 6), not the optimum.
func TestFindBestPath_StackDegenerate(t *testing.T) {
	best, found := search.FindBestPath[rung](
		ladder{goal: 2},
		search.NewStackFrontier[rung](),
		search.NewNoSkipper[rung](),
	)
	if !found {
		t.Fatal("FindBestPath found=false; want true")
	}
	if best.cost != 6 {
		t.Errorf("first DFS goal cost = %d; want 6", best.cost)
	}
}

// TestFindBestPath_Exhausted: an unreachable goal must yield found=false,
// not an error or a hang.
func TestFindBestPath_Exhausted(t *testing.T) {
	// goal = -1 is unreachable: successors only climb.
	_, found := search.FindBestPath[rung](
		ladder{goal: -1},
		search.NewPriorityFrontier[rung](),
		search.NewFingerprintSkipper[rung, int](),
	)
	if found {
		t.Error("FindBestPath found=true for unreachable goal; want false")
	}
}

// TestFindBestPath_StartIsGoal: when the start state satisfies the goal
// the kernel must return it with zero cost and never generate successors.
func TestFindBestPath_StartIsGoal(t *testing.T) {
	p := &countingProblem{inner: ladder{goal: 0}}
	best, found := search.FindBestPath[rung](
		p,
		search.NewPriorityFrontier[rung](),
		search.NewFingerprintSkipper[rung, int](),
	)
	if !found {
		t.Fatal("FindBestPath found=false; want true")
	}
	if best.cost != 0 {
		t.Errorf("best cost = %d; want 0", best.cost)
	}
	if p.expansions != 0 {
		t.Errorf("successor expansions = %d; want 0", p.expansions)
	}
}

// TestFindBestPath_GoalBeforeSkip: the goal check must precede the skipper
// query, so a goal state is never consulted for (or recorded by) the
// skipper.
func TestFindBestPath_GoalBeforeSkip(t *testing.T) {
	rec := &recordingSkipper{inner: search.NewFingerprintSkipper[rung, int]()}
	_, found := search.FindBestPath[rung](
		ladder{goal: 3},
		search.NewPriorityFrontier[rung](),
		rec,
	)
	if !found {
		t.Fatal("FindBestPath found=false; want true")
	}
	for _, r := range rec.asked {
		if r.id == 3 {
			t.Errorf("skipper consulted for goal state %+v", r)
		}
	}
}

// TestFindBestPath_SkipperPrunes: with a fingerprint skipper the kernel
// must expand each rung at most once even though many duplicate entries
// reach the frontier.
func TestFindBestPath_SkipperPrunes(t *testing.T) {
	p := &countingProblem{inner: ladder{goal: 12}}
	_, found := search.FindBestPath[rung](
		p,
		search.NewPriorityFrontier[rung](),
		search.NewFingerprintSkipper[rung, int](),
	)
	if !found {
		t.Fatal("FindBestPath found=false; want true")
	}
	// Rungs 0..11 are expandable; the goal rung is returned unexpanded.
	if p.expansions > 12 {
		t.Errorf("successor expansions = %d; want <= 12", p.expansions)
	}
}

//----------------------------------------------------------------------------//
// Test doubles
//----------------------------------------------------------------------------//

// countingProblem wraps a ladder and counts Successors invocations.
type countingProblem struct {
	inner      ladder
	expansions int
}

func (p *countingProblem) Start() rung { return p.inner.Start() }

func (p *countingProblem) IsGoal(r rung) bool { return p.inner.IsGoal(r) }

func (p *countingProblem) Successors(r rung) []rung {
	p.expansions++

	return p.inner.Successors(r)
}

// recordingSkipper wraps a skipper and records every consulted state.
type recordingSkipper struct {
	inner search.Skipper[rung]
	asked []rung
}

func (k *recordingSkipper) Skip(r rung) bool {
	k.asked = append(k.asked, r)

	return k.inner.Skip(r)
}

func (k *recordingSkipper) Clear() { k.inner.Clear() }
