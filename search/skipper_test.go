package search_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/search"
)

// TestFingerprintSkipper_Dedup: the first occurrence of a fingerprint
// passes, every later occurrence is skipped — even at a different cost,
// which is exactly the point of the reduced key.
func TestFingerprintSkipper_Dedup(t *testing.T) {
	k := search.NewFingerprintSkipper[rung, int]()
	if k.Skip(rung{id: 7, cost: 10}) {
		t.Error("first Skip(id=7) = true; want false")
	}
	if !k.Skip(rung{id: 7, cost: 99}) {
		t.Error("second Skip(id=7) = false; want true")
	}
	if k.Skip(rung{id: 8, cost: 10}) {
		t.Error("first Skip(id=8) = true; want false")
	}
	if k.Seen() != 2 {
		t.Errorf("Seen() = %d; want 2", k.Seen())
	}
}

// TestFingerprintSkipper_Clear: Clear must forget everything so one
// skipper instance can serve independent sequential runs.
func TestFingerprintSkipper_Clear(t *testing.T) {
	k := search.NewFingerprintSkipper[rung, int]()
	_ = k.Skip(rung{id: 1})
	_ = k.Skip(rung{id: 2})
	if k.Seen() != 2 {
		t.Fatalf("Seen() = %d; want 2", k.Seen())
	}

	k.Clear()

	if k.Seen() != 0 {
		t.Errorf("Seen() after Clear = %d; want 0", k.Seen())
	}
	if k.Skip(rung{id: 1}) {
		t.Error("Skip after Clear = true; want false")
	}
}

// TestNoSkipper: never skips, and Clear is harmless.
func TestNoSkipper(t *testing.T) {
	k := search.NewNoSkipper[rung]()
	for i := 0; i < 3; i++ {
		if k.Skip(rung{id: 5}) {
			t.Errorf("Skip call %d = true; want false", i)
		}
	}
	k.Clear()
	if k.Skip(rung{id: 5}) {
		t.Error("Skip after Clear = true; want false")
	}
}
