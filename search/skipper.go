package search

// FingerprintSkipper prunes states whose reduced fingerprint has already
// been extracted. Soundness rests on the fingerprint contract (see
// Fingerprinted): under a cost-ascending frontier, the first extraction of
// a fingerprint is the cheapest, so every later state carrying the same
// fingerprint is redundant.
//
// A FingerprintSkipper is a cache with an explicit lifecycle: call Clear
// between independent search runs that share one skipper instance.
//
// Complexity: Skip is O(1) expected; memory grows with the number of
// distinct fingerprints seen.
type FingerprintSkipper[I Fingerprinted[F], F comparable] struct {
	seen map[F]struct{}
}

// NewFingerprintSkipper returns an empty fingerprint skipper.
func NewFingerprintSkipper[I Fingerprinted[F], F comparable]() *FingerprintSkipper[I, F] {
	return &FingerprintSkipper[I, F]{seen: make(map[F]struct{})}
}

// Skip records the fingerprint of s and reports whether it was already
// present. A true result means s is redundant and must not be expanded.
func (k *FingerprintSkipper[I, F]) Skip(s I) bool {
	fp := s.Fingerprint()
	if _, ok := k.seen[fp]; ok {
		return true
	}
	k.seen[fp] = struct{}{}

	return false
}

// Clear forgets every recorded fingerprint.
func (k *FingerprintSkipper[I, F]) Clear() {
	k.seen = make(map[F]struct{})
}

// Seen returns the number of distinct fingerprints recorded so far.
// Bounded by the reachable fingerprint space; for grid problems that is
// width × height × directions × run-lengths.
func (k *FingerprintSkipper[I, F]) Seen() int { return len(k.seen) }

// NoSkipper never prunes. Every extracted state is expanded, so the search
// degenerates to full enumeration — only tractable on small state spaces,
// and the reference policy for validating a fingerprint skipper against
// brute force in tests.
type NoSkipper[I any] struct{}

// NewNoSkipper returns the no-op skipper.
func NewNoSkipper[I any]() NoSkipper[I] { return NoSkipper[I]{} }

// Skip always reports false: nothing is ever redundant.
func (NoSkipper[I]) Skip(I) bool { return false }

// Clear is a no-op; there is nothing to forget.
func (NoSkipper[I]) Clear() {}
