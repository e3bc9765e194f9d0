package search

import "container/heap"

// PriorityFrontier extracts the lowest-ordered pending state first, as
// defined by the state type's Less method. Backed by a binary min-heap,
// it is the frontier that gives FindBestPath its Dijkstra optimality
// guarantee when Less orders by ascending accumulated cost.
//
// Complexity: Push and Pop are O(log n), Len is O(1).
type PriorityFrontier[I Ordered[I]] struct {
	h itemHeap[I]
}

// NewPriorityFrontier returns an empty min-first frontier.
func NewPriorityFrontier[I Ordered[I]]() *PriorityFrontier[I] {
	return &PriorityFrontier[I]{h: make(itemHeap[I], 0)}
}

// Push inserts s, restoring the heap invariant.
func (f *PriorityFrontier[I]) Push(s I) {
	heap.Push(&f.h, s)
}

// Pop removes and returns the minimum pending state, or ok=false when empty.
func (f *PriorityFrontier[I]) Pop() (I, bool) {
	if len(f.h) == 0 {
		var zero I
		return zero, false
	}

	return heap.Pop(&f.h).(I), true
}

// Len returns the number of pending states.
func (f *PriorityFrontier[I]) Len() int { return len(f.h) }

// itemHeap adapts a slice of states to container/heap, ordered by the
// state type's own Less.
type itemHeap[I Ordered[I]] []I

// Len returns the number of items in the heap.
func (h itemHeap[I]) Len() int { return len(h) }

// Less defers to the state ordering: smaller → higher priority.
func (h itemHeap[I]) Less(i, j int) bool { return h[i].Less(h[j]) }

// Swap swaps two elements in the heap.
func (h itemHeap[I]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type I.
func (h *itemHeap[I]) Push(x any) { *h = append(*h, x.(I)) }

// Pop removes and returns the last element of the heap slice.
// Called by heap.Pop after it has moved the minimum there.
func (h *itemHeap[I]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// StackFrontier extracts the most recently inserted state first (LIFO).
// Driving FindBestPath with a stack degenerates the search into exhaustive
// depth-first enumeration with no optimality guarantee; use it for
// backtracking problems or to brute-force small instances in tests.
//
// Complexity: Push and Pop are amortized O(1), Len is O(1).
type StackFrontier[I any] struct {
	items []I
}

// NewStackFrontier returns an empty LIFO frontier.
func NewStackFrontier[I any]() *StackFrontier[I] {
	return &StackFrontier[I]{items: make([]I, 0)}
}

// Push appends s to the top of the stack.
func (f *StackFrontier[I]) Push(s I) {
	f.items = append(f.items, s)
}

// Pop removes and returns the most recently pushed state, or ok=false when empty.
func (f *StackFrontier[I]) Pop() (I, bool) {
	n := len(f.items)
	if n == 0 {
		var zero I
		return zero, false
	}
	item := f.items[n-1]
	f.items = f.items[:n-1]

	return item, true
}

// Len returns the number of pending states.
func (f *StackFrontier[I]) Len() int { return len(f.items) }
