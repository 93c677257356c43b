// File: view.go
// Role: Non-mutating adjacency views: EdgeIterator (pull) and Neighbors (push).
// Determinism:
//   - Iteration order follows the adjacency map and is unspecified.
//     Use NeighborIDs for a sorted listing.
// Concurrency:
//   - Both views hold the owner's read lock while they are live.
//     Connect on the owner blocks until the view is done.
//   - Calling Connect on the owner from inside a live view deadlocks.

package core

import "iter"

// Edges returns a lazy iterator over v's outgoing edges. Each yielded Vertex
// is a fresh handle to a neighbor.
//
// The read lock on v is acquired here and released when Next reports
// exhaustion or when Close is called, whichever happens first. Always Close
// an iterator you stop reading early; `defer it.Close()` is the usual form.
//
// Complexity: O(1) to create, O(1) per Next.
func (v Vertex[T]) Edges() *EdgeIterator[T] {
	s := v.state()
	s.mu.RLock()
	next, stop := iter.Pull(iter.Seq[Vertex[T]](s.adjacent))

	return &EdgeIterator[T]{owner: s, next: next, stop: stop}
}

// Next returns the next neighbor handle, or false once the edges are
// exhausted. The first false return releases the lock.
func (it *EdgeIterator[T]) Next() (Vertex[T], bool) {
	if it.done {
		return Vertex[T]{}, false
	}
	nb, ok := it.next()
	if !ok {
		it.Close()
	}

	return nb, ok
}

// Close releases the read lock. It is safe to call more than once.
func (it *EdgeIterator[T]) Close() {
	if it.done {
		return
	}
	it.done = true
	it.stop()
	it.owner.mu.RUnlock()
}

// Count consumes the remaining edges, closes the iterator and returns how
// many were left.
func (it *EdgeIterator[T]) Count() int {
	n := 0
	for {
		if _, ok := it.Next(); !ok {
			return n
		}
		n++
	}
}

// Collect consumes the remaining edges into a slice and closes the iterator.
func (it *EdgeIterator[T]) Collect() []Vertex[T] {
	var out []Vertex[T]
	for {
		nb, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, nb)
	}
}

// Neighbors returns a single-use-per-loop sequence over v's outgoing edges
// for range-over-func:
//
//	for nb := range v.Neighbors() { ... }
//
// The read lock is taken when the loop starts and released when it ends,
// including on break or panic.
func (v Vertex[T]) Neighbors() iter.Seq[Vertex[T]] {
	s := v.state()

	return func(yield func(Vertex[T]) bool) {
		s.mu.RLock()
		defer s.mu.RUnlock()
		s.adjacent(yield)
	}
}

// adjacent yields a handle per adjacency entry. Caller holds s.mu.
func (s *vertexState[T]) adjacent(yield func(Vertex[T]) bool) {
	for _, nb := range s.edges {
		if !yield(Vertex[T]{s: nb}) {
			return
		}
	}
}
