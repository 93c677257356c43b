// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge mutation (Connect, Link) and membership (ConnectsTo, ConnectedFrom).
// Concurrency:
//   - Connect takes the write lock of the source vertex only.
//   - Membership queries take the read lock of the vertex whose map is inspected.
//   - No method holds two vertex locks at once.
// AI-HINT (file):
//   - Connect(self) panics; check IDs first or use Graph.Connect for an error return.
//   - Link is not atomic: a reader may see a→b without b→a for a short window.

package core

import "fmt"

// Connect adds the directed edge v→other, replacing any existing entry keyed
// by other's ID. Re-connecting is idempotent with respect to membership.
//
// Implementation:
//   - Stage 1: Resolve both records and read both IDs (lock-free).
//   - Stage 2: Reject v.ID()==other.ID() by panicking with ErrSelfConnect.
//   - Stage 3: Under v's write lock, store edges[other.ID()] = other's record.
//
// Panics:
//   - ErrSelfConnect (wrapped) if both handles carry the same ID. The
//     adjacency map is not modified.
//   - ErrZeroVertex if either handle is the zero Vertex.
//
// Complexity: O(1) amortized.
// Concurrency: write lock on v only; other is never locked.
func (v Vertex[T]) Connect(other Vertex[T]) {
	src := v.state()
	dst := other.state()
	if src.id == dst.id {
		panic(fmt.Errorf("Connect(%s, %s): %w", src.id, dst.id, ErrSelfConnect))
	}

	src.mu.Lock()
	src.edges[dst.id] = dst
	src.mu.Unlock()
}

// Link connects v and other in both directions: v→other, then other→v.
// The two insertions take the two write locks one after the other.
// Panics as Connect does.
func (v Vertex[T]) Link(other Vertex[T]) {
	v.Connect(other)
	other.Connect(v)
}

// ConnectsTo reports whether v has an outgoing edge keyed by other's ID.
// Complexity: O(1). Concurrency: read lock on v only.
func (v Vertex[T]) ConnectsTo(other Vertex[T]) bool {
	s := v.state()
	key := other.state().id

	s.mu.RLock()
	_, ok := s.edges[key]
	s.mu.RUnlock()

	return ok
}

// ConnectedFrom reports whether other has an outgoing edge to v.
// It is other.ConnectsTo(v).
func (v Vertex[T]) ConnectedFrom(other Vertex[T]) bool {
	return other.ConnectsTo(v)
}
