// File: methods_vertices.go
// Role: Vertex identity, value access and read-only adjacency queries.
//
// Determinism:
//   - NeighborIDs() returns IDs sorted ascending (byte-wise).
//   - String() lists edge IDs in the same order.
//
// Concurrency:
//   - ID() is lock-free (immutable field).
//   - Everything else takes the vertex read lock for the duration of the call.
package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvmesh/id"
)

// state returns the shared record, panicking on the zero handle.
func (v Vertex[T]) state() *vertexState[T] {
	if v.s == nil {
		panic(ErrZeroVertex)
	}

	return v.s
}

// IsZero reports whether v is the zero handle (not created by NewVertex).
func (v Vertex[T]) IsZero() bool { return v.s == nil }

// Clone returns another handle to the same node.
func (v Vertex[T]) Clone() Vertex[T] { return v }

// Same reports whether v and other are handles to the same node.
// Distinct nodes that happen to share an ID are not Same.
func (v Vertex[T]) Same(other Vertex[T]) bool { return v.s == other.s }

// ID returns the vertex identifier.
// Complexity: O(1). Concurrency: lock-free; the ID never changes.
func (v Vertex[T]) ID() id.ID {
	return v.state().id
}

// Value returns a copy of the stored value under the read lock.
// For reference-like T (maps, slices, pointers) the copy is shallow; use
// CloneValue with a Cloner to get a deep copy.
func (v Vertex[T]) Value() T {
	s := v.state()
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.value
}

// CloneValue returns value.Clone() when T implements Cloner[T], and a plain
// copy otherwise. The read lock is held while Clone runs.
func (v Vertex[T]) CloneValue() T {
	s := v.state()
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, ok := any(s.value).(Cloner[T]); ok {
		return c.Clone()
	}

	return s.value
}

// Degree returns the number of outgoing edges.
// Complexity: O(1).
func (v Vertex[T]) Degree() int {
	s := v.state()
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.edges)
}

// NeighborIDs returns the IDs of all outgoing neighbors, sorted ascending.
// Complexity: O(d log d).
func (v Vertex[T]) NeighborIDs() []id.ID {
	s := v.state()
	s.mu.RLock()
	out := s.neighborIDsLocked()
	s.mu.RUnlock()

	return out
}

// String renders the debug form
//
//	Vertex{id: 0a1b2c3d, value: alice, edges: [11223344 55667788]}
//
// with edge IDs sorted. The zero handle renders as "Vertex{}".
func (v Vertex[T]) String() string {
	if v.s == nil {
		return "Vertex{}"
	}
	s := v.s
	s.mu.RLock()
	value := s.value
	ids := s.neighborIDsLocked()
	s.mu.RUnlock()

	parts := make([]string, len(ids))
	for i, x := range ids {
		parts[i] = x.String()
	}

	return fmt.Sprintf("Vertex{id: %s, value: %v, edges: [%s]}", s.id, value, strings.Join(parts, " "))
}

// neighborIDsLocked collects and sorts adjacency keys. Caller holds s.mu.
func (s *vertexState[T]) neighborIDsLocked() []id.ID {
	out := make([]id.ID, 0, len(s.edges))
	for k := range s.edges {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}
