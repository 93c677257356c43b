// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Graph and EdgeIterator declarations, sentinel errors, constructors.
// Concurrency:
//   - vertexState.mu guards value and edges; id is immutable after construction.
//   - Graph.mu guards the catalog map only, never a vertex.
// AI-HINT (file):
//   - Vertex is a handle: pass it by value, compare with Same, not ==.
//   - Connect to self is a programmer error and panics with ErrSelfConnect.

package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/lvmesh/id"
)

// Sentinel errors for core operations.
var (
	// ErrSelfConnect indicates an attempt to add an edge from a vertex to itself.
	ErrSelfConnect = errors.New("core: vertex cannot connect to itself")

	// ErrZeroVertex indicates use of a Vertex handle that was never constructed.
	ErrZeroVertex = errors.New("core: zero vertex handle")

	// ErrDuplicateID indicates a Graph already holds a vertex with the same ID.
	ErrDuplicateID = errors.New("core: duplicate vertex ID")

	// ErrVertexNotFound indicates a Graph lookup by an unknown ID.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Cloner is implemented by values that know how to duplicate themselves.
// CloneValue uses it when T satisfies it; otherwise the value is copied.
type Cloner[T any] interface {
	Clone() T
}

// vertexState is the shared record behind every Vertex handle.
//
// Invariants:
//   - id never changes after construction.
//   - for every (k, s) in edges: k == s.id and s != the receiver.
type vertexState[T any] struct {
	id id.ID // immutable; read without mu

	mu    sync.RWMutex // guards value and edges
	value T
	edges map[id.ID]*vertexState[T] // neighbor ID → neighbor record
}

// Vertex is a shared handle to one node. Copies of a Vertex refer to the same
// node and may be used from any goroutine. The zero Vertex is not usable.
type Vertex[T any] struct {
	s *vertexState[T]
}

// NewVertex returns a handle to a new node holding value, with a freshly
// generated identifier and no edges.
// Complexity: O(1).
func NewVertex[T any](value T) Vertex[T] {
	return NewVertexWithID(id.New(), value)
}

// NewVertexWithID is NewVertex with a caller-chosen identifier. Use it for
// reproducible fixtures (id.FromSeed) or when restoring persisted IDs.
// No uniqueness check is made.
// Complexity: O(1).
func NewVertexWithID[T any](ident id.ID, value T) Vertex[T] {
	return Vertex[T]{s: &vertexState[T]{
		id:    ident,
		value: value,
		edges: make(map[id.ID]*vertexState[T]),
	}}
}

// EdgeIterator is a forward-only view over a vertex's outgoing edges.
//
// It holds the owner's read lock from creation until it is exhausted or
// closed, so the adjacency it walks cannot change underneath it. Until then
// Connect on the owner blocks. An EdgeIterator belongs to one goroutine.
type EdgeIterator[T any] struct {
	owner *vertexState[T]
	next  func() (Vertex[T], bool)
	stop  func()
	done  bool
}

// Graph is a concurrent catalog of vertices keyed by identifier.
//
// Graph.mu guards the catalog map only. Methods that touch vertices first
// snapshot the catalog, release mu, and then lock vertices one at a time.
type Graph[T any] struct {
	mu       sync.RWMutex
	vertices map[id.ID]Vertex[T]
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph[T any]() *Graph[T] {
	return &Graph[T]{vertices: make(map[id.ID]Vertex[T])}
}
