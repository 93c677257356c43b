// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Graph catalog: registration, lookup, enumeration and checked linking.
// Policy:
//   - Graph.mu is never held while a vertex lock is taken.
//   - Vertices() is sorted by ID so callers get stable output.
// AI-HINT (file):
//   - Graph.Connect turns the fatal self-connect precondition into an error.
//   - EdgeCount is a sum of per-vertex snapshots, not a global atomic view.

package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvmesh/id"
)

// maxAddAttempts bounds ID regeneration in Add when the catalog already holds
// the freshly generated ID.
const maxAddAttempts = 8

// Add creates a vertex holding value and registers it. If the generated ID is
// already taken, a new one is drawn, up to maxAddAttempts times.
//
// Errors:
//   - ErrDuplicateID if every attempt collided.
//
// Complexity: O(1) expected.
func (g *Graph[T]) Add(value T) (Vertex[T], error) {
	for attempt := 0; attempt < maxAddAttempts; attempt++ {
		v := NewVertex(value)
		if err := g.Insert(v); err == nil {
			return v, nil
		}
	}

	return Vertex[T]{}, fmt.Errorf("Add: %d attempts: %w", maxAddAttempts, ErrDuplicateID)
}

// Insert registers an existing vertex.
//
// Errors:
//   - ErrZeroVertex if v is the zero handle.
//   - ErrDuplicateID if another node with v's ID is registered. Inserting the
//     same node twice is a no-op.
//
// Complexity: O(1). Concurrency: write lock on the catalog.
func (g *Graph[T]) Insert(v Vertex[T]) error {
	if v.IsZero() {
		return ErrZeroVertex
	}
	key := v.ID()

	g.mu.Lock()
	defer g.mu.Unlock()

	if have, ok := g.vertices[key]; ok {
		if have.Same(v) {
			return nil
		}
		return fmt.Errorf("Insert(%s): %w", key, ErrDuplicateID)
	}
	g.vertices[key] = v

	return nil
}

// Get returns the vertex registered under ident.
func (g *Graph[T]) Get(ident id.ID) (Vertex[T], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[ident]

	return v, ok
}

// Has reports whether ident is registered.
func (g *Graph[T]) Has(ident id.ID) bool {
	_, ok := g.Get(ident)
	return ok
}

// VertexCount returns the number of registered vertices.
func (g *Graph[T]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Vertices returns all registered vertices sorted by ID.
// Complexity: O(V log V).
func (g *Graph[T]) Vertices() []Vertex[T] {
	g.mu.RLock()
	out := make([]Vertex[T], 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID().Less(out[j].ID()) })

	return out
}

// EdgeCount returns the total number of directed edges held by registered
// vertices. Each vertex is read under its own lock, one at a time, so under
// concurrent Connect the total may mix states from different moments.
// Complexity: O(V log V).
func (g *Graph[T]) EdgeCount() int {
	total := 0
	for _, v := range g.Vertices() {
		total += v.Degree()
	}

	return total
}

// Connect adds the edge from→to between two registered vertices.
//
// Errors:
//   - ErrSelfConnect if from == to (nothing is modified).
//   - ErrVertexNotFound if either ID is unknown.
//
// Complexity: O(1). Concurrency: catalog read lock, released before the
// vertex write lock is taken.
func (g *Graph[T]) Connect(from, to id.ID) error {
	if from == to {
		return fmt.Errorf("Connect(%s, %s): %w", from, to, ErrSelfConnect)
	}
	src, ok := g.Get(from)
	if !ok {
		return fmt.Errorf("Connect(%s, %s): from: %w", from, to, ErrVertexNotFound)
	}
	dst, ok := g.Get(to)
	if !ok {
		return fmt.Errorf("Connect(%s, %s): to: %w", from, to, ErrVertexNotFound)
	}
	src.Connect(dst)

	return nil
}

// Link is Connect in both directions. It stops at the first error.
func (g *Graph[T]) Link(a, b id.ID) error {
	if err := g.Connect(a, b); err != nil {
		return err
	}

	return g.Connect(b, a)
}
