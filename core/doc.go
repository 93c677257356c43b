// Package core provides Vertex, a concurrency-safe shared handle to a node in
// an in-memory directed graph, and Graph, a thread-safe catalog of vertices.
//
// A Vertex[T] wraps a value of type T, an immutable identifier (id.ID), and an
// adjacency map from neighbor ID to the neighbor's shared state. Copying a
// Vertex copies the handle, not the node: every copy, and every adjacency
// entry that points at the node, refers to the same record.
//
// Locking model:
//
//   - Each vertex owns one sync.RWMutex guarding its value and adjacency.
//   - Reads (Value, CloneValue, ConnectsTo, Degree, NeighborIDs, Edges,
//     Neighbors) take the read lock; Connect takes the write lock.
//   - No operation ever holds two vertex locks at once. Connect locks only
//     the source; Link is two independent Connect calls and is not atomic.
//   - The identifier is fixed before a handle is published and is read
//     without locking.
//
// Core Methods:
//
//	NewVertex(value T) Vertex[T]            // fresh random ID, no edges
//	NewVertexWithID(x id.ID, value T)       // caller-chosen ID (fixtures)
//	v.ID() id.ID                            // O(1), lock-free
//	v.Value() T / v.CloneValue() T          // copy under read lock
//	v.Connect(w)                            // v→w, write lock on v only; panics if v.ID()==w.ID()
//	v.Link(w)                               // v→w then w→v
//	v.ConnectsTo(w) / v.ConnectedFrom(w)    // membership, read lock
//	v.Edges() *EdgeIterator[T]              // lazy view; holds v's read lock until Close/exhaustion
//	v.Neighbors() iter.Seq[Vertex[T]]       // range-over-func view; lock held for the loop
//
// Graph Methods:
//
//	NewGraph[T]() *Graph[T]
//	Add(value T) (Vertex[T], error)         // regenerates the ID on collision
//	Insert(v Vertex[T]) error               // ErrDuplicateID on collision
//	Get / Has / Vertices / VertexCount / EdgeCount
//	Connect(from, to id.ID) error           // checked form of Vertex.Connect
//
// Lifetime: vertices are ordinary Go heap objects. A node lives while any
// handle or any adjacency entry of a reachable vertex refers to it; cycles of
// mutual edges are reclaimed by the garbage collector once unreachable.
//
// Errors:
//
//	ErrSelfConnect    – Vertex.Connect to itself (panics) / Graph.Connect(x, x) (returned)
//	ErrZeroVertex     – operation on the zero Vertex handle (panics)
//	ErrDuplicateID    – identifier already present in a Graph
//	ErrVertexNotFound – Graph lookup by unknown identifier
package core
