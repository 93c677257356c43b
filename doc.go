// Package lvmesh is an in-memory directed graph of typed values in which every
// node is independently shareable and mutable across goroutines.
//
// What is in the box:
//
//   - id/         - 4-byte vertex identifiers: random, seeded, parsed; hex display forms
//   - core/       - Vertex[T] shared handles with per-vertex RW locks, lazy edge views,
//     and Graph[T], a concurrent vertex catalog
//   - builder/    - reproducible fixtures: mint vertices, link them at random
//   - converters/ - Graphviz DOT export
//   - cmd/lvmesh  - CLI driver (demo, id)
//
// Locking rule of thumb: no operation holds two vertex locks at once. Connect
// locks only its source, Link is two Connects, and edge views hold only the
// owner's read lock for as long as they are live.
//
// Quick ASCII example:
//
//	    alice ──▶ bob ◀──▶ carol
//
//	alice.Connect(bob); bob.Link(carol)
//
// Graph algorithms (traversal, shortest path, cycle detection) are not part of
// this module; the iteration primitives in core are what they would build on.
//
//	go get github.com/katalvlaran/lvmesh
package lvmesh
