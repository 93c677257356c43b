// Package builder assembles lvmesh fixtures: it mints vertices (optionally with
// reproducible identifiers) and links them at random.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the RNG and the link mode.
//   - Constructors:
//     – Vertices:          one vertex per value; IDs come from the configured RNG.
//     – Named:             Vertices for string values.
//     – RandomLinks:       N rounds of "pick two distinct vertices, maybe swap, connect".
//     – BuildGraph:        Vertices + Graph registration + RandomLinks in one call.
//
// Determinism:
//
//	With WithSeed(s) (or WithRand over a seeded source), the vertex IDs and the
//	link sequence are fully reproducible. Without an RNG option a fresh
//	entropy-seeded source is used for every call.
//
// Guarantees:
//
//   - RandomLinks never asks a vertex to connect to itself; two distinct
//     vertices with colliding IDs are reported as ErrConstructFailed.
//   - Fast-fail on meaningless option parameters via panics in option constructors.
//   - Runtime validation errors wrap sentinels with the method name
//     ("RandomLinks: ...: builder: too few vertices").
package builder
