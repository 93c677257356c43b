// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - Functional options resolve into a builderConfig (no global state).
//   - Determinism: same inputs and seed ⇒ identical IDs and link sequence.
//   - Safety: constructors return sentinel errors; they never call Connect
//     with two handles that share an ID.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/id"
)

// Link records one edge made by RandomLinks. For bidirectional runs it
// stands for both From→To and To→From.
type Link struct {
	From id.ID
	To   id.ID
}

// String renders "from->to".
func (l Link) String() string { return l.From.String() + "->" + l.To.String() }

// Vertices creates one vertex per value, in order. With an RNG option the IDs
// are drawn from it (reproducible); otherwise each vertex gets id.New().
// Complexity: O(n).
func Vertices[T any](values []T, opts ...BuilderOption) []core.Vertex[T] {
	return vertices(newBuilderConfig(opts...), values)
}

// Named is Vertices for string values.
func Named(names []string, opts ...BuilderOption) []core.Vertex[string] {
	return Vertices(names, opts...)
}

// RandomLinks performs rounds iterations of:
//
//  1. sample two distinct indices i≠j uniformly from vs;
//  2. with probability 1/2 swap the (from, to) roles;
//  3. from.Connect(to) (or from.Link(to) with WithBidirectional).
//
// It returns the links in the order they were made. Repeated pairs are
// allowed; Connect is idempotent so they do not add entries.
//
// Errors:
//   - ErrNegativeRounds if rounds < 0.
//   - ErrTooFewVertices if len(vs) < MinLinkVertices (and rounds > 0).
//   - ErrConstructFailed if a sampled pair shares an ID or includes the zero
//     Vertex; links made before that round are kept.
//
// Complexity: O(rounds).
// Concurrency: each Connect locks one vertex; vs may be shared with readers.
func RandomLinks[T any](vs []core.Vertex[T], rounds int, opts ...BuilderOption) ([]Link, error) {
	return randomLinks(newBuilderConfig(opts...), vs, rounds)
}

// BuildGraph creates a vertex per value, registers them in a new Graph and
// runs RandomLinks over them, sharing one RNG stream across all steps.
//
// Errors:
//   - wraps core.ErrDuplicateID (via ErrConstructFailed) if two generated IDs collide.
//   - any RandomLinks error.
func BuildGraph[T any](values []T, rounds int, opts ...BuilderOption) (*core.Graph[T], []Link, error) {
	cfg := newBuilderConfig(opts...)
	cfg.rng = rngFrom(cfg)

	vs := vertices(cfg, values)
	g := core.NewGraph[T]()
	for _, v := range vs {
		if err := g.Insert(v); err != nil {
			return nil, nil, fmt.Errorf("%s: %w: %w", MethodBuildGraph, ErrConstructFailed, err)
		}
	}

	links, err := randomLinks(cfg, vs, rounds)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
	}

	return g, links, nil
}

func vertices[T any](cfg builderConfig, values []T) []core.Vertex[T] {
	out := make([]core.Vertex[T], len(values))
	for i, value := range values {
		ident := id.New()
		if cfg.rng != nil {
			ident = id.FromRand(cfg.rng)
		}
		out[i] = core.NewVertexWithID(ident, value)
	}

	return out
}

func randomLinks[T any](cfg builderConfig, vs []core.Vertex[T], rounds int) ([]Link, error) {
	if rounds < 0 {
		return nil, builderErrorf(MethodRandomLinks, ErrNegativeRounds, "rounds=%d", rounds)
	}
	if rounds == 0 {
		return nil, nil
	}
	if len(vs) < MinLinkVertices {
		return nil, builderErrorf(MethodRandomLinks, ErrTooFewVertices, "n=%d < min=%d", len(vs), MinLinkVertices)
	}

	rng := rngFrom(cfg)
	links := make([]Link, 0, rounds)
	for round := 0; round < rounds; round++ {
		i, j := samplePair(rng, len(vs))
		from, to := vs[i], vs[j]
		if rng.Float64() < swapProbability {
			from, to = to, from
		}

		if from.IsZero() || to.IsZero() {
			return links, builderErrorf(MethodRandomLinks, ErrConstructFailed, "round %d: zero vertex at index %d or %d", round, i, j)
		}
		if from.ID() == to.ID() {
			return links, builderErrorf(MethodRandomLinks, ErrConstructFailed, "round %d: indices %d and %d share ID %s", round, i, j, from.ID())
		}

		if cfg.bidirectional {
			from.Link(to)
		} else {
			from.Connect(to)
		}
		links = append(links, Link{From: from.ID(), To: to.ID()})
	}

	return links, nil
}

// samplePair draws two distinct indices uniformly from [0, n). Requires n ≥ 2.
func samplePair(rng *rand.Rand, n int) (int, int) {
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}

	return i, j
}
