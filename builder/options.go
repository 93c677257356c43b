// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a constructor by mutating a builderConfig before
// construction begins. Later options override earlier ones.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG shared by every draw of one call
// (vertex IDs, index sampling, swaps). Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBidirectional makes RandomLinks use Link (both directions) instead of Connect.
func WithBidirectional() BuilderOption {
	return func(c *builderConfig) {
		c.bidirectional = true
	}
}
