// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// config.go - internal configuration and defaults.
//
// Defaults:
//   • rng           = nil   (resolved per call to an entropy-seeded source)
//   • bidirectional = false (RandomLinks uses Connect)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvmesh/id"
)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	// RNG for every stochastic choice; nil means "fresh entropy-seeded source per call".
	rng *rand.Rand
	// bidirectional selects Link over Connect in RandomLinks.
	bidirectional bool
}

// newBuilderConfig applies options in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFrom returns cfg.rng if present, else a fresh entropy-seeded source.
func rngFrom(cfg builderConfig) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return id.NewRand()
}
