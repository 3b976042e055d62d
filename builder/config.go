// SPDX-License-Identifier: MIT
// Package: cliques/builder
//
// config.go — builderConfig and its defaults.
//
// Contract:
//   • idFn is never nil after newBuilderConfig.
//   • rng is nil unless WithSeed/WithRand is given; stochastic constructors
//     refuse to run without it (ErrNeedRandSource).

package builder

import "math/rand"

type builderConfig struct {
	// idFn maps a vertex index to its ID.
	idFn IDFn
	// rng drives stochastic constructors; nil means "not configured".
	rng *rand.Rand
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: DefaultIDFn,
		rng:  nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
