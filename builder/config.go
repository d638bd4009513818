// SPDX-License-Identifier: MIT
// Package: ust/builder
//
// config.go - resolved builder configuration.
//
// Purpose:
//   - Centralize knobs every constructor may read (ID scheme, RNG).
//   - Resolve once in BuildGraph; constructors receive an immutable copy.

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig holds the resolved options.
type builderConfig struct {
	// idFn maps an index to a vertex ID for index-based topologies.
	idFn IDFn

	// rng drives stochastic constructors; nil unless WithSeed/WithRand.
	rng *rand.Rand
}

// newBuilderConfig applies opts over the defaults:
// decimal IDs and no RNG.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: decimalID,
		rng:  nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func decimalID(i int) string {
	return strconv.Itoa(i)
}
