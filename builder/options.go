// SPDX-License-Identifier: MIT
// Package: ust/builder
//
// options.go - functional options. Invalid values panic at construction
// time (programmer error); constructors themselves never panic.

package builder

import "math/rand"

// BuilderOption mutates builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex-ID function for index-based topologies.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand injects the RNG used by stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed seeds a fresh RNG for stochastic constructors.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
