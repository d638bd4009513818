// SPDX-License-Identifier: MIT
// Package: ust/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return wrapped sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ust/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add vertices and edges in a stable, documented order.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves the builder configuration
// from bopts and applies all constructors in order. Any constructor error is
// wrapped with "BuildGraph: %w" and returned immediately.
//
// Complexity: O(len(bopts)) plus the sum of the constructors' costs.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	g := core.NewGraph[string]()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge wraps core rejections with the method tag and ErrConstructFailed.
func addEdge(g *core.Graph[string], method, u, v string) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s, %s): %w: %w", method, u, v, ErrConstructFailed, err)
	}

	return nil
}
