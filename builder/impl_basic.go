// SPDX-License-Identifier: MIT
// Package: ust/builder
//
// impl_basic.go - index-based topologies: Complete, Cycle, Path, Star, Wheel.
//
// Contract (shared):
//   - Vertices are cfg.idFn(0..n-1) added in index order (Star/Wheel add
//     the fixed hub "Center" last).
//   - Edges are emitted in a documented stable order.
//
// Spanning tree counts (handy for tests): τ(K_n)=n^(n-2), τ(C_n)=n,
// τ(P_n)=τ(Star)=1, τ(W_n) = L(2(n-1)) − 2 with L the Lucas numbers.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ust/core"
)

const (
	methodComplete = "Complete"
	methodCycle    = "Cycle"
	methodPath     = "Path"
	methodStar     = "Star"
	methodWheel    = "Wheel"

	minCompleteNodes = 1
	minCycleNodes    = 3
	minPathNodes     = 2
	minStarNodes     = 2
	minWheelNodes    = 4 // outer ring C_{n-1} needs n-1 ≥ 3

	// CenterVertexID is the hub of Star and Wheel.
	CenterVertexID = "Center"
)

func addIndexed(g *core.Graph[string], cfg builderConfig, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		g.AddVertex(ids[i])
	}

	return ids
}

// Complete returns a Constructor for K_n. Edge order: i asc, then j > i asc.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := addIndexed(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for C_n: i - (i+1) mod n for i asc.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids := addIndexed(g, cfg, n)
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path returns a Constructor for P_n: i - (i+1) for i in [0, n-2].
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids := addIndexed(g, cfg, n)
		if err := g.AddPath(ids); err != nil {
			return fmt.Errorf("%s: %w: %w", methodPath, ErrConstructFailed, err)
		}

		return nil
	}
}

// Star returns a Constructor for a star: n-1 leaves cfg.idFn(0..n-2) and
// the hub CenterVertexID. Spokes in leaf index order.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		ids := addIndexed(g, cfg, n-1)
		g.AddVertex(CenterVertexID)
		for _, id := range ids {
			if err := addEdge(g, methodStar, CenterVertexID, id); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor for W_n = C_{n-1} + CenterVertexID.
// Ring edges first (as Cycle), then spokes in ring index order.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		g.AddVertex(CenterVertexID)
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, methodWheel, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
