// SPDX-License-Identifier: MIT
// Package: ust/builder
//
// impl_random_sparse.go - RandomSparse(n, p), an Erdős–Rényi G(n,p) generator.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//
// The result may be disconnected; samplers reject it with their own
// disconnected-graph error.
//
// Complexity: O(n) vertices + O(n²) Bernoulli trials.
//
// Determinism: trial order is i asc, then j > i asc, so a fixed seed fixes
// the edge set and its insertion order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ust/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		// p ∈ {0,1} is deterministic and needs no RNG
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := addIndexed(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var keep bool
				switch {
				case p == probMax:
					keep = true
				case p == probMin:
					keep = false
				default:
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addEdge(g, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
