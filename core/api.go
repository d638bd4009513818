// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summaries over a Graph.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is an immutable-by-convention snapshot of a Graph's size and
// degree profile.
type GraphStats struct {
	VertexCount   int // |V|
	EdgeCount     int // |E|
	IsolatedCount int // vertices with degree 0
	MinDegree     int // 0 for an empty graph
	MaxDegree     int // 0 for an empty graph
}

// Stats produces a snapshot of counts and degree extremes.
//
// Implementation:
//   - Stage 1: Acquire mu.RLock for a consistent view.
//   - Stage 2: Single pass over vertices reading neighbor-set sizes.
//
// Notes:
//   - IsolatedCount > 0 on a graph with more than one vertex means the
//     graph is disconnected; samplers can reject it without a traversal.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph[V]) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.order),
		EdgeCount:   g.edges,
	}
	for i, v := range g.order {
		d := g.adj[v].len()
		if d == 0 {
			stats.IsolatedCount++
		}
		if i == 0 || d < stats.MinDegree {
			stats.MinDegree = d
		}
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
	}

	return &stats
}
