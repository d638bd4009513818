// File: methods_edges.go
// Role: Edge lifecycle & queries (AddEdge, AddPath, HasEdge, Edges, EdgeCount).
//
// Determinism:
//   - Edges() lists every undirected edge once: vertices are scanned in
//     insertion order and each neighbor list in insertion order; an edge is
//     emitted from the endpoint that comes first in vertex order.
//
// Concurrency:
//   - AddEdge/AddPath hold mu exclusively for the whole mutation, so a
//     concurrent reader never observes a half-mirrored edge.
package core

import "fmt"

// AddEdge inserts the undirected edge {v1, v2}, auto-adding missing
// endpoints. Re-adding an existing edge is a no-op.
//
// Errors: ErrLoopNotAllowed if v1 == v2 (no vertex is added in that case).
// Complexity: O(1) amortized.
func (g *Graph[V]) AddEdge(v1, v2 V) error {
	if v1 == v2 {
		return fmt.Errorf("AddEdge(%v,%v): %w", v1, v2, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addEdgeLocked(v1, v2)

	return nil
}

// addEdgeLocked mirrors the edge into both neighbor sets. Caller holds mu
// and has rejected self-loops.
func (g *Graph[V]) addEdgeLocked(v1, v2 V) {
	g.addVertexLocked(v1)
	g.addVertexLocked(v2)

	// Symmetry means both inserts succeed or neither does.
	if g.adj[v1].add(v2) {
		g.adj[v2].add(v1)
		g.edges++
	}
}

// AddPath calls AddEdge on each consecutive pair of seq.
// A sequence of length ≤ 1 is a no-op (a lone vertex is NOT added).
//
// The whole sequence is validated before anything is inserted, so a path
// containing a self-loop step leaves the graph untouched.
//
// Errors: ErrLoopNotAllowed if two consecutive elements are equal.
// Complexity: O(len(seq)).
func (g *Graph[V]) AddPath(seq []V) error {
	if len(seq) <= 1 {
		return nil
	}
	for i := 1; i < len(seq); i++ {
		if seq[i-1] == seq[i] {
			return fmt.Errorf("AddPath: step %d (%v,%v): %w", i, seq[i-1], seq[i], ErrLoopNotAllowed)
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for i := 1; i < len(seq); i++ {
		g.addEdgeLocked(seq[i-1], seq[i])
	}

	return nil
}

// HasEdge reports whether the undirected edge {v1, v2} exists.
// Complexity: O(1).
func (g *Graph[V]) HasEdge(v1, v2 V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set, ok := g.adj[v1]
	if !ok {
		return false
	}

	return set.has(v2)
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph[V]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Edges returns every undirected edge exactly once in deterministic order.
// Complexity: O(V + E).
func (g *Graph[V]) Edges() []Edge[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[V], 0, g.edges)
	for i, u := range g.order {
		for _, w := range g.adj[u].items {
			// emit from the endpoint that was inserted first
			if g.index[w] > i {
				out = append(out, Edge[V]{From: u, To: w})
			}
		}
	}

	return out
}
