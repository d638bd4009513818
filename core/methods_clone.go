// File: methods_clone.go
// Role: Cloning and textual dump.
// Determinism:
//   - Clone preserves vertex order and per-vertex neighbor order, so a
//     clone drives a seeded algorithm exactly like the original.
//   - String lists vertices in insertion order.

package core

import (
	"fmt"
	"strings"
)

// CloneEmpty returns a new Graph holding the same vertices (same order) and
// no edges.
// Complexity: O(V).
func (g *Graph[V]) CloneEmpty() *Graph[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph[V]()
	for _, v := range g.order {
		clone.addVertexLocked(v)
	}

	return clone
}

// Clone returns a deep copy of the Graph.
// Complexity: O(V + E).
func (g *Graph[V]) Clone() *Graph[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph[V]()
	for _, v := range g.order {
		clone.addVertexLocked(v)
	}
	for _, v := range g.order {
		src := g.adj[v]
		dst := clone.adj[v]
		dst.items = make([]V, len(src.items))
		copy(dst.items, src.items)
		for w, p := range src.pos {
			dst.pos[w] = p
		}
	}
	clone.edges = g.edges

	return clone
}

// String renders the vertex list followed by one neighbor line per vertex.
func (g *Graph[V]) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "vertices: %v", g.order)
	for _, v := range g.order {
		fmt.Fprintf(&sb, "\nneighbors of %v: %v", v, g.adj[v].items)
	}

	return sb.String()
}
