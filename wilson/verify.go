package wilson

import (
	"fmt"

	"github.com/katalvlaran/ust/core"
)

// Verify checks that tree is a spanning tree of g:
//   - identical vertex sets;
//   - exactly |V|-1 edges, each an edge of g;
//   - no cycle (union-find over tree edges).
//
// With |V|-1 edges and no cycle the tree is connected, so no traversal is
// needed. Every failure wraps ErrNotSpanningTree.
//
// Complexity: O((V + E_tree) α(V)).
func Verify[V comparable](g, tree *core.Graph[V]) error {
	if g == nil || tree == nil {
		return ErrGraphNil
	}
	n := g.VertexCount()
	if n == 0 {
		return ErrEmptyGraph
	}
	if tree.VertexCount() != n {
		return fmt.Errorf("%w: tree has %d vertices, graph has %d", ErrNotSpanningTree, tree.VertexCount(), n)
	}
	for _, v := range g.Vertices() {
		if !tree.HasVertex(v) {
			return fmt.Errorf("%w: vertex %v missing", ErrNotSpanningTree, v)
		}
	}
	if m := tree.EdgeCount(); m != n-1 {
		return fmt.Errorf("%w: %d edges, want %d", ErrNotSpanningTree, m, n-1)
	}

	uf := newUnionFind[V](n)
	for _, e := range tree.Edges() {
		if !g.HasEdge(e.From, e.To) {
			return fmt.Errorf("%w: edge %v-%v not in graph", ErrNotSpanningTree, e.From, e.To)
		}
		if !uf.union(e.From, e.To) {
			return fmt.Errorf("%w: edge %v-%v closes a cycle", ErrNotSpanningTree, e.From, e.To)
		}
	}

	return nil
}

// unionFind is a disjoint-set forest with path compression and union by rank.
type unionFind[V comparable] struct {
	parent map[V]V
	rank   map[V]int
}

func newUnionFind[V comparable](capacity int) *unionFind[V] {
	return &unionFind[V]{
		parent: make(map[V]V, capacity),
		rank:   make(map[V]int, capacity),
	}
}

// find returns the root of x's set, auto-adding x as a singleton.
func (uf *unionFind[V]) find(x V) V {
	p, ok := uf.parent[x]
	if !ok {
		uf.parent[x] = x
		return x
	}
	if p != x {
		uf.parent[x] = uf.find(p)
	}
	return uf.parent[x]
}

// union merges the sets of x and y and reports whether they were disjoint.
func (uf *unionFind[V]) union(x, y V) bool {
	rx, ry := uf.find(x), uf.find(y)
	if rx == ry {
		return false
	}
	switch {
	case uf.rank[rx] < uf.rank[ry]:
		uf.parent[rx] = ry
	case uf.rank[rx] > uf.rank[ry]:
		uf.parent[ry] = rx
	default:
		uf.parent[ry] = rx
		uf.rank[rx]++
	}
	return true
}
