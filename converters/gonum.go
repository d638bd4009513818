// SPDX-License-Identifier: MIT
// Package: ust/converters
//
// gonum.go - adapters between core.Graph and gonum.org/v1/gonum/graph.
//
// Determinism:
//   - gonum iterators are map-backed; every result here is sorted by node
//     ID (or by core vertex order) before it is returned.

package converters

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/ust/core"
)

// ErrGraphNil is returned when a nil graph is passed to an adapter.
var ErrGraphNil = errors.New("converters: graph is nil")

// ToGonum exports g as a gonum simple undirected graph. Vertex i of
// g.Vertices() becomes node ID i; the returned slice maps IDs back.
//
// Complexity: O(V + E).
func ToGonum[V comparable](g *core.Graph[V]) (*simple.UndirectedGraph, []V, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	vs := g.Vertices()
	index := make(map[V]int64, len(vs))
	out := simple.NewUndirectedGraph()
	for i, v := range vs {
		index[v] = int64(i)
		out.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		out.SetEdge(simple.Edge{F: simple.Node(index[e.From]), T: simple.Node(index[e.To])})
	}

	return out, vs, nil
}

// FromGonum imports any undirected gonum graph. Node IDs become vertices.
//
// Errors: ErrGraphNil; a wrapped core.ErrLoopNotAllowed if u carries a
// self-loop.
// Complexity: O((V + E) log V).
func FromGonum(u graph.Undirected) (*core.Graph[int64], error) {
	if u == nil {
		return nil, ErrGraphNil
	}
	g := core.NewGraph[int64]()
	nodes := sortedNodes(u.Nodes())
	for _, n := range nodes {
		g.AddVertex(n.ID())
	}
	for _, n := range nodes {
		for _, m := range sortedNodes(u.From(n.ID())) {
			if m.ID() < n.ID() {
				continue
			}
			if err := g.AddEdge(n.ID(), m.ID()); err != nil {
				return nil, fmt.Errorf("converters: edge %d-%d: %w", n.ID(), m.ID(), err)
			}
		}
	}

	return g, nil
}

// ConnectedComponents returns the vertex sets of g's connected components.
// Members follow g's vertex order; components are ordered by their first
// member. An empty graph has no components.
//
// Complexity: O(V + E).
func ConnectedComponents[V comparable](g *core.Graph[V]) ([][]V, error) {
	u, vs, err := ToGonum(g)
	if err != nil {
		return nil, err
	}
	comps := topo.ConnectedComponents(u)
	out := make([][]V, 0, len(comps))
	for _, comp := range comps {
		slices.SortFunc(comp, byID)
		members := make([]V, len(comp))
		for i, n := range comp {
			members[i] = vs[n.ID()]
		}
		out = append(out, members)
	}
	// component members are sorted, so the first ID orders components
	order := make(map[V]int, len(vs))
	for i, v := range vs {
		order[v] = i
	}
	slices.SortFunc(out, func(a, b []V) int { return cmp.Compare(order[a[0]], order[b[0]]) })

	return out, nil
}

func sortedNodes(it graph.Nodes) []graph.Node {
	nodes := graph.NodesOf(it)
	slices.SortFunc(nodes, byID)

	return nodes
}

func byID(a, b graph.Node) int { return cmp.Compare(a.ID(), b.ID()) }
