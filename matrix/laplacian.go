// SPDX-License-Identifier: MIT
// Package: ust/matrix
//
// laplacian.go - adjacency and Laplacian matrices of a core.Graph, backed by
// gonum's symmetric dense storage.
//
// Index policy:
//   - Row/column i corresponds to g.Vertices()[i] (insertion order), so the
//     returned index slice doubles as the reverse lookup.
//   - Construction is deterministic: same graph ⇒ same matrix, bit for bit.

package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ust/core"
)

// Adjacency returns the symmetric 0/1 adjacency matrix of g and the vertex
// order of its rows.
//
// Errors: ErrGraphNil, ErrEmptyGraph.
// Complexity: O(V² + E) time and memory.
func Adjacency[V comparable](g *core.Graph[V]) (*mat.SymDense, []V, error) {
	vs, index, err := indexVertices(g)
	if err != nil {
		return nil, nil, err
	}

	a := mat.NewSymDense(len(vs), nil)
	for _, e := range g.Edges() {
		a.SetSym(index[e.From], index[e.To], 1)
	}

	return a, vs, nil
}

// Laplacian returns L = D − A for g, where D is the diagonal degree matrix,
// together with the vertex order of its rows.
//
// Every row of L sums to zero; L is positive semidefinite, and its kernel has
// dimension equal to the number of connected components.
//
// Errors: ErrGraphNil, ErrEmptyGraph.
// Complexity: O(V² + E).
func Laplacian[V comparable](g *core.Graph[V]) (*mat.SymDense, []V, error) {
	vs, index, err := indexVertices(g)
	if err != nil {
		return nil, nil, err
	}

	l := mat.NewSymDense(len(vs), nil)
	for _, e := range g.Edges() {
		i, j := index[e.From], index[e.To]
		l.SetSym(i, j, -1)
		l.SetSym(i, i, l.At(i, i)+1)
		l.SetSym(j, j, l.At(j, j)+1)
	}

	return l, vs, nil
}

func indexVertices[V comparable](g *core.Graph[V]) ([]V, map[V]int, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	vs := g.Vertices()
	if len(vs) == 0 {
		return nil, nil, ErrEmptyGraph
	}
	index := make(map[V]int, len(vs))
	for i, v := range vs {
		index[v] = i
	}

	return vs, index, nil
}
