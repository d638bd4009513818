package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ust/bfs"
	"github.com/katalvlaran/ust/core"
)

// exactLogLimit bounds the counts that round back to the true integer after
// exp(LogDet): below 2⁴⁰ the factorization's relative error stays far under
// one unit.
const exactLogLimit = 40 * math.Ln2

// TreeCount is τ(G) taken from one Cholesky factorization of the reduced
// Laplacian.
type TreeCount struct {
	// Log is ln τ(G); -Inf when the graph is disconnected.
	Log float64
	// Value is τ(G) rounded to the nearest integer; +Inf once it overflows
	// float64.
	Value float64
}

// Exact reports whether Value is the exact integer count.
func (c TreeCount) Exact() bool { return c.Log < exactLogLimit }

// CountSpanningTrees returns τ(G), the number of spanning trees of g, by
// Kirchhoff's matrix-tree theorem: τ(G) = det(L₀), where L₀ is the Laplacian
// with the first row and column removed.
//
// Implementation:
//   - Stage 1: decide connectivity exactly with one BFS. A disconnected
//     graph has no spanning tree, so it returns {-Inf, 0} without touching
//     floating point (a singular L₀ can still factorize on a tiny rounded
//     pivot).
//   - Stage 2: build L₀ and Cholesky-factorize it. L₀ of a connected graph
//     is positive definite; a failed factorization is ErrSingular.
//   - Stage 3: Log from LogDet, Value = round(exp(Log)).
//
// A single-vertex graph has one (empty) spanning tree.
//
// Errors: ErrGraphNil, ErrEmptyGraph, ErrSingular.
// Complexity: O(V³).
func CountSpanningTrees[V comparable](g *core.Graph[V]) (TreeCount, error) {
	l, vs, err := Laplacian(g)
	if err != nil {
		return TreeCount{}, err
	}
	n := len(vs)
	if n == 1 {
		return TreeCount{Log: 0, Value: 1}, nil
	}
	connected, err := bfs.Connected(g)
	if err != nil {
		return TreeCount{}, err
	}
	if !connected {
		return TreeCount{Log: math.Inf(-1), Value: 0}, nil
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(dropFirst(l)); !ok {
		return TreeCount{}, fmt.Errorf("%w: %d vertices", ErrSingular, n)
	}
	logDet := chol.LogDet()

	return TreeCount{Log: logDet, Value: math.Round(math.Exp(logDet))}, nil
}

// SpanningTreeCount returns τ(G) as a float64; see CountSpanningTrees.
// The result is exact while TreeCount.Exact holds and the nearest float64
// beyond that.
//
// Errors: ErrGraphNil, ErrEmptyGraph, ErrSingular, ErrTooLarge.
func SpanningTreeCount[V comparable](g *core.Graph[V]) (float64, error) {
	c, err := CountSpanningTrees(g)
	if err != nil {
		return 0, err
	}
	if math.IsInf(c.Value, 1) {
		return 0, fmt.Errorf("%w: ln τ = %.4f", ErrTooLarge, c.Log)
	}

	return c.Value, nil
}

// LogSpanningTreeCount returns ln τ(G). Unlike SpanningTreeCount it does not
// overflow on large graphs (a 100×100 grid has roughly e^{5800} trees).
// A disconnected graph yields -Inf.
//
// Errors: ErrGraphNil, ErrEmptyGraph, ErrSingular.
func LogSpanningTreeCount[V comparable](g *core.Graph[V]) (float64, error) {
	c, err := CountSpanningTrees(g)
	if err != nil {
		return 0, err
	}

	return c.Log, nil
}

// dropFirst returns l without its first row and column.
func dropFirst(l *mat.SymDense) *mat.SymDense {
	n := l.SymmetricDim()
	reduced := mat.NewSymDense(n-1, nil)
	for i := 1; i < n; i++ {
		for j := i; j < n; j++ {
			reduced.SetSym(i-1, j-1, l.At(i, j))
		}
	}

	return reduced
}
