// Package matrix exposes linear-algebra views of a core.Graph backed by
// gonum/mat.
//
// The matrix package provides:
//
//   - Adjacency: the symmetric 0/1 adjacency matrix.
//   - Laplacian: L = D − A.
//   - CountSpanningTrees: τ(G) by Kirchhoff's matrix-tree theorem, via one
//     Cholesky factorization of the reduced Laplacian, as both ln τ and the
//     rounded count. SpanningTreeCount and LogSpanningTreeCount return one
//     half each.
//   - Connectivity is decided by BFS before any factorization, so a
//     disconnected graph always counts as exactly 0 trees.
//
// τ(G) is the denominator of the uniform distribution sampled by package
// wilson; tests use it to bound chi-square checks of that distribution.
//
// Matrices are dense: O(V²) memory and O(V³) for the determinant. Intended
// for small and medium graphs.
package matrix
