// Package ust samples uniform spanning trees of undirected graphs.
//
// What is ust?
//
//	An in-memory toolkit built around Wilson's algorithm:
//		• core/       generic, thread-safe undirected Graph[V] with uniform
//		              vertex and neighbor draws
//		• wilson/     random walks, loop erasure and the spanning-tree sampler
//		• bfs/        breadth-first traversal and connectivity checks
//		• builder/    deterministic generators (complete, cycle, grid, G(n,p), …)
//		• gridgraph/  masked grids: arbitrary maze shapes from text
//		• matrix/     Laplacian and Kirchhoff spanning-tree counts (gonum)
//		• converters/ adapters to and from gonum/graph
//		• cmd/ust     CLI: sample, render mazes, count trees
//
// Why Wilson's algorithm?
//
//	Each spanning tree of a connected graph comes out with probability
//	exactly 1/τ(G), in expected time equal to the graph's mean hitting time.
//	No rejection, no weights to tune.
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil, builder.Grid(20, 20))
//	tree, err := wilson.Sample(g, wilson.WithSeed(7))
//
// Determinism: every sampler draw comes from one injected RNG, and graphs
// enumerate vertices and neighbors in insertion order, so a seed fixes the
// result.
package ust
