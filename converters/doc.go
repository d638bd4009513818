// Package converters provides two-way adapters between core.Graph and
// gonum/graph.
//
//   - ToGonum: core.Graph[V] → *simple.UndirectedGraph, node IDs 0..n-1 in
//     vertex insertion order.
//   - FromGonum: any graph.Undirected → core.Graph[int64], vertices and
//     edges added in ascending ID order so the result is deterministic.
//   - ConnectedComponents: gonum's topo.ConnectedComponents over a
//     core.Graph, with components and their members in vertex order.
//
// Use converters to hand a sampled tree to gonum's algorithms (paths,
// topology, spectral) or to sample a tree of a graph built with gonum.
package converters
