// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - OnVisit hook (may abort with an error).
//   - Result.PathTo rebuilds the BFS-tree path from start to any reached vertex.
//
// Why
//
//   - Reachability: Connected(g) is the one-time O(V+E) precondition check
//     run before sampling a spanning tree, so a disconnected input fails
//     fast instead of trapping a random walk forever.
//   - Unweighted shortest paths and level layering: in a spanning tree the
//     BFS path from the root is the unique tree path, which is how
//     `ust sample --format stats` reports the tree's height and deepest path.
//
// Determinism
//
//	core.Neighbors returns neighbors in insertion order and BFS enqueues them
//	in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, start,
//	    bfs.WithContext[int](ctx),
//	    bfs.WithOnVisit(func(v, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrNeighbors            if core.Neighbors fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
