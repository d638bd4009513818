// Package wilson samples uniformly random spanning trees with Wilson's
// algorithm (loop-erased random walks).
//
// What
//
//   - RandomWalk: from a uniformly drawn vertex outside the tree, step to
//     uniformly random neighbors until the walk first hits the tree.
//   - EraseLoops: chronological loop erasure of a walk trace, linear time.
//   - Sampler / Sample: root the tree at a uniform vertex, then repeat
//     walk → erase → tree.AddPath until the tree spans the graph.
//   - Verify: independent spanning-tree check (vertex set, |V|-1 edges,
//     edges of g, acyclic).
//
// Why
//
//	Every spanning tree of a connected, unweighted, undirected graph is
//	returned with probability exactly 1/τ(G), where τ(G) is the number of
//	spanning trees (see matrix.SpanningTreeCount). The property only holds
//	if every draw is an unbiased uniform draw, so the sampler never
//	special-cases restarts and never favors a neighbor.
//
// Determinism
//
//	All randomness comes from the injected RNG (WithSeed / WithRand; the
//	default is a fixed seed). core.Graph enumerates vertices and neighbors
//	in insertion order, so the same graph construction and the same seed
//	reproduce the same root, the same traces and the same tree.
//
// Preconditions & errors
//
//   - ErrGraphNil / ErrEmptyGraph   nil or vertex-less input.
//   - ErrDisconnectedGraph          found up front by one BFS from the root,
//     never by hanging in a walk.
//   - ErrAlreadyComplete            Step/RandomWalk after completion.
//   - ErrStepLimit                  WithMaxSteps exceeded by one walk.
//   - ErrOptionViolation            invalid option value.
//   - context errors                WithContext cancelled (checked per step).
//
// Complexity
//
//	Expected running time is the mean hitting time of the graph; loop
//	erasure is linear in the trace length; the reachability check is
//	O(V+E) once per run.
//
// Usage
//
//	tree, err := wilson.Sample(g, wilson.WithSeed(42))
//	if err != nil {
//		// errors.Is(err, wilson.ErrDisconnectedGraph) ...
//	}
package wilson
