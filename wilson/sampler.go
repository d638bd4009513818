// SPDX-License-Identifier: MIT
// Package: ust/wilson
//
// sampler.go - the Growing → Complete state machine driving Wilson's algorithm.
//
// Transition (Growing → Growing | Complete):
//   1. walker draws a start among vertices not in the tree and walks until
//      it hits the tree;
//   2. EraseLoops reduces the trace to a simple path;
//   3. tree.AddPath(path); the path's non-terminal vertices leave the pool;
//   4. Complete once |tree.V| == |graph.V|.
//
// Nothing here may bias a draw: the root, every walk start and every step
// are plain uniform draws from the injected RNG.

package wilson

import (
	"fmt"

	"github.com/katalvlaran/ust/bfs"
	"github.com/katalvlaran/ust/core"
)

// Sampler grows a uniformly random spanning tree of a connected graph.
// A Sampler is single-use and not safe for concurrent use.
type Sampler[V comparable] struct {
	graph *core.Graph[V]
	tree  *core.Graph[V]
	w     *walker[V]
	opts  Options

	root       V
	state      State
	iterations int
	lastTrace  []V
	lastPath   []V
}

// NewSampler validates g and prepares the initial state: a root drawn
// uniformly from g becomes the one-vertex tree.
//
// The source graph must not be mutated while the sampler is in use.
//
// Errors:
//   - ErrGraphNil, ErrEmptyGraph, ErrOptionViolation.
//   - ErrDisconnectedGraph if the one-time BFS from the root misses a vertex.
//   - The context's error if cancelled during the BFS.
//
// Complexity: O(V + E).
func NewSampler[V comparable](g *core.Graph[V], opts ...Option) (*Sampler[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	vs := g.Vertices()
	n := len(vs)
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	root := vs[o.Rand.Intn(n)]
	if n > 1 {
		res, err := bfs.BFS(g, root, bfs.WithContext[V](o.Ctx))
		if err != nil {
			return nil, fmt.Errorf("wilson: reachability check: %w", err)
		}
		if len(res.Order) != n {
			return nil, fmt.Errorf("%w: %d of %d vertices reachable from %v",
				ErrDisconnectedGraph, len(res.Order), n, root)
		}
	}

	tree := core.NewGraph[V]()
	tree.AddVertex(root)

	pending := newVertexPool[V](n - 1)
	for _, v := range vs {
		if v != root {
			pending.add(v)
		}
	}

	s := &Sampler[V]{
		graph: g,
		tree:  tree,
		opts:  o,
		root:  root,
		state: Growing,
		w: &walker[V]{
			graph:    g,
			tree:     tree,
			pending:  pending,
			rng:      o.Rand,
			ctx:      o.Ctx,
			maxSteps: o.MaxSteps,
		},
	}
	if n == 1 {
		s.state = Complete
	}

	return s, nil
}

// Step performs one transition: walk, erase loops, extend the tree.
//
// Errors: ErrAlreadyComplete once the tree spans the graph, otherwise any
// walk error (ErrDisconnectedGraph, ErrStepLimit, context errors).
func (s *Sampler[V]) Step() error {
	if s.state == Complete {
		return ErrAlreadyComplete
	}

	trace, err := s.w.walk()
	if err != nil {
		return err
	}
	path := EraseLoops(trace)
	if err := s.tree.AddPath(path); err != nil {
		return fmt.Errorf("wilson: extend tree: %w", err)
	}
	// every vertex but the last is new to the tree
	for _, v := range path[:len(path)-1] {
		s.w.pending.remove(v)
	}

	s.iterations++
	s.lastTrace, s.lastPath = trace, path
	s.opts.OnPath(s.iterations, len(trace), len(path))

	if s.tree.VertexCount() == s.graph.VertexCount() {
		s.state = Complete
	}

	return nil
}

// Run steps until Complete and returns the spanning tree.
func (s *Sampler[V]) Run() (*core.Graph[V], error) {
	for s.state == Growing {
		if err := s.Step(); err != nil {
			return nil, err
		}
	}

	return s.tree, nil
}

// Tree returns the live tree. Callers must treat it as read-only until the
// sampler is Complete.
func (s *Sampler[V]) Tree() *core.Graph[V] { return s.tree }

// State reports Growing or Complete.
func (s *Sampler[V]) State() State { return s.state }

// Root returns the initial tree vertex.
func (s *Sampler[V]) Root() V { return s.root }

// Iterations returns the number of accepted paths so far.
func (s *Sampler[V]) Iterations() int { return s.iterations }

// LastTrace returns a copy of the most recent raw walk (nil before the first Step).
func (s *Sampler[V]) LastTrace() []V { return cloneSeq(s.lastTrace) }

// LastPath returns a copy of the most recent loop-erased path.
func (s *Sampler[V]) LastPath() []V { return cloneSeq(s.lastPath) }

// Sample returns a uniformly random spanning tree of g. It is the single
// entry point for callers that do not need stepwise control.
//
// The tree has exactly g's vertex set and |V|-1 edges. A single-vertex
// graph yields that vertex and no edges without any walk.
func Sample[V comparable](g *core.Graph[V], opts ...Option) (*core.Graph[V], error) {
	s, err := NewSampler(g, opts...)
	if err != nil {
		return nil, err
	}

	return s.Run()
}

func cloneSeq[V any](in []V) []V {
	if in == nil {
		return nil
	}
	out := make([]V, len(in))
	copy(out, in)

	return out
}
