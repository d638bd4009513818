package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/ust/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable] struct {
	graph *core.Graph[V]
	opts  Options[V]
	ctx   context.Context
	queue []queueItem[V]
	res   *Result[V]
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrNeighbors for graph failures, or any user-supplied hook error.
func BFS[V comparable](g *core.Graph[V], start V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}

	// Validate start vertex
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker[V]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem[V], 0, n),
		res: &Result[V]{
			Order:  make([]V, 0, n),
			Depth:  make(map[V]int, n),
			Parent: make(map[V]V, n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[V]{v: start})

	return w.res, w.loop()
}

// Connected reports whether every vertex of g is reachable from its first
// vertex. An empty graph is reported as connected.
// Complexity: O(V + E).
func Connected[V comparable](g *core.Graph[V]) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	vs := g.Vertices()
	if len(vs) == 0 {
		return true, nil
	}
	res, err := BFS(g, vs[0])
	if err != nil {
		return false, err
	}

	return len(res.Order) == len(vs), nil
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[V]) visit(item queueItem[V]) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v, err)
	}
	return nil
}

// enqueueNeighbors retrieves neighbors and enqueues each unseen one. Returns ErrNeighbors on lookup failure.
func (w *walker[V]) enqueueNeighbors(item queueItem[V]) error {
	neighbors, err := w.graph.Neighbors(item.v)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %v: %w", ErrNeighbors, item.v, err)
	}
	nextDepth := item.depth + 1
	for _, nbr := range neighbors {
		// first time seen?
		if _, seen := w.res.Depth[nbr]; !seen {
			w.res.Depth[nbr] = nextDepth
			w.res.Parent[nbr] = item.v
			w.queue = append(w.queue, queueItem[V]{v: nbr, depth: nextDepth})
		}
	}
	return nil
}
