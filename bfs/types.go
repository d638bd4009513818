// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option configures BFS behavior via functional arguments.
type Option[V comparable] func(*Options[V])

// Options holds parameters and callbacks to customize BFS execution.
type Options[V comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v V, depth int) error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op OnVisit hook.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		Ctx:     context.Background(),
		OnVisit: func(V, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[V comparable](fn func(v V, depth int) error) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex to its distance (in edges) from the start.
//   - Parent: map from vertex to its predecessor in the BFS tree.
type Result[V comparable] struct {
	Order  []V
	Depth  map[V]int
	Parent map[V]V
}

// Reached reports whether v was visited.
func (r *Result[V]) Reached(v V) bool {
	_, ok := r.Depth[v]
	return ok
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *Result[V]) PathTo(dest V) ([]V, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	// build reversed path
	path := []V{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
