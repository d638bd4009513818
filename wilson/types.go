// SPDX-License-Identifier: MIT
// Package: ust/wilson
//
// types.go - sentinel errors, sampler state and functional options.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Every error reflects a precondition violation on the input graph (or
//     a caller-imposed limit). Nothing is retried or swallowed.
//   - Option constructors panic on meaningless values (nil RNG); the
//     algorithm itself never panics.

package wilson

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/ust/core"
)

var (
	// ErrGraphNil is returned when a nil graph or tree pointer is passed.
	ErrGraphNil = errors.New("wilson: graph is nil")

	// ErrEmptyGraph is returned when sampling a graph with zero vertices.
	ErrEmptyGraph = errors.New("wilson: graph has no vertices")

	// ErrEmptyTree is returned when a random walk is requested against a
	// tree with no vertices (the walk could never stop).
	ErrEmptyTree = errors.New("wilson: tree has no vertices")

	// ErrDisconnectedGraph is returned when some vertex cannot reach the
	// growing tree. Isolated vertices (core.ErrNoNeighbors) surface as this.
	ErrDisconnectedGraph = errors.New("wilson: graph is not connected")

	// ErrAlreadyComplete is returned when a walk or step is requested after
	// every vertex has joined the tree.
	ErrAlreadyComplete = errors.New("wilson: tree already spans the graph")

	// ErrStepLimit is returned when a single walk exceeds WithMaxSteps.
	ErrStepLimit = errors.New("wilson: random walk step limit exceeded")

	// ErrNotSpanningTree is returned by Verify when the candidate is not a
	// spanning tree of the source graph.
	ErrNotSpanningTree = errors.New("wilson: not a spanning tree")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("wilson: invalid option supplied")
)

// State is the sampler's position in its two-state lifecycle.
type State int

const (
	// Growing: the tree is a strict, connected, acyclic subset of the graph.
	Growing State = iota
	// Complete: the tree spans the graph. Terminal.
	Complete
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Growing:
		return "Growing"
	case Complete:
		return "Complete"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// PathHook observes one accepted loop-erased path.
// iteration is 1-based; walkLen and pathLen count vertices.
type PathHook func(iteration, walkLen, pathLen int)

// Option configures a walk or a sampling run.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	// Ctx is checked once per walk step; cancellation aborts the run.
	Ctx context.Context

	// Rand drives every draw (root, walk start, each step).
	Rand core.Rand

	// MaxSteps bounds a single walk; 0 means unlimited.
	MaxSteps int

	// OnPath is called after each path is added to the tree.
	OnPath PathHook

	err error
}

// DefaultOptions returns Options with a background context, a
// deterministic default-seeded RNG, no step limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Rand:   rngFromSeed(0),
		OnPath: func(int, int, int) {},
	}
}

// WithSeed seeds a fresh RNG. seed==0 selects the fixed default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rngFromSeed(seed)
	}
}

// WithRand injects an explicit random source. Panics on nil.
func WithRand(r core.Rand) Option {
	if r == nil {
		panic("wilson: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps bounds every random walk to n steps.
//
//	n > 0: limit
//	n == 0: no limit
//	n < 0: ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithOnPath registers a progress hook.
func WithOnPath(fn PathHook) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPath = fn
		}
	}
}

func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
