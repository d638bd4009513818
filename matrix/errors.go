// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." and callers match with
// errors.Is. Nothing in this package panics on user input.

package matrix

import "errors"

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrEmptyGraph indicates a graph with no vertices; gonum refuses
	// zero-sized matrices.
	ErrEmptyGraph = errors.New("matrix: graph has no vertices")

	// ErrSingular indicates that the reduced Laplacian of a connected graph
	// failed to factorize in floating point.
	ErrSingular = errors.New("matrix: reduced Laplacian is numerically singular")

	// ErrTooLarge indicates the spanning tree count overflows float64.
	ErrTooLarge = errors.New("matrix: spanning tree count overflows float64")
)
