// SPDX-License-Identifier: MIT
// Package: ust/builder
//
// errors.go - sentinel errors. Constructors wrap them with the method name:
//
//	fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
//
// Callers branch with errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the topology's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates p outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure (nil constructor, core rejection).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadGridID indicates a vertex ID that is not of the form "r,c".
var ErrBadGridID = errors.New("builder: malformed grid id")
