// SPDX-License-Identifier: MIT
// Package: csrgraph/generate
//
// errors.go - sentinel errors for fixture construction.

package generate

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("generate: parameter too small")

// ErrInvalidProbability indicates p outside [0,1].
var ErrInvalidProbability = errors.New("generate: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("generate: rng is required")

// ErrTooManyVertices indicates the reserved ids would not fit in int32.
var ErrTooManyVertices = errors.New("generate: too many vertices")

// ErrConstructFailed indicates a nil constructor was passed to Edges.
var ErrConstructFailed = errors.New("generate: construction failed")
