// SPDX-License-Identifier: MIT
// Package: snngraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w: "<Method>: <detail>: %w".
//   • Constructors never panic; validation panics are confined to WithX options.

package builder

import "errors"

// ErrTooFewVertices indicates that n (or the block size) is too small for the
// requested k.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadSize indicates a negative count or a block count below one.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrNeedRandSource indicates a stochastic constructor was called without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")
