// SPDX-License-Identifier: MIT
// Package: snngraph/snn
//
// errors.go — sentinel errors for the SNN builder.
//
// Callers branch with errors.Is; implementations attach method context with
// "%w". Input-table validation errors live in package neighbors.

package snn

import "errors"

// ErrNilTable indicates a nil *neighbors.Table was passed to a builder.
var ErrNilTable = errors.New("snn: nil neighbor table")

// ErrUnknownScheme indicates a weighting scheme outside Rank/Number/Jaccard.
var ErrUnknownScheme = errors.New("snn: unknown weighting scheme")

// ErrTooManyEdges indicates the graph exceeded the WithMaxEdges budget. The
// call fails as a whole; no partial graph is returned.
var ErrTooManyEdges = errors.New("snn: edge budget exceeded")
