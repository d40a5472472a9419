// SPDX-License-Identifier: MIT
// Package: snngraph/neighbors
//
// errors.go — sentinel errors for table construction.
//
// Error policy:
//   • Only sentinels are exported; constructors wrap them with "%w" and the
//     offending row/column so callers can branch with errors.Is.
//   • Validation never truncates, clamps or wraps identifiers.

package neighbors

import "errors"

// ErrRaggedRows indicates rows of different lengths; k must be uniform.
var ErrRaggedRows = errors.New("neighbors: rows have different lengths")

// ErrIDOutOfRange indicates an identifier outside [0, N) after the index base
// was applied (this includes negative identifiers).
var ErrIDOutOfRange = errors.New("neighbors: identifier out of range")

// ErrNonFiniteID indicates a NaN or infinite identifier in a floating-point table.
var ErrNonFiniteID = errors.New("neighbors: identifier is not finite")

// ErrNonIntegralID indicates a floating-point identifier with a fractional part.
var ErrNonIntegralID = errors.New("neighbors: identifier is not integral")

// ErrBadShape indicates dimensions that do not match the supplied data
// (negative n or k, or len(ids) != n*k).
var ErrBadShape = errors.New("neighbors: invalid table shape")
