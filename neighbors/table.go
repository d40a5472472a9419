// SPDX-License-Identifier: MIT
// Package: snngraph/neighbors
//
// table.go — Table type, constructors and read-only accessors.
//
// Contract:
//   • A Table is immutable once constructed; constructors copy their input.
//   • Every identifier is validated against [0, N) before the Table exists.
//   • N = 0 or k = 0 are valid, empty tables.

package neighbors

import (
	"fmt"
	"math"
)

const (
	methodNew         = "New"
	methodFromFlat    = "FromFlat"
	methodFromFloat64 = "FromFloat64"
)

// Table is a dense, row-major N×k table of neighbor identifiers.
// The zero value is an empty 0×0 table.
type Table struct {
	n, k int
	ids  []int // len n*k, row i occupies ids[i*k:(i+1)*k]
}

// Option configures table construction.
type Option func(*tableConfig)

// tableConfig is resolved from Options before validation starts.
type tableConfig struct {
	base int // subtracted from every raw identifier
}

// WithIndexBase declares the smallest identifier the caller uses. Raw
// identifiers are shifted by -base before validation, so 1-based tables
// pass WithIndexBase(1). Panics on a negative base.
func WithIndexBase(base int) Option {
	if base < 0 {
		panic(fmt.Sprintf("neighbors: WithIndexBase(%d): base must be >= 0", base))
	}
	return func(c *tableConfig) { c.base = base }
}

func newTableConfig(opts ...Option) tableConfig {
	cfg := tableConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// New builds a Table from rows of identifiers. Row i holds point i's
// neighbors ordered by increasing distance. All rows must have the same
// length. The input is copied.
//
// Errors: ErrRaggedRows, ErrIDOutOfRange.
// Complexity: O(N·k).
func New(rows [][]int, opts ...Option) (*Table, error) {
	cfg := newTableConfig(opts...)
	n, k, err := shape(methodNew, rows)
	if err != nil {
		return nil, err
	}

	t := &Table{n: n, k: k, ids: make([]int, n*k)}
	for i, row := range rows {
		for c, raw := range row {
			id := raw - cfg.base
			if id < 0 || id >= n {
				return nil, fmt.Errorf("%s: row %d col %d: id %d not in [%d,%d): %w",
					methodNew, i, c, raw, cfg.base, n+cfg.base, ErrIDOutOfRange)
			}
			t.ids[i*k+c] = id
		}
	}

	return t, nil
}

// shape returns the table dimensions, or ErrRaggedRows for the first row
// whose length differs from row 0. Lengths are checked before any
// identifier so a table that is both ragged and out of range is always
// reported as ragged.
func shape[T any](method string, rows [][]T) (n, k int, err error) {
	n = len(rows)
	if n > 0 {
		k = len(rows[0])
	}
	for i, row := range rows {
		if len(row) != k {
			return 0, 0, fmt.Errorf("%s: row %d has %d entries, want %d: %w",
				method, i, len(row), k, ErrRaggedRows)
		}
	}
	return n, k, nil
}

// FromFlat builds an n×k Table from a row-major slice of length n*k.
// The input is copied.
//
// Errors: ErrBadShape, ErrIDOutOfRange.
// Complexity: O(n·k).
func FromFlat(ids []int, n, k int, opts ...Option) (*Table, error) {
	if n < 0 || k < 0 {
		return nil, fmt.Errorf("%s: n=%d k=%d: %w", methodFromFlat, n, k, ErrBadShape)
	}
	if len(ids) != n*k {
		return nil, fmt.Errorf("%s: len(ids)=%d, want n*k=%d: %w",
			methodFromFlat, len(ids), n*k, ErrBadShape)
	}
	cfg := newTableConfig(opts...)

	t := &Table{n: n, k: k, ids: make([]int, len(ids))}
	for p, raw := range ids {
		id := raw - cfg.base
		if id < 0 || id >= n {
			return nil, fmt.Errorf("%s: row %d col %d: id %d not in [%d,%d): %w",
				methodFromFlat, p/k, p%k, raw, cfg.base, n+cfg.base, ErrIDOutOfRange)
		}
		t.ids[p] = id
	}

	return t, nil
}

// FromFloat64 builds a Table from floating-point identifiers, as shipped by
// hosts whose numeric matrices are float64. Every value must be finite and
// integral.
//
// Errors: ErrRaggedRows, ErrNonFiniteID, ErrNonIntegralID, ErrIDOutOfRange.
// Complexity: O(N·k).
func FromFloat64(rows [][]float64, opts ...Option) (*Table, error) {
	cfg := newTableConfig(opts...)
	n, k, err := shape(methodFromFloat64, rows)
	if err != nil {
		return nil, err
	}

	t := &Table{n: n, k: k, ids: make([]int, n*k)}
	for i, row := range rows {
		for c, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%s: row %d col %d: %v: %w",
					methodFromFloat64, i, c, v, ErrNonFiniteID)
			}
			if v != math.Trunc(v) {
				return nil, fmt.Errorf("%s: row %d col %d: %v: %w",
					methodFromFloat64, i, c, v, ErrNonIntegralID)
			}
			// Range check in float space first so huge values cannot overflow int.
			if v < float64(cfg.base) || v >= float64(n+cfg.base) {
				return nil, fmt.Errorf("%s: row %d col %d: id %v not in [%d,%d): %w",
					methodFromFloat64, i, c, v, cfg.base, n+cfg.base, ErrIDOutOfRange)
			}
			t.ids[i*k+c] = int(v) - cfg.base
		}
	}

	return t, nil
}

// N returns the number of points (rows).
func (t *Table) N() int { return t.n }

// K returns the number of neighbors per point (columns).
func (t *Table) K() int { return t.k }

// At returns the identifier in row i, column c. Panics if out of range.
func (t *Table) At(i, c int) int {
	if i < 0 || i >= t.n || c < 0 || c >= t.k {
		panic(fmt.Sprintf("neighbors: At(%d,%d) outside %dx%d table", i, c, t.n, t.k))
	}
	return t.ids[i*t.k+c]
}

// Row returns a copy of row i. Panics if i is out of range.
func (t *Table) Row(i int) []int {
	if i < 0 || i >= t.n {
		panic(fmt.Sprintf("neighbors: Row(%d) outside %d rows", i, t.n))
	}
	out := make([]int, t.k)
	copy(out, t.ids[i*t.k:(i+1)*t.k])
	return out
}

// Rank returns the column at which row i first lists m (0 = nearest) and
// true, or -1 and false when m does not appear in row i.
// Complexity: O(k).
func (t *Table) Rank(i, m int) (int, bool) {
	if i < 0 || i >= t.n {
		return -1, false
	}
	row := t.ids[i*t.k : (i+1)*t.k]
	for c, id := range row {
		if id == m {
			return c, true
		}
	}
	return -1, false
}

// row returns the live backing slice of row i (package-internal, read-only).
func (t *Table) row(i int) []int {
	return t.ids[i*t.k : (i+1)*t.k]
}
