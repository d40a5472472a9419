// SPDX-License-Identifier: MIT
// Package: snngraph/builder
//
// tables.go — Ring, Blocks and Random neighbor-table constructors.
//
// Contract:
//   • n ≥ 0, k ≥ 0 (else ErrBadSize); blocks ≥ 1 for Blocks.
//   • Rows never repeat an identifier; without WithSelf they never contain
//     the point itself, so k ≤ n-1 (else ErrTooFewVertices).
//   • Rows are ordered nearest-first under the constructor's implied metric.
//
// Determinism:
//   • Ring and Blocks are fully deterministic.
//   • Random draws rows in ascending order from the configured RNG.

package builder

import (
	"fmt"

	"github.com/katalvlaran/snngraph/neighbors"
)

const (
	methodRing   = "Ring"
	methodBlocks = "Blocks"
	methodRandom = "Random"
)

// Ring returns an n×k table where row i lists i+1, i-1, i+2, i-2, … (mod n),
// the exact k-NN of n points evenly spaced on a circle.
func Ring(n, k int, opts ...BuilderOption) (*neighbors.Table, error) {
	cfg := newBuilderConfig(opts...)
	need, err := validateShape(methodRing, n, k, n, cfg)
	if err != nil {
		return nil, err
	}

	ids := make([]int, n*k)
	for i := 0; i < n; i++ {
		fillRow(ids[i*k:(i+1)*k], i, cfg.self, func(dst []int) {
			ringOrder(dst, 0, n, i, need)
		})
	}

	return neighbors.FromFlat(ids, n, k)
}

// Blocks returns a table of `blocks` disjoint rings of `size` points each:
// points b*size … (b+1)*size-1 only list each other. SNN graphs built from
// it have exactly `blocks` connected components.
func Blocks(blocks, size, k int, opts ...BuilderOption) (*neighbors.Table, error) {
	cfg := newBuilderConfig(opts...)
	if blocks < 1 {
		return nil, fmt.Errorf("%s: blocks=%d < 1: %w", methodBlocks, blocks, ErrBadSize)
	}
	need, err := validateShape(methodBlocks, blocks*size, k, size, cfg)
	if err != nil {
		return nil, err
	}

	n := blocks * size
	ids := make([]int, n*k)
	for i := 0; i < n; i++ {
		base, local := (i/size)*size, i%size
		fillRow(ids[i*k:(i+1)*k], i, cfg.self, func(dst []int) {
			ringOrder(dst, base, size, local, need)
		})
	}

	return neighbors.FromFlat(ids, n, k)
}

// Random returns an n×k table whose rows hold k distinct points drawn
// uniformly from the others. Requires WithSeed or WithRand.
func Random(n, k int, opts ...BuilderOption) (*neighbors.Table, error) {
	cfg := newBuilderConfig(opts...)
	need, err := validateShape(methodRandom, n, k, n, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.rng == nil && need > 0 {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
	}

	ids := make([]int, n*k)
	mark := make([]int, n) // mark[m] == i+1: m already drawn for row i
	for i := 0; i < n; i++ {
		stamp := i + 1
		mark[i] = stamp
		fillRow(ids[i*k:(i+1)*k], i, cfg.self, func(dst []int) {
			for c := 0; c < need; {
				m := cfg.rng.Intn(n)
				if mark[m] == stamp {
					continue
				}
				mark[m] = stamp
				dst[c] = m
				c++
			}
		})
	}

	return neighbors.FromFlat(ids, n, k)
}

// validateShape checks sizes and returns how many non-self neighbors each
// row needs. universe is the number of points a row may draw from.
func validateShape(method string, n, k, universe int, cfg builderConfig) (int, error) {
	if n < 0 || k < 0 || universe < 0 {
		return 0, fmt.Errorf("%s: n=%d k=%d: %w", method, n, k, ErrBadSize)
	}
	need := k
	if cfg.self && k > 0 {
		need = k - 1
	}
	if n > 0 && need > universe-1 {
		return 0, fmt.Errorf("%s: k=%d needs %d other points, have %d: %w",
			method, k, need, universe-1, ErrTooFewVertices)
	}
	return need, nil
}

// fillRow writes the optional self entry and delegates the rest to fill.
func fillRow(row []int, i int, self bool, fill func(dst []int)) {
	if len(row) == 0 {
		return
	}
	if self {
		row[0] = i
		fill(row[1:])
		return
	}
	fill(row)
}

// ringOrder writes the `need` nearest ring neighbors of local position l in
// a ring of `size` points starting at base: +1, -1, +2, -2, …
func ringOrder(dst []int, base, size, l, need int) {
	c := 0
	for d := 1; c < need; d++ {
		a := (l + d) % size
		dst[c] = base + a
		c++
		if c == need {
			break
		}
		if b := (l - d + size) % size; b != a {
			dst[c] = base + b
			c++
		}
	}
}
