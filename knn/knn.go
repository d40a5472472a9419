// SPDX-License-Identifier: MIT
// Package: snngraph/knn
//
// knn.go — k-NN graph construction (directed arcs or collapsed pairs).
//
// Contract:
//   • Self-references and repeated identifiers in a row are skipped.
//   • Output is canonical: ascending (From, To); undirected lists carry
//     From < To once per pair.
//   • N = 0 or k = 0 → empty list, nil error.

package knn

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/snngraph/core"
	"github.com/katalvlaran/snngraph/neighbors"
)

const methodBuild = "knn.Build"

// ErrNilTable indicates a nil *neighbors.Table was passed to Build.
var ErrNilTable = errors.New("knn: nil neighbor table")

// Option customizes Build.
type Option func(*config)

type config struct {
	directed bool
	mutual   bool
}

// WithDirected switches between arcs i→m (true) and unordered pairs (false).
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// WithMutualWeight gives reciprocal pairs weight 2 in undirected output.
// It has no effect on directed output.
func WithMutualWeight() Option {
	return func(c *config) { c.mutual = true }
}

// Build returns the k-NN graph of t.
//
// Errors: ErrNilTable.
func Build(t *neighbors.Table, opts ...Option) (*core.EdgeList, error) {
	if t == nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrNilTable)
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	n, k := t.N(), t.K()
	if n == 0 || k == 0 {
		return core.NewEdgeList(n, cfg.directed, 0), nil
	}

	idx := neighbors.Invert(t)
	if cfg.directed {
		return directed(idx), nil
	}
	return undirected(idx, cfg.mutual), nil
}

// directed emits C(i) \ {i} for every row, sorted by target.
func directed(idx *neighbors.Index) *core.EdgeList {
	n := idx.N()
	out := core.NewEdgeList(n, true, n*idx.K())
	targets := make([]int, 0, idx.K())
	for i := 0; i < n; i++ {
		targets = targets[:0]
		for _, nb := range idx.Closed(i)[1:] {
			targets = append(targets, nb.Row)
		}
		slices.Sort(targets)
		for _, m := range targets {
			out.Append(i, m, 1)
		}
	}
	return out
}

// undirected owns each pair by its smaller endpoint i: partners are the
// points i lists plus the rows that list i, restricted to j > i.
func undirected(idx *neighbors.Index, mutual bool) *core.EdgeList {
	n := idx.N()
	out := core.NewEdgeList(n, false, n*idx.K())

	// seen[j] counts how many of the two directions link i and j (0..2).
	seen := make([]uint8, n)
	partners := make([]int, 0, 2*idx.K())
	for i := 0; i < n; i++ {
		partners = partners[:0]
		for _, nb := range idx.Closed(i)[1:] {
			if nb.Row > i {
				if seen[nb.Row] == 0 {
					partners = append(partners, nb.Row)
				}
				seen[nb.Row]++
			}
		}
		hosts := idx.Hosts(i)
		for p := len(hosts) - 1; p >= 0 && hosts[p].Row > i; p-- {
			j := hosts[p].Row
			if seen[j] == 0 {
				partners = append(partners, j)
			}
			seen[j]++
		}

		slices.Sort(partners)
		for _, j := range partners {
			w := 1.0
			if mutual && seen[j] == 2 {
				w = 2
			}
			out.Append(i, j, w)
			seen[j] = 0
		}
	}
	return out
}
