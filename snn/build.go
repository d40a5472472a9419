// SPDX-License-Identifier: MIT
// Package: snngraph/snn
//
// build.go — public entry points and the parallel owner-block driver.
//
// Contract:
//   • Pure: (table, scheme, options) → *core.EdgeList; the table is only read.
//   • All-or-nothing: any error returns a nil list.
//   • N = 0 or k = 0 → empty list, nil error.
//   • Output is canonical (From < To, ascending (From, To)) and identical
//     for every worker count.

package snn

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/snngraph/core"
	"github.com/katalvlaran/snngraph/neighbors"
)

const (
	methodBuild        = "Build"
	methodBuildRank    = "BuildRank"
	methodBuildNumber  = "BuildNumber"
	methodBuildJaccard = "BuildJaccard"
)

// BuildRank builds the SNN graph with rank-based weights:
// w = max(k − s*/2, 1e-6) where s* is the smallest r_i(m) + r_j(m) over
// shared neighbors m, in closed ranks.
func BuildRank(t *neighbors.Table, opts ...Option) (*core.EdgeList, error) {
	return build(methodBuildRank, t, Rank, opts)
}

// BuildNumber builds the SNN graph weighted by shared-neighbor count
// w = |C(i) ∩ C(j)|, each point counting as its own neighbor.
func BuildNumber(t *neighbors.Table, opts ...Option) (*core.EdgeList, error) {
	return build(methodBuildNumber, t, Number, opts)
}

// BuildJaccard builds the SNN graph weighted by the Jaccard index of the
// closed neighborhoods, w ∈ (0, 1].
func BuildJaccard(t *neighbors.Table, opts ...Option) (*core.EdgeList, error) {
	return build(methodBuildJaccard, t, Jaccard, opts)
}

// Build builds the SNN graph for the given scheme.
//
// Errors: ErrNilTable, ErrUnknownScheme, ErrTooManyEdges.
// Complexity: O(N·k) for the index plus O(Σ_m |Hosts(m)|²/2) pair visits;
// memory O(N·k + workers·N).
func Build(t *neighbors.Table, scheme Scheme, opts ...Option) (*core.EdgeList, error) {
	return build(methodBuild, t, scheme, opts)
}

func build(method string, t *neighbors.Table, scheme Scheme, opts []Option) (*core.EdgeList, error) {
	if t == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilTable)
	}
	if !scheme.valid() {
		return nil, fmt.Errorf("%s: %v: %w", method, scheme, ErrUnknownScheme)
	}
	cfg := newConfig(opts...)

	n, k := t.N(), t.K()
	if n == 0 || k == 0 {
		return core.NewEdgeList(n, false, 0), nil
	}
	log := cfg.logger.With("method", method, "scheme", scheme.String(), "n", n, "k", k)

	idx := neighbors.Invert(t)
	log.Debug("inverted index built", "candidate_bound", idx.CandidateBound())

	blocks := splitOwners(n, cfg.workers*blocksPerWorker)
	workers := min(cfg.workers, len(blocks))
	parts := make([]*core.EdgeList, len(blocks))

	var (
		next    atomic.Int64 // next unclaimed block
		emitted atomic.Int64 // edges emitted so far, for the budget
	)
	g, ctx := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			acc := newAccumulator(n)
			for {
				b := int(next.Add(1) - 1)
				if b >= len(blocks) {
					return nil
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				seg, err := acc.runBlock(idx, scheme, blocks[b], &emitted, cfg.maxEdges)
				if err != nil {
					return err
				}
				parts[b] = seg
			}
		})
	}
	if err := g.Wait(); err != nil {
		log.Debug("snn build failed", "err", err)
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	out := merge(n, parts)
	log.Debug("snn graph built", "edges", out.Len(), "workers", workers, "blocks", len(blocks))

	return out, nil
}

// ownerRange is a half-open range [lo, hi) of owner rows.
type ownerRange struct{ lo, hi int }

// splitOwners cuts [0, n) into at most parts contiguous ranges.
func splitOwners(n, parts int) []ownerRange {
	if parts < 1 {
		parts = 1
	}
	size := (n + parts - 1) / parts
	out := make([]ownerRange, 0, parts)
	for lo := 0; lo < n; lo += size {
		out = append(out, ownerRange{lo: lo, hi: min(lo+size, n)})
	}
	return out
}

// merge concatenates block outputs in block order.
func merge(n int, parts []*core.EdgeList) *core.EdgeList {
	total := 0
	for _, p := range parts {
		total += p.Len()
	}
	out := core.NewEdgeList(n, false, total)
	for _, p := range parts {
		out.From = append(out.From, p.From...)
		out.To = append(out.To, p.To...)
		out.Weight = append(out.Weight, p.Weight...)
	}
	return out
}
