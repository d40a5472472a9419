// SPDX-License-Identifier: MIT
// Package: snngraph/snn
//
// accumulate.go — candidate enumeration and per-owner weight folding.
//
// Invariants:
//   • score[j] == 0 ⇔ j is not yet a candidate of the current owner.
//     Number/Jaccard store the shared count (≥ 1); Rank stores the best
//     combined rank, which is ≥ 1 because only i itself has closed rank 0
//     in both C(i) and Hosts(i).
//   • After an owner is emitted every touched score is reset, so the
//     accumulator is reusable across owners without an O(N) clear.

package snn

import (
	"fmt"
	"math"
	"slices"
	"sync/atomic"

	"github.com/katalvlaran/snngraph/core"
	"github.com/katalvlaran/snngraph/neighbors"
)

// accumulator is one worker's scratch space, O(N).
type accumulator struct {
	score   []int32
	touched []int
}

func newAccumulator(n int) *accumulator {
	return &accumulator{score: make([]int32, n)}
}

// runBlock emits the edges of every owner in r, in ascending (From, To) order.
func (a *accumulator) runBlock(
	idx *neighbors.Index,
	scheme Scheme,
	r ownerRange,
	emitted *atomic.Int64,
	maxEdges int,
) (*core.EdgeList, error) {
	seg := core.NewEdgeList(idx.N(), false, 0)
	for i := r.lo; i < r.hi; i++ {
		if scheme == Rank {
			a.collectRank(idx, i)
		} else {
			a.collectShared(idx, i)
		}

		slices.Sort(a.touched)
		for _, j := range a.touched {
			seg.Append(i, j, a.weight(idx, scheme, i, j))
			a.score[j] = 0
		}
		cnt := len(a.touched)
		a.touched = a.touched[:0]

		if maxEdges > 0 && cnt > 0 && emitted.Add(int64(cnt)) > int64(maxEdges) {
			return nil, fmt.Errorf("owner %d: more than %d edges: %w", i, maxEdges, ErrTooManyEdges)
		}
	}

	return seg, nil
}

// collectShared counts, for every j > i, how many points C(i) and C(j) share.
// Host lists ascend by row, so the scan runs top-down and stops at j ≤ i.
func (a *accumulator) collectShared(idx *neighbors.Index, i int) {
	for _, nb := range idx.Closed(i) {
		hosts := idx.Hosts(nb.Row)
		for p := len(hosts) - 1; p >= 0 && hosts[p].Row > i; p-- {
			j := hosts[p].Row
			if a.score[j] == 0 {
				a.touched = append(a.touched, j)
			}
			a.score[j]++
		}
	}
}

// collectRank keeps, for every j > i, the smallest r_i(m) + r_j(m) over shared m.
func (a *accumulator) collectRank(idx *neighbors.Index, i int) {
	for _, nb := range idx.Closed(i) {
		hosts := idx.Hosts(nb.Row)
		for p := len(hosts) - 1; p >= 0 && hosts[p].Row > i; p-- {
			j := hosts[p].Row
			s := int32(nb.Rank + hosts[p].Rank)
			switch cur := a.score[j]; {
			case cur == 0:
				a.touched = append(a.touched, j)
				a.score[j] = s
			case s < cur:
				a.score[j] = s
			}
		}
	}
}

// weight turns the folded score of (i, j) into the scheme's edge weight.
// Every input is an integer, so results do not depend on visit order.
func (a *accumulator) weight(idx *neighbors.Index, scheme Scheme, i, j int) float64 {
	s := a.score[j]
	switch scheme {
	case Number:
		return float64(s)
	case Jaccard:
		union := idx.ClosedSize(i) + idx.ClosedSize(j) - int(s)
		return float64(s) / float64(union)
	default:
		return math.Max(float64(idx.K())-0.5*float64(s), rankFloor)
	}
}
