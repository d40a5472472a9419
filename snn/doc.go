// Package snn builds shared-nearest-neighbor (SNN) graphs from a k-nearest-
// neighbor index table.
//
// What is an SNN graph?
//
//	Two points are joined when their neighbor sets overlap. Every point is
//	its own nearest neighbor (closed rank 0), so C(i) = {i} ∪ row(i) and
//	{i, j} is an edge iff C(i) ∩ C(j) ≠ ∅: they share a neighbor, or one
//	lists the other. The result feeds graph clustering (Louvain, Leiden,
//	Walktrap) as an opaque weighted adjacency structure.
//
// Weighting schemes:
//
//	Rank    — s* = min over shared m of r_i(m) + r_j(m) (closed ranks);
//	          w = max(k − s*/2, 1e-6). Rewards pairs whose shared
//	          neighbors sit near the top of both lists.
//	Number  — w = |C(i) ∩ C(j)|.
//	Jaccard — w = |C(i) ∩ C(j)| / |C(i) ∪ C(j)|.
//
// Algorithm:
//
//  1. neighbors.Invert builds, for each point m, the rows that contain m.
//  2. Each unordered pair is owned by its smaller endpoint i. For every
//     (m, r_i) in C(i) the host list of m is scanned from the top down and
//     every host row j > i is folded into a per-owner accumulator.
//  3. Owner results are sorted and concatenated in owner order, which is the
//     canonical (From, To) order.
//
// Work is Σ_m C(|Hosts(m)|, 2) pair visits rather than N². A point listed by
// nearly everyone degrades toward N²; WithMaxEdges turns that into a
// reported error instead of an unbounded allocation.
//
// Concurrency:
//
//	Owners are split into contiguous blocks processed by an errgroup of
//	WithWorkers goroutines. Blocks write disjoint outputs that are merged
//	in block order, so results are identical for every worker count. The
//	builder keeps no state between calls and never mutates the table.
//
// Usage:
//
//	t, _ := neighbors.New(rows)
//	el, err := snn.BuildRank(t, snn.WithWorkers(4))
//	for p := 0; p < el.Len(); p++ {
//	    u, v, w := el.Edge(p)
//	    ...
//	}
package snn
