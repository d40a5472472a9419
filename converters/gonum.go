// SPDX-License-Identifier: MIT
// Package: snngraph/converters
//
// gonum.go — EdgeList ⇄ gonum/graph simple graphs.
//
// Contract:
//   • Inputs are validated first; a malformed list never reaches gonum,
//     whose simple graphs panic on self-loops.
//   • Absent edges read back as weight 0 (the "absent" value passed to the
//     simple constructors); self weight is 0 as well.

package converters

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/snngraph/core"
)

const (
	methodToGonum         = "ToGonum"
	methodToGonumDirected = "ToGonumDirected"
	methodFromGonum       = "FromGonum"
)

// ErrNilInput indicates a nil list or graph.
var ErrNilInput = errors.New("converters: nil input")

// ErrDirectedList indicates a directed EdgeList passed where an undirected
// one is required.
var ErrDirectedList = errors.New("converters: directed edge list")

// ErrNodeID indicates a gonum node ID outside [0, N) or a self-loop.
var ErrNodeID = errors.New("converters: node id not representable")

// ToGonum returns an undirected gonum graph with one node per point.
//
// Errors: ErrNilInput, ErrDirectedList, core.ErrBadEdgeList.
// Complexity: O(N + E).
func ToGonum(l *core.EdgeList) (*simple.WeightedUndirectedGraph, error) {
	if l == nil {
		return nil, fmt.Errorf("%s: %w", methodToGonum, ErrNilInput)
	}
	if l.Directed {
		return nil, fmt.Errorf("%s: %w", methodToGonum, ErrDirectedList)
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodToGonum, err)
	}

	g := simple.NewWeightedUndirectedGraph(0, 0)
	for i := 0; i < l.N; i++ {
		g.AddNode(simple.Node(i))
	}
	for p := range l.From {
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(l.From[p]), simple.Node(l.To[p]), l.Weight[p]))
	}

	return g, nil
}

// ToGonumDirected returns a directed gonum graph. Undirected lists are
// expanded to both orientations.
//
// Errors: ErrNilInput, core.ErrBadEdgeList.
// Complexity: O(N + E).
func ToGonumDirected(l *core.EdgeList) (*simple.WeightedDirectedGraph, error) {
	if l == nil {
		return nil, fmt.Errorf("%s: %w", methodToGonumDirected, ErrNilInput)
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodToGonumDirected, err)
	}

	g := simple.NewWeightedDirectedGraph(0, 0)
	for i := 0; i < l.N; i++ {
		g.AddNode(simple.Node(i))
	}
	for p := range l.From {
		u, v, w := simple.Node(l.From[p]), simple.Node(l.To[p]), l.Weight[p]
		g.SetWeightedEdge(g.NewWeightedEdge(u, v, w))
		if !l.Directed {
			g.SetWeightedEdge(g.NewWeightedEdge(v, u, w))
		}
	}

	return g, nil
}

// FromGonum reads an undirected weighted graph whose node IDs are exactly
// 0..N-1 into a canonical undirected EdgeList.
//
// Errors: ErrNilInput, ErrNodeID.
// Complexity: O(N + E log d) where d is the maximum degree.
func FromGonum(g graph.WeightedUndirected) (*core.EdgeList, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodFromGonum, ErrNilInput)
	}

	nodes := graph.NodesOf(g.Nodes())
	n := len(nodes)
	for _, nd := range nodes {
		if id := nd.ID(); id < 0 || id >= int64(n) {
			return nil, fmt.Errorf("%s: node %d not in [0,%d): %w", methodFromGonum, id, n, ErrNodeID)
		}
	}

	out := core.NewEdgeList(n, false, 0)
	var partners []int64
	for u := int64(0); u < int64(n); u++ {
		partners = partners[:0]
		it := g.From(u)
		for it.Next() {
			v := it.Node().ID()
			if v == u {
				return nil, fmt.Errorf("%s: self-loop on %d: %w", methodFromGonum, u, ErrNodeID)
			}
			if v > u {
				partners = append(partners, v)
			}
		}
		slices.Sort(partners)
		for _, v := range partners {
			w, _ := g.Weight(u, v)
			out.Append(int(u), int(v), w)
		}
	}

	return out, nil
}
