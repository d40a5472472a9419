// SPDX-License-Identifier: MIT
// Package: snngraph/core
//
// edgelist.go — EdgeList, the parallel-sequence result of every builder.
//
// Contract:
//   • len(From) == len(To) == len(Weight).
//   • Endpoints lie in [0, N).
//   • Builders emit canonical lists: undirected lists carry From < To once
//     per pair; all lists are sorted ascending by (From, To).
//   • An EdgeList owns its slices; builders never retain them.

package core

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/floats"
)

const (
	methodValidate = "EdgeList.Validate"
	methodGraph    = "EdgeList.Graph"
)

// EdgeList is a graph over points 0..N-1 as three parallel sequences.
type EdgeList struct {
	// N is the number of points (vertices), including isolated ones.
	N int

	// Directed reports whether each entry is an arc From→To. When false each
	// entry is an unordered pair reported once with From < To.
	Directed bool

	From   []int
	To     []int
	Weight []float64
}

// NewEdgeList returns an empty list over n points with room for capacity edges.
func NewEdgeList(n int, directed bool, capacity int) *EdgeList {
	return &EdgeList{
		N:        n,
		Directed: directed,
		From:     make([]int, 0, capacity),
		To:       make([]int, 0, capacity),
		Weight:   make([]float64, 0, capacity),
	}
}

// Len returns the number of edges.
func (l *EdgeList) Len() int { return len(l.From) }

// Append adds one edge. It does not re-establish canonical order.
func (l *EdgeList) Append(from, to int, weight float64) {
	l.From = append(l.From, from)
	l.To = append(l.To, to)
	l.Weight = append(l.Weight, weight)
}

// Edge returns the p-th edge.
func (l *EdgeList) Edge(p int) (from, to int, weight float64) {
	return l.From[p], l.To[p], l.Weight[p]
}

// Validate checks the structural contract: equal lengths, endpoints in
// [0, N), no self-loops, From < To for undirected lists, and strictly
// ascending (From, To) order (which also rules out duplicates).
//
// Errors: ErrBadEdgeList wrapped with the first offending position.
// Complexity: O(E).
func (l *EdgeList) Validate() error {
	if len(l.To) != len(l.From) || len(l.Weight) != len(l.From) {
		return fmt.Errorf("%s: lengths from=%d to=%d weight=%d: %w",
			methodValidate, len(l.From), len(l.To), len(l.Weight), ErrBadEdgeList)
	}
	for p := range l.From {
		u, v := l.From[p], l.To[p]
		if u < 0 || u >= l.N || v < 0 || v >= l.N {
			return fmt.Errorf("%s: edge %d (%d,%d) outside [0,%d): %w",
				methodValidate, p, u, v, l.N, ErrBadEdgeList)
		}
		if u == v {
			return fmt.Errorf("%s: edge %d is a self-loop on %d: %w", methodValidate, p, u, ErrBadEdgeList)
		}
		if !l.Directed && u > v {
			return fmt.Errorf("%s: undirected edge %d (%d,%d) not oriented from<to: %w",
				methodValidate, p, u, v, ErrBadEdgeList)
		}
		if p > 0 && !pairLess(l.From[p-1], l.To[p-1], u, v) {
			return fmt.Errorf("%s: edge %d (%d,%d) out of order or duplicated: %w",
				methodValidate, p, u, v, ErrBadEdgeList)
		}
	}

	return nil
}

// Lookup returns the weight of edge (i, j) and true, or 0 and false when the
// list has no such edge. Undirected lists accept either orientation. The list
// must be in canonical order.
// Complexity: O(log E).
func (l *EdgeList) Lookup(i, j int) (float64, bool) {
	if !l.Directed && i > j {
		i, j = j, i
	}
	p := sort.Search(len(l.From), func(p int) bool {
		return !pairLess(l.From[p], l.To[p], i, j)
	})
	if p < len(l.From) && l.From[p] == i && l.To[p] == j {
		return l.Weight[p], true
	}

	return 0, false
}

// Symmetrize returns a directed list containing both orientations of every
// undirected edge, in canonical order. Directed lists are returned as a copy.
// Complexity: O(E log E).
func (l *EdgeList) Symmetrize() *EdgeList {
	if l.Directed {
		return l.Clone()
	}
	out := NewEdgeList(l.N, true, 2*l.Len())
	for p := range l.From {
		out.Append(l.From[p], l.To[p], l.Weight[p])
		out.Append(l.To[p], l.From[p], l.Weight[p])
	}
	out.sortCanonical()

	return out
}

// Clone returns a deep copy.
func (l *EdgeList) Clone() *EdgeList {
	out := NewEdgeList(l.N, l.Directed, l.Len())
	out.From = append(out.From, l.From...)
	out.To = append(out.To, l.To...)
	out.Weight = append(out.Weight, l.Weight...)

	return out
}

// TotalWeight returns the sum of all edge weights.
func (l *EdgeList) TotalWeight() float64 {
	return floats.Sum(l.Weight)
}

// IDFn names vertex idx when an EdgeList is materialised as a Graph.
// It must be pure and injective.
type IDFn func(idx int) string

// DecimalID returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DecimalID(idx int) string { return strconv.Itoa(idx) }

// ListOption configures EdgeList.Graph.
type ListOption func(*listConfig)

type listConfig struct {
	idFn IDFn
}

// WithIDFn sets the vertex naming scheme for EdgeList.Graph. Panics on nil.
func WithIDFn(fn IDFn) ListOption {
	if fn == nil {
		panic("core: WithIDFn(nil)")
	}
	return func(c *listConfig) { c.idFn = fn }
}

// Graph materialises the list as a weighted Graph with one vertex per point
// (isolated points included) and one edge per entry.
//
// Errors: ErrBadEdgeList from Validate; core sentinels from AddEdge.
// Complexity: O(N + E).
func (l *EdgeList) Graph(opts ...ListOption) (*Graph, error) {
	cfg := listConfig{idFn: DecimalID}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGraph, err)
	}

	g := NewGraph(WithDirected(l.Directed), WithWeighted())
	ids := make([]string, l.N)
	for i := 0; i < l.N; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%d): %w", methodGraph, i, err)
		}
	}
	for p := range l.From {
		if _, err := g.AddEdge(ids[l.From[p]], ids[l.To[p]], l.Weight[p]); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodGraph, l.From[p], l.To[p], err)
		}
	}

	return g, nil
}

// sortCanonical orders entries by (From, To).
func (l *EdgeList) sortCanonical() {
	sort.Sort(byPair{l})
}

type byPair struct{ l *EdgeList }

func (b byPair) Len() int { return len(b.l.From) }
func (b byPair) Less(i, j int) bool {
	return pairLess(b.l.From[i], b.l.To[i], b.l.From[j], b.l.To[j])
}
func (b byPair) Swap(i, j int) {
	b.l.From[i], b.l.From[j] = b.l.From[j], b.l.From[i]
	b.l.To[i], b.l.To[j] = b.l.To[j], b.l.To[i]
	b.l.Weight[i], b.l.Weight[j] = b.l.Weight[j], b.l.Weight[i]
}

func pairLess(u1, v1, u2, v2 int) bool {
	if u1 != u2 {
		return u1 < u2
	}
	return v1 < v2
}
