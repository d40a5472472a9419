// Package prim_kruskal provides Kruskal's spanning-forest algorithm over a
// core.EdgeList.
package prim_kruskal

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/snngraph/core"
)

// ErrInvalidGraph indicates a nil or directed edge list.
var ErrInvalidGraph = errors.New("prim_kruskal: spanning forest requires an undirected edge list")

// Option configures Kruskal.
type Option func(*options)

type options struct {
	minimum bool
}

// WithMinimum selects the minimum-weight forest instead of the maximum.
func WithMinimum() Option {
	return func(o *options) { o.minimum = true }
}

// Kruskal returns the spanning forest of l: N − c edges for c connected
// components, in canonical order over the same N points.
//
// Errors: ErrInvalidGraph, core.ErrBadEdgeList.
func Kruskal(l *core.EdgeList, opts ...Option) (*core.EdgeList, error) {
	if l == nil || l.Directed {
		return nil, ErrInvalidGraph
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("prim_kruskal: Kruskal: %w", err)
	}

	// Positions sorted by weight; the list is canonical, so comparing
	// positions breaks ties by (From, To).
	order := make([]int, l.Len())
	for p := range order {
		order[p] = p
	}
	slices.SortFunc(order, func(a, b int) int {
		c := cmp.Compare(l.Weight[a], l.Weight[b])
		if !o.minimum {
			c = -c
		}
		if c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	uf := newUnionFind(l.N)
	kept := make([]int, 0, max(l.N-1, 0))
	for _, p := range order {
		if uf.union(l.From[p], l.To[p]) {
			kept = append(kept, p)
			if len(kept) == l.N-1 {
				break
			}
		}
	}
	slices.Sort(kept)

	out := core.NewEdgeList(l.N, false, len(kept))
	for _, p := range kept {
		out.Append(l.From[p], l.To[p], l.Weight[p])
	}
	return out, nil
}

// unionFind is a disjoint-set forest with path compression and union by size.
type unionFind struct {
	parent []int
	size   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), size: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[x] != root {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// union merges the sets of x and y and reports whether they were disjoint.
func (uf *unionFind) union(x, y int) bool {
	rx, ry := uf.find(x), uf.find(y)
	if rx == ry {
		return false
	}
	if uf.size[rx] < uf.size[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	uf.size[rx] += uf.size[ry]
	return true
}
