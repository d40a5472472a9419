package bfs

import (
	"fmt"

	"github.com/katalvlaran/snngraph/core"
)

// Components labels the connected components of l, treating every edge as
// undirected. Components are numbered in order of their smallest point, so
// point 0 is always in component 0.
//
// Errors: ErrGraphNil, ErrOptionViolation, core.ErrBadEdgeList.
// Complexity: O(N + E).
func Components(l *core.EdgeList, opts ...Option) (*ComponentSet, error) {
	if l == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("bfs: Components: %w", err)
	}

	off, adj := undirectedCSR(l, o.minWeight)

	cs := &ComponentSet{Label: make([]int, l.N)}
	for i := range cs.Label {
		cs.Label[i] = -1
	}
	queue := make([]int, 0, l.N)
	for s := 0; s < l.N; s++ {
		if cs.Label[s] >= 0 {
			continue
		}
		c := cs.Count
		cs.Count++
		cs.Label[s] = c
		queue = append(queue[:0], s)
		for head := 0; head < len(queue); head++ {
			for _, v := range adj[off[queue[head]]:off[queue[head]+1]] {
				if cs.Label[v] < 0 {
					cs.Label[v] = c
					queue = append(queue, v)
				}
			}
		}
		cs.Sizes = append(cs.Sizes, len(queue))
	}

	return cs, nil
}

// undirectedCSR builds both-direction adjacency over the edges kept by the
// weight threshold.
func undirectedCSR(l *core.EdgeList, minWeight float64) (off, adj []int) {
	off = make([]int, l.N+1)
	for p := range l.From {
		if l.Weight[p] >= minWeight {
			off[l.From[p]+1]++
			off[l.To[p]+1]++
		}
	}
	for i := 0; i < l.N; i++ {
		off[i+1] += off[i]
	}

	adj = make([]int, off[l.N])
	next := make([]int, l.N)
	copy(next, off[:l.N])
	for p := range l.From {
		if l.Weight[p] >= minWeight {
			u, v := l.From[p], l.To[p]
			adj[next[u]] = v
			next[u]++
			adj[next[v]] = u
			next[v]++
		}
	}
	return off, adj
}
