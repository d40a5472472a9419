// File: adjacency.go
// Role: Neighborhood queries (Neighbors, NeighborIDs, Degree, Strength).
// Determinism:
//   - Neighbors() sorts by Edge.ID (creation order).
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Read locks on muVert then muEdgeAdj for a consistent snapshot.

package core

import "sort"

// Neighbors returns the edges leaving id: outgoing edges in a directed graph,
// incident edges in an undirected one. Self-loops appear once.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var out []*Edge
	for _, bucket := range g.adjacencyList[id] {
		for eid := range bucket {
			out = append(out, g.edges[eid])
		}
	}
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out, nil
}

// NeighborIDs returns the unique vertex IDs adjacent to id, sorted ascending.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]string, 0, len(g.adjacencyList[id]))
	for to, bucket := range g.adjacencyList[id] {
		if len(bucket) > 0 {
			out = append(out, to)
		}
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of edge endpoints at id: outgoing edges for a
// directed graph, incident edges for an undirected one. An undirected
// self-loop contributes 2.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Degree(id string) (int, error) {
	deg := 0
	err := g.visitIncident(id, func(e *Edge, loop bool) {
		deg++
		if loop && !e.Directed {
			deg++
		}
	})
	if err != nil {
		return 0, err
	}

	return deg, nil
}

// Strength returns the weighted degree of id: the sum of weights over the
// edges counted by Degree, with undirected self-loops counted twice.
// In an SNN graph this is the total overlap a point shares with the rest.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Strength(id string) (float64, error) {
	var s float64
	err := g.visitIncident(id, func(e *Edge, loop bool) {
		s += e.Weight
		if loop && !e.Directed {
			s += e.Weight
		}
	})
	if err != nil {
		return 0, err
	}

	return s, nil
}

// visitIncident calls fn once per edge leaving id under read locks.
func (g *Graph) visitIncident(id string, fn func(e *Edge, loop bool)) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for to, bucket := range g.adjacencyList[id] {
		for eid := range bucket {
			fn(g.edges[eid], to == id)
		}
	}

	return nil
}
