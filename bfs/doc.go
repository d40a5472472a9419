// Package bfs inspects SNN and k-NN graphs by breadth-first search.
//
// What
//
//   - Walk explores a core.Graph from a start vertex in non-decreasing hop
//     distance and returns the visit order, hop depth and BFS parent of every
//     reached vertex.
//   - Components labels the connected components of a core.EdgeList
//     directly on point indices, without materialising a Graph.
//   - Both accept WithMinWeight, which ignores edges lighter than a threshold.
//     Thresholding weak shared-neighbor links is the usual first step before
//     reading cluster structure off an SNN graph.
//
// Determinism
//
//	Walk follows core.Graph.Neighbors, which orders edges by creation; a
//	Graph built by EdgeList.Graph creates them in canonical (From, To) order.
//	Components numbers components by their smallest point.
//
// Complexity (V = points, E = edges)
//
//   - Walk:       O(V + E log d) time, O(V) memory
//   - Components: O(V + E) time and memory
//
// Usage
//
//	g, _ := el.Graph()
//	res, err := bfs.Walk(g, "0", bfs.WithMaxDepth(2), bfs.WithMinWeight(2))
//	path, _ := res.PathTo("17")
//
//	cc, err := bfs.Components(el)
//	fmt.Println(cc.Count, cc.Sizes)
//
// Errors
//
//   - ErrGraphNil             nil graph or edge list.
//   - ErrStartVertexNotFound  start vertex absent.
//   - ErrOptionViolation      invalid option (negative depth, NaN weight).
//   - ErrNoPath               PathTo on a vertex the walk did not reach.
//   - core.ErrBadEdgeList     malformed edge list passed to Components.
package bfs
