// Package snngraph builds shared-nearest-neighbor graphs from k-nearest-
// neighbor index tables, ready for graph clustering.
//
// 🚀 What is snngraph?
//
//	Given an N×k table whose row i lists the k nearest neighbors of point i,
//	snngraph joins two points whenever their neighbor sets overlap and
//	weights the link by how much (and how closely) they overlap:
//		• Rank weighting: k − s*/2 over the best shared combined rank
//		• Number weighting: count of shared neighbors
//		• Jaccard weighting: shared over union
//
// ✨ Why snngraph?
//
//   - Output-sensitive: an inverted index keeps work proportional to the
//     overlap actually present, not N²
//   - Deterministic: identical results for every worker count
//   - Plain results: three parallel sequences (From, To, Weight) in
//     canonical order
//
// Packages:
//
//	neighbors/    — the input table, validation and its inverted index
//	snn/          — SNN construction (rank, number, jaccard) on a worker pool
//	knn/          — the plain k-NN graph from the same table
//	core/         — EdgeList result type and a thread-safe in-memory Graph
//	converters/   — export to and import from gonum/graph
//	bfs/          — connected components and hop-limited walks
//	prim_kruskal/ — maximum (or minimum) spanning forests
//	matrix/       — dense affinity and normalized Laplacian via gonum/mat
//	builder/      — deterministic ring, block and random tables
//	cmd/snngraph  — command-line front-end
//
// Quick example:
//
//	t, _ := neighbors.New([][]int{{1, 2}, {0, 2}, {0, 1}, {0, 1}})
//	el, _ := snn.BuildRank(t)
//	for p := 0; p < el.Len(); p++ {
//	    u, v, w := el.Edge(p)
//	    fmt.Println(u, v, w)
//	}
//
//	go get github.com/katalvlaran/snngraph
package snngraph
