// Package knn builds the plain k-nearest-neighbor graph from the same
// neighbor table the SNN builders consume.
//
// Shapes:
//
//	Directed   — one arc i→m per distinct, non-self identifier m in row i,
//	             weight 1. Arcs are sorted by (From, To), not by rank.
//	Undirected — (default) {i, m} whenever either point lists the other,
//	             reported once with From < To. Weight 1, or 2 for reciprocal
//	             pairs under WithMutualWeight.
//
// The undirected graph is exactly the set of SNN edges whose closed
// neighborhoods meet at one of the endpoints, so it is a subgraph of every
// snn.Build result over the same table.
//
// Complexity: O(N·k) time on top of neighbors.Invert, O(N) scratch.
package knn
