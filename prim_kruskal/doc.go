// Package prim_kruskal extracts spanning forests from SNN and k-NN edge
// lists with Kruskal's algorithm.
//
// What
//
//   - Kruskal(l) returns the maximum-weight spanning forest: for every
//     connected component, the N_c − 1 edges that keep it connected with the
//     strongest shared-neighbor links. This is the usual "backbone" of an SNN
//     graph, and it is what single-linkage style clustering cuts.
//   - WithMinimum() switches to the minimum-weight forest, e.g. when weights
//     are distances rather than similarities.
//
// Determinism
//
//	Equal weights are broken by canonical (From, To) order, and the forest
//	is returned in canonical order, so results do not depend on sort
//	stability or platform.
//
// Complexity: O(E log E + E·α(N)) time, O(N + E) memory.
package prim_kruskal
