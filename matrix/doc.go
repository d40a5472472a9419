// Package matrix offers dense matrix views of SNN graphs for spectral
// analysis, backed by gonum/mat.
//
// The package provides:
//
//   - Affinity: the symmetric N×N weight matrix of an undirected EdgeList.
//   - DegreeVector: row sums (weighted degrees) of an affinity matrix.
//   - NormalizedLaplacian: L = I − D^{-1/2} A D^{-1/2}, the operator that
//     spectral clustering decomposes.
//   - Spectrum: ascending eigenvalues of a symmetric matrix.
//
// The number of (near-)zero eigenvalues of L equals the number of connected
// components, which makes Spectrum a quick sanity check on an SNN graph
// built from well-separated groups.
//
// Matrices are O(N²) memory. Affinity refuses N above WithMaxPoints
// (default DefaultMaxPoints) with ErrTooLarge instead of allocating.
package matrix
