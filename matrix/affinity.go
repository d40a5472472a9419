// SPDX-License-Identifier: MIT
// Package: snngraph/matrix
//
// affinity.go — dense affinity, degree and normalized Laplacian.
//
// Contract:
//   • Inputs are undirected, validated EdgeLists.
//   • Results are freshly allocated; inputs are never modified.
//   • Isolated points get a zero Laplacian row, so each contributes one
//     zero eigenvalue like any other component.

package matrix

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/snngraph/core"
)

// DefaultMaxPoints bounds Affinity at 4096² float64 values (128 MiB).
const DefaultMaxPoints = 4096

// Sentinel errors.
var (
	// ErrNilInput indicates a nil list or matrix.
	ErrNilInput = errors.New("matrix: nil input")

	// ErrEmpty indicates a list over zero points; gonum has no 0×0 matrices.
	ErrEmpty = errors.New("matrix: no points")

	// ErrTooLarge indicates N above the WithMaxPoints limit.
	ErrTooLarge = errors.New("matrix: too many points for a dense matrix")

	// ErrDirected indicates a directed list; affinity must be symmetric.
	ErrDirected = errors.New("matrix: directed edge list")

	// ErrEigen indicates the eigendecomposition did not converge.
	ErrEigen = errors.New("matrix: eigendecomposition failed")
)

// Option configures Affinity.
type Option func(*options)

type options struct {
	maxPoints int
}

// WithMaxPoints changes the size limit. Panics if n < 1.
func WithMaxPoints(n int) Option {
	if n < 1 {
		panic("matrix: WithMaxPoints(n<1)")
	}
	return func(o *options) { o.maxPoints = n }
}

// Affinity returns A with A[i][j] = A[j][i] = weight of {i, j} and a zero
// diagonal.
//
// Errors: ErrNilInput, ErrEmpty, ErrDirected, ErrTooLarge, core.ErrBadEdgeList.
// Complexity: O(N² + E).
func Affinity(l *core.EdgeList, opts ...Option) (*mat.SymDense, error) {
	o := options{maxPoints: DefaultMaxPoints}
	for _, opt := range opts {
		opt(&o)
	}
	switch {
	case l == nil:
		return nil, fmt.Errorf("matrix: Affinity: %w", ErrNilInput)
	case l.Directed:
		return nil, fmt.Errorf("matrix: Affinity: %w", ErrDirected)
	case l.N == 0:
		return nil, fmt.Errorf("matrix: Affinity: %w", ErrEmpty)
	case l.N > o.maxPoints:
		return nil, fmt.Errorf("matrix: Affinity: N=%d > %d: %w", l.N, o.maxPoints, ErrTooLarge)
	}
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("matrix: Affinity: %w", err)
	}

	a := mat.NewSymDense(l.N, nil)
	for p := range l.From {
		a.SetSym(l.From[p], l.To[p], l.Weight[p])
	}
	return a, nil
}

// DegreeVector returns the row sums of a.
func DegreeVector(a mat.Symmetric) ([]float64, error) {
	if a == nil {
		return nil, fmt.Errorf("matrix: DegreeVector: %w", ErrNilInput)
	}
	n := a.SymmetricDim()
	deg := make([]float64, n)
	row := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := range row {
			row[j] = a.At(i, j)
		}
		deg[i] = floats.Sum(row)
	}
	return deg, nil
}

// NormalizedLaplacian returns I − D^{-1/2} A D^{-1/2} for the affinity a.
// Rows of zero degree are all zero.
//
// Complexity: O(N²).
func NormalizedLaplacian(a *mat.SymDense) (*mat.SymDense, error) {
	if a == nil {
		return nil, fmt.Errorf("matrix: NormalizedLaplacian: %w", ErrNilInput)
	}
	deg, err := DegreeVector(a)
	if err != nil {
		return nil, err
	}
	n := len(deg)
	inv := make([]float64, n)
	for i, d := range deg {
		if d > 0 {
			inv[i] = 1 / math.Sqrt(d)
		}
	}

	l := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		if deg[i] > 0 {
			l.SetSym(i, i, 1-a.At(i, i)*inv[i]*inv[i])
		}
		for j := i + 1; j < n; j++ {
			if w := a.At(i, j); w != 0 {
				l.SetSym(i, j, -w*inv[i]*inv[j])
			}
		}
	}
	return l, nil
}

// Spectrum returns the eigenvalues of s in ascending order.
//
// Errors: ErrNilInput, ErrEigen.
// Complexity: O(N³).
func Spectrum(s mat.Symmetric) ([]float64, error) {
	if s == nil {
		return nil, fmt.Errorf("matrix: Spectrum: %w", ErrNilInput)
	}
	var es mat.EigenSym
	if ok := es.Factorize(s, false); !ok {
		return nil, fmt.Errorf("matrix: Spectrum: %w", ErrEigen)
	}
	return es.Values(nil), nil
}
