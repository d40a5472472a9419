package knn_test

import (
	"testing"

	"github.com/katalvlaran/snngraph/builder"
	"github.com/katalvlaran/snngraph/knn"
	"github.com/katalvlaran/snngraph/neighbors"
	"github.com/katalvlaran/snngraph/snn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rows = [][]int{{1, 2}, {0, 2}, {0, 1}, {0, 1}}

func table(t *testing.T, r [][]int) *neighbors.Table {
	t.Helper()
	tbl, err := neighbors.New(r)
	require.NoError(t, err)
	return tbl
}

func TestBuild_Directed(t *testing.T) {
	el, err := knn.Build(table(t, rows), knn.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, el.Validate())

	assert.True(t, el.Directed)
	assert.Equal(t, []int{0, 0, 1, 1, 2, 2, 3, 3}, el.From)
	assert.Equal(t, []int{1, 2, 0, 2, 0, 1, 0, 1}, el.To)
	for _, w := range el.Weight {
		assert.Equal(t, 1.0, w)
	}
}

func TestBuild_Undirected(t *testing.T) {
	el, err := knn.Build(table(t, rows))
	require.NoError(t, err)
	require.NoError(t, el.Validate())

	assert.False(t, el.Directed)
	assert.Equal(t, []int{0, 0, 0, 1, 1}, el.From)
	assert.Equal(t, []int{1, 2, 3, 2, 3}, el.To)
	assert.Equal(t, []float64{1, 1, 1, 1, 1}, el.Weight)

	mutual, err := knn.Build(table(t, rows), knn.WithMutualWeight())
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 1, 2, 1}, mutual.Weight)
}

func TestBuild_SkipsSelfAndRepeats(t *testing.T) {
	el, err := knn.Build(table(t, [][]int{{0, 1, 1}, {1, 1, 1}, {0, 2, 0}}), knn.WithDirected(true))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, el.From)
	assert.Equal(t, []int{1, 0}, el.To)

	und, err := knn.Build(table(t, [][]int{{0, 1, 1}, {1, 1, 1}, {0, 2, 0}}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, und.From)
	assert.Equal(t, []int{1, 2}, und.To)
}

func TestBuild_Degenerate(t *testing.T) {
	_, err := knn.Build(nil)
	assert.ErrorIs(t, err, knn.ErrNilTable)

	el, err := knn.Build(table(t, [][]int{{}, {}}), knn.WithDirected(true))
	require.NoError(t, err)
	assert.Equal(t, 0, el.Len())
	assert.Equal(t, 2, el.N)
	assert.True(t, el.Directed)
}

// TestBuild_SubgraphOfSNN: when u lists v, v lies in both C(u) and C(v), so
// every k-NN pair is an SNN edge.
func TestBuild_SubgraphOfSNN(t *testing.T) {
	tbl, err := builder.Random(80, 6, builder.WithSeed(9))
	require.NoError(t, err)

	k, err := knn.Build(tbl)
	require.NoError(t, err)
	require.NoError(t, k.Validate())
	s, err := snn.BuildNumber(tbl)
	require.NoError(t, err)

	for p := 0; p < k.Len(); p++ {
		u, v, _ := k.Edge(p)
		w, ok := s.Lookup(u, v)
		assert.True(t, ok, "knn edge (%d,%d) missing from snn", u, v)
		assert.GreaterOrEqual(t, w, 1.0)
	}
}

// TestBuild_DirectedCount: rows of distinct non-self ids give exactly N·k arcs.
func TestBuild_DirectedCount(t *testing.T) {
	tbl, err := builder.Ring(30, 4)
	require.NoError(t, err)
	el, err := knn.Build(tbl, knn.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, el.Validate())
	assert.Equal(t, 120, el.Len())

	und, err := knn.Build(tbl, knn.WithMutualWeight())
	require.NoError(t, err)
	assert.Equal(t, 60, und.Len(), "ring neighborhoods are symmetric")
	assert.Equal(t, 120.0, und.TotalWeight())
}
