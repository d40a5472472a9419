package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/snngraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleList() *core.EdgeList {
	l := core.NewEdgeList(5, false, 4)
	l.Append(0, 1, 3)
	l.Append(0, 3, 1.5)
	l.Append(1, 2, 2)
	l.Append(2, 3, 0.5)
	return l
}

func TestEdgeList_Validate(t *testing.T) {
	require.NoError(t, sampleList().Validate())
	require.NoError(t, core.NewEdgeList(0, false, 0).Validate())

	cases := []struct {
		name   string
		mutate func(l *core.EdgeList)
	}{
		{"length mismatch", func(l *core.EdgeList) { l.Weight = l.Weight[:1] }},
		{"out of range", func(l *core.EdgeList) { l.To[3] = 5 }},
		{"negative", func(l *core.EdgeList) { l.From[0] = -1 }},
		{"self loop", func(l *core.EdgeList) { l.To[0] = 0 }},
		{"orientation", func(l *core.EdgeList) { l.From[3], l.To[3] = 3, 2 }},
		{"duplicate", func(l *core.EdgeList) { l.From[1], l.To[1] = 0, 1 }},
		{"order", func(l *core.EdgeList) { l.From[0], l.To[0] = 1, 4 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := sampleList()
			tc.mutate(l)
			assert.ErrorIs(t, l.Validate(), core.ErrBadEdgeList)
		})
	}
}

func TestEdgeList_Lookup(t *testing.T) {
	l := sampleList()

	w, ok := l.Lookup(0, 3)
	assert.True(t, ok)
	assert.Equal(t, 1.5, w)

	w, ok = l.Lookup(3, 0)
	assert.True(t, ok, "undirected lookup accepts either orientation")
	assert.Equal(t, 1.5, w)

	_, ok = l.Lookup(0, 2)
	assert.False(t, ok)
	_, ok = l.Lookup(4, 4)
	assert.False(t, ok)

	d := l.Symmetrize()
	_, ok = d.Lookup(3, 2)
	assert.True(t, ok)
}

func TestEdgeList_Symmetrize(t *testing.T) {
	d := sampleList().Symmetrize()
	require.True(t, d.Directed)
	require.NoError(t, d.Validate())
	assert.Equal(t, 8, d.Len())
	assert.Equal(t, []int{0, 0, 1, 1, 2, 2, 3, 3}, d.From)
	assert.Equal(t, []int{1, 3, 0, 2, 1, 3, 0, 2}, d.To)

	for p := 0; p < d.Len(); p++ {
		u, v, w := d.Edge(p)
		back, ok := d.Lookup(v, u)
		require.True(t, ok)
		assert.Equal(t, w, back)
	}

	again := d.Symmetrize()
	assert.Equal(t, d, again, "directed lists are copied as-is")
	again.Weight[0] = 99
	assert.NotEqual(t, 99.0, d.Weight[0])
}

func TestEdgeList_Graph(t *testing.T) {
	l := sampleList()
	g, err := l.Graph()
	require.NoError(t, err)

	assert.Equal(t, 5, g.VertexCount(), "isolated point 4 is kept")
	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, g.Vertices())
	assert.NoError(t, g.AddVertex("2"), "re-adding an existing point is a no-op")
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.InDelta(t, l.TotalWeight(), g.Stats().TotalWeight, 1e-12)

	w, err := g.Weight("3", "0")
	require.NoError(t, err)
	assert.Equal(t, 1.5, w)

	named, err := l.Graph(core.WithIDFn(func(i int) string { return fmt.Sprintf("p%d", i) }))
	require.NoError(t, err)
	assert.True(t, named.HasEdge("p2", "p1"))

	bad := sampleList()
	bad.To[0] = 9
	_, err = bad.Graph()
	assert.ErrorIs(t, err, core.ErrBadEdgeList)

	assert.Panics(t, func() { core.WithIDFn(nil) })
}
