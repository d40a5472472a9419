package bfs_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/snngraph/bfs"
	"github.com/katalvlaran/snngraph/builder"
	"github.com/katalvlaran/snngraph/core"
	"github.com/katalvlaran/snngraph/neighbors"
	"github.com/katalvlaran/snngraph/snn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// path5 is 0-1-2-3-4 with weights 1..4.
func path5() *core.EdgeList {
	el := core.NewEdgeList(5, false, 4)
	for i := 0; i < 4; i++ {
		el.Append(i, i+1, float64(i+1))
	}
	return el
}

func scenarioGraph(t *testing.T) *core.EdgeList {
	t.Helper()
	tbl, err := neighbors.New([][]int{{1, 2}, {0, 2}, {0, 1}, {0, 1}})
	require.NoError(t, err)
	el, err := snn.BuildNumber(tbl)
	require.NoError(t, err)
	return el
}

func TestWalk_Path(t *testing.T) {
	g, err := path5().Graph()
	require.NoError(t, err)

	res, err := bfs.Walk(g, "0")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, res.Order)
	assert.Equal(t, 4, res.Depth["4"])

	p, err := res.PathTo("3")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3"}, p)

	p, err = res.PathTo("0")
	require.NoError(t, err)
	assert.Equal(t, []string{"0"}, p)
}

func TestWalk_MaxDepthAndMinWeight(t *testing.T) {
	g, err := path5().Graph()
	require.NoError(t, err)

	res, err := bfs.Walk(g, "2", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"2", "1", "3"}, res.Order)

	res, err = bfs.Walk(g, "0", bfs.WithMinWeight(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"0"}, res.Order, "edge 0-1 has weight 1")

	_, err = res.PathTo("4")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestWalk_SNNScenario(t *testing.T) {
	g, err := scenarioGraph(t).Graph()
	require.NoError(t, err)

	res, err := bfs.Walk(g, "0")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3"}, res.Order)
	for _, id := range []string{"1", "2", "3"} {
		assert.Equal(t, 1, res.Depth[id])
		assert.Equal(t, "0", res.Parent[id])
	}

	res, err = bfs.Walk(g, "3", bfs.WithMinWeight(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, res.Order, "3 shares only two neighbors with anyone")
}

func TestWalk_Errors(t *testing.T) {
	g, err := path5().Graph()
	require.NoError(t, err)

	_, err = bfs.Walk(nil, "0")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.Walk(g, "9")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.Walk(g, "0", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.Walk(g, "0", bfs.WithMinWeight(math.NaN()))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	stop := errors.New("stop")
	_, err = bfs.Walk(g, "0", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "2" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.Walk(g, "0", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	cs, err := bfs.Components(scenarioGraph(t))
	require.NoError(t, err)
	assert.Equal(t, 1, cs.Count)
	assert.Equal(t, []int{4}, cs.Sizes)

	cs, err = bfs.Components(scenarioGraph(t), bfs.WithMinWeight(3))
	require.NoError(t, err)
	assert.Equal(t, 2, cs.Count)
	assert.Equal(t, []int{0, 0, 0, 1}, cs.Label)
	assert.Equal(t, []int{3, 1}, cs.Sizes)
}

func TestComponents_Blocks(t *testing.T) {
	tbl, err := builder.Blocks(5, 6, 2)
	require.NoError(t, err)
	el, err := snn.BuildRank(tbl)
	require.NoError(t, err)

	cs, err := bfs.Components(el)
	require.NoError(t, err)
	assert.Equal(t, 5, cs.Count)
	for i, c := range cs.Label {
		assert.Equal(t, i/6, c)
	}
}

func TestComponents_IsolatedAndErrors(t *testing.T) {
	el := core.NewEdgeList(4, false, 1)
	el.Append(1, 2, 1)
	cs, err := bfs.Components(el)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1, 2}, cs.Label)
	assert.Equal(t, []int{1, 2, 1}, cs.Sizes)

	_, err = bfs.Components(nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	bad := core.NewEdgeList(2, false, 1)
	bad.Append(1, 0, 1)
	_, err = bfs.Components(bad)
	assert.ErrorIs(t, err, core.ErrBadEdgeList)
}
