package neighbors_test

import (
	"testing"

	"github.com/katalvlaran/snngraph/neighbors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTable(t *testing.T, rows [][]int) *neighbors.Table {
	t.Helper()
	tbl, err := neighbors.New(rows)
	require.NoError(t, err)
	return tbl
}

// TestInvert_Closed verifies self at rank 0 and table columns at rank c+1.
func TestInvert_Closed(t *testing.T) {
	idx := neighbors.Invert(mustTable(t, [][]int{{1, 2}, {0, 2}, {0, 1}, {0, 1}}))

	assert.Equal(t, 4, idx.N())
	assert.Equal(t, 2, idx.K())
	assert.Equal(t, []neighbors.Host{{Row: 3, Rank: 0}, {Row: 0, Rank: 1}, {Row: 1, Rank: 2}}, idx.Closed(3))
	assert.Equal(t, 3, idx.ClosedSize(0))
}

// TestInvert_Hosts verifies host lists are complete and ascending by row.
func TestInvert_Hosts(t *testing.T) {
	idx := neighbors.Invert(mustTable(t, [][]int{{1, 2}, {0, 2}, {0, 1}, {0, 1}}))

	assert.Equal(t, []neighbors.Host{
		{Row: 0, Rank: 0},
		{Row: 1, Rank: 1},
		{Row: 2, Rank: 1},
		{Row: 3, Rank: 1},
	}, idx.Hosts(0))
	assert.Equal(t, []neighbors.Host{{Row: 3, Rank: 0}}, idx.Hosts(3), "3 is referenced by nobody but itself")

	for m := 0; m < idx.N(); m++ {
		hosts := idx.Hosts(m)
		for p := 1; p < len(hosts); p++ {
			assert.Less(t, hosts[p-1].Row, hosts[p].Row)
		}
	}
}

// TestInvert_SelfAndDuplicates checks that self-references and repeated ids
// collapse to their closest rank.
func TestInvert_SelfAndDuplicates(t *testing.T) {
	idx := neighbors.Invert(mustTable(t, [][]int{{0, 1, 1}, {2, 1, 0}, {1, 1, 1}}))

	assert.Equal(t, []neighbors.Host{{Row: 0, Rank: 0}, {Row: 1, Rank: 2}}, idx.Closed(0))
	assert.Equal(t, []neighbors.Host{{Row: 1, Rank: 0}, {Row: 2, Rank: 1}, {Row: 0, Rank: 3}}, idx.Closed(1))
	assert.Equal(t, []neighbors.Host{{Row: 2, Rank: 0}, {Row: 1, Rank: 1}}, idx.Closed(2))

	assert.Equal(t, []neighbors.Host{{Row: 0, Rank: 2}, {Row: 1, Rank: 0}, {Row: 2, Rank: 1}}, idx.Hosts(1))
}

func TestInvert_Empty(t *testing.T) {
	idx := neighbors.Invert(mustTable(t, nil))
	assert.Equal(t, 0, idx.N())
	assert.Equal(t, int64(0), idx.CandidateBound())

	idx = neighbors.Invert(mustTable(t, [][]int{{}, {}}))
	assert.Equal(t, []neighbors.Host{{Row: 1, Rank: 0}}, idx.Hosts(1))
	assert.Equal(t, int64(0), idx.CandidateBound())
}

// TestIndex_CandidateBound: host list sizes are 4,4,3,1 → 6+6+3+0.
func TestIndex_CandidateBound(t *testing.T) {
	idx := neighbors.Invert(mustTable(t, [][]int{{1, 2}, {0, 2}, {0, 1}, {0, 1}}))
	assert.Equal(t, int64(15), idx.CandidateBound())
}
