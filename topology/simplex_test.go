package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurograph/assemblytopo/connmat"
)

func newTopo(t *testing.T, dense [][]float64, gids []int64, opts ...Option) *Topology {
	t.Helper()
	cm, err := connmat.NewFromDense(dense, gids)
	require.NoError(t, err)
	topo, err := New(cm, opts...)
	require.NoError(t, err)

	return topo
}

// transTriangle: 1→2, 1→3, 2→3 — one directed 2-simplex.
var transTriangle = [][]float64{
	{0, 1, 1},
	{0, 0, 1},
	{0, 0, 0},
}

// cycleTriangle: 1→2, 2→3, 3→1 — a directed cycle, no 2-simplex.
var cycleTriangle = [][]float64{
	{0, 1, 0},
	{0, 0, 1},
	{1, 0, 0},
}

// tetra: the complete transitive tournament on 4 nodes. Contains one
// 3-simplex (1,2,3,4) and all of its faces.
var tetra = [][]float64{
	{0, 1, 1, 1},
	{0, 0, 1, 1},
	{0, 0, 0, 1},
	{0, 0, 0, 0},
}

func TestSimplexCounts_TransitiveTriangle(t *testing.T) {
	topo := newTopo(t, transTriangle, []int64{1, 2, 3})

	counts, err := topo.SimplexCounts(nil)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3, 1}, counts)
}

func TestSimplexCounts_CycleStopsAtEdges(t *testing.T) {
	topo := newTopo(t, cycleTriangle, []int64{1, 2, 3})

	counts, err := topo.SimplexCounts(nil)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3}, counts, "a directed cycle contains no 2-simplex")
}

func TestSimplexCounts_Tetrahedron(t *testing.T) {
	topo := newTopo(t, tetra, []int64{1, 2, 3, 4})

	counts, err := topo.SimplexCounts(nil)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 6, 4, 1}, counts)
}

func TestSimplexCounts_Subset(t *testing.T) {
	topo := newTopo(t, tetra, []int64{1, 2, 3, 4})

	counts, err := topo.SimplexCounts([]int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3, 1}, counts, "induced subgraph is a transitive triangle")

	_, err = topo.SimplexCounts([]int64{1, 99})
	assert.ErrorIs(t, err, connmat.ErrUnknownNodeID)
}

func TestSimplexCounts_MaxDimension(t *testing.T) {
	topo := newTopo(t, tetra, []int64{1, 2, 3, 4}, WithMaxDimension(1))

	counts, err := topo.SimplexCounts(nil)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 6}, counts, "enumeration stops at the configured dimension")
}

func TestSimplexList_PreFilter(t *testing.T) {
	// 1→2, 1→3, 1→4, 2→3, 2→4, 3→4. Restricting edge sources to {1,2}
	// removes 3→4 and with it the simplices built on that edge.
	topo := newTopo(t, tetra, []int64{1, 2, 3, 4})

	lists, err := topo.SimplexList([]int64{1, 2}, nil)
	require.NoError(t, err)
	require.Len(t, lists, 3)
	assert.Len(t, lists[1], 5)
	assert.ElementsMatch(t, SimplexList{
		Simplex{1, 2, 3},
		Simplex{1, 2, 4},
	}, lists[2], "sinks may lie outside the source population")
}

func TestSimplexList_PostFilter(t *testing.T) {
	topo := newTopo(t, tetra, []int64{1, 2, 3, 4})

	lists, err := topo.SimplexList(nil, []int64{3, 4})
	require.NoError(t, err)
	require.Len(t, lists, 3)
	assert.ElementsMatch(t, SimplexList{
		Simplex{1, 3, 4},
		Simplex{2, 3, 4},
	}, lists[2])
}

func TestSimplexList_UnknownGID(t *testing.T) {
	topo := newTopo(t, tetra, []int64{1, 2, 3, 4})

	_, err := topo.SimplexList([]int64{1, 99}, nil)
	assert.ErrorIs(t, err, connmat.ErrUnknownNodeID)
}

func TestSinkCounts(t *testing.T) {
	topo := newTopo(t, tetra, []int64{1, 2, 3, 4})

	lists, err := topo.SimplexList([]int64{1, 2}, nil)
	require.NoError(t, err)

	sinks, err := topo.SinkCounts(lists[2])
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1, 1}, sinks, "aligned to the matrix gid order")
}

func TestSinkCounts_EmptySimplex(t *testing.T) {
	topo := newTopo(t, tetra, []int64{1, 2, 3, 4})

	_, err := topo.SinkCounts(SimplexList{Simplex{}})
	assert.ErrorIs(t, err, ErrEmptySelection)
}

func TestSimplex_Sink(t *testing.T) {
	assert.Equal(t, int64(7), Simplex{3, 5, 7}.Sink())
}
