package connmat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDense is a 4-node directed graph:
//
//	10 → 20, 10 → 30, 20 → 30, 30 → 40, 40 → 10
var testDense = [][]float64{
	{0, 1, 1, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
	{1, 0, 0, 0},
}

var testGIDs = []int64{10, 20, 30, 40}

func newTestMat(t *testing.T) *ConnMat {
	t.Helper()
	cm, err := NewFromDense(testDense, testGIDs)
	require.NoError(t, err)

	return cm
}

func TestNodeSet_DuplicateGID(t *testing.T) {
	_, err := NewNodeSet([]int64{1, 2, 2})
	assert.ErrorIs(t, err, ErrDuplicateNodeID)
}

func TestNodeSet_Positions(t *testing.T) {
	ns, err := NewNodeSet(testGIDs)
	require.NoError(t, err)

	pos, err := ns.Positions([]int64{30, 10})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0}, pos)

	_, err = ns.Positions([]int64{99})
	assert.ErrorIs(t, err, ErrUnknownNodeID)
}

func TestNew_ShapeMismatch(t *testing.T) {
	m, err := CSCFromDense(testDense)
	require.NoError(t, err)
	_, err = New(m, []int64{1, 2, 3})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestNewCSC_BadLayout(t *testing.T) {
	// colPtr too short for the declared column count.
	_, err := NewCSC(2, 2, []int64{0, 1}, []int64{0}, []float64{1})
	assert.ErrorIs(t, err, ErrBadLayout)

	// row index out of bounds.
	_, err = NewCSC(2, 2, []int64{0, 1, 1}, []int64{5}, []float64{1})
	assert.ErrorIs(t, err, ErrBadLayout)

	// non-monotone column pointer.
	_, err = NewCSC(2, 2, []int64{0, 1, 0}, []int64{0}, []float64{1})
	assert.ErrorIs(t, err, ErrBadLayout)
}

func TestSubmatrix_Symmetric(t *testing.T) {
	cm := newTestMat(t)

	sub, err := cm.Submatrix([]int64{10, 20, 30}, nil)
	require.NoError(t, err)
	want := [][]float64{
		{0, 1, 1},
		{0, 0, 1},
		{0, 0, 0},
	}
	assert.Equal(t, want, sub.Dense())
}

func TestSubmatrix_Asymmetric(t *testing.T) {
	cm := newTestMat(t)

	// Rows = {40, 10}, columns = {10, 30}: keeps 40→10 and 10→30 only.
	sub, err := cm.Submatrix([]int64{40, 10}, []int64{10, 30})
	require.NoError(t, err)
	want := [][]float64{
		{1, 0},
		{0, 1},
	}
	assert.Equal(t, want, sub.Dense())
}

func TestSubmatrix_UnknownGID(t *testing.T) {
	cm := newTestMat(t)

	_, err := cm.Submatrix([]int64{10, 77}, nil)
	assert.ErrorIs(t, err, ErrUnknownNodeID)

	_, err = cm.Submatrix([]int64{10}, []int64{77})
	assert.ErrorIs(t, err, ErrUnknownNodeID)
}

func TestSubmatrix_WholeGraphIdentity(t *testing.T) {
	cm := newTestMat(t)

	sub, err := cm.Submatrix(testGIDs, nil)
	require.NoError(t, err)
	assert.Equal(t, testDense, sub.Dense())
	assert.Equal(t, cm.NNZ(), sub.NNZ())
}

func TestLayoutRoundTrip(t *testing.T) {
	cm := newTestMat(t)

	indptr, indices, data := cm.Matrix().Layout()
	rebuilt, err := NewCSC(cm.N(), cm.N(), indptr, indices, data)
	require.NoError(t, err)
	assert.Equal(t, cm.Matrix().Dense(), rebuilt.Dense())
}
