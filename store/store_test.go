package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurograph/assemblytopo/connmat"
)

func openTemp(t *testing.T, opts ...Option) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "circuit.db"), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func testMatrix(t *testing.T) *connmat.ConnMat {
	t.Helper()
	cm, err := connmat.NewFromDense([][]float64{
		{0, 2, 0, 1},
		{0, 0, 3, 0},
		{0, 0, 0, 4},
		{5, 0, 0, 0},
	}, []int64{10, 20, 30, 40})
	require.NoError(t, err)

	return cm
}

func TestStore_RoundTrip(t *testing.T) {
	s := openTemp(t)
	cm := testMatrix(t)

	require.NoError(t, s.Save("seed42", cm))

	got, err := s.Load("seed42")
	require.NoError(t, err)
	assert.Equal(t, cm.GIDs(), got.GIDs())
	assert.Equal(t, cm.Matrix().Dense(), got.Matrix().Dense())
}

func TestStore_SaveOverwrites(t *testing.T) {
	s := openTemp(t)
	cm := testMatrix(t)
	require.NoError(t, s.Save("g", cm))

	smaller, err := connmat.NewFromDense([][]float64{
		{0, 1},
		{0, 0},
	}, []int64{1, 2})
	require.NoError(t, err)
	require.NoError(t, s.Save("g", smaller))

	got, err := s.Load("g")
	require.NoError(t, err)
	assert.Equal(t, 2, got.N())
}

func TestStore_MissingGroup(t *testing.T) {
	s := openTemp(t)

	_, err := s.Load("nonexistent")
	assert.ErrorIs(t, err, ErrBadGroup)
}

func TestStore_PrefixesAreIsolated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "circuit.db")

	a, err := Open(path)
	require.NoError(t, err)
	defer a.Close()
	b, err := Open(path, WithPrefix("controls"))
	require.NoError(t, err)
	defer b.Close()

	cm := testMatrix(t)
	require.NoError(t, a.Save("g", cm))

	_, err = b.Load("g")
	assert.ErrorIs(t, err, ErrBadGroup, "groups of another prefix stay invisible")

	got, err := a.Load("g")
	require.NoError(t, err)
	assert.Equal(t, cm.N(), got.N())
}

func TestWithPrefix_PanicsOnEmpty(t *testing.T) {
	assert.PanicsWithValue(t, panicPrefixEmpty, func() { WithPrefix("") })
}
