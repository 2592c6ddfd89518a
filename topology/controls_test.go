package topology

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newPopulation builds an edgeless 10-node graph; the control samplers only
// consult the node population.
func newPopulation(t *testing.T) *Topology {
	t.Helper()
	dense := make([][]float64, 10)
	gids := make([]int64, 10)
	for i := range dense {
		dense[i] = make([]float64, 10)
		gids[i] = int64(i + 1)
	}

	return newTopo(t, dense, gids)
}

func assertDistinct(t *testing.T, gids []int64) {
	t.Helper()
	seen := make(map[int64]bool, len(gids))
	for _, gid := range gids {
		assert.False(t, seen[gid], "gid %d drawn twice", gid)
		seen[gid] = true
	}
}

func TestRandomSubset(t *testing.T) {
	topo := newPopulation(t)
	rng := rand.New(rand.NewSource(7))
	ref := []int64{1, 2, 3, 4}

	got, err := topo.RandomSubset(ref, rng)
	require.NoError(t, err)
	assert.Len(t, got, len(ref))
	assertDistinct(t, got)
	for _, gid := range got {
		assert.InDelta(t, 5.5, float64(gid), 4.5, "draws stay inside the population")
	}
}

func TestRandomSubset_Errors(t *testing.T) {
	topo := newPopulation(t)

	_, err := topo.RandomSubset([]int64{1}, nil)
	assert.ErrorIs(t, err, ErrNilRand)

	_, err = topo.RandomSubset(make([]int64, 11), rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrInsufficientPopulation)
}

func TestRandomNumericalMatch_ExactValuesPreferred(t *testing.T) {
	topo := newPopulation(t)
	// Distinct covariate values, one per node: every reference node has a
	// unique exact match, so the control must reproduce the reference set.
	covariate := make(map[int64]float64)
	for gid := int64(1); gid <= 10; gid++ {
		covariate[gid] = float64(gid) * 10
	}
	ref := []int64{2, 5, 9}

	for seed := int64(0); seed < 5; seed++ {
		got, err := topo.RandomNumericalMatch(ref, covariate, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		assert.ElementsMatch(t, ref, got)
	}
}

func TestRandomNumericalMatch_NearestAvailable(t *testing.T) {
	topo := newPopulation(t)
	// Two nodes share the reference value; the remaining draws must fall
	// back to the nearest still-available values.
	covariate := map[int64]float64{
		1: 0, 2: 0, 3: 1, 4: 5, 5: 5, 6: 5, 7: 9, 8: 9, 9: 100, 10: 200,
	}
	ref := []int64{4, 5, 6} // all at value 5

	got, err := topo.RandomNumericalMatch(ref, covariate, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assertDistinct(t, got)
	assert.ElementsMatch(t, []int64{4, 5, 6}, got, "three exact matches exist for three draws")
}

func TestRandomNumericalMatch_Depletion(t *testing.T) {
	topo := newPopulation(t)
	covariate := map[int64]float64{
		1: 0, 2: 0, 3: 0, 4: 0, 5: 100,
	}
	ref := []int64{1, 2, 3, 4, 5}

	got, err := topo.RandomNumericalMatch(ref, covariate, rand.New(rand.NewSource(11)))
	require.NoError(t, err)
	assertDistinct(t, got)
	assert.ElementsMatch(t, ref, got, "a fully depleted pool returns every covariate-bearing node")
}

func TestRandomNumericalMatch_Errors(t *testing.T) {
	topo := newPopulation(t)
	covariate := map[int64]float64{1: 0, 2: 1}

	_, err := topo.RandomNumericalMatch([]int64{1}, covariate, nil)
	assert.ErrorIs(t, err, ErrNilRand)

	_, err = topo.RandomNumericalMatch([]int64{1, 2, 3}, covariate, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrInsufficientPopulation)

	_, err = topo.RandomNumericalMatch([]int64{9}, covariate, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrMissingCovariate)
}

func TestRandomCategoricalMatch(t *testing.T) {
	topo := newPopulation(t)
	covariate := map[int64]string{
		1: "exc", 2: "exc", 3: "exc", 4: "exc", 5: "exc", 6: "exc",
		7: "inh", 8: "inh", 9: "inh", 10: "inh",
	}
	ref := []int64{1, 2, 7} // 2×exc, 1×inh

	got, err := topo.RandomCategoricalMatch(ref, covariate, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assertDistinct(t, got)

	perCat := make(map[string]int)
	for _, gid := range got {
		perCat[covariate[gid]]++
	}
	assert.Equal(t, map[string]int{"exc": 2, "inh": 1}, perCat)
}

func TestRandomCategoricalMatch_Errors(t *testing.T) {
	topo := newPopulation(t)
	covariate := map[int64]string{1: "exc", 2: "inh"}

	_, err := topo.RandomCategoricalMatch([]int64{1}, covariate, nil)
	assert.ErrorIs(t, err, ErrNilRand)

	_, err = topo.RandomCategoricalMatch([]int64{3}, covariate, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrMissingCovariate)

	_, err = topo.RandomCategoricalMatch([]int64{1, 1}, covariate, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrInsufficientPopulation)
}
