package topology

import (
	"fmt"
	"math/rand"
	"sort"
)

// RandomSubset draws a control population of the same cardinality as ref,
// uniformly without replacement from the full node population.
//
// The sampling pool is the whole population: members of ref itself are not
// excluded, so a control may overlap the assembly it contrasts. This mirrors
// the established analysis baseline and is kept deliberately.
func (t *Topology) RandomSubset(ref []int64, rng *rand.Rand) ([]int64, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	gids := t.cm.GIDs()
	if len(ref) > len(gids) {
		return nil, fmt.Errorf("need %d of %d nodes: %w", len(ref), len(gids), ErrInsufficientPopulation)
	}

	return sampleWithoutReplacement(gids, len(ref), rng), nil
}

// RandomNumericalMatch draws a control population matching ref's continuous
// covariate profile: for each reference node, the pool node with the
// nearest available covariate value is taken, without replacement.
// Equidistant neighbors are tie-broken by the random source, and reference
// nodes are processed in randomized order so early draws do not
// systematically win the scarce values. Pool nodes lacking a covariate
// value are excluded; a reference node lacking one fails with
// ErrMissingCovariate.
func (t *Topology) RandomNumericalMatch(ref []int64, covariate map[int64]float64, rng *rand.Rand) ([]int64, error) {
	if rng == nil {
		return nil, ErrNilRand
	}

	// Pool: every node with a covariate value, sorted by that value.
	gids := t.cm.GIDs()
	pool := make([]int64, 0, len(gids))
	for _, gid := range gids {
		if _, ok := covariate[gid]; ok {
			pool = append(pool, gid)
		}
	}
	if len(ref) > len(pool) {
		return nil, fmt.Errorf("need %d of %d covariate-bearing nodes: %w",
			len(ref), len(pool), ErrInsufficientPopulation)
	}
	sort.Slice(pool, func(a, b int) bool { return covariate[pool[a]] < covariate[pool[b]] })
	vals := make([]float64, len(pool))
	for i, gid := range pool {
		vals[i] = covariate[gid]
	}

	alive := newAliveIndex(len(pool))
	out := make([]int64, len(ref))
	for _, i := range rng.Perm(len(ref)) {
		val, ok := covariate[ref[i]]
		if !ok {
			return nil, fmt.Errorf("gid %d: %w", ref[i], ErrMissingCovariate)
		}

		right := alive.rightFrom(sort.SearchFloat64s(vals, val))
		left := alive.leftFrom(min(right, len(pool)) - 1)

		var pick int
		switch {
		case right >= len(pool) && left < 0:
			return nil, fmt.Errorf("gid %d: pool exhausted: %w", ref[i], ErrInsufficientPopulation)
		case right >= len(pool):
			pick = left
		case left < 0:
			pick = right
		case val-vals[left] < vals[right]-val:
			pick = left
		case vals[right]-val < val-vals[left]:
			pick = right
		case rng.Intn(2) == 0: // exact tie
			pick = left
		default:
			pick = right
		}

		out[i] = pool[pick]
		alive.remove(pick)
	}

	return out, nil
}

// RandomCategoricalMatch draws a control population reproducing ref's exact
// per-category counts, sampled without replacement from the categorized
// pool. Returns ErrInsufficientPopulation when any category bucket cannot be
// filled, and ErrMissingCovariate when a reference node has no category.
func (t *Topology) RandomCategoricalMatch(ref []int64, covariate map[int64]string, rng *rand.Rand) ([]int64, error) {
	if rng == nil {
		return nil, ErrNilRand
	}

	need := make(map[string]int)
	for _, gid := range ref {
		cat, ok := covariate[gid]
		if !ok {
			return nil, fmt.Errorf("gid %d: %w", gid, ErrMissingCovariate)
		}
		need[cat]++
	}

	pool := make(map[string][]int64)
	for _, gid := range t.cm.GIDs() {
		if cat, ok := covariate[gid]; ok {
			pool[cat] = append(pool[cat], gid)
		}
	}

	// Deterministic category order for reproducible draws under a fixed seed.
	cats := make([]string, 0, len(need))
	for cat := range need {
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	out := make([]int64, 0, len(ref))
	for _, cat := range cats {
		k := need[cat]
		bucket := pool[cat]
		if len(bucket) < k {
			return nil, fmt.Errorf("category %q: need %d of %d: %w",
				cat, k, len(bucket), ErrInsufficientPopulation)
		}
		out = append(out, sampleWithoutReplacement(bucket, k, rng)...)
	}

	return out, nil
}

// sampleWithoutReplacement draws k elements via a partial Fisher-Yates
// shuffle over a copy of pool.
func sampleWithoutReplacement(pool []int64, k int, rng *rand.Rand) []int64 {
	cp := make([]int64, len(pool))
	copy(cp, pool)
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(cp)-i)
		cp[i], cp[j] = cp[j], cp[i]
	}

	return cp[:k]
}

// aliveIndex tracks which slots of a sorted pool are still available, with
// path-compressed jumps to the nearest alive slot on either side.
type aliveIndex struct {
	right []int // right[i]: first alive slot >= i, chased with compression
	left  []int // left[i+1]: first alive slot <= i (offset by one for -1)
}

func newAliveIndex(n int) *aliveIndex {
	a := &aliveIndex{right: make([]int, n+1), left: make([]int, n+2)}
	for i := range a.right {
		a.right[i] = i
	}
	for i := range a.left {
		a.left[i] = i - 1
	}

	return a
}

func (a *aliveIndex) rightFrom(i int) int {
	for a.right[i] != i {
		a.right[i] = a.right[a.right[i]]
		i = a.right[i]
	}

	return i
}

func (a *aliveIndex) leftFrom(i int) int {
	j := i + 1
	for a.left[j] != j-1 {
		a.left[j] = a.left[a.left[j]+1]
		j = a.left[j] + 1
	}

	return j - 1
}

func (a *aliveIndex) remove(i int) {
	a.right[i] = i + 1
	a.left[i+1] = i - 1
}
