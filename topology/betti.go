package topology

import (
	"encoding/binary"
	"sort"
)

// BettiCounts returns the Betti numbers of the directed flag complex of the
// subgraph induced by subset (whole graph when nil): the number of
// independent k-dimensional cycles per dimension, computed from GF(2)
// boundary-matrix ranks. betti[k] = n_k − rank ∂_k − rank ∂_{k+1}.
func (t *Topology) BettiCounts(subset []int64) ([]int, error) {
	m := t.cm.Matrix()
	if subset != nil {
		sub, err := t.cm.Submatrix(subset, nil)
		if err != nil {
			return nil, err
		}
		m = sub
	}

	w := &flagWalker{out: outAdjacency(m, nil, nil), maxDim: t.maxDim, record: true}
	w.run()
	lists := w.lists
	if len(lists) == 0 {
		return nil, ErrEmptySelection
	}

	// rank[k] = rank of the boundary map from k-simplices to (k-1)-simplices.
	ranks := make([]int, len(lists)+1)
	for k := 1; k < len(lists); k++ {
		idx := tupleIndex(lists[k-1])
		cols := make([][]int, len(lists[k]))
		for c, s := range lists[k] {
			cols[c] = boundaryRows(s, idx)
		}
		ranks[k] = gf2Rank(cols)
	}

	betti := make([]int, len(lists))
	for k := range betti {
		betti[k] = len(lists[k]) - ranks[k] - ranks[k+1]
	}

	return betti, nil
}

// tupleIndex assigns a dense index to each simplex tuple of one dimension.
func tupleIndex(tuples [][]int32) map[string]int {
	idx := make(map[string]int, len(tuples))
	for i, tup := range tuples {
		idx[tupleKey(tup)] = i
	}

	return idx
}

func tupleKey(tup []int32) string {
	buf := make([]byte, 4*len(tup))
	for i, v := range tup {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(v))
	}

	return string(buf)
}

// boundaryRows returns the sorted row indices of a simplex's boundary: one
// face per omitted vertex. Faces of a directed simplex preserve the vertex
// order, so every face is itself a directed simplex of the complex.
func boundaryRows(s []int32, idx map[string]int) []int {
	face := make([]int32, 0, len(s)-1)
	rows := make([]int, 0, len(s))
	for omit := range s {
		face = face[:0]
		for i, v := range s {
			if i != omit {
				face = append(face, v)
			}
		}
		rows = append(rows, idx[tupleKey(face)])
	}
	sort.Ints(rows)

	return rows
}

// gf2Rank computes the rank of a sparse binary matrix given as columns of
// sorted row indices, by standard low-pivot reduction over GF(2).
func gf2Rank(cols [][]int) int {
	pivots := make(map[int][]int)
	rank := 0
	for _, col := range cols {
		cur := col
		for len(cur) > 0 {
			low := cur[len(cur)-1]
			p, ok := pivots[low]
			if !ok {
				break
			}
			cur = symDiff(cur, p)
		}
		if len(cur) > 0 {
			pivots[cur[len(cur)-1]] = cur
			rank++
		}
	}

	return rank
}

// symDiff returns the symmetric difference of two sorted int slices.
func symDiff(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}
