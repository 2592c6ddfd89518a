package topology

import (
	"fmt"

	"github.com/neurograph/assemblytopo/connmat"
)

// Simplex is an ordered gid tuple forming a directed clique: an edge runs
// from every earlier gid to every later one. The last element is the sink.
type Simplex []int64

// Sink returns the terminal gid of the simplex.
func (s Simplex) Sink() int64 { return s[len(s)-1] }

// SimplexList holds all simplices of one dimension.
type SimplexList []Simplex

// SimplexCounts returns the number of directed simplices per dimension in
// the subgraph induced by subset (the whole graph when subset is nil),
// dimension 0 upward. Dimension 0 counts nodes, dimension 1 directed edges.
func (t *Topology) SimplexCounts(subset []int64) ([]int, error) {
	m := t.cm.Matrix()
	if subset != nil {
		sub, err := t.cm.Submatrix(subset, nil)
		if err != nil {
			return nil, err
		}
		m = sub
	}

	w := &flagWalker{out: outAdjacency(m, nil, nil), maxDim: t.maxDim}
	w.run()

	return w.counts, nil
}

// SimplexList enumerates the directed simplices of the graph restricted to
// edges whose source lies in pre (and whose target lies in post, when post
// is non-nil). The enumeration spans the full node set, so a simplex's sink
// may fall outside pre: this is exactly the construction behind the
// generalized in-degree, where every non-sink node is guaranteed to lie in
// the pre population. Result is indexed by dimension.
func (t *Topology) SimplexList(pre, post []int64) ([]SimplexList, error) {
	nodes := t.cm.Nodes()

	var preSet, postSet []bool
	if pre != nil {
		set, err := positionMask(nodes, pre)
		if err != nil {
			return nil, err
		}
		preSet = set
	}
	if post != nil {
		set, err := positionMask(nodes, post)
		if err != nil {
			return nil, err
		}
		postSet = set
	}

	w := &flagWalker{
		out:    outAdjacency(t.cm.Matrix(), preSet, postSet),
		maxDim: t.maxDim,
		record: true,
	}
	w.run()

	gids := nodes.IDs()
	out := make([]SimplexList, len(w.lists))
	for dim, tuples := range w.lists {
		list := make(SimplexList, len(tuples))
		for i, tup := range tuples {
			s := make(Simplex, len(tup))
			for k, p := range tup {
				s[k] = gids[p]
			}
			list[i] = s
		}
		out[dim] = list
	}

	return out, nil
}

// SinkCounts histograms how often each node of the full population occupies
// the sink position in the given simplices. The result is aligned to the
// matrix gid ordering; it is the "generalized in-degree" feature.
func (t *Topology) SinkCounts(simplices SimplexList) ([]float64, error) {
	nodes := t.cm.Nodes()
	out := make([]float64, nodes.Len())
	for _, s := range simplices {
		if len(s) == 0 {
			return nil, fmt.Errorf("empty simplex: %w", ErrEmptySelection)
		}
		p, err := nodes.Position(s.Sink())
		if err != nil {
			return nil, err
		}
		out[p]++
	}

	return out, nil
}

// positionMask converts a gid subset into a boolean mask over positions.
func positionMask(nodes connmat.NodeSet, gids []int64) ([]bool, error) {
	pos, err := nodes.Positions(gids)
	if err != nil {
		return nil, err
	}
	mask := make([]bool, nodes.Len())
	for _, p := range pos {
		mask[p] = true
	}

	return mask, nil
}

// outAdjacency builds sorted out-neighbor lists from a CSC matrix, skipping
// self-loops. Optional masks filter edges by source (preMask) and target
// (postMask) position.
func outAdjacency(m *connmat.CSC, preMask, postMask []bool) [][]int32 {
	out := make([][]int32, m.Rows())
	for j := 0; j < m.Cols(); j++ {
		if postMask != nil && !postMask[j] {
			continue
		}
		rows, _ := m.Column(j)
		for _, i := range rows {
			if int(i) == j {
				continue // ignore self-loops
			}
			if preMask != nil && !preMask[i] {
				continue
			}
			out[i] = append(out[i], int32(j))
		}
	}
	// Columns are visited in ascending order, so each list is already sorted.

	return out
}

// flagWalker enumerates directed flag simplices by growing each simplex one
// sink at a time; the candidate set is the running intersection of the
// out-neighborhoods of all current members, so every candidate receives an
// edge from every member. Each simplex is reached exactly once, through its
// unique prefix chain.
type flagWalker struct {
	out    [][]int32
	maxDim int  // <0: unlimited
	record bool // collect tuples, not just counts

	counts []int
	lists  [][][]int32
	stack  []int32
}

func (w *flagWalker) run() {
	w.counts = nil
	w.lists = nil
	for v := range w.out {
		w.stack = w.stack[:0]
		w.stack = append(w.stack, int32(v))
		w.visit(w.out[v])
	}
}

func (w *flagWalker) visit(cand []int32) {
	dim := len(w.stack) - 1
	w.bump(dim)
	if w.maxDim >= 0 && dim >= w.maxDim {
		return
	}
	for _, u := range cand {
		w.stack = append(w.stack, u)
		w.visit(intersect(cand, w.out[u]))
		w.stack = w.stack[:len(w.stack)-1]
	}
}

func (w *flagWalker) bump(dim int) {
	for len(w.counts) <= dim {
		w.counts = append(w.counts, 0)
	}
	w.counts[dim]++
	if !w.record {
		return
	}
	for len(w.lists) <= dim {
		w.lists = append(w.lists, nil)
	}
	tup := make([]int32, len(w.stack))
	copy(tup, w.stack)
	w.lists[dim] = append(w.lists[dim], tup)
}

// intersect merges two sorted int32 slices.
func intersect(a, b []int32) []int32 {
	var out []int32
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}
