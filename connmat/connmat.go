package connmat

import (
	"fmt"
	"sort"
)

// ConnMat couples an immutable sparse directed adjacency matrix with the
// NodeSet it is defined over. Entry (i, j) holds the connection from
// pre-synaptic gid i to post-synaptic gid j.
type ConnMat struct {
	nodes NodeSet
	m     *CSC
}

// New builds a ConnMat over gids. The adjacency must be square with
// dimension len(gids); otherwise ErrShapeMismatch is returned.
func New(m *CSC, gids []int64) (*ConnMat, error) {
	if m == nil {
		return nil, fmt.Errorf("nil adjacency: %w", ErrBadLayout)
	}
	if m.Rows() != len(gids) || m.Cols() != len(gids) {
		return nil, fmt.Errorf("%dx%d adjacency over %d gids: %w",
			m.Rows(), m.Cols(), len(gids), ErrShapeMismatch)
	}
	nodes, err := NewNodeSet(gids)
	if err != nil {
		return nil, err
	}

	return &ConnMat{nodes: nodes, m: m}, nil
}

// NewFromDense builds a ConnMat from a dense row-major adjacency.
// Intended for small graphs and tests.
func NewFromDense(dense [][]float64, gids []int64) (*ConnMat, error) {
	m, err := CSCFromDense(dense)
	if err != nil {
		return nil, err
	}

	return New(m, gids)
}

// Nodes returns the underlying NodeSet.
func (c *ConnMat) Nodes() NodeSet { return c.nodes }

// GIDs returns a copy of the gid vector in matrix order.
func (c *ConnMat) GIDs() []int64 { return c.nodes.IDs() }

// N returns the number of nodes.
func (c *ConnMat) N() int { return c.nodes.Len() }

// NNZ returns the number of stored connections.
func (c *ConnMat) NNZ() int { return c.m.NNZ() }

// Matrix returns the full adjacency. Read-only by contract.
func (c *ConnMat) Matrix() *CSC { return c.m }

// Submatrix returns the adjacency restricted to rows = positions of pre and
// columns = positions of post, in the queried orderings. A nil post defaults
// to pre (the symmetric induced subgraph). Unknown gids yield
// ErrUnknownNodeID. The extraction walks only the selected columns.
func (c *ConnMat) Submatrix(pre, post []int64) (*CSC, error) {
	if post == nil {
		post = pre
	}
	prePos, err := c.nodes.Positions(pre)
	if err != nil {
		return nil, err
	}
	postPos, err := c.nodes.Positions(post)
	if err != nil {
		return nil, err
	}

	// Remap original row positions to their index within the pre query.
	rowOf := make(map[int64]int64, len(prePos))
	for newRow, origRow := range prePos {
		rowOf[int64(origRow)] = int64(newRow)
	}

	type entry struct {
		row int64
		val float64
	}
	colPtr := make([]int64, len(postPos)+1)
	var rowIdx []int64
	var data []float64
	scratch := make([]entry, 0, 16)
	for newCol, origCol := range postPos {
		scratch = scratch[:0]
		rows, vals := c.m.Column(origCol)
		for k, r := range rows {
			if nr, ok := rowOf[r]; ok {
				scratch = append(scratch, entry{row: nr, val: vals[k]})
			}
		}
		sort.Slice(scratch, func(a, b int) bool { return scratch[a].row < scratch[b].row })
		for _, e := range scratch {
			rowIdx = append(rowIdx, e.row)
			data = append(data, e.val)
		}
		colPtr[newCol+1] = int64(len(rowIdx))
	}

	return NewCSC(len(prePos), len(postPos), colPtr, rowIdx, data)
}
