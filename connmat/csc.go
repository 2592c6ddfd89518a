package connmat

import "fmt"

// CSC is a compressed-sparse-column matrix. Construction validates the
// layout once; afterwards the matrix is treated as immutable.
type CSC struct {
	rows, cols int
	colPtr     []int64 // len cols+1, non-decreasing, colPtr[0]==0
	rowIdx     []int64 // len nnz, row index per stored entry
	data       []float64
}

// NewCSC builds a rows×cols CSC matrix from its three components.
// The slices are retained, not copied; callers must not mutate them after
// construction. Returns ErrBadLayout on any structural inconsistency.
func NewCSC(rows, cols int, colPtr, rowIdx []int64, data []float64) (*CSC, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%d x %d: %w", rows, cols, ErrBadLayout)
	}
	if len(colPtr) != cols+1 {
		return nil, fmt.Errorf("colptr length %d for %d columns: %w", len(colPtr), cols, ErrBadLayout)
	}
	if colPtr[0] != 0 {
		return nil, fmt.Errorf("colptr[0] = %d: %w", colPtr[0], ErrBadLayout)
	}
	nnz := colPtr[cols]
	if int64(len(rowIdx)) != nnz || int64(len(data)) != nnz {
		return nil, fmt.Errorf("nnz %d vs %d indices / %d values: %w", nnz, len(rowIdx), len(data), ErrBadLayout)
	}
	for j := 0; j < cols; j++ {
		if colPtr[j] > colPtr[j+1] {
			return nil, fmt.Errorf("colptr not monotone at column %d: %w", j, ErrBadLayout)
		}
	}
	for _, r := range rowIdx {
		if r < 0 || r >= int64(rows) {
			return nil, fmt.Errorf("row index %d out of %d rows: %w", r, rows, ErrBadLayout)
		}
	}

	return &CSC{rows: rows, cols: cols, colPtr: colPtr, rowIdx: rowIdx, data: data}, nil
}

// CSCFromDense converts a dense row-major matrix into CSC form.
// Intended for small graphs and tests.
func CSCFromDense(dense [][]float64) (*CSC, error) {
	rows := len(dense)
	cols := 0
	if rows > 0 {
		cols = len(dense[0])
	}
	for i, row := range dense {
		if len(row) != cols {
			return nil, fmt.Errorf("ragged row %d: %w", i, ErrBadLayout)
		}
	}

	colPtr := make([]int64, cols+1)
	var rowIdx []int64
	var data []float64
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if dense[i][j] != 0 {
				rowIdx = append(rowIdx, int64(i))
				data = append(data, dense[i][j])
			}
		}
		colPtr[j+1] = int64(len(rowIdx))
	}

	return &CSC{rows: rows, cols: cols, colPtr: colPtr, rowIdx: rowIdx, data: data}, nil
}

// Rows returns the number of rows.
func (m *CSC) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *CSC) Cols() int { return m.cols }

// NNZ returns the number of stored entries.
func (m *CSC) NNZ() int { return len(m.rowIdx) }

// Column returns read-only views of the row indices and values stored in
// column j. The returned slices alias internal storage; callers must not
// mutate them.
func (m *CSC) Column(j int) (rows []int64, data []float64) {
	lo, hi := m.colPtr[j], m.colPtr[j+1]

	return m.rowIdx[lo:hi], m.data[lo:hi]
}

// Layout returns copies of the three CSC components (indptr, indices, data),
// the interchange form used by the persistence layer.
func (m *CSC) Layout() (indptr, indices []int64, data []float64) {
	indptr = make([]int64, len(m.colPtr))
	copy(indptr, m.colPtr)
	indices = make([]int64, len(m.rowIdx))
	copy(indices, m.rowIdx)
	data = make([]float64, len(m.data))
	copy(data, m.data)

	return indptr, indices, data
}

// Dense materializes the matrix as a dense row-major array.
// Memory: O(rows·cols); intended for small submatrices and tests.
func (m *CSC) Dense() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		out[i] = make([]float64, m.cols)
	}
	for j := 0; j < m.cols; j++ {
		rows, data := m.Column(j)
		for k, r := range rows {
			out[r][j] = data[k]
		}
	}

	return out
}
