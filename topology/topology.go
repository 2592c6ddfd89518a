package topology

import (
	"github.com/neurograph/assemblytopo/connmat"
)

// DegreeKind selects the degree direction. An explicit enum, not a string.
type DegreeKind int

const (
	// InDegree counts incoming connections: column sums of the submatrix.
	InDegree DegreeKind = iota
	// OutDegree counts outgoing connections: row sums of the submatrix.
	OutDegree
)

// String implements fmt.Stringer.
func (k DegreeKind) String() string {
	switch k {
	case InDegree:
		return "in"
	case OutDegree:
		return "out"
	default:
		return "unknown"
	}
}

// Topology exposes structural network metrics over an immutable
// connectivity matrix. All methods are pure and safe for concurrent use.
type Topology struct {
	cm *connmat.ConnMat

	maxDim int // simplex dimension cap; <0 means unlimited
}

// New wraps a connectivity matrix. Options configure simplex enumeration.
func New(cm *connmat.ConnMat, opts ...Option) (*Topology, error) {
	if cm == nil {
		return nil, ErrNilConnectivity
	}
	o := gatherOptions(opts...)

	return &Topology{cm: cm, maxDim: o.maxDim}, nil
}

// Matrix returns the underlying connectivity matrix.
func (t *Topology) Matrix() *connmat.ConnMat { return t.cm }

// Degree returns per-node degrees of the subgraph spanned by pre and post.
// A nil pre selects the whole graph; a nil post defaults to pre. In-degrees
// are aligned to the post ordering, out-degrees to the pre ordering.
func (t *Topology) Degree(pre, post []int64, kind DegreeKind) ([]float64, error) {
	if kind != InDegree && kind != OutDegree {
		return nil, ErrBadDegreeKind
	}

	var m *connmat.CSC
	if pre == nil {
		m = t.cm.Matrix()
	} else {
		sub, err := t.cm.Submatrix(pre, post)
		if err != nil {
			return nil, err
		}
		m = sub
	}

	if kind == InDegree {
		return colSums(m), nil
	}

	return rowSums(m), nil
}

// Density returns the nonzero-entry fraction of the (sub)matrix induced by
// subset, in [0, 1]. A nil subset selects the whole graph.
func (t *Topology) Density(subset []int64) (float64, error) {
	m := t.cm.Matrix()
	if subset != nil {
		sub, err := t.cm.Submatrix(subset, nil)
		if err != nil {
			return 0, err
		}
		m = sub
	}
	cells := m.Rows() * m.Cols()
	if cells == 0 {
		return 0, ErrEmptySelection
	}

	return float64(m.NNZ()) / float64(cells), nil
}

func colSums(m *connmat.CSC) []float64 {
	out := make([]float64, m.Cols())
	for j := 0; j < m.Cols(); j++ {
		_, vals := m.Column(j)
		s := 0.0
		for _, v := range vals {
			s += v
		}
		out[j] = s
	}

	return out
}

func rowSums(m *connmat.CSC) []float64 {
	out := make([]float64, m.Rows())
	for j := 0; j < m.Cols(); j++ {
		rows, vals := m.Column(j)
		for k, r := range rows {
			out[r] += vals[k]
		}
	}

	return out
}
