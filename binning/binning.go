package binning

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrEmptyInput indicates no values were supplied.
	ErrEmptyInput = errors.New("binning: no values to bin")

	// ErrLengthMismatch indicates paired slices of different lengths.
	ErrLengthMismatch = errors.New("binning: slice lengths differ")

	// ErrBadMinSamples indicates a non-positive minimum sample count.
	ErrBadMinSamples = errors.New("binning: minSamples must be positive")

	// ErrUnsortedValues indicates the unique values are not strictly increasing.
	ErrUnsortedValues = errors.New("binning: values must be strictly increasing")
)

// Bins holds the edges and representative centers of an adaptive binning.
// Bin i covers (Edges[i], Edges[i+1]]; bin 0 additionally includes Edges[0].
// Edges are strictly increasing except that Edges[0] may equal Edges[1] when
// the lowest bin holds exactly one value.
type Bins struct {
	Edges   []float64
	Centers []float64
}

// NumBins returns the number of bins.
func (b Bins) NumBins() int { return len(b.Centers) }

// Determine builds minimum-occupancy bins from sorted unique values and
// their occurrence counts, scanning from the highest value downward.
// Every bin's cumulative count exceeds minSamples except possibly the
// lowest, which absorbs the remainder.
func Determine(values []float64, counts []int, minSamples int) (Bins, error) {
	if len(values) == 0 {
		return Bins{}, ErrEmptyInput
	}
	if len(values) != len(counts) {
		return Bins{}, fmt.Errorf("%d values vs %d counts: %w", len(values), len(counts), ErrLengthMismatch)
	}
	if minSamples <= 0 {
		return Bins{}, fmt.Errorf("minSamples %d: %w", minSamples, ErrBadMinSamples)
	}
	for i := 1; i < len(values); i++ {
		if values[i] <= values[i-1] {
			return Bins{}, ErrUnsortedValues
		}
	}

	// Top-down scan: a bin closes as soon as its running sum exceeds
	// minSamples. Bins are right-closed, so a closed bin's lower edge is the
	// value just below the one that tipped the sum, keeping that value
	// inside the bin. The lowest bin takes whatever remains; its lower edge
	// is the minimum value itself, which coincides with the edge above it
	// when the remainder is a single value (zero-width lowest bin).
	edges := []float64{values[len(values)-1]}
	cum := 0
	for i := len(values) - 1; i >= 0; i-- {
		cum += counts[i]
		if cum > minSamples && i > 0 {
			edges = append(edges, values[i-1])
			cum = 0
		}
	}
	edges = append(edges, values[0])
	reverse(edges)

	centers := make([]float64, len(edges)-1)
	for i := range centers {
		switch edges[i+1] - edges[i] {
		case 0:
			centers[i] = edges[i] // zero-width bin holds exactly one value
		case 1:
			centers[i] = edges[i+1] // unit-step bin holds a single boundary value
		default:
			centers[i] = (edges[i] + edges[i+1]) / 2
		}
	}

	return Bins{Edges: edges, Centers: centers}, nil
}

// FromSamples derives unique values and counts from raw samples, then
// delegates to Determine.
func FromSamples(samples []float64, minSamples int) (Bins, error) {
	if len(samples) == 0 {
		return Bins{}, ErrEmptyInput
	}
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	values := make([]float64, 0, 16)
	counts := make([]int, 0, 16)
	for _, v := range sorted {
		if len(values) == 0 || v != values[len(values)-1] {
			values = append(values, v)
			counts = append(counts, 1)
		} else {
			counts[len(counts)-1]++
		}
	}

	return Determine(values, counts, minSamples)
}

// Assign digitizes v against the bin edges (right-closed). Values outside
// the determined range fall into the nearest boundary bin, so assignment is
// total over any input.
func (b Bins) Assign(v float64) int {
	n := b.NumBins()
	if n == 0 {
		return 0
	}
	// Smallest j >= 1 with v <= Edges[j]; bin index is j-1.
	j := sort.SearchFloat64s(b.Edges[1:], v)
	if j >= n {
		j = n - 1
	}

	return j
}

// Prepend returns a copy of b with one leading bin added below the current
// range, delimited by edge and represented by center. Used for populations
// that need a dedicated bin for a sentinel value (e.g. zero sink counts).
func (b Bins) Prepend(edge, center float64) Bins {
	edges := make([]float64, 0, len(b.Edges)+1)
	edges = append(edges, edge)
	edges = append(edges, b.Edges...)
	centers := make([]float64, 0, len(b.Centers)+1)
	centers = append(centers, center)
	centers = append(centers, b.Centers...)

	return Bins{Edges: edges, Centers: centers}
}

// BinGIDs groups gids by the bin their feature value falls into.
// feature[i] is the value for gids[i]; the result maps bin index → gid set.
func BinGIDs(feature []float64, gids []int64, b Bins) ([][]int64, error) {
	if len(feature) != len(gids) {
		return nil, fmt.Errorf("%d values vs %d gids: %w", len(feature), len(gids), ErrLengthMismatch)
	}
	out := make([][]int64, b.NumBins())
	for i, v := range feature {
		idx := b.Assign(v)
		out[idx] = append(out[idx], gids[i])
	}

	return out, nil
}

func reverse(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
