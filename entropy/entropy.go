package entropy

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrDegenerateEntropy indicates a zero prior entropy: the overall
	// membership probability is exactly 0 or 1, so the fraction of entropy
	// explained is undefined.
	ErrDegenerateEntropy = errors.New("entropy: zero prior entropy, fraction explained undefined")

	// ErrLengthMismatch indicates paired slices of different lengths.
	ErrLengthMismatch = errors.New("entropy: slice lengths differ")

	// ErrEmptyInput indicates that no bins were supplied.
	ErrEmptyInput = errors.New("entropy: no bins")

	// ErrBadProbability indicates a probability outside [0, 1].
	ErrBadProbability = errors.New("entropy: probability outside [0,1]")
)

// Binary returns the binary entropy H(p) in bits, with 0·log2(0) ≡ 0.
func Binary(p float64) float64 {
	h := 0.0
	if p > 0 {
		h -= p * math.Log2(p)
	}
	if p < 1 {
		h -= (1 - p) * math.Log2(1-p)
	}

	return h
}

// Prior returns the binary entropy of the overall membership probability,
// i.e. the count-weighted mean of the per-bin probabilities.
func Prior(counts []int, probs []float64) (float64, error) {
	overall, err := weightedMean(counts, probs)
	if err != nil {
		return 0, err
	}

	return Binary(overall), nil
}

// Posterior returns the population-size-weighted average of the per-bin
// binary entropies: the residual membership uncertainty after conditioning
// on the binned feature.
func Posterior(counts []int, probs []float64) (float64, error) {
	if err := validate(counts, probs); err != nil {
		return 0, err
	}
	var sum, total float64
	for i, p := range probs {
		sum += Binary(p) * float64(counts[i])
		total += float64(counts[i])
	}
	if total == 0 {
		return 0, ErrEmptyInput
	}

	return sum / total, nil
}

// FractionExplained returns the signed fraction of membership entropy
// explained by the binned feature: sign · (1 − posterior/prior). The sign is
// that of the least-squares slope of probability vs bin center (+1 when
// stronger innervation increases membership likelihood, −1 when it decreases
// it, 0 for a perfectly flat trend). A zero prior yields ErrDegenerateEntropy.
func FractionExplained(centers []float64, probs []float64, counts []int) (float64, error) {
	if len(centers) != len(probs) {
		return 0, fmt.Errorf("%d centers vs %d probabilities: %w", len(centers), len(probs), ErrLengthMismatch)
	}
	prior, err := Prior(counts, probs)
	if err != nil {
		return 0, err
	}
	if prior == 0 {
		return 0, ErrDegenerateEntropy
	}
	posterior, err := Posterior(counts, probs)
	if err != nil {
		return 0, err
	}

	_, slope := stat.LinearRegression(centers, probs, nil, false)

	return sign(slope) * (1 - posterior/prior), nil
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func weightedMean(counts []int, probs []float64) (float64, error) {
	if err := validate(counts, probs); err != nil {
		return 0, err
	}
	var num, den float64
	for i, p := range probs {
		num += p * float64(counts[i])
		den += float64(counts[i])
	}
	if den == 0 {
		return 0, ErrEmptyInput
	}

	return num / den, nil
}

func validate(counts []int, probs []float64) error {
	if len(counts) == 0 {
		return ErrEmptyInput
	}
	if len(counts) != len(probs) {
		return fmt.Errorf("%d counts vs %d probabilities: %w", len(counts), len(probs), ErrLengthMismatch)
	}
	for i, p := range probs {
		if p < 0 || p > 1 || math.IsNaN(p) {
			return fmt.Errorf("bin %d: p=%v: %w", i, p, ErrBadProbability)
		}
	}

	return nil
}
