package analysis

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/neurograph/assemblytopo/assembly"
	"github.com/neurograph/assemblytopo/binning"
	"github.com/neurograph/assemblytopo/entropy"
)

var (
	// ErrEmptyPopulation indicates an empty gid population.
	ErrEmptyPopulation = errors.New("analysis: empty population")

	// ErrLengthMismatch indicates a feature vector misaligned with the
	// population.
	ErrLengthMismatch = errors.New("analysis: feature length differs from population")
)

// parallelThreshold is the population size above which the membership mask
// is computed in parallel chunks.
const parallelThreshold = 1 << 14

// Curve is the membership-probability profile of one (assembly, feature)
// pair: per-bin probability of assembly membership against the binned
// feature, plus the chance level and the signed fraction of membership
// entropy the feature explains. Empty bins are dropped.
type Curve struct {
	AssemblyID int
	Feature    string

	BinCenters    []float64
	Probabilities []float64
	BinCounts     []int

	ChanceLevel      float64
	EntropyExplained float64
}

// ItemError records one failed (assembly, feature) pair of a batch run.
type ItemError struct {
	AssemblyID int
	Feature    string
	Err        error
}

// Error implements the error interface.
func (e ItemError) Error() string {
	return fmt.Sprintf("assembly %d, feature %q: %v", e.AssemblyID, e.Feature, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is.
func (e ItemError) Unwrap() error { return e.Err }

// Report collects the outcome of a batch run: one Curve per successful
// pair, one ItemError per failed one.
type Report struct {
	Curves   []Curve
	Failures []ItemError
}

// MembershipProbability computes the probability curve of one pair: the
// feature is binned adaptively, each bin's probability is the fraction of
// its nodes that belong to the assembly, and the curve is summarized by the
// signed fraction of entropy explained. feature.Values[i] must be the value
// for gids[i]. A degenerate prior (the assembly is everything or nothing)
// surfaces as entropy.ErrDegenerateEntropy.
func MembershipProbability(gids []int64, asm assembly.Assembly, feature Feature, minSamples int) (Curve, error) {
	if len(gids) == 0 {
		return Curve{}, ErrEmptyPopulation
	}
	if len(feature.Values) != len(gids) {
		return Curve{}, fmt.Errorf("feature %q: %d values over %d gids: %w",
			feature.Name, len(feature.Values), len(gids), ErrLengthMismatch)
	}

	bins, err := binning.FromSamples(feature.Values, minSamples)
	if err != nil {
		return Curve{}, fmt.Errorf("feature %q: %w", feature.Name, err)
	}
	if feature.ZeroBin && bins.Edges[0] == 0 {
		// Dedicated bin for zero counts: (-1, 0], represented by 0.
		bins = bins.Prepend(-1, 0)
	}

	groups, err := binning.BinGIDs(feature.Values, gids, bins)
	if err != nil {
		return Curve{}, fmt.Errorf("feature %q: %w", feature.Name, err)
	}

	member := membershipMask(gids, asm)
	pos := make(map[int64]int, len(gids))
	for i, gid := range gids {
		pos[gid] = i
	}

	centers := make([]float64, 0, len(groups))
	probs := make([]float64, 0, len(groups))
	counts := make([]int, 0, len(groups))
	totalMembers := 0
	for b, binGIDs := range groups {
		if len(binGIDs) == 0 {
			continue // empty bins carry no probability estimate
		}
		in := 0
		for _, gid := range binGIDs {
			if member[pos[gid]] {
				in++
			}
		}
		totalMembers += in
		centers = append(centers, bins.Centers[b])
		probs = append(probs, float64(in)/float64(len(binGIDs)))
		counts = append(counts, len(binGIDs))
	}

	explained, err := entropy.FractionExplained(centers, probs, counts)
	if err != nil {
		return Curve{}, fmt.Errorf("feature %q: %w", feature.Name, err)
	}

	return Curve{
		AssemblyID:       asm.ID,
		Feature:          feature.Name,
		BinCenters:       centers,
		Probabilities:    probs,
		BinCounts:        counts,
		ChanceLevel:      float64(totalMembers) / float64(len(gids)),
		EntropyExplained: explained,
	}, nil
}

// Run sweeps every (assembly, feature) pair of the group. Failed pairs are
// recorded in the report and never abort the remaining pairs. The progress
// hook, when configured, fires after each pair.
func Run(gids []int64, group assembly.Group, features []Feature, opts ...Option) (Report, error) {
	if len(gids) == 0 {
		return Report{}, ErrEmptyPopulation
	}
	o := gatherOptions(opts...)

	var rep Report
	total := len(group.Assemblies) * len(features)
	done := 0
	for _, asm := range group.Assemblies {
		for _, feat := range features {
			curve, err := MembershipProbability(gids, asm, feat, o.minSamples)
			if err != nil {
				rep.Failures = append(rep.Failures, ItemError{
					AssemblyID: asm.ID,
					Feature:    feat.Name,
					Err:        err,
				})
			} else {
				rep.Curves = append(rep.Curves, curve)
			}
			done++
			if o.progress != nil {
				o.progress(asm.ID, feat.Name, done, total)
			}
		}
	}

	return rep, nil
}

// membershipMask marks which positions of gids belong to the assembly.
// Large populations are scanned in parallel chunks.
func membershipMask(gids []int64, asm assembly.Assembly) []bool {
	mask := make([]bool, len(gids))
	if len(gids) < parallelThreshold {
		for i, gid := range gids {
			mask[i] = asm.Contains(gid)
		}

		return mask
	}

	workers := runtime.NumCPU()
	chunk := (len(gids) + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < len(gids); start += chunk {
		end := start + chunk
		if end > len(gids) {
			end = len(gids)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				mask[i] = asm.Contains(gids[i])
			}
		}(start, end)
	}
	wg.Wait()

	return mask
}
