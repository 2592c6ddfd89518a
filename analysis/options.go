// Package analysis: functional configuration for the batch sweep.
// Defaults are documented constants; option constructors panic only on
// nonsensical values (programmer error), never on data.

package analysis

// DefaultMinSamples is the minimum per-bin occupancy for adaptive binning.
// 100 samples keep the per-bin probability estimates stable for circuits in
// the 10^4-10^5 node range.
const DefaultMinSamples = 100

const panicMinSamplesInvalid = "analysis: WithMinSamples: n must be > 0"

// ProgressFunc is invoked after each (assembly, feature) pair completes,
// successfully or not. done counts completed pairs, total is the batch size.
type ProgressFunc func(assemblyID int, feature string, done, total int)

// Option mutates the internal options. Applied in order, last writer wins.
type Option func(*options)

type options struct {
	minSamples int
	progress   ProgressFunc
}

// WithMinSamples overrides the minimum per-bin sample count used when
// determining adaptive bins.
func WithMinSamples(n int) Option {
	if n <= 0 {
		panic(panicMinSamplesInvalid)
	}

	return func(o *options) { o.minSamples = n }
}

// WithProgress registers a hook called after every completed pair.
// A nil hook disables progress reporting (the default).
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) { o.progress = fn }
}

func gatherOptions(opts ...Option) options {
	o := options{minSamples: DefaultMinSamples}
	for _, set := range opts {
		set(&o)
	}

	return o
}
