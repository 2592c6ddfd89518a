// Package topology: functional configuration for simplex enumeration.
// Defaults are documented constants; option constructors panic only on
// nonsensical values (programmer error), never on data.

package topology

// DefaultMaxDimension leaves simplex enumeration uncapped: every dimension
// present in the flag complex is counted and listed.
const DefaultMaxDimension = -1

const panicMaxDimensionInvalid = "topology: WithMaxDimension: dim must be >= 0"

// Option mutates the internal options. Applied in order, last writer wins.
type Option func(*options)

type options struct {
	maxDim int
}

// WithMaxDimension caps simplex enumeration at the given dimension.
// Counting stops once simplices of dimension dim have been recorded, which
// bounds the exponential blow-up on dense subgraphs.
func WithMaxDimension(dim int) Option {
	if dim < 0 {
		panic(panicMaxDimensionInvalid)
	}

	return func(o *options) { o.maxDim = dim }
}

func gatherOptions(opts ...Option) options {
	o := options{maxDim: DefaultMaxDimension}
	for _, set := range opts {
		set(&o)
	}

	return o
}
