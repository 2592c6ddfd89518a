// Package topology: sentinel error set, matched via errors.Is.

package topology

import "errors"

var (
	// ErrNilConnectivity indicates a nil connectivity matrix was supplied.
	ErrNilConnectivity = errors.New("topology: nil connectivity matrix")

	// ErrNilRand indicates a control draw was attempted without an explicit
	// random source.
	ErrNilRand = errors.New("topology: nil random source")

	// ErrBadDegreeKind indicates an unrecognized DegreeKind value.
	ErrBadDegreeKind = errors.New("topology: unknown degree kind")

	// ErrEmptySelection indicates a metric was requested over zero nodes.
	ErrEmptySelection = errors.New("topology: empty node selection")

	// ErrInsufficientPopulation indicates a matched-control draw could not be
	// satisfied without replacement.
	ErrInsufficientPopulation = errors.New("topology: population too small for matched control")

	// ErrMissingCovariate indicates a node required for covariate matching
	// has no covariate value.
	ErrMissingCovariate = errors.New("topology: covariate value missing")
)
