// Package analysis orchestrates the membership-uncertainty pipeline: bin a
// structural feature adaptively, estimate the per-bin assembly-membership
// probability, and quantify the signed fraction of membership entropy the
// feature explains.
//
// # What & Why
//
// The question behind every curve is the same: knowing a node's value of
// some structural feature (in-degree from an assembly, simplex-sink count,
// synapse clustering), how much better can we predict whether the node
// belongs to that assembly than the base rate alone? The answer is one
// Curve per (assembly, feature) pair: bin centers, per-bin membership
// probabilities and occupancies, the chance level, and the signed
// fraction-of-entropy-explained scalar.
//
// Feature builders derive the standard structural features from an
// AssemblyTopology; externally measured features (synapse nearest-neighbour
// distances) enter as plain Feature values.
//
// Run processes every (assembly, feature) pair of a batch; per-item
// failures are recorded in the Report and never abort the sweep. Progress
// is reported through an optional caller hook, never through a logger.
//
// Complexity: one pair costs O(n log n) for binning plus O(n) for the
// probability estimate, n = population size.
package analysis
