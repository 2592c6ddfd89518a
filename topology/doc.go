// Package topology computes structural network metrics on node subsets of a
// connectivity matrix — degree, density, directed flag-complex simplices and
// Betti numbers — and draws the matched random control populations those
// metrics are benchmarked against.
//
// The Topology type composes a *connmat.ConnMat rather than extending it:
// all operations are pure reads over the shared immutable adjacency, so one
// Topology value can serve any number of concurrent analyses.
//
// # Directed flag complexes
//
// A k-simplex is an ordered tuple of k+1 nodes forming a directed clique:
// an edge runs from every earlier node to every later one, and the last
// node is the sink. Enumeration grows simplices one sink at a time, keeping
// the candidate set as the running intersection of out-neighborhoods; it is
// exponential in clique size in the worst case, which stays feasible because
// induced subgraphs are assembly-sized, not the whole circuit.
//
// # Matched controls
//
// Control populations are the statistical null for every metric: equal
// cardinality (uniform draw), nearest continuous-covariate value, or exact
// per-category counts, all sampled without replacement from an explicit
// seeded random source. No global randomness is used anywhere.
package topology
