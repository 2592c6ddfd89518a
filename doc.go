// Package assemblytopo quantifies how much of the uncertainty in
// neural-ensemble ("assembly") membership is explained by graph-structural
// features of a large directed neuron-connectivity network.
//
// 🚀 What is assemblytopo?
//
//	An offline, reproducible-research-grade analysis engine that brings together:
//		• Sparse connectivity: immutable CSC adjacency over a gid set, O(sub) submatrices
//		• Structural features: in/out-degree, density, directed flag simplices, Betti numbers
//		• Matched controls: size-, covariate- and category-matched null populations
//		• Adaptive binning: minimum-occupancy bins for long-tailed count distributions
//		• Information: prior/posterior binary entropy, signed fraction of entropy explained
//
// ✨ Why assemblytopo?
//
//   - Deterministic – explicit seeded random sources, no global state
//   - Rock-solid error contract – package-prefixed sentinels, errors.Is everywhere
//   - Pure computation – plotting, CLI and simulation access live elsewhere
//   - Extensible – progress hooks instead of a baked-in logger
//
// Everything is organized under seven subpackages:
//
//	connmat/  — NodeSet + immutable sparse directed adjacency, submatrix extraction
//	binning/  — long-tail-aware adaptive histogram binning
//	entropy/  — binary entropy and fraction-of-entropy-explained
//	assembly/ — read-only Assembly and Group value types
//	topology/ — degree, density, simplex counts/lists, Betti numbers, random controls
//	analysis/ — per-(assembly, feature) probability curves and entropy summaries
//	store/    — CSC adjacency persistence under a configurable named group
//
// Typical flow: load the adjacency once (store), wrap it in a Topology,
// derive a per-node feature, bin it, and reduce the binned membership
// probabilities to a single signed information score (analysis).
package assemblytopo
