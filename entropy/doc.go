// Package entropy reduces binned membership probabilities to a single
// signed information score: the fraction of assembly-membership uncertainty
// explained by a structural feature.
//
// Definitions:
//
//	Binary entropy     H(p) = −p·log2(p) − (1−p)·log2(1−p), with 0·log2(0) ≡ 0.
//	Prior entropy      H of the count-weighted overall membership probability.
//	Posterior entropy  count-weighted mean of the per-bin binary entropies.
//	Fraction explained sign(trend) · (1 − posterior/prior), where the trend
//	                   is the least-squares slope of probability vs bin center.
//
// A positive score means higher feature values increase membership
// likelihood; a negative score means they decrease it. A prior entropy of
// exactly zero (membership probability identically 0 or 1) makes the ratio
// undefined and is reported as ErrDegenerateEntropy — never as a spurious
// value or NaN.
package entropy
