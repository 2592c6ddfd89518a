// Package binning converts long-tailed feature-count distributions into
// adaptive histogram bins that each hold a minimum number of samples.
//
// # Adaptive minimum-occupancy binning
//
// Structural features such as in-degree or simplex-sink counts are heavily
// long-tailed: fixed-width bins starve the high-value bins of samples and
// destroy the membership-probability estimates computed from them. This
// package trades resolution for guaranteed statistical power.
//
// Algorithm outline:
//  1. Start from the sorted unique values and their occurrence counts.
//  2. Scan from the highest value downward, accumulating counts into the
//     current bin until the running sum exceeds minSamples, then close the
//     bin at the value where it exceeded and reset the sum.
//  3. The lowest bin may fall short of minSamples; it absorbs the remainder
//     so that every input value falls in exactly one bin. When the remainder
//     is a single value the lowest bin has zero width.
//  4. Bin center = midpoint of the two edges, the right edge itself when the
//     bin spans a single unit step, or the value itself for zero-width bins.
//
// Degenerate case: a total sample count ≤ minSamples yields one bin over the
// whole value range.
//
// Digitization is right-closed: bin i covers (edge[i], edge[i+1]], except
// the lowest bin which is closed on both ends.
//
// Complexity: Determine runs in O(len(values)); Assign in O(log bins).
package binning
