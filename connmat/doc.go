// Package connmat holds the immutable sparse directed connectivity matrix of
// a circuit together with its node-identifier (gid) set, and extracts
// index-remapped submatrices for arbitrary sub-populations.
//
// What & Why:
//
//	All downstream structural analysis (degree, density, simplicial counts,
//	controls) operates on induced subgraphs of one large adjacency matrix.
//	The matrix is built once per dataset and never mutated afterwards, so the
//	whole package is safe for concurrent readers without locking. Submatrix
//	extraction always goes through the gid→position lookup and touches only
//	the selected columns — never a dense full-graph scan.
//
// Storage:
//
//	Compressed-sparse-column (CSC): column pointer offsets, row indices and
//	data values, the same layout the persistence layer stores under a named
//	group (see package store).
//
// Complexity:
//
//	Position lookups run in O(1). Submatrix(pre, post) runs in
//	O(|post| + Σ nnz of the selected columns), bounded by O(|pre|·|post|).
package connmat
