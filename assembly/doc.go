// Package assembly defines the read-only value types produced by the
// upstream spike-train clustering pipeline: an Assembly is a hypothesized
// functional ensemble represented as a gid subset, and a Group collects the
// assemblies detected in one simulation seed.
//
// Assemblies are consumed, never constructed, by the analysis engine; this
// package only validates and exposes them. How they are detected (spike
// binning, clustering, consensus across seeds) is out of scope here.
package assembly
