// Package store persists connectivity matrices in a SQLite file.
//
// # What & Why
//
// A circuit's adjacency is expensive to extract; once built it is saved and
// reloaded across analysis runs. The CSC components (data, indices, indptr)
// and the gid vector are stored as little-endian blobs, one row each, keyed
// by (prefix, group, component). The prefix isolates independent matrix
// families in one file (default "connectivity"); the group names one saved
// matrix within a family.
//
// The driver is modernc.org/sqlite — pure Go, no cgo, so the store works
// anywhere the analysis runs.
//
// Concurrency: a Store wraps a *sql.DB and inherits its pooling; Save and
// Load are individually transactional.
package store
