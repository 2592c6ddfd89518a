// Package connmat: sentinel error set.
// All constructors and lookups return these sentinels and tests check them
// via errors.Is. No user-triggered condition panics.

package connmat

import "errors"

var (
	// ErrShapeMismatch is returned when the adjacency dimension does not
	// equal the number of node identifiers it is declared over.
	ErrShapeMismatch = errors.New("connmat: adjacency shape does not match gid count")

	// ErrDuplicateNodeID is returned when a gid appears more than once in a
	// node-identifier set.
	ErrDuplicateNodeID = errors.New("connmat: duplicate gid in node set")

	// ErrUnknownNodeID is returned when a queried gid is absent from the
	// node-identifier lookup.
	ErrUnknownNodeID = errors.New("connmat: unknown gid")

	// ErrBadLayout is returned when CSC components are internally
	// inconsistent (pointer lengths, ordering, or index bounds).
	ErrBadLayout = errors.New("connmat: malformed csc layout")
)
