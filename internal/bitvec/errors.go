package bitvec

import "errors"

// Errors returned by vector operations.
var (
	// ErrOutOfRange indicates a position argument outside the current bounds.
	ErrOutOfRange = errors.New("position out of range")

	// ErrNotFound indicates a select target with fewer occurrences than requested.
	ErrNotFound = errors.New("occurrence not found")

	// ErrNoMatch indicates a parenthesis-matching query with no answer,
	// either because the argument bit has the wrong value or because the
	// sequence is not balanced around it.
	ErrNoMatch = errors.New("no matching parenthesis")

	// ErrBadCapacity indicates an invalid block capacity option.
	ErrBadCapacity = errors.New("block capacity must be a multiple of 64 in [64, 4096]")

	// ErrBadBitString indicates seed content with characters other than '0' and '1'.
	ErrBadBitString = errors.New("bit string may only contain '0' and '1'")
)
