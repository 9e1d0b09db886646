package bptree

import "errors"

// Errors returned by tree operations.
var (
	// ErrInvalidNode indicates an argument that is not the position of an
	// opening parenthesis.
	ErrInvalidNode = errors.New("not an opening parenthesis position")

	// ErrHasNoParent indicates a parent query on the root.
	ErrHasNoParent = errors.New("node has no parent")

	// ErrAmbiguousReparent indicates deletion of a root with more than
	// one child, which has no unambiguous re-parenting.
	ErrAmbiguousReparent = errors.New("cannot delete a root with more than one child")

	// ErrOutOfRange indicates a child index beyond the node's arity.
	ErrOutOfRange = errors.New("child index out of range")

	// ErrMalformed indicates seed content that is not a balanced
	// parenthesis sequence.
	ErrMalformed = errors.New("sequence is not balanced")
)
