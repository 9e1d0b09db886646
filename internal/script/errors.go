package script

import "errors"

// Errors returned while parsing and dispatching scripts.
var (
	// ErrUnknownCommand indicates a verb with no registered handler.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrArity indicates a command with the wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")

	// ErrBadArgument indicates a non-integer or negative argument.
	ErrBadArgument = errors.New("malformed argument")

	// ErrBadHeader indicates a bv script whose bit preamble is missing
	// or malformed.
	ErrBadHeader = errors.New("malformed script header")
)
