package config

import "errors"

// Errors returned while building a run configuration.
var (
	// ErrBadAlgo indicates a mode other than "bv" or "bp".
	ErrBadAlgo = errors.New(`algo must be "bv" or "bp"`)

	// ErrMissingPath indicates a missing input or output path.
	ErrMissingPath = errors.New("input and output paths are required")

	// ErrUnknownFormat indicates a config file with an unsupported
	// extension.
	ErrUnknownFormat = errors.New("config file must be .toml, .yaml or .yml")
)
