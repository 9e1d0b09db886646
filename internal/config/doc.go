// Package config holds the run configuration for the succinct CLI:
// which contract is active (bv or bp), the script and result file paths,
// and tuning such as the block capacity. Values come from defaults, an
// optional TOML or YAML config file, and command-line flags, in that
// order of increasing precedence.
package config
