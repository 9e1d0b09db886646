package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/succinct/internal/bitvec"
)

// Config describes one script run.
type Config struct {
	// Algo selects the active contract: "bv" or "bp".
	Algo string `toml:"algo" yaml:"algo"`

	// InputPath is the command script to execute.
	InputPath string `toml:"input" yaml:"input"`

	// OutputPath receives one line per query result.
	OutputPath string `toml:"output" yaml:"output"`

	// Name labels the run on the RESULT line.
	Name string `toml:"name" yaml:"name"`

	// BlockCapacity is the per-block bit capacity of the vector.
	BlockCapacity int `toml:"block_capacity" yaml:"block_capacity"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Name:          "succinct",
		BlockCapacity: bitvec.DefaultCapacity,
	}
}

// Validate checks that the configuration describes a runnable job.
func (c *Config) Validate() error {
	if c.Algo != "bv" && c.Algo != "bp" {
		return ErrBadAlgo
	}
	if c.InputPath == "" || c.OutputPath == "" {
		return ErrMissingPath
	}
	if c.BlockCapacity < bitvec.MinCapacity || c.BlockCapacity > bitvec.MaxCapacity || c.BlockCapacity%64 != 0 {
		return bitvec.ErrBadCapacity
	}
	return nil
}

// ApplyFile merges values from a TOML or YAML config file into c. Keys
// set in the file override c; absent keys leave c untouched. Unknown
// keys are rejected.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	merged := *c
	switch filepath.Ext(path) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&merged); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&merged); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return ErrUnknownFormat
	}

	*c = merged
	return nil
}
