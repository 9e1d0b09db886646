package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/succinct/internal/bitvec"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "succinct", cfg.Name)
	assert.Equal(t, bitvec.DefaultCapacity, cfg.BlockCapacity)
	assert.Empty(t, cfg.Algo)
}

func TestValidate(t *testing.T) {
	valid := Config{Algo: "bv", InputPath: "in", OutputPath: "out", BlockCapacity: 512}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"bad algo", func(c *Config) { c.Algo = "tree" }, ErrBadAlgo},
		{"empty algo", func(c *Config) { c.Algo = "" }, ErrBadAlgo},
		{"no input", func(c *Config) { c.InputPath = "" }, ErrMissingPath},
		{"no output", func(c *Config) { c.OutputPath = "" }, ErrMissingPath},
		{"capacity not multiple of 64", func(c *Config) { c.BlockCapacity = 100 }, bitvec.ErrBadCapacity},
		{"capacity too small", func(c *Config) { c.BlockCapacity = 0 }, bitvec.ErrBadCapacity},
		{"capacity too large", func(c *Config) { c.BlockCapacity = bitvec.MaxCapacity + 64 }, bitvec.ErrBadCapacity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestApplyFileTOML(t *testing.T) {
	path := writeFile(t, "run.toml", `
algo = "bv"
input = "ops.txt"
output = "results.txt"
block_capacity = 1024
`)
	cfg := Default()
	require.NoError(t, cfg.ApplyFile(path))
	assert.Equal(t, "bv", cfg.Algo)
	assert.Equal(t, "ops.txt", cfg.InputPath)
	assert.Equal(t, "results.txt", cfg.OutputPath)
	assert.Equal(t, 1024, cfg.BlockCapacity)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, "succinct", cfg.Name)
	require.NoError(t, cfg.Validate())
}

func TestApplyFileYAML(t *testing.T) {
	path := writeFile(t, "run.yaml", `
algo: bp
input: a.txt
output: b.txt
name: trial
`)
	cfg := Default()
	require.NoError(t, cfg.ApplyFile(path))
	assert.Equal(t, "bp", cfg.Algo)
	assert.Equal(t, "trial", cfg.Name)
	assert.Equal(t, bitvec.DefaultCapacity, cfg.BlockCapacity)
	require.NoError(t, cfg.Validate())
}

func TestApplyFileRejectsUnknownKeys(t *testing.T) {
	t.Run("toml", func(t *testing.T) {
		path := writeFile(t, "run.toml", "bogus = 1\n")
		cfg := Default()
		assert.Error(t, cfg.ApplyFile(path))
	})
	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "run.yaml", "bogus: 1\n")
		cfg := Default()
		assert.Error(t, cfg.ApplyFile(path))
	})
}

func TestApplyFileErrors(t *testing.T) {
	t.Run("unknown extension", func(t *testing.T) {
		path := writeFile(t, "run.json", "{}")
		cfg := Default()
		assert.ErrorIs(t, cfg.ApplyFile(path), ErrUnknownFormat)
	})
	t.Run("missing file", func(t *testing.T) {
		cfg := Default()
		assert.Error(t, cfg.ApplyFile(filepath.Join(t.TempDir(), "absent.toml")))
	})
	t.Run("parse failure leaves config untouched", func(t *testing.T) {
		path := writeFile(t, "run.toml", "algo = [broken\n")
		cfg := Default()
		before := cfg
		assert.Error(t, cfg.ApplyFile(path))
		assert.Equal(t, before, cfg)
	})
}
