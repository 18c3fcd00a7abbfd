package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ".huf", cfg.Huffman.Suffix)
	assert.Equal(t, 4, cfg.Huffman.Workers)
	assert.Equal(t, 65536, cfg.Huffman.BufferSize)
	assert.Equal(t, "chained", cfg.Sets.Impl)
	assert.Equal(t, 18000, cfg.Sets.MaxElements)
}

func TestLoad_File(t *testing.T) {
	raw, err := yaml.Marshal(map[string]any{
		"log_level": "debug",
		"huffman":   map[string]any{"workers": 2, "suffix": ".hz"},
		"sets":      map[string]any{"impl": "open", "max_elements": 100},
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "adt.yaml")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2, cfg.Huffman.Workers)
	assert.Equal(t, ".hz", cfg.Huffman.Suffix)
	assert.Equal(t, 65536, cfg.Huffman.BufferSize, "unset keys keep defaults")
	assert.Equal(t, "open", cfg.Sets.Impl)
	assert.Equal(t, 100, cfg.Sets.MaxElements)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ADT_SET_IMPL", "sorted")
	t.Setenv("ADT_WORKERS", "8")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "sorted", cfg.Sets.Impl)
	assert.Equal(t, 8, cfg.Huffman.Workers)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("ADT_SET_IMPL", "splay")
	_, err := Load("")
	assert.ErrorContains(t, err, "sets.impl")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
