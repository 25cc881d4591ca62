package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 512, cfg.MaxParseDepth)
	assert.Equal(t, 4096, cfg.MaxEvalDepth)
	assert.Nil(t, cfg.DisabledBuiltins)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.False(t, cfg.Verbose)
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
maxParseDepth: 10
disabledBuiltins:
  - print
verbose: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.MaxParseDepth)
	assert.Equal(t, 4096, cfg.MaxEvalDepth, "unset fields keep Default()'s value")
	assert.Equal(t, []string{"print"}, cfg.DisabledBuiltins)
	assert.True(t, cfg.Verbose)
}

func TestLoad_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"maxEvalDepth": 8, "logLevel": "debug"}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.MaxParseDepth, "unset fields keep Default()'s value")
	assert.Equal(t, 8, cfg.MaxEvalDepth)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("maxParseDepth: [unterminated"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
