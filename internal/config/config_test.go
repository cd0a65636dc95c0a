package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "http://127.0.0.1:8000", cfg.Server.BaseURL)
	assert.Equal(t, 5, cfg.Query.Limit)
	assert.Equal(t, 250, cfg.Suggest.DebounceMS)
	assert.Equal(t, 2, cfg.Suggest.MinQuery)
	assert.Equal(t, 250*time.Millisecond, cfg.Debounce())
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Server.BaseURL, cfg.Server.BaseURL)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipedex.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  base_url: http://recipes.internal:9000
suggest:
  debounce_ms: 100
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://recipes.internal:9000", cfg.Server.BaseURL)
	assert.Equal(t, 100, cfg.Suggest.DebounceMS)
	// Untouched sections keep their defaults.
	assert.Equal(t, 5, cfg.Query.Limit)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipedex.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [broken"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("RECIPEDEX_SERVER", "http://override:8000")
	t.Setenv("RECIPEDEX_QUERY_LIMIT", "10")
	t.Setenv("RECIPEDEX_SUGGEST_DEBOUNCE_MS", "50")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://override:8000", cfg.Server.BaseURL)
	assert.Equal(t, 10, cfg.Query.Limit)
	assert.Equal(t, 50, cfg.Suggest.DebounceMS)
}

func TestEnvOverrideIgnoresGarbage(t *testing.T) {
	t.Setenv("RECIPEDEX_QUERY_LIMIT", "not-a-number")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Query.Limit)
}
