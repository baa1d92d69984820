package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degrees/frontier"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, SourceCSV, cfg.Data.Source)
	assert.Equal(t, "large", cfg.Data.Path)
	assert.Equal(t, frontier.FIFO, cfg.Discipline())
	assert.Zero(t, cfg.Search.MaxExpansions)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "degrees.yaml")
	body := `
data:
  source: sqlite
  path: movies.db
  strict_links: true
search:
  discipline: LIFO
  max_expansions: 500
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("DEGREES_SEARCH_MAX_EXPANSIONS", "42")
	t.Setenv("DEGREES_METRICS_ENABLED", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, SourceSQLite, cfg.Data.Source)
	assert.Equal(t, "movies.db", cfg.Data.Path)
	assert.True(t, cfg.Data.StrictLinks)
	assert.Equal(t, frontier.LIFO, cfg.Discipline())
	assert.Equal(t, 42, cfg.Search.MaxExpansions)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  discipline: random\n  max_expansions: -3\n"), 0o644))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "Discipline")
	assert.Contains(t, err.Error(), "MaxExpansions")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}

func TestApplyEnv_BadValues(t *testing.T) {
	cfg := Default()
	env := map[string]string{"DEGREES_DATA_STRICT_LINKS": "maybe"}
	err := cfg.applyEnv(func(k string) (string, bool) { v, ok := env[k]; return v, ok })
	assert.ErrorIs(t, err, ErrInvalid)

	env = map[string]string{"DEGREES_SEARCH_MAX_EXPANSIONS": "lots"}
	err = cfg.applyEnv(func(k string) (string, bool) { v, ok := env[k]; return v, ok })
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate_EmptyPath(t *testing.T) {
	cfg := Default()
	cfg.Data.Path = ""
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}
