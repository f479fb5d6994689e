package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemascope/schemascope/pkg/apperrors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromYAML(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	path := writeConfig(t, `
mongodb:
  database: shop
schema:
  sample_size: 50
  include_fields:
    - name
  exclude_fields:
    - password
output:
  directory: out
  format: mmd
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	assert.Equal(t, "shop", cfg.MongoDB.Database)
	assert.Equal(t, 50, cfg.Schema.SampleSize)
	assert.Equal(t, []string{"name"}, cfg.Schema.IncludeFields)
	assert.Equal(t, []string{"password"}, cfg.Schema.ExcludeFields)
	assert.Equal(t, "out", cfg.Output.Directory)
	assert.Equal(t, "mmd", cfg.Output.Format)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	path := writeConfig(t, `
mongodb:
  database: shop
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Schema.SampleSize)
	assert.Equal(t, "schemas", cfg.Output.Directory)
	assert.Equal(t, "md", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.CorrectionEnabled())
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("MONGODB_DATABASE", "from_env")
	path := writeConfig(t, `
mongodb:
  database: from_yaml
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from_env", cfg.MongoDB.Database)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateMissingURI(t *testing.T) {
	cfg := &Config{}
	cfg.MongoDB.Database = "shop"
	cfg.Output.Directory = "out"
	cfg.Schema.SampleSize = 10

	err := cfg.Validate()
	assert.True(t, errors.Is(err, apperrors.ErrMissingDatabaseURI))
}

func TestValidateMissingDatabase(t *testing.T) {
	cfg := &Config{}
	cfg.MongoDB.URI = "mongodb://localhost:27017"
	cfg.Output.Directory = "out"
	cfg.Schema.SampleSize = 10

	err := cfg.Validate()
	assert.True(t, errors.Is(err, apperrors.ErrMissingDatabase))
}

func TestValidateBadSampleSize(t *testing.T) {
	cfg := &Config{}
	cfg.MongoDB.URI = "mongodb://localhost:27017"
	cfg.MongoDB.Database = "shop"
	cfg.Output.Directory = "out"

	assert.Error(t, cfg.Validate())
}

func TestCorrectionEnabled(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.CorrectionEnabled())
	cfg.Anthropic.APIKey = "sk-test"
	assert.True(t, cfg.CorrectionEnabled())
}
