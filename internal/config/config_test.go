package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	assert.Equal(t, 10, cfg.API.Timeout)
	assert.Equal(t, 10, cfg.List.PageSize)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "catalog:", cfg.Redis.KeyPrefix)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	content := []byte(`
api:
  base_url: http://shop.example/api
  timeout: 3
  token: file-token
redis:
  enabled: true
  port: 6380
list:
  page_size: 25
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("CATALOG_API_TOKEN", "env-token")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://shop.example/api", cfg.API.BaseURL)
	assert.Equal(t, 3, cfg.API.Timeout)
	assert.Equal(t, "env-token", cfg.API.Token)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 6380, cfg.Redis.Port)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 25, cfg.List.PageSize)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}
