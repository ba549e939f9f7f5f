package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := writeConfig(t, "server:\n  port: 9090\n")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "localhost:9090", cfg.Server.Addr())
	assert.Equal(t, "data/products.json", cfg.Catalog.DataURL)
	assert.Equal(t, 100*time.Millisecond, cfg.UI.ScrollDebounce())
	assert.Equal(t, 500, cfg.UI.BackToTopThreshold)
	assert.Equal(t, 200, cfg.UI.ScrollProbeOffset)
	assert.Equal(t, time.Second, cfg.UI.CountUpDuration())
	assert.Equal(t, 16*time.Millisecond, cfg.UI.CountUpFrame())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := writeConfig(t, "catalog:\n  data_url: data/products.json\n")
	t.Setenv("CATALOG_DATA_URL", "https://cdn.example/products.json")
	t.Setenv("UI_SCROLL_DEBOUNCE_MS", "250")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example/products.json", cfg.Catalog.DataURL)
	assert.Equal(t, 250*time.Millisecond, cfg.UI.ScrollDebounce())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml file not found")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := writeConfig(t, "ui:\n  count_up_frame_ms: 0\n")

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count_up_frame_ms")
}
