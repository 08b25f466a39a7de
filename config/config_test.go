// ABOUTME: Tests for config loading precedence and persistence
// ABOUTME: Uses temp dirs and t.Setenv so no real user config is touched

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akshada2906/circle-insights/api"
)

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	assert.Equal(t, api.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultMockPort, cfg.MockPort)
	assert.Empty(t, cfg.Token)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"base_url":"http://file/api/v1","log_level":"warn"}`), 0600))

	t.Setenv("CIRCLE_API_BASE_URL", "http://env/api/v1")
	t.Setenv("CIRCLE_API_TOKEN", "secret")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env/api/v1", cfg.BaseURL)
	assert.Equal(t, "secret", cfg.Token)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestDotEnvIsLoaded(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CIRCLE_MOCK_PORT=9100\n"), 0600))
	t.Cleanup(func() { _ = os.Unsetenv("CIRCLE_MOCK_PORT") })

	cfg, err := LoadFrom(filepath.Join(dir, "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.MockPort)
}

func TestSaveRoundTripsWithoutToken(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	cfg.Token = "secret"
	require.NoError(t, cfg.SetBaseURL("http://saved/api/v1"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")

	again, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "http://saved/api/v1", again.BaseURL)
}

func TestInvalidFileIsAnError(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0600))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "warn")
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, logger.GetLevel())

	logger.Info("hidden")
	logger.Warn("shown", "account_id", "acc-1")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "account_id=acc-1")

	_, err = NewLogger(&buf, "chatty")
	assert.Error(t, err)
}
