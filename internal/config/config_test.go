package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nikbrunner/vodmarks/internal/config"
	"gotest.tools/v3/assert"
)

func TestLoadConfig_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg, err := config.LoadConfig(path)
	assert.NilError(t, err)
	assert.DeepEqual(t, *cfg, config.DefaultConfig())

	_, err = os.Stat(path)
	assert.NilError(t, err, "config file was not created")
}

func TestLoadConfig_FileValuesAndMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"baseUrl": "http://vods.local:9000", "checkExcludeDomains": ["youtube.com"], "timeoutSeconds": 0}`
	assert.NilError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := config.LoadConfig(path)
	assert.NilError(t, err)
	assert.Equal(t, cfg.BaseURL, "http://vods.local:9000")
	assert.DeepEqual(t, cfg.CheckExcludeDomains, []string{"youtube.com"})
	assert.Equal(t, cfg.Timeout(), 30*time.Second)
	assert.Equal(t, cfg.PrefsBackend, "auto")
	assert.Equal(t, cfg.CheckConcurrency, 10)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	assert.NilError(t, os.WriteFile(path, []byte(`{"baseUrl": "http://from-file"}`), 0644))

	t.Setenv("VODMARKS_BASE_URL", "http://from-env:5177")
	t.Setenv("VODMARKS_PREFS_BACKEND", "sqlite")
	t.Setenv("VODMARKS_TIMEOUT_SECONDS", "5")

	cfg, err := config.LoadConfig(path)
	assert.NilError(t, err)
	assert.Equal(t, cfg.BaseURL, "http://from-env:5177")
	assert.Equal(t, cfg.PrefsBackend, "sqlite")
	assert.Equal(t, cfg.Timeout(), 5*time.Second)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	assert.NilError(t, os.WriteFile(path, []byte(`{"baseUrl":`), 0644))

	_, err := config.LoadConfig(path)
	assert.ErrorContains(t, err, "read config")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	assert.NilError(t, os.WriteFile(envFile, []byte("VODMARKS_LOG_LEVEL=debug\n"), 0644))

	// register cleanup for a variable the .env file sets
	t.Setenv("VODMARKS_LOG_LEVEL", "")
	os.Unsetenv("VODMARKS_LOG_LEVEL")

	assert.NilError(t, config.LoadDotEnv(envFile, filepath.Join(dir, "missing.env")))
	assert.Equal(t, os.Getenv("VODMARKS_LOG_LEVEL"), "debug")

	cfg, err := config.LoadConfig(filepath.Join(dir, "config.json"))
	assert.NilError(t, err)
	assert.Equal(t, cfg.LogLevel, "debug")
}
