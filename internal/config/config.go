// Package config loads client settings from a JSON file, a .env file and
// VODMARKS_* environment variables, in increasing order of precedence.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "VODMARKS"

// Config holds application configuration.
type Config struct {
	BaseURL             string   `json:"baseUrl" mapstructure:"baseUrl"`
	TimeoutSeconds      int      `json:"timeoutSeconds" mapstructure:"timeoutSeconds"`
	PrefsBackend        string   `json:"prefsBackend" mapstructure:"prefsBackend"` // auto, json or sqlite
	PrefsPath           string   `json:"prefsPath" mapstructure:"prefsPath"`       // directory; empty = config dir
	LogFile             string   `json:"logFile" mapstructure:"logFile"`           // empty = no logging
	LogLevel            string   `json:"logLevel" mapstructure:"logLevel"`
	CheckConcurrency    int      `json:"checkConcurrency" mapstructure:"checkConcurrency"`
	CheckTimeoutSeconds int      `json:"checkTimeoutSeconds" mapstructure:"checkTimeoutSeconds"`
	CheckExcludeDomains []string `json:"checkExcludeDomains" mapstructure:"checkExcludeDomains"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:             "http://127.0.0.1:5177",
		TimeoutSeconds:      30,
		PrefsBackend:        "auto",
		LogLevel:            "info",
		CheckConcurrency:    10,
		CheckTimeoutSeconds: 10,
		CheckExcludeDomains: []string{},
	}
}

// Timeout returns the HTTP request timeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CheckTimeout returns the per-URL timeout of the link checker.
func (c Config) CheckTimeout() time.Duration {
	return time.Duration(c.CheckTimeoutSeconds) * time.Second
}

// envKeys maps config keys to their environment variables.
var envKeys = map[string]string{
	"baseUrl":             "BASE_URL",
	"timeoutSeconds":      "TIMEOUT_SECONDS",
	"prefsBackend":        "PREFS_BACKEND",
	"prefsPath":           "PREFS_PATH",
	"logFile":             "LOG_FILE",
	"logLevel":            "LOG_LEVEL",
	"checkConcurrency":    "CHECK_CONCURRENCY",
	"checkTimeoutSeconds": "CHECK_TIMEOUT_SECONDS",
	"checkExcludeDomains": "CHECK_EXCLUDE_DOMAINS",
}

// LoadDotEnv loads .env files into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

// LoadConfig reads config from the JSON file and applies environment overrides.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault("baseUrl", defaults.BaseURL)
	v.SetDefault("timeoutSeconds", defaults.TimeoutSeconds)
	v.SetDefault("prefsBackend", defaults.PrefsBackend)
	v.SetDefault("prefsPath", defaults.PrefsPath)
	v.SetDefault("logFile", defaults.LogFile)
	v.SetDefault("logLevel", defaults.LogLevel)
	v.SetDefault("checkConcurrency", defaults.CheckConcurrency)
	v.SetDefault("checkTimeoutSeconds", defaults.CheckTimeoutSeconds)
	v.SetDefault("checkExcludeDomains", defaults.CheckExcludeDomains)
	for key, env := range envKeys {
		if err := v.BindEnv(key, EnvPrefix+"_"+env); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Non-fatal: keep going with defaults even if the file can't be created
		_ = SaveConfig(path, &defaults)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// Apply defaults for invalid values
	if config.BaseURL == "" {
		config.BaseURL = defaults.BaseURL
	}
	if config.TimeoutSeconds <= 0 {
		config.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if config.PrefsBackend == "" {
		config.PrefsBackend = defaults.PrefsBackend
	}
	if config.CheckConcurrency <= 0 {
		config.CheckConcurrency = defaults.CheckConcurrency
	}
	if config.CheckTimeoutSeconds <= 0 {
		config.CheckTimeoutSeconds = defaults.CheckTimeoutSeconds
	}
	if config.CheckExcludeDomains == nil {
		config.CheckExcludeDomains = defaults.CheckExcludeDomains
	}

	return &config, nil
}

// SaveConfig writes config to the JSON file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultDir returns the default config directory: ~/.config/vodmarks
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "vodmarks"), nil
}

// DefaultConfigFilePath returns the default config path: ~/.config/vodmarks/config.json
func DefaultConfigFilePath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}
