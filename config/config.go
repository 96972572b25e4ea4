// Package config manages application configuration and the locally stored
// API credential.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all application configuration for playlist analysis runs.
type Config struct {
	// StorePath is the JSON playlist store location.
	StorePath string `json:"store_path"`
	// KeyPath is where the obfuscated API key file lives.
	KeyPath string `json:"key_path"`
	// CallTimeout is the maximum time for one analysis run's remote calls.
	CallTimeout time.Duration `json:"call_timeout"`
	// LookupConcurrency bounds concurrent per-video duration lookups within
	// one page.
	LookupConcurrency int `json:"lookup_concurrency"`

	// APIKey is a key provided via environment rather than the key file.
	// It is never written back to disk.
	APIKey string `json:"-"`
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	configDir := filepath.Join(os.Getenv("HOME"), ".config", "ytlens")
	return &Config{
		StorePath:         filepath.Join(configDir, "playlists.json"),
		KeyPath:           filepath.Join(configDir, "apikey"),
		CallTimeout:       5 * time.Minute,
		LookupConcurrency: 8,
	}
}

// Load loads configuration from environment variables, config file, and applies defaults.
// Priority: env vars > config file > defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Try to load from config file
	if err := cfg.loadFromFile(); err != nil {
		// Config file is optional
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	// Override with environment variables
	cfg.loadFromEnv()

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile attempts to load config from ytlens.json in current directory or home directory.
func (c *Config) loadFromFile() error {
	paths := []string{
		"ytlens.json",
		filepath.Join(os.Getenv("HOME"), ".config", "ytlens", "ytlens.json"),
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}

		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		return nil
	}

	return os.ErrNotExist
}

// loadFromEnv overrides config with environment variables.
func (c *Config) loadFromEnv() {
	if v := os.Getenv("YTLENS_STORE_PATH"); v != "" {
		c.StorePath = v
	}
	if v := os.Getenv("YTLENS_KEY_PATH"); v != "" {
		c.KeyPath = v
	}
	if v := os.Getenv("YTLENS_CALL_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.CallTimeout = d
		}
	}
	if v := os.Getenv("YTLENS_LOOKUP_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.LookupConcurrency = n
		}
	}
	if v := os.Getenv("YTLENS_API_KEY"); v != "" {
		c.APIKey = v
	}
}

// Validate checks that configuration values are valid and consistent.
// It returns an error if any configuration value is invalid.
func (c *Config) Validate() error {
	if c.StorePath == "" {
		return fmt.Errorf("store_path must not be empty")
	}
	if c.KeyPath == "" {
		return fmt.Errorf("key_path must not be empty")
	}
	if c.CallTimeout <= 0 {
		return fmt.Errorf("call_timeout must be positive")
	}
	if c.LookupConcurrency < 1 {
		return fmt.Errorf("lookup_concurrency must be at least 1")
	}
	return nil
}

// ResolveAPIKey returns the API key to use: the environment-provided key when
// set, otherwise the key stored (obfuscated) at KeyPath.
func (c *Config) ResolveAPIKey() (string, error) {
	if c.APIKey != "" {
		return c.APIKey, nil
	}
	return LoadAPIKey(c.KeyPath)
}
