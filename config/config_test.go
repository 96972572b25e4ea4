package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty store path", func(c *Config) { c.StorePath = "" }, true},
		{"empty key path", func(c *Config) { c.KeyPath = "" }, true},
		{"zero timeout", func(c *Config) { c.CallTimeout = 0 }, true},
		{"negative timeout", func(c *Config) { c.CallTimeout = -time.Second }, true},
		{"zero concurrency", func(c *Config) { c.LookupConcurrency = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("YTLENS_STORE_PATH", "/tmp/custom.json")
	t.Setenv("YTLENS_CALL_TIMEOUT", "90s")
	t.Setenv("YTLENS_LOOKUP_CONCURRENCY", "3")
	t.Setenv("YTLENS_API_KEY", "env-key")

	cfg := DefaultConfig()
	cfg.loadFromEnv()

	if cfg.StorePath != "/tmp/custom.json" {
		t.Errorf("StorePath = %q, want /tmp/custom.json", cfg.StorePath)
	}
	if cfg.CallTimeout != 90*time.Second {
		t.Errorf("CallTimeout = %v, want 90s", cfg.CallTimeout)
	}
	if cfg.LookupConcurrency != 3 {
		t.Errorf("LookupConcurrency = %d, want 3", cfg.LookupConcurrency)
	}
	if cfg.APIKey != "env-key" {
		t.Errorf("APIKey = %q, want env-key", cfg.APIKey)
	}
}

func TestResolveAPIKeyPrefersEnv(t *testing.T) {
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "apikey")
	if err := SaveAPIKey(keyPath, "stored-key"); err != nil {
		t.Fatalf("SaveAPIKey() error = %v", err)
	}

	cfg := DefaultConfig()
	cfg.KeyPath = keyPath
	cfg.APIKey = "env-key"

	key, err := cfg.ResolveAPIKey()
	if err != nil {
		t.Fatalf("ResolveAPIKey() error = %v", err)
	}
	if key != "env-key" {
		t.Errorf("ResolveAPIKey() = %q, want the environment key", key)
	}

	cfg.APIKey = ""
	key, err = cfg.ResolveAPIKey()
	if err != nil {
		t.Fatalf("ResolveAPIKey() error = %v", err)
	}
	if key != "stored-key" {
		t.Errorf("ResolveAPIKey() = %q, want the stored key", key)
	}
}

func TestObfuscateKeyRoundTrip(t *testing.T) {
	tests := []string{
		"AIzaSyB-example-key-123",
		"short",
		"with spaces and $ymbols!",
	}

	for _, key := range tests {
		obfuscated := ObfuscateKey(key)
		if obfuscated == key {
			t.Errorf("ObfuscateKey(%q) returned the input unchanged", key)
		}
		if got := DeobfuscateKey(obfuscated); got != key {
			t.Errorf("DeobfuscateKey(ObfuscateKey(%q)) = %q", key, got)
		}
	}
}

func TestSaveLoadClearAPIKey(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "keys", "apikey")
	const key = "AIzaSyB-test-key"

	if err := SaveAPIKey(keyPath, key); err != nil {
		t.Fatalf("SaveAPIKey() error = %v", err)
	}

	// The at-rest bytes must not be the raw key. That is the whole point of
	// the obfuscation; it is still not encryption.
	raw, err := os.ReadFile(keyPath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(raw) == key {
		t.Error("key file contains the raw key in clear text")
	}

	got, err := LoadAPIKey(keyPath)
	if err != nil {
		t.Fatalf("LoadAPIKey() error = %v", err)
	}
	if got != key {
		t.Errorf("LoadAPIKey() = %q, want %q", got, key)
	}

	if err := ClearAPIKey(keyPath); err != nil {
		t.Fatalf("ClearAPIKey() error = %v", err)
	}
	if _, err := LoadAPIKey(keyPath); !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("LoadAPIKey() after clear error = %v, want ErrNoAPIKey", err)
	}

	// Clearing an absent key is not an error
	if err := ClearAPIKey(keyPath); err != nil {
		t.Errorf("ClearAPIKey() of absent key error = %v", err)
	}
}

func TestSaveAPIKeyRejectsEmpty(t *testing.T) {
	if err := SaveAPIKey(filepath.Join(t.TempDir(), "apikey"), ""); err == nil {
		t.Error("SaveAPIKey(\"\") should fail")
	}
}
