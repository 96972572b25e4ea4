package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoAPIKey indicates no API key has been stored.
var ErrNoAPIKey = errors.New("config: no api key stored")

// obfuscationKey is the fixed single-byte XOR key applied to the API key at
// rest. This is obfuscation, NOT encryption: it is trivially reversible and
// offers no confidentiality beyond keeping the raw value out of a casual
// directory listing. Do not mistake it for, or silently upgrade it to, real
// cryptography.
const obfuscationKey = 137

// ObfuscateKey applies the reversible per-byte XOR transform.
func ObfuscateKey(key string) string {
	out := []byte(key)
	for i := range out {
		out[i] ^= obfuscationKey
	}
	return string(out)
}

// DeobfuscateKey reverses ObfuscateKey. XOR is its own inverse.
func DeobfuscateKey(obfuscated string) string {
	return ObfuscateKey(obfuscated)
}

// SaveAPIKey writes the obfuscated API key to path, creating parent
// directories as needed. The file is owner-readable only.
func SaveAPIKey(path, key string) error {
	if key == "" {
		return fmt.Errorf("config: api key must not be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: create key directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(ObfuscateKey(key)), 0600); err != nil {
		return fmt.Errorf("config: write key file: %w", err)
	}
	return nil
}

// LoadAPIKey reads and deobfuscates the stored API key.
// Returns ErrNoAPIKey when no key file exists.
func LoadAPIKey(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoAPIKey
		}
		return "", fmt.Errorf("config: read key file: %w", err)
	}
	return DeobfuscateKey(string(data)), nil
}

// ClearAPIKey removes the stored API key. Removing an absent key is not an
// error.
func ClearAPIKey(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("config: remove key file: %w", err)
	}
	return nil
}
