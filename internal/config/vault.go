package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/blanzp/mdvault/internal/atomicfile"
)

// MarkerFile is the per-vault configuration artifact. Its presence marks a
// directory as a vault root.
const MarkerFile = ".mdvault.json"

// VaultConfig is the per-vault configuration stored in .mdvault.json.
// The core never interprets Created or Version; AutoCommit decides whether
// mutations trigger the snapshot collaborator.
type VaultConfig struct {
	Created    string `json:"created"`
	Version    string `json:"version"`
	AutoCommit bool   `json:"auto_commit"`
}

// NewVaultConfig returns the config written by vault initialization.
func NewVaultConfig(version string) *VaultConfig {
	return &VaultConfig{
		Created: time.Now().Format(time.RFC3339),
		Version: version,
	}
}

// LoadVaultConfig reads the vault config from the vault root.
// Returns an empty config if the marker file doesn't exist.
func LoadVaultConfig(vaultPath string) (*VaultConfig, error) {
	data, err := os.ReadFile(filepath.Join(vaultPath, MarkerFile))
	if err != nil {
		if os.IsNotExist(err) {
			return &VaultConfig{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", MarkerFile, err)
	}

	var cfg VaultConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", MarkerFile, err)
	}
	return &cfg, nil
}

// SaveVaultConfig writes the vault config to the vault root.
func SaveVaultConfig(vaultPath string, cfg *VaultConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return atomicfile.WriteFile(filepath.Join(vaultPath, MarkerFile), append(data, '\n'), 0)
}

// FindVaultRoot walks upward from dir until a directory containing the marker
// file is found. Returns "" when no vault encloses dir.
func FindVaultRoot(dir string) string {
	current, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(current, MarkerFile)); err == nil {
			return current
		}
		parent := filepath.Dir(current)
		if parent == current {
			return ""
		}
		current = parent
	}
}
