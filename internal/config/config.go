// Package config handles mdvault configuration: the global config file and
// the per-vault marker file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the global mdvault configuration.
type Config struct {
	// Vault is the default vault path used when the working directory is not
	// inside a vault.
	Vault string `toml:"vault"`

	// Editor is the editor command for opening notes (defaults to $EDITOR).
	// May be a compound command like "open -a Cursor".
	Editor string `toml:"editor"`

	// UI holds terminal presentation settings.
	UI UIConfig `toml:"ui"`
}

// UIConfig configures terminal output styling.
type UIConfig struct {
	// Accent is the highlight color: an ANSI 256 code ("39") or hex
	// ("#7aa2f7"). "none" disables the accent.
	Accent string `toml:"accent"`

	// CodeTheme is the chroma syntax theme for rendered code blocks.
	CodeTheme string `toml:"code_theme"`
}

// Load loads the configuration from the default location.
// Returns an empty config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// DefaultPath returns the default config file path.
// Prefers ~/.config/mdvault/config.toml, falling back to the OS config dir.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "mdvault", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "mdvault", "config.toml")
	}
	return filepath.Join(".", "config.toml")
}

// GetEditor returns the editor command, falling back to $EDITOR.
func (c *Config) GetEditor() string {
	if c.Editor != "" {
		return c.Editor
	}
	return os.Getenv("EDITOR")
}
