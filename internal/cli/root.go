// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blanzp/mdvault/internal/config"
	"github.com/blanzp/mdvault/internal/ui"
)

var (
	// Global flags
	vaultPathFlag string
	configPath    string

	// Resolved values
	resolvedVaultPath string
	cfg               *config.Config
	vaultCfg          *config.VaultConfig
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mdvault",
	Short: "mdvault - A plain-markdown note vault",
	Long: `mdvault manages a vault of plain markdown notes linked by [[wikilinks]].

Notes carry a small metadata header (title, created, tags, aliases) and are
addressable by filename, slug, title, or alias. The markdown files are the
source of truth; there is no database to rebuild or corrupt.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip vault resolution for commands that don't need it
		switch cmd.Name() {
		case "init", "completion", "help", "version":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = loadGlobalConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		ui.ConfigureTheme(cfg.UI.Accent)
		ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)

		// Resolve vault path: explicit flag > enclosing vault > configured default
		if vaultPathFlag != "" {
			resolvedVaultPath = vaultPathFlag
		} else if root := config.FindVaultRoot(mustGetwd()); root != "" {
			resolvedVaultPath = root
		} else if cfg.Vault != "" {
			resolvedVaultPath = expandHome(cfg.Vault)
		} else {
			return fmt.Errorf(`no vault found

Either:
  1. Run from inside a vault (a directory containing %s)
  2. Use --vault-path /path/to/vault
  3. Set vault in ~/.config/mdvault/config.toml
  4. Run 'mdvault init /path/to/new/vault' to create one`, config.MarkerFile)
		}

		marker := filepath.Join(resolvedVaultPath, config.MarkerFile)
		if _, err := os.Stat(marker); os.IsNotExist(err) {
			return fmt.Errorf("not a vault: %s\n\nRun 'mdvault init %s' to create it", resolvedVaultPath, resolvedVaultPath)
		}

		vaultCfg, err = config.LoadVaultConfig(resolvedVaultPath)
		if err != nil {
			return fmt.Errorf("failed to load vault config: %w", err)
		}

		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&vaultPathFlag, "vault-path", "", "Explicit path to vault directory")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
}

// getVaultPath returns the resolved vault path.
func getVaultPath() string {
	return resolvedVaultPath
}

// getConfig returns the loaded global config.
func getConfig() *config.Config {
	return cfg
}

// getVaultConfig returns the loaded vault config.
func getVaultConfig() *config.VaultConfig {
	return vaultCfg
}

func loadGlobalConfig() (*config.Config, error) {
	var loadedCfg *config.Config
	var err error
	if strings.TrimSpace(configPath) != "" {
		loadedCfg, err = config.LoadFrom(configPath)
	} else {
		loadedCfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if loadedCfg == nil {
		loadedCfg = &config.Config{}
	}
	return loadedCfg, nil
}

func mustGetwd() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return home + strings.TrimPrefix(path, "~")
		}
	}
	return path
}
