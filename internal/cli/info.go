package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blanzp/mdvault/internal/buildinfo"
	"github.com/blanzp/mdvault/internal/config"
	"github.com/blanzp/mdvault/internal/ui"
	"github.com/blanzp/mdvault/internal/vault"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show vault information",
	RunE: func(cmd *cobra.Command, args []string) error {
		vaultPath := getVaultPath()
		vcfg := getVaultConfig()

		notes, err := vault.Enumerate(vaultPath)
		if err != nil {
			return handleError(ErrInternal, err, "")
		}
		archived := countArchived(vaultPath)

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"path":        vaultPath,
				"created":     vcfg.Created,
				"version":     vcfg.Version,
				"auto_commit": vcfg.AutoCommit,
				"notes":       len(notes),
				"archived":    archived,
			}, nil)
			return nil
		}

		fmt.Print(infoTable(vaultPath, vcfg, len(notes), archived).String())
		return nil
	},
}

// infoTable lays out the human-readable vault summary. Created and Version
// rows appear only when the marker file recorded them.
func infoTable(vaultPath string, vcfg *config.VaultConfig, notes, archived int) *ui.Table {
	table := ui.NewTable(2)
	table.AddRow("Vault", ui.Title(vaultPath))
	if vcfg.Created != "" {
		table.AddRow("Created", vcfg.Created)
	}
	if vcfg.Version != "" {
		table.AddRow("Version", vcfg.Version)
	}
	table.AddRow("Notes", fmt.Sprintf("%d", notes))
	table.AddRow("Archived", fmt.Sprintf("%d", archived))
	table.AddRow("Auto-commit", onOff(vcfg.AutoCommit))
	return table
}

// countArchived counts markdown files under the archive directory.
func countArchived(vaultPath string) int {
	entries, err := os.ReadDir(filepath.Join(vaultPath, vault.ArchiveDir))
	if err != nil {
		return 0
	}
	count := 0
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), vault.NoteExt) {
			count++
		}
	}
	return count
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"version": buildinfo.Version,
				"commit":  buildinfo.Commit,
				"date":    buildinfo.Date,
			}, nil)
			return
		}
		fmt.Println(buildinfo.String())
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(versionCmd)
}
