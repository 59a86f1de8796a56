package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blanzp/mdvault/internal/buildinfo"
	"github.com/blanzp/mdvault/internal/config"
	"github.com/blanzp/mdvault/internal/ui"
)

var initAutoCommit bool

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a new vault",
	Long: `Creates a vault at the given path (default: current directory).

A vault is an ordinary directory of markdown files plus a ` + config.MarkerFile + `
marker recording when it was created and whether mutations auto-commit to git.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) > 0 {
			path = args[0]
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}

		marker := filepath.Join(abs, config.MarkerFile)
		if _, err := os.Stat(marker); err == nil {
			return handleErrorMsg(ErrVaultExists,
				fmt.Sprintf("'%s' is already a vault", abs),
				"Remove "+config.MarkerFile+" to re-initialize")
		}

		if err := os.MkdirAll(abs, 0o755); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		vcfg := config.NewVaultConfig(buildinfo.Version)
		vcfg.AutoCommit = initAutoCommit
		if err := config.SaveVaultConfig(abs, vcfg); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"path":        abs,
				"auto_commit": vcfg.AutoCommit,
			}, nil)
			return nil
		}

		fmt.Println(ui.Successf("Initialized vault at %s", abs))
		if vcfg.AutoCommit {
			fmt.Println(ui.Hint("Auto-commit enabled: mutations are recorded with git when available"))
		}
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initAutoCommit, "auto-commit", false, "Record mutations with git commits")
	rootCmd.AddCommand(initCmd)
}
