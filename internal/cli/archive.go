package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blanzp/mdvault/internal/ui"
	"github.com/blanzp/mdvault/internal/vault"
)

var archiveCmd = &cobra.Command{
	Use:   "archive <note>",
	Short: "Move a note into the archive",
	Long: `Moves a note into the archive/ directory. Archived notes are excluded
from listing, resolution, and backlinks; links pointing at them are left
untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		identifier := args[0]

		note, newPath, err := vault.Archive(getVaultPath(), identifier)
		if errors.Is(err, vault.ErrNotFound) {
			return handleErrorMsg(ErrNoteNotFound,
				fmt.Sprintf("no note matches '%s'", identifier), notFoundSuggestion())
		}
		if errors.Is(err, vault.ErrExists) {
			return handleErrorMsg(ErrNoteExists,
				fmt.Sprintf("'%s' already exists in the archive", identifier), "")
		}
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		takeSnapshot(fmt.Sprintf("Archive note: %s", note.Title()))

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"old_path": note.Path,
				"new_path": newPath,
			}, nil)
			return nil
		}

		fmt.Println(ui.Successf("Archived %s → %s", note.Path, ui.FilePath(newPath)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(archiveCmd)
}
