package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blanzp/mdvault/internal/ui"
	"github.com/blanzp/mdvault/internal/vault"
)

var moveCmd = &cobra.Command{
	Use:     "mv <old> <new-title>",
	Aliases: []string{"rename"},
	Short:   "Rename a note and update links",
	Long: `Renames a note to a new title. The file moves to the new title's slug,
the header title is rewritten, and every [[wikilink]] to the old name is
updated in place.

Examples:
  mdvault mv meeting-notes "Meeting Log"
  mdvault mv "Old Title" "New Title"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		oldIdentifier, newTitle := args[0], args[1]

		result, err := vault.Rename(getVaultPath(), oldIdentifier, newTitle)
		if errors.Is(err, vault.ErrNotFound) {
			return handleErrorMsg(ErrNoteNotFound,
				fmt.Sprintf("no note matches '%s'", oldIdentifier), notFoundSuggestion())
		}
		if errors.Is(err, vault.ErrExists) {
			return handleErrorMsg(ErrNoteExists,
				fmt.Sprintf("a note already occupies the slug for '%s'", newTitle),
				"Pick a different title")
		}
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		takeSnapshot(fmt.Sprintf("Rename: %s → %s", oldIdentifier, newTitle))

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"old_path":      result.OldPath,
				"new_path":      result.NewPath,
				"title":         result.NewTitle,
				"links_updated": result.LinksUpdated,
				"updated_paths": result.UpdatedPaths,
			}, nil)
			return nil
		}

		fmt.Println(ui.Successf("Renamed %s → %s", result.OldPath, ui.Title(result.NewPath)))
		if result.LinksUpdated > 0 {
			fmt.Println(ui.Hint(fmt.Sprintf("Updated links in %d %s",
				result.LinksUpdated, pluralize("note", result.LinksUpdated))))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
