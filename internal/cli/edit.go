package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blanzp/mdvault/internal/ui"
	"github.com/blanzp/mdvault/internal/vault"
)

var editCmd = &cobra.Command{
	Use:   "edit [note]",
	Short: "Open a note in your editor",
	Long: `Resolves a note and opens it in the configured editor ($EDITOR or the
editor setting in config.toml). With no argument and fzf installed, pick
interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		identifier, err := resolveNoteArg(args, "edit> ")
		if err != nil {
			return handleError(ErrMissingArgument, err, "Run 'mdvault edit <note>'")
		}

		note, err := vault.Find(getVaultPath(), identifier)
		if errors.Is(err, vault.ErrNotFound) {
			return handleErrorMsg(ErrNoteNotFound,
				fmt.Sprintf("no note matches '%s'", identifier), notFoundSuggestion())
		}
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		opened, err := vault.OpenInEditor(getConfig(), note.AbsPath)
		if err != nil {
			return handleError(ErrEditorFailed, err, "")
		}
		if !opened {
			return handleErrorMsg(ErrEditorFailed, "no editor configured",
				"Set $EDITOR or the editor option in ~/.config/mdvault/config.toml")
		}

		takeSnapshot(fmt.Sprintf("Edit note: %s", note.Title()))

		if isJSONOutput() {
			outputSuccess(noteToJSON(note), nil)
			return nil
		}
		fmt.Println(ui.Successf("Edited %s", ui.Title(note.Path)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
