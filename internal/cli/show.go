package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blanzp/mdvault/internal/ui"
	"github.com/blanzp/mdvault/internal/vault"
)

var showCmd = &cobra.Command{
	Use:   "show [note]",
	Short: "Render a note in the terminal",
	Long: `Resolves a note by filename, slug, title, or alias and renders it.
With no argument and fzf installed, pick interactively.

Examples:
  mdvault show meeting-notes
  mdvault show "Meeting Notes"
  mdvault show k8s`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		identifier, err := resolveNoteArg(args, "show> ")
		if err != nil {
			return handleError(ErrMissingArgument, err, "Run 'mdvault show <note>'")
		}

		note, err := vault.Find(getVaultPath(), identifier)
		if errors.Is(err, vault.ErrNotFound) {
			return handleErrorMsg(ErrNoteNotFound,
				fmt.Sprintf("no note matches '%s'", identifier), notFoundSuggestion())
		}
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		if isJSONOutput() {
			data := noteToJSON(note)
			outputSuccess(map[string]interface{}{
				"note": data,
				"body": note.Body,
			}, nil)
			return nil
		}

		if len(note.Metadata.Tags) > 0 {
			tags := make([]string, len(note.Metadata.Tags))
			for i, t := range note.Metadata.Tags {
				tags[i] = ui.Tag(t)
			}
			fmt.Println(strings.Join(tags, " "))
		}
		fmt.Println(ui.Hint(note.Path))
		return printRenderedNote(note, ui.NewDisplayContext())
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
