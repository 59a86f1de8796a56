package cli

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/blanzp/mdvault/internal/ui"
	"github.com/blanzp/mdvault/internal/vault"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Show a random note",
	Long:  `Picks a random non-archived note and renders it in the terminal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := vault.Enumerate(getVaultPath())
		if err != nil {
			return handleError(ErrInternal, err, "")
		}
		if len(notes) == 0 {
			return handleErrorMsg(ErrNoteNotFound, "the vault has no notes",
				"Run 'mdvault new <title>' to create one")
		}

		pick := notes[rand.Intn(len(notes))]
		note, err := vault.Find(getVaultPath(), pick.Path)
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		if isJSONOutput() {
			outputSuccess(noteToJSON(note), nil)
			return nil
		}

		fmt.Println(ui.Hint(note.Path))
		return printRenderedNote(note, ui.NewDisplayContext())
	},
}

func init() {
	rootCmd.AddCommand(randomCmd)
}
