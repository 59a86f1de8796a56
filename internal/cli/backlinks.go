package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blanzp/mdvault/internal/ui"
	"github.com/blanzp/mdvault/internal/vault"
)

var backlinksCmd = &cobra.Command{
	Use:   "backlinks <note>",
	Short: "Show notes linking to a note",
	Long: `Shows every note whose body wikilinks to the target, by slug or title form.

Examples:
  mdvault backlinks meeting-notes
  mdvault backlinks "Meeting Notes" --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := args[0]

		note, sources, err := vault.Backlinks(getVaultPath(), target)
		if errors.Is(err, vault.ErrNotFound) {
			return handleErrorMsg(ErrNoteNotFound,
				fmt.Sprintf("no note matches '%s'", target), notFoundSuggestion())
		}
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		if isJSONOutput() {
			items := make([]noteJSON, len(sources))
			for i, s := range sources {
				items[i] = summaryToJSON(s)
			}
			outputSuccess(map[string]interface{}{
				"target": noteToJSON(note),
				"items":  items,
			}, &Meta{Count: len(items)})
			return nil
		}

		if len(sources) == 0 {
			fmt.Printf("No backlinks to '%s'\n", note.Title())
			return nil
		}

		fmt.Printf("Backlinks to %s:\n\n", ui.Title(note.Title()))
		for _, s := range sources {
			fmt.Printf("  ← %s %s\n", s.Title, ui.FilePath(s.Path))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backlinksCmd)
}
