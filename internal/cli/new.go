package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blanzp/mdvault/internal/slugs"
	"github.com/blanzp/mdvault/internal/ui"
	"github.com/blanzp/mdvault/internal/vault"
)

var (
	newTags    []string
	newAliases []string
	newNoEdit  bool
)

var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Create a new note",
	Long: `Creates a note titled <title>. The filename is the slug of the title:
"Meeting Notes" becomes meeting-notes.md at the vault root.

Examples:
  mdvault new "Meeting Notes"
  mdvault new "Project X" -t work -t planning
  mdvault new "Kubernetes" -a k8s`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]

		note, err := vault.Create(getVaultPath(), vault.CreateOptions{
			Title:   title,
			Tags:    newTags,
			Aliases: newAliases,
		})
		if errors.Is(err, vault.ErrExists) {
			return handleErrorMsg(ErrNoteExists,
				fmt.Sprintf("a note named '%s' already exists", slugs.Filename(title)),
				"Pick a different title or edit the existing note")
		}
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		takeSnapshot(fmt.Sprintf("Create note: %s", title))

		if isJSONOutput() {
			outputSuccess(noteToJSON(note), nil)
			return nil
		}

		fmt.Println(ui.Successf("Created %s", ui.Title(note.Path)))

		if !newNoEdit {
			if opened, err := vault.OpenInEditor(getConfig(), note.AbsPath); err != nil {
				fmt.Println(ui.Warningf("editor failed: %v", err))
			} else if opened {
				takeSnapshot(fmt.Sprintf("Edit note: %s", title))
			}
		}
		return nil
	},
}

func init() {
	newCmd.Flags().StringArrayVarP(&newTags, "tag", "t", nil, "Tag to add (repeatable)")
	newCmd.Flags().StringArrayVarP(&newAliases, "alias", "a", nil, "Alias to add (repeatable)")
	newCmd.Flags().BoolVar(&newNoEdit, "no-edit", false, "Don't open the new note in the editor")
	rootCmd.AddCommand(newCmd)
}
