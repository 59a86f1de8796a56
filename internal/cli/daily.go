package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/blanzp/mdvault/internal/ui"
	"github.com/blanzp/mdvault/internal/vault"
)

// dailyBody is the task skeleton seeded into a fresh daily note.
const dailyBody = "\n# %s\n\n## Tasks\n\n## Notes\n\n"

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Open or create today's daily note",
	Long:  `Creates daily/YYYY-MM-DD.md for today if it doesn't exist, then opens it in your editor.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		today := time.Now().Format("2006-01-02")

		note, err := vault.Create(getVaultPath(), vault.CreateOptions{
			Title: today,
			Dir:   "daily",
			Tags:  []string{"daily"},
			Body:  fmt.Sprintf(dailyBody, today),
		})
		created := true
		if errors.Is(err, vault.ErrExists) {
			created = false
			note, err = vault.Find(getVaultPath(), "daily/"+today+".md")
		}
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		if created {
			takeSnapshot(fmt.Sprintf("Create daily note: %s", today))
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"note":    noteToJSON(note),
				"created": created,
			}, nil)
			return nil
		}

		if created {
			fmt.Println(ui.Successf("Created %s", ui.Title(note.Path)))
		} else {
			fmt.Printf("Today's note: %s\n", ui.Title(note.Path))
		}

		if opened, err := vault.OpenInEditor(getConfig(), note.AbsPath); err != nil {
			fmt.Println(ui.Warningf("editor failed: %v", err))
		} else if opened {
			takeSnapshot(fmt.Sprintf("Edit note: %s", today))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dailyCmd)
}
