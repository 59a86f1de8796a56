package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/blanzp/mdvault/internal/ui"
	"github.com/blanzp/mdvault/internal/vault"
)

var recentCmd = &cobra.Command{
	Use:   "recent [n]",
	Short: "List recently modified notes",
	Long:  `Lists the n most recently modified notes (default 10).`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit := 10
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return handleErrorMsg(ErrInvalidInput,
					fmt.Sprintf("invalid count '%s'", args[0]),
					"Pass a positive number, e.g. 'mdvault recent 5'")
			}
			limit = n
		}

		notes, err := vault.Enumerate(getVaultPath())
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		sort.Slice(notes, func(i, j int) bool {
			return notes[i].Modified.After(notes[j].Modified)
		})
		if len(notes) > limit {
			notes = notes[:limit]
		}

		if isJSONOutput() {
			items := make([]noteJSON, len(notes))
			for i, n := range notes {
				items[i] = summaryToJSON(n)
			}
			outputSuccess(map[string]interface{}{"items": items}, &Meta{Count: len(items)})
			return nil
		}

		if len(notes) == 0 {
			fmt.Println("No notes found")
			return nil
		}

		table := ui.NewTable(3)
		for _, n := range notes {
			table.AddRow(n.Modified.Format("2006-01-02 15:04"), n.Title, ui.FilePath(n.Path))
		}
		fmt.Print(table.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recentCmd)
}
