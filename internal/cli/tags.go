package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/blanzp/mdvault/internal/ui"
	"github.com/blanzp/mdvault/internal/vault"
)

// tagCount pairs a tag with its usage count.
type tagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List tags by frequency",
	Long:  `Lists every tag in the vault with its note count, most used first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := vault.Enumerate(getVaultPath())
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		counts := countTags(notes)

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"items": counts}, &Meta{Count: len(counts)})
			return nil
		}

		if len(counts) == 0 {
			fmt.Println("No tags found")
			return nil
		}

		table := ui.NewTable(2)
		for _, tc := range counts {
			table.AddRow(ui.Tag(tc.Tag), fmt.Sprintf("%d", tc.Count))
		}
		fmt.Print(table.String())
		return nil
	},
}

// countTags tallies tag usage across summaries, descending by count with
// alphabetical ties.
func countTags(notes []vault.Summary) []tagCount {
	byTag := make(map[string]int)
	for _, n := range notes {
		for _, t := range n.Tags {
			byTag[t]++
		}
	}

	counts := make([]tagCount, 0, len(byTag))
	for tag, count := range byTag {
		counts = append(counts, tagCount{Tag: tag, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Tag < counts[j].Tag
	})
	return counts
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}
