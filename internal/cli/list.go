package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blanzp/mdvault/internal/frontmatter"
	"github.com/blanzp/mdvault/internal/ui"
	"github.com/blanzp/mdvault/internal/vault"
)

var listTag string

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List notes",
	Long: `Lists notes sorted by title. An optional query filters by substring match
against title or content; -t filters by exact tag.

Examples:
  mdvault list
  mdvault list kubernetes
  mdvault list -t work`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) > 0 {
			query = args[0]
		}

		notes, err := vault.Enumerate(getVaultPath())
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		filtered, err := filterSummaries(notes, query, listTag)
		if err != nil {
			return handleError(ErrFileReadError, err, "")
		}
		sort.Slice(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Title) < strings.ToLower(filtered[j].Title)
		})

		if isJSONOutput() {
			items := make([]noteJSON, len(filtered))
			for i, n := range filtered {
				items[i] = summaryToJSON(n)
			}
			outputSuccess(map[string]interface{}{"items": items}, &Meta{Count: len(items)})
			return nil
		}

		if len(filtered) == 0 {
			fmt.Println("No notes found")
			return nil
		}

		table := ui.NewTable(3)
		for _, n := range filtered {
			table.AddRow(n.Title, strings.Join(n.Tags, ", "), n.Path)
		}
		fmt.Print(table.String())
		fmt.Println(ui.Hint(fmt.Sprintf("%d notes", len(filtered))))
		return nil
	},
}

// filterSummaries applies the query and tag filters. The query matches
// case-insensitively against the title first and falls back to a content scan.
func filterSummaries(notes []vault.Summary, query, tag string) ([]vault.Summary, error) {
	if query == "" && tag == "" {
		return notes, nil
	}
	lowered := strings.ToLower(query)

	var out []vault.Summary
	for _, n := range notes {
		if tag != "" && !hasTag(n.Tags, tag) {
			continue
		}
		if lowered != "" {
			if !strings.Contains(strings.ToLower(n.Title), lowered) {
				data, err := os.ReadFile(n.AbsPath)
				if err != nil {
					return nil, err
				}
				_, body := frontmatter.Decode(string(data))
				if !strings.Contains(strings.ToLower(body), lowered) {
					continue
				}
			}
		}
		out = append(out, n)
	}
	return out, nil
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func init() {
	listCmd.Flags().StringVarP(&listTag, "tag", "t", "", "Filter by tag")
	rootCmd.AddCommand(listCmd)
}
