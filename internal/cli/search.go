package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blanzp/mdvault/internal/frontmatter"
	"github.com/blanzp/mdvault/internal/ui"
	"github.com/blanzp/mdvault/internal/vault"
)

var searchContext int

// searchMatch is one matching line within a note.
type searchMatch struct {
	Path   string   `json:"path"`
	Title  string   `json:"title"`
	Line   int      `json:"line"`
	Text   string   `json:"text"`
	Before []string `json:"before,omitempty"`
	After  []string `json:"after,omitempty"`
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search note contents",
	Long: `Case-insensitive substring search across all note bodies.

Examples:
  mdvault search kubernetes
  mdvault search "standup notes" -C 2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]
		if strings.TrimSpace(query) == "" {
			return handleErrorMsg(ErrInvalidInput, "empty search query", "")
		}

		matches, err := searchVault(getVaultPath(), query, searchContext)
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"query": query,
				"items": matches,
			}, &Meta{Count: len(matches)})
			return nil
		}

		if len(matches) == 0 {
			fmt.Printf("No matches for '%s'\n", query)
			return nil
		}

		lastPath := ""
		for _, m := range matches {
			if m.Path != lastPath {
				if lastPath != "" {
					fmt.Println()
				}
				fmt.Printf("%s %s\n", ui.Title(m.Title), ui.FilePath(m.Path))
				lastPath = m.Path
			}
			for _, c := range m.Before {
				fmt.Printf("    %s\n", ui.Hint(c))
			}
			fmt.Printf("  %s: %s\n", ui.LineNum(m.Line), strings.TrimSpace(m.Text))
			for _, c := range m.After {
				fmt.Printf("    %s\n", ui.Hint(c))
			}
		}
		fmt.Println()
		fmt.Println(ui.Hint(fmt.Sprintf("%d matching lines", len(matches))))
		return nil
	},
}

// searchVault scans every note body for the query, case-insensitively.
// Line numbers are 1-based within the body. context adds up to that many
// lines on each side of a match.
func searchVault(root, query string, context int) ([]searchMatch, error) {
	notes, err := vault.Enumerate(root)
	if err != nil {
		return nil, err
	}
	lowered := strings.ToLower(query)

	var matches []searchMatch
	for _, n := range notes {
		data, err := os.ReadFile(n.AbsPath)
		if err != nil {
			return nil, err
		}
		_, body := frontmatter.Decode(string(data))

		lines := strings.Split(body, "\n")
		for i, line := range lines {
			if !strings.Contains(strings.ToLower(line), lowered) {
				continue
			}
			m := searchMatch{
				Path:  n.Path,
				Title: n.Title,
				Line:  i + 1,
				Text:  line,
			}
			for j := i - context; j < i; j++ {
				if j >= 0 {
					m.Before = append(m.Before, lines[j])
				}
			}
			for j := i + 1; j <= i+context && j < len(lines); j++ {
				m.After = append(m.After, lines[j])
			}
			matches = append(matches, m)
		}
	}
	return matches, nil
}

func init() {
	searchCmd.Flags().IntVarP(&searchContext, "context", "C", 0, "Lines of context before each match")
	rootCmd.AddCommand(searchCmd)
}
