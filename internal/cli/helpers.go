package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blanzp/mdvault/internal/snapshot"
	"github.com/blanzp/mdvault/internal/ui"
	"github.com/blanzp/mdvault/internal/vault"
)

// noteJSON is the JSON representation of a note used across commands.
type noteJSON struct {
	Path    string   `json:"path"`
	Title   string   `json:"title"`
	Tags    []string `json:"tags,omitempty"`
	Aliases []string `json:"aliases,omitempty"`
	Created string   `json:"created,omitempty"`
}

func summaryToJSON(s vault.Summary) noteJSON {
	return noteJSON{
		Path:    s.Path,
		Title:   s.Title,
		Tags:    s.Tags,
		Created: s.Created,
	}
}

func noteToJSON(n *vault.Note) noteJSON {
	return noteJSON{
		Path:    n.Path,
		Title:   n.Title(),
		Tags:    n.Metadata.Tags,
		Aliases: n.Metadata.Aliases,
		Created: n.Metadata.Created,
	}
}

// resolveNoteArg returns the note identifier: the positional argument when
// given, otherwise an interactive fzf pick over the vault's notes.
func resolveNoteArg(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if !canUseFZFInteractive() {
		return "", fmt.Errorf("missing note argument")
	}

	notes, err := vault.Enumerate(getVaultPath())
	if err != nil {
		return "", err
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].Path < notes[j].Path })

	lines := make([]string, len(notes))
	for i, n := range notes {
		lines[i] = n.Path + "\t" + n.Title
	}

	selection, ok, err := runFZFPicker(lines, fzfPickerOptions{
		Prompt:    prompt,
		Delimiter: "\t",
		WithNth:   "1,2",
	})
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("no note selected")
	}
	if idx := strings.IndexByte(selection, '\t'); idx >= 0 {
		selection = selection[:idx]
	}
	return selection, nil
}

// takeSnapshot fires the auto-commit collaborator. Failures never propagate.
func takeSnapshot(message string) {
	_ = snapshot.ForVault(getVaultPath(), getVaultConfig().AutoCommit).Snapshot(message)
}

// notFoundSuggestion builds the shared suggestion string for unresolved notes.
func notFoundSuggestion() string {
	return "Run 'mdvault list' to see available notes"
}

func pluralize(singular string, count int) string {
	if count == 1 {
		return singular
	}
	return singular + "s"
}

// printRenderedNote renders a note's markdown for the terminal. Piped output
// gets the raw markdown instead.
func printRenderedNote(n *vault.Note, display *ui.DisplayContext) error {
	content := fmt.Sprintf("# %s\n%s", n.Title(), stripLeadingHeading(n.Body, n.Title()))

	if !display.IsTTY {
		fmt.Print(content)
		if !strings.HasSuffix(content, "\n") {
			fmt.Println()
		}
		return nil
	}

	rendered, err := ui.RenderMarkdown(content, display.TermWidth)
	if err != nil {
		return err
	}
	fmt.Print(rendered)
	return nil
}

// stripLeadingHeading drops a leading "# Title" line matching the note title
// so the rendered view doesn't repeat it.
func stripLeadingHeading(body, title string) string {
	trimmed := strings.TrimLeft(body, "\n")
	if strings.HasPrefix(trimmed, "# ") {
		line, rest, _ := strings.Cut(trimmed, "\n")
		if strings.TrimSpace(strings.TrimPrefix(line, "# ")) == title {
			return rest
		}
	}
	return body
}
