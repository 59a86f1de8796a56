package vault

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/blanzp/mdvault/internal/config"
)

// OpenInEditor opens a note file in the user's configured editor and waits
// for it to exit. The core never reads the result back; the next operation's
// fresh disk read picks up whatever the editor wrote.
//
// Returns false without error when no editor is configured.
func OpenInEditor(cfg *config.Config, filePath string) (bool, error) {
	if cfg == nil {
		return false, nil
	}
	editor := cfg.GetEditor()
	if editor == "" {
		return false, nil
	}

	var cmd *exec.Cmd
	if strings.Contains(editor, " ") {
		// Compound commands like "open -a Cursor" go through the shell.
		cmd = exec.Command("sh", "-c", editor+" "+shellQuote(filePath))
	} else {
		cmd = exec.Command(editor, filePath)
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return true, fmt.Errorf("editor '%s': %w", editor, err)
	}
	return true, nil
}

// shellQuote quotes a string for safe use in shell commands.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\"'\"'") + "'"
}
