package ui

import (
	"os"

	"github.com/charmbracelet/x/term"
)

// DefaultTermWidth is the wrap width used when stdout is not a terminal or
// size detection fails.
const DefaultTermWidth = 120

// DisplayContext records where a command's output is going. Commands that
// render notes consult IsTTY to choose between glamour rendering and raw
// markdown, and TermWidth for word wrap.
type DisplayContext struct {
	TermWidth int
	IsTTY     bool
}

// NewDisplayContext probes stdout. One probe per command invocation; the
// result is passed down rather than re-detected.
func NewDisplayContext() *DisplayContext {
	fd := os.Stdout.Fd()
	if !term.IsTerminal(fd) {
		return &DisplayContext{TermWidth: DefaultTermWidth}
	}

	width := DefaultTermWidth
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		width = w
	}
	return &DisplayContext{TermWidth: width, IsTTY: true}
}
