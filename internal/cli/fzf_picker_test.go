package cli

import (
	"os/exec"
	"testing"
)

func TestCanUseFZFInteractive(t *testing.T) {
	prevLookPath := fzfLookPath
	prevStdin := fzfStdinIsTerminal
	prevStdout := fzfStdoutIsTerminal
	prevJSON := jsonOutput
	t.Cleanup(func() {
		fzfLookPath = prevLookPath
		fzfStdinIsTerminal = prevStdin
		fzfStdoutIsTerminal = prevStdout
		jsonOutput = prevJSON
	})

	fzfLookPath = func(string) (string, error) { return "/usr/local/bin/fzf", nil }
	fzfStdinIsTerminal = func() bool { return true }
	fzfStdoutIsTerminal = func() bool { return true }
	jsonOutput = false

	t.Run("all conditions met", func(t *testing.T) {
		if !canUseFZFInteractive() {
			t.Fatal("expected interactive picker to be available")
		}
	})

	t.Run("disabled in json mode", func(t *testing.T) {
		jsonOutput = true
		defer func() { jsonOutput = false }()
		if canUseFZFInteractive() {
			t.Fatal("expected picker disabled in JSON mode")
		}
	})

	t.Run("disabled when stdin piped", func(t *testing.T) {
		fzfStdinIsTerminal = func() bool { return false }
		defer func() { fzfStdinIsTerminal = func() bool { return true } }()
		if canUseFZFInteractive() {
			t.Fatal("expected picker disabled without a stdin TTY")
		}
	})

	t.Run("disabled when fzf missing", func(t *testing.T) {
		fzfLookPath = func(string) (string, error) { return "", exec.ErrNotFound }
		defer func() {
			fzfLookPath = func(string) (string, error) { return "/usr/local/bin/fzf", nil }
		}()
		if canUseFZFInteractive() {
			t.Fatal("expected picker disabled without fzf installed")
		}
	})
}
