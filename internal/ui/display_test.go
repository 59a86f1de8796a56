package ui

import "testing"

func TestNewDisplayContextNonTTY(t *testing.T) {
	// Test binaries run with stdout piped, so detection falls back to the
	// default width with rendering disabled.
	dc := NewDisplayContext()
	if dc.IsTTY {
		t.Fatal("expected IsTTY false for piped stdout")
	}
	if dc.TermWidth != DefaultTermWidth {
		t.Errorf("TermWidth = %d, want %d", dc.TermWidth, DefaultTermWidth)
	}
}
