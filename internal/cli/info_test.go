package cli

import (
	"strings"
	"testing"

	"github.com/blanzp/mdvault/internal/config"
)

// infoRows parses the rendered table into label -> value pairs.
func infoRows(t *testing.T, rendered string) map[string]string {
	t.Helper()
	rows := make(map[string]string)
	for _, line := range strings.Split(strings.TrimRight(rendered, "\n"), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			t.Fatalf("malformed table line %q", line)
		}
		rows[fields[0]] = strings.Join(fields[1:], " ")
	}
	return rows
}

func TestInfoTableRows(t *testing.T) {
	vcfg := &config.VaultConfig{
		Created:    "2025-01-15T10:00:00Z",
		Version:    "1",
		AutoCommit: true,
	}

	rows := infoRows(t, infoTable("/tmp/vault", vcfg, 12, 3).String())

	want := map[string]string{
		"Created":     "2025-01-15T10:00:00Z",
		"Version":     "1",
		"Notes":       "12",
		"Archived":    "3",
		"Auto-commit": "on",
	}
	for label, value := range want {
		if rows[label] != value {
			t.Errorf("row %q = %q, want %q", label, rows[label], value)
		}
	}
	if _, ok := rows["Vault"]; !ok {
		t.Error("missing Vault row")
	}
}

func TestInfoTableOmitsEmptyMarkerFields(t *testing.T) {
	rows := infoRows(t, infoTable("/tmp/vault", &config.VaultConfig{}, 0, 0).String())

	if _, ok := rows["Created"]; ok {
		t.Error("unexpected Created row for empty marker field")
	}
	if _, ok := rows["Version"]; ok {
		t.Error("unexpected Version row for empty marker field")
	}
	if rows["Auto-commit"] != "off" {
		t.Errorf("Auto-commit = %q, want %q", rows["Auto-commit"], "off")
	}
}
