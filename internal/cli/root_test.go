package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestGlobalFlagsRegistered(t *testing.T) {
	want := map[string]bool{
		"vault-path": false,
		"config":     false,
		"json":       false,
	}
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if _, ok := want[f.Name]; ok {
			want[f.Name] = true
		}
	})
	for name, seen := range want {
		if !seen {
			t.Errorf("global flag --%s not registered", name)
		}
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{
		"init", "new", "daily", "list", "recent", "random",
		"search", "show", "edit", "tags", "info",
		"backlinks", "mv", "archive", "version",
	}

	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q not registered", name)
		}
	}
}
