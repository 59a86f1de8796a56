// Package buildinfo carries version metadata stamped into release binaries.
package buildinfo

import "fmt"

// These values are injected via ldflags for release builds.
// They default to empty for local/dev builds.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)

// String formats the version line printed by "mdvault version".
func String() string {
	v := Version
	if v == "" {
		v = "dev"
	}
	s := fmt.Sprintf("mdvault %s", v)
	if Commit != "" {
		s += fmt.Sprintf(" (%s)", shortCommit(Commit))
	}
	if Date != "" {
		s += fmt.Sprintf(" built %s", Date)
	}
	return s
}

func shortCommit(c string) string {
	if len(c) > 8 {
		return c[:8]
	}
	return c
}
