// Package snapshot records vault mutations with an external version-control
// command.
//
// Snapshots are strictly best-effort: a missing git binary, a vault that isn't
// a repository, or a failing commit must never surface as an error from the
// operation that triggered the snapshot.
package snapshot

import (
	"os/exec"
)

// Snapshotter commits a change description after a vault mutation.
type Snapshotter interface {
	// Snapshot records the current vault state with the given message.
	// Implementations swallow their own failures; the return value exists
	// so callers that want to report (not abort) can do so.
	Snapshot(message string) error
}

// Git snapshots by shelling out to the git binary in the vault directory.
type Git struct {
	// Dir is the vault root the commit runs in.
	Dir string
}

// NewGit returns a git-backed snapshotter for the vault at dir.
func NewGit(dir string) *Git {
	return &Git{Dir: dir}
}

// Snapshot stages everything and commits. Every failure path is silent: no
// git, no repository, or nothing to commit are all normal here.
func (g *Git) Snapshot(message string) error {
	if _, err := exec.LookPath("git"); err != nil {
		return nil
	}

	add := exec.Command("git", "add", "-A")
	add.Dir = g.Dir
	if err := add.Run(); err != nil {
		return nil
	}

	commit := exec.Command("git", "commit", "-m", message, "--quiet")
	commit.Dir = g.Dir
	_ = commit.Run()
	return nil
}

// Noop is a Snapshotter that does nothing. Used when auto-commit is disabled
// and in tests.
type Noop struct{}

// Snapshot implements Snapshotter.
func (Noop) Snapshot(string) error { return nil }

// ForVault returns the snapshotter matching the vault's auto-commit setting.
func ForVault(dir string, autoCommit bool) Snapshotter {
	if autoCommit {
		return NewGit(dir)
	}
	return Noop{}
}

// Recorder is a Snapshotter that captures messages for test assertions.
type Recorder struct {
	Messages []string
}

// Snapshot implements Snapshotter.
func (r *Recorder) Snapshot(message string) error {
	r.Messages = append(r.Messages, message)
	return nil
}
