package vault_test

import (
	"errors"
	"testing"

	"github.com/blanzp/mdvault/internal/testutil"
	"github.com/blanzp/mdvault/internal/vault"
)

func TestArchive(t *testing.T) {
	tv := testutil.NewTestVault(t).
		WithNote("meeting-notes", "Meeting Notes", "Agenda.\n").
		WithNote("project-x", "Project X", "See [[meeting-notes]]\n").
		Build()

	note, newPath, err := vault.Archive(tv.Path, "meeting-notes")
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if note.Path != "meeting-notes.md" {
		t.Errorf("note path = %q", note.Path)
	}
	if newPath != "archive/meeting-notes.md" {
		t.Errorf("newPath = %q", newPath)
	}

	tv.AssertFileNotExists("meeting-notes.md")
	tv.AssertFileExists("archive/meeting-notes.md")

	// No link rewriting: the reference dangles by design.
	tv.AssertFileContains("project-x.md", "[[meeting-notes]]")

	// Excluded from enumeration and resolution from now on.
	notes, err := vault.Enumerate(tv.Path)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	for _, n := range notes {
		if n.Path == "archive/meeting-notes.md" || n.Stem() == "meeting-notes" {
			t.Errorf("archived note still enumerated: %q", n.Path)
		}
	}
	if _, err := vault.Find(tv.Path, "meeting-notes"); !errors.Is(err, vault.ErrNotFound) {
		t.Errorf("Find on archived note: err = %v, want ErrNotFound", err)
	}
}

func TestArchiveFlattensDirectories(t *testing.T) {
	tv := testutil.NewTestVault(t).
		WithFile("daily/2025-01-15.md", "---\ntitle: 2025-01-15\n---\n\ndaily").
		Build()

	_, newPath, err := vault.Archive(tv.Path, "daily/2025-01-15.md")
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if newPath != "archive/2025-01-15.md" {
		t.Errorf("newPath = %q", newPath)
	}
	tv.AssertFileExists("archive/2025-01-15.md")
	tv.AssertFileNotExists("daily/2025-01-15.md")
}

func TestArchiveNotFound(t *testing.T) {
	tv := testutil.NewTestVault(t).Build()
	_, _, err := vault.Archive(tv.Path, "ghost")
	if !errors.Is(err, vault.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestArchiveCollision(t *testing.T) {
	tv := testutil.NewTestVault(t).
		WithNote("note", "Note", "body\n").
		WithFile("archive/note.md", "previously archived").
		Build()

	_, _, err := vault.Archive(tv.Path, "note")
	if !errors.Is(err, vault.ErrExists) {
		t.Fatalf("err = %v, want ErrExists", err)
	}
	tv.AssertFileExists("note.md")
}
