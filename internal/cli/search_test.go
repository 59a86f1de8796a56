package cli

import (
	"testing"

	"github.com/blanzp/mdvault/internal/testutil"
	"github.com/blanzp/mdvault/internal/vault"
)

func TestSearchVault(t *testing.T) {
	tv := testutil.NewTestVault(t).
		WithNote("meeting-notes", "Meeting Notes", "Discussed Kubernetes rollout.\nAction items below.\n").
		WithNote("project-x", "Project X", "Nothing relevant here.\n").
		WithFile("archive/old.md", "---\ntitle: Old\n---\n\nkubernetes everywhere\n").
		Build()

	matches, err := searchVault(tv.Path, "kubernetes", 0)
	if err != nil {
		t.Fatalf("searchVault: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1: %+v", len(matches), matches)
	}
	m := matches[0]
	if m.Path != "meeting-notes.md" {
		t.Errorf("path = %q", m.Path)
	}
	if m.Title != "Meeting Notes" {
		t.Errorf("title = %q", m.Title)
	}
	if m.Text != "Discussed Kubernetes rollout." {
		t.Errorf("text = %q", m.Text)
	}
}

func TestSearchVaultContextLines(t *testing.T) {
	tv := testutil.NewTestVault(t).
		WithNote("log", "Log", "first\nsecond\nthird match\nfourth").
		Build()

	matches, err := searchVault(tv.Path, "match", 2)
	if err != nil {
		t.Fatalf("searchVault: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}

	before := matches[0].Before
	if len(before) != 2 || before[0] != "first" || before[1] != "second" {
		t.Errorf("before = %q", before)
	}
	// Context extends past the match too, bounded by the body's end.
	after := matches[0].After
	if len(after) != 1 || after[0] != "fourth" {
		t.Errorf("after = %q", after)
	}
}

func TestSearchVaultNoMatches(t *testing.T) {
	tv := testutil.NewTestVault(t).
		WithNote("note", "Note", "body\n").
		Build()

	matches, err := searchVault(tv.Path, "absent", 0)
	if err != nil {
		t.Fatalf("searchVault: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("expected no matches, got %+v", matches)
	}
}

func TestFilterSummaries(t *testing.T) {
	tv := testutil.NewTestVault(t).
		WithNote("meeting-notes", "Meeting Notes", "Kubernetes rollout.\n", "work").
		WithNote("reading-list", "Reading List", "Books to read.\n", "personal").
		Build()

	notes, err := vault.Enumerate(tv.Path)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}

	t.Run("no filters", func(t *testing.T) {
		got, err := filterSummaries(notes, "", "")
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 2 {
			t.Errorf("got %d notes, want 2", len(got))
		}
	})

	t.Run("title query", func(t *testing.T) {
		got, err := filterSummaries(notes, "meeting", "")
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].Path != "meeting-notes.md" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("content query", func(t *testing.T) {
		got, err := filterSummaries(notes, "kubernetes", "")
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].Path != "meeting-notes.md" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("tag filter", func(t *testing.T) {
		got, err := filterSummaries(notes, "", "personal")
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].Path != "reading-list.md" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("query and tag must both match", func(t *testing.T) {
		got, err := filterSummaries(notes, "kubernetes", "personal")
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 0 {
			t.Errorf("got %+v, want none", got)
		}
	})
}
