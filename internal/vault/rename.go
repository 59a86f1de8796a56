package vault

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/blanzp/mdvault/internal/atomicfile"
	"github.com/blanzp/mdvault/internal/frontmatter"
	"github.com/blanzp/mdvault/internal/slugs"
	"github.com/blanzp/mdvault/internal/wikilink"
)

// RenameResult reports what a rename changed.
type RenameResult struct {
	// OldPath and NewPath are relative to the vault root.
	OldPath string
	NewPath string

	// NewTitle is the title written to the renamed note's header.
	NewTitle string

	// LinksUpdated counts the notes whose bodies were rewritten.
	LinksUpdated int

	// UpdatedPaths lists those notes, relative to the vault root.
	UpdatedPaths []string
}

// Rename renames a note and rewrites every reference to it across the vault:
//
//  1. resolve oldIdentifier (ErrNotFound if absent)
//  2. derive the new path from the slugified newIdentifier (ErrExists on
//     conflict, which is also what keeps non-archived stems unique)
//  3. rewrite the note's title to newIdentifier, keeping created, tags,
//     aliases, and unknown header fields verbatim
//  4. rewrite [[old-stem]] and [[oldIdentifier]] tokens in every other
//     non-archived note to the new stem / new identifier
//  5. delete the old file last
//
// All rewrites are computed in memory before the first write, so a note that
// fails to read aborts the whole rename with the vault untouched. The commit
// itself is sequential per-file with no cross-file rollback: a write failure
// mid-commit leaves both old and new files present, which the caller surfaces
// as an I/O fault.
func Rename(root, oldIdentifier, newIdentifier string) (*RenameResult, error) {
	note, err := Find(root, oldIdentifier)
	if err != nil {
		return nil, err
	}

	newStem := slugs.Slugify(newIdentifier)
	newRel := newStem + NoteExt
	newAbs := filepath.Join(root, newRel)

	if _, err := os.Stat(newAbs); err == nil {
		return nil, ErrExists
	}

	oldStem := note.Stem()

	// Renamed note: same header and body, new title.
	meta := note.Metadata
	meta.Title = newIdentifier
	renamed := frontmatter.Encode(meta) + note.Body

	// Stage link rewrites for every other note before touching disk.
	type staged struct {
		abs     string
		rel     string
		content string
	}
	var updates []staged

	err = Walk(root, func(result WalkResult) error {
		if result.Path == note.AbsPath || result.Path == newAbs {
			return nil
		}
		data, err := os.ReadFile(result.Path)
		if err != nil {
			return err
		}
		content := string(data)
		if !wikilink.Contains(content, oldStem, oldIdentifier) {
			return nil
		}
		content = strings.ReplaceAll(content, wikilink.Token(oldStem), wikilink.Token(newStem))
		content = strings.ReplaceAll(content, wikilink.Token(oldIdentifier), wikilink.Token(newIdentifier))
		if content == string(data) {
			return nil
		}
		updates = append(updates, staged{abs: result.Path, rel: result.RelativePath, content: content})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Commit: new file first, then propagation, old file deleted last.
	if err := atomicfile.WriteFile(newAbs, []byte(renamed), 0o644); err != nil {
		return nil, err
	}

	result := &RenameResult{
		OldPath:  note.Path,
		NewPath:  newRel,
		NewTitle: newIdentifier,
	}
	for _, u := range updates {
		if err := atomicfile.WriteFile(u.abs, []byte(u.content), 0); err != nil {
			return nil, err
		}
		result.LinksUpdated++
		result.UpdatedPaths = append(result.UpdatedPaths, u.rel)
	}

	if err := os.Remove(note.AbsPath); err != nil {
		return nil, err
	}
	return result, nil
}
