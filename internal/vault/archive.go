package vault

import (
	"fmt"
	"os"
	"path/filepath"
)

// Archive moves a note into the archive subtree, creating it on demand. The
// file moves by filename only; directory structure under its original
// location is discarded. Returns the note's new path relative to the vault
// root.
//
// No link rewriting happens: references to an archived note dangle by design,
// since archived notes are excluded from all future resolution and backlink
// scans.
func Archive(root, identifier string) (*Note, string, error) {
	note, err := Find(root, identifier)
	if err != nil {
		return nil, "", err
	}

	archiveDir := filepath.Join(root, ArchiveDir)
	if err := os.MkdirAll(archiveDir, 0o755); err != nil {
		return nil, "", fmt.Errorf("create archive directory: %w", err)
	}

	filename := filepath.Base(note.AbsPath)
	dest := filepath.Join(archiveDir, filename)
	if _, err := os.Stat(dest); err == nil {
		return nil, "", ErrExists
	}

	if err := os.Rename(note.AbsPath, dest); err != nil {
		return nil, "", err
	}

	rel := filepath.ToSlash(filepath.Join(ArchiveDir, filename))
	return note, rel, nil
}
