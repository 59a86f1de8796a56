// Package vault implements the note store and link graph: enumerating notes
// under a vault root, resolving human-supplied identifiers to files, computing
// backlinks, and the rename/archive operations that keep the link graph
// coherent.
//
// Nothing here caches state between calls. Notes may be edited by other
// programs at any time, so every operation re-reads the vault from disk.
package vault

import (
	"errors"
	"os"
	"time"

	"github.com/blanzp/mdvault/internal/frontmatter"
	"github.com/blanzp/mdvault/internal/slugs"
)

const (
	// ArchiveDir is the reserved subtree for archived notes. Notes under it
	// are excluded from enumeration, resolution, and backlink scans.
	ArchiveDir = "archive"

	// NoteExt is the file extension of note files.
	NoteExt = ".md"
)

// Sentinel errors modeling expected outcomes. These are results, not faults:
// "note not found" is a normal answer to a lookup.
var (
	// ErrNotFound means an identifier resolved to no note.
	ErrNotFound = errors.New("note not found")

	// ErrExists means the target path for a create/rename is already taken.
	ErrExists = errors.New("target already exists")
)

// Summary is a lightweight per-note view produced by enumeration.
type Summary struct {
	// Path is the note's location relative to the vault root.
	Path string

	// AbsPath is the absolute file path.
	AbsPath string

	// Title is the resolved title: the header title when present, otherwise
	// the titleized filename stem.
	Title string

	// Tags from the note header, insertion order preserved.
	Tags []string

	// Created is the opaque creation timestamp from the header.
	Created string

	// Modified is the file modification time.
	Modified time.Time
}

// Stem returns the summary's filename stem.
func (s Summary) Stem() string {
	return slugs.Stem(s.Path)
}

// Note is a fully-read note: its location, decoded header, and body text.
type Note struct {
	Path     string // relative to vault root
	AbsPath  string
	Metadata frontmatter.Metadata
	Body     string
}

// Title returns the note's display title with the filename-stem fallback.
func (n *Note) Title() string {
	if n.Metadata.Title != "" {
		return n.Metadata.Title
	}
	return slugs.TitleizeStem(slugs.Stem(n.Path))
}

// Stem returns the note's filename stem.
func (n *Note) Stem() string {
	return slugs.Stem(n.Path)
}

// ReadNote reads and decodes the note at absPath. relPath is the path
// recorded on the note, relative to the vault root.
func ReadNote(absPath, relPath string) (*Note, error) {
	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, err
	}
	meta, body := frontmatter.Decode(string(content))
	return &Note{
		Path:     relPath,
		AbsPath:  absPath,
		Metadata: meta,
		Body:     body,
	}, nil
}
