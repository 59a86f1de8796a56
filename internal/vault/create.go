package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/blanzp/mdvault/internal/atomicfile"
	"github.com/blanzp/mdvault/internal/frontmatter"
	"github.com/blanzp/mdvault/internal/slugs"
)

// CreateOptions configures note creation.
type CreateOptions struct {
	// Title is the display title; the filename is its slug.
	Title string

	// Dir is an optional subdirectory (relative to the vault root) to create
	// the note in, e.g. "daily".
	Dir string

	// Tags and Aliases seed the header.
	Tags    []string
	Aliases []string

	// Body overrides the default "# Title" body. Must start with a newline
	// separating it from the header when non-empty.
	Body string

	// Now stamps the created field; zero means time.Now.
	Now time.Time
}

// Create writes a new note as one atomic file write of header plus body.
// Returns ErrExists if a note already occupies the target path.
func Create(root string, opts CreateOptions) (*Note, error) {
	stem := slugs.Slugify(opts.Title)
	if stem == "" {
		return nil, fmt.Errorf("cannot derive a filename from title %q", opts.Title)
	}

	rel := stem + NoteExt
	if opts.Dir != "" {
		rel = filepath.ToSlash(filepath.Join(opts.Dir, rel))
	}
	abs := filepath.Join(root, filepath.FromSlash(rel))

	if _, err := os.Stat(abs); err == nil {
		return nil, ErrExists
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, err
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	meta := frontmatter.Metadata{
		Title:   opts.Title,
		Created: now.Format("2006-01-02T15:04:05"),
		Tags:    opts.Tags,
		Aliases: opts.Aliases,
	}

	body := opts.Body
	if body == "" {
		body = fmt.Sprintf("\n# %s\n\n", opts.Title)
	}

	content := frontmatter.Encode(meta) + body
	if err := atomicfile.WriteFile(abs, []byte(content), 0o644); err != nil {
		return nil, err
	}

	return &Note{
		Path:     rel,
		AbsPath:  abs,
		Metadata: meta,
		Body:     body,
	}, nil
}
