package vault

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/blanzp/mdvault/internal/frontmatter"
	"github.com/blanzp/mdvault/internal/slugs"
)

// Find locates the note matching a human-supplied identifier. Strategies are
// tried in order; the first match wins and ambiguity is not reported:
//
//  1. exact filename match, extension included ("meeting-notes.md")
//  2. slugified identifier matched against filenames ("Meeting Notes")
//  3. case-insensitive comparison against each note's header title
//  4. case-insensitive comparison against each note's aliases
//
// Strategies 3-4 cost a linear scan of the vault; callers doing repeated
// lookups should batch through Enumerate instead of calling Find in a loop.
//
// Returns ErrNotFound when nothing matches. Archived and hidden notes never
// match.
func Find(root, identifier string) (*Note, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, ErrNotFound
	}

	// Fast path: identifier is a literal relative path from the vault root.
	// The cleaned path obeys the same exclusions as Walk, so hidden and
	// archived notes stay unreachable here too.
	if strings.HasSuffix(identifier, NoteExt) {
		candidate := filepath.Join(root, filepath.FromSlash(identifier))
		if insideVault(root, candidate) {
			if rel, err := filepath.Rel(root, candidate); err == nil && !hiddenOrArchived(rel) {
				if _, err := os.Stat(candidate); err == nil {
					return ReadNote(candidate, filepath.ToSlash(rel))
				}
			}
		}
	}

	wantFilename := identifier
	if !strings.HasSuffix(wantFilename, NoteExt) {
		wantFilename += NoteExt
	}
	wantSlug := slugs.Filename(identifier)

	// Single walk, matches bucketed by strategy priority.
	var byFilename, bySlug, byTitle, byAlias *WalkResult

	err := Walk(root, func(result WalkResult) error {
		name := filepath.Base(result.Path)

		if byFilename == nil && name == wantFilename {
			r := result
			byFilename = &r
			return nil
		}
		if bySlug == nil && name == wantSlug {
			r := result
			bySlug = &r
			return nil
		}
		if byTitle != nil && byAlias != nil {
			return nil
		}

		content, err := os.ReadFile(result.Path)
		if err != nil {
			return err
		}
		meta, _ := frontmatter.Decode(string(content))

		if byTitle == nil && strings.EqualFold(meta.Title, identifier) && meta.Title != "" {
			r := result
			byTitle = &r
			return nil
		}
		if byAlias == nil {
			for _, alias := range meta.Aliases {
				if strings.EqualFold(alias, identifier) {
					r := result
					byAlias = &r
					break
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, match := range []*WalkResult{byFilename, bySlug, byTitle, byAlias} {
		if match != nil {
			return ReadNote(match.Path, match.RelativePath)
		}
	}
	return nil, ErrNotFound
}

// hiddenOrArchived applies Walk's exclusion rules to a cleaned relative path:
// dot-prefixed entries at any depth, and any archive directory segment.
func hiddenOrArchived(relPath string) bool {
	segments := strings.Split(filepath.ToSlash(relPath), "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, ".") {
			return true
		}
		if seg == ArchiveDir && i < len(segments)-1 {
			return true
		}
	}
	return false
}

// insideVault reports whether path stays under the vault root once cleaned.
func insideVault(root, path string) bool {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return absPath == absRoot || strings.HasPrefix(absPath, absRoot+string(filepath.Separator))
}
