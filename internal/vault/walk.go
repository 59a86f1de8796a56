package vault

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// WalkResult describes one note file visited by Walk.
type WalkResult struct {
	Path         string // absolute path
	RelativePath string // relative to the vault root
	Entry        fs.DirEntry
}

// Walk visits every non-archived note file under the vault root and calls the
// handler for each. It skips hidden entries (dot-prefixed files and
// directories) and the archive subtree, and only visits .md files.
//
// Visit order is the walk order of the filesystem; callers needing a
// deterministic order must sort what they collect.
func Walk(root string, handler func(result WalkResult) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			if strings.HasPrefix(name, ".") || name == ArchiveDir {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(d.Name(), ".") || !strings.HasSuffix(d.Name(), NoteExt) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		return handler(WalkResult{
			Path:         path,
			RelativePath: filepath.ToSlash(rel),
			Entry:        d,
		})
	})
}
