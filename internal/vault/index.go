package vault

import (
	"os"

	"github.com/blanzp/mdvault/internal/frontmatter"
	"github.com/blanzp/mdvault/internal/slugs"
)

// Enumerate walks the vault and returns a summary for every non-archived
// note. No ordering is guaranteed; callers that need determinism sort by the
// field they care about.
//
// Filtering beyond the archive/hidden exclusion is the caller's
// responsibility.
func Enumerate(root string) ([]Summary, error) {
	var notes []Summary

	err := Walk(root, func(result WalkResult) error {
		content, err := os.ReadFile(result.Path)
		if err != nil {
			return err
		}
		meta, _ := frontmatter.Decode(string(content))

		info, err := result.Entry.Info()
		if err != nil {
			return err
		}

		title := meta.Title
		if title == "" {
			title = slugs.TitleizeStem(slugs.Stem(result.RelativePath))
		}

		notes = append(notes, Summary{
			Path:     result.RelativePath,
			AbsPath:  result.Path,
			Title:    title,
			Tags:     meta.Tags,
			Created:  meta.Created,
			Modified: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return notes, nil
}
