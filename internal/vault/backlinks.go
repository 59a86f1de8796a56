package vault

import (
	"os"

	"github.com/blanzp/mdvault/internal/frontmatter"
	"github.com/blanzp/mdvault/internal/slugs"
	"github.com/blanzp/mdvault/internal/wikilink"
)

// Backlinks returns a summary for every non-archived note whose body
// references the target note. Both the target's filename stem and its title
// are valid reference forms; tokens match exactly and case-sensitively.
//
// Bodies are re-read and re-scanned on every call: notes may be edited
// externally between calls, so no reverse-link index is kept.
func Backlinks(root, identifier string) (*Note, []Summary, error) {
	target, err := Find(root, identifier)
	if err != nil {
		return nil, nil, err
	}

	tokens := []string{target.Stem()}
	if title := target.Metadata.Title; title != "" && title != tokens[0] {
		tokens = append(tokens, title)
	}

	var sources []Summary
	err = Walk(root, func(result WalkResult) error {
		// A note linking to itself is not a backlink.
		if result.Path == target.AbsPath {
			return nil
		}

		content, err := os.ReadFile(result.Path)
		if err != nil {
			return err
		}
		meta, body := frontmatter.Decode(string(content))
		if !wikilink.Contains(body, tokens...) {
			return nil
		}

		title := meta.Title
		if title == "" {
			title = slugs.TitleizeStem(slugs.Stem(result.RelativePath))
		}

		info, err := result.Entry.Info()
		if err != nil {
			return err
		}

		sources = append(sources, Summary{
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
		return nil, nil, err
	}

	return target, sources, nil
}
