// Package slugs provides canonical slugification helpers used across mdvault.
//
// A slug is the filesystem-safe, lowercase, hyphenated form of a note
// identifier: "Meeting Log" -> "meeting-log". Note filenames are derived from
// slugs, so every code path that maps an identifier to a file must go through
// this package.
package slugs

import (
	"strings"
	"unicode"

	goslug "github.com/gosimple/slug"
)

// Slugify converts an identifier to a filesystem-safe slug.
//
// Runs of whitespace and hyphens collapse to a single hyphen and the result
// is lowercased. Symbols and accented characters are transliterated rather
// than dropped: "R&D" becomes "r-and-d" and "café" becomes "cafe". Slugs are
// stable only within a vault, so existing notes keep resolving either way,
// but the transliterated forms read better as filenames.
func Slugify(s string) string {
	s = strings.TrimSuffix(s, ".md")
	slugged := goslug.Make(s)
	if slugged == "" {
		slugged = strings.ToLower(strings.Join(strings.Fields(s), "-"))
	}
	return slugged
}

// Filename returns the markdown filename for an identifier.
func Filename(s string) string {
	return Slugify(s) + ".md"
}

// TitleizeStem converts a filename stem to a display title.
// Hyphens become spaces and each word is capitalized: "project-x" -> "Project X".
// This is the fallback title for notes whose header carries none.
func TitleizeStem(stem string) string {
	words := strings.FieldsFunc(stem, func(r rune) bool {
		return r == '-' || r == ' '
	})
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// Stem returns the filename stem (base name without the .md extension).
func Stem(filename string) string {
	base := filename
	if idx := strings.LastIndexByte(base, '/'); idx >= 0 {
		base = base[idx+1:]
	}
	return strings.TrimSuffix(base, ".md")
}
