// Package frontmatter encodes and decodes the metadata header carried at the
// top of every note.
//
// The header grammar is a constrained subset, not general YAML:
//
//	---
//	title: Meeting Notes
//	created: 2025-01-15T09:30:00
//	tags:
//	  - work
//	  - planning
//	aliases:
//	  - minutes
//	---
//
// Scalar fields are "key: value" lines; list fields are a label line followed
// by indented "- " item lines. Fields may appear in any order. Lines that
// don't match a recognized field are preserved verbatim and re-emitted after
// the known fields on encode.
package frontmatter

import (
	"strings"
)

// Delimiter is the header boundary line.
const Delimiter = "---"

// Metadata is the structured header of a note.
type Metadata struct {
	// Title is the display title. Empty means unset; callers fall back to a
	// titleized form of the filename stem.
	Title string

	// Created is an opaque timestamp string. It is never parsed, only echoed.
	Created string

	// Tags in insertion order. Duplicates are permitted.
	Tags []string

	// Aliases are alternate names usable in note lookups, in insertion order.
	Aliases []string

	// Extra holds unrecognized header lines verbatim, in their original
	// order. They are re-emitted after the known fields on encode.
	Extra []string
}

// IsZero reports whether no field is set.
func (m Metadata) IsZero() bool {
	return m.Title == "" && m.Created == "" &&
		len(m.Tags) == 0 && len(m.Aliases) == 0 && len(m.Extra) == 0
}

// Decode splits note content into metadata and body.
//
// A header is only recognized when the content begins with a delimiter line.
// If the header is absent, or the start delimiter has no matching end
// delimiter, the entire content is returned as body with zero metadata.
func Decode(content string) (Metadata, string) {
	var m Metadata

	lines := strings.Split(content, "\n")
	if len(lines) == 0 || lines[0] != Delimiter {
		return m, content
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if lines[i] == Delimiter {
			end = i
			break
		}
	}
	if end == -1 {
		// Unclosed header: treat the whole file as body.
		return m, content
	}

	parseHeader(&m, lines[1:end])
	return m, strings.Join(lines[end+1:], "\n")
}

// Encode renders the header block for m, including both delimiter lines.
// Fields are emitted in canonical order (title, created, tags, aliases,
// preserved unknowns); empty scalars and empty lists are omitted entirely.
func Encode(m Metadata) string {
	var b strings.Builder
	b.WriteString(Delimiter)
	b.WriteByte('\n')

	if m.Title != "" {
		b.WriteString("title: ")
		b.WriteString(m.Title)
		b.WriteByte('\n')
	}
	if m.Created != "" {
		b.WriteString("created: ")
		b.WriteString(m.Created)
		b.WriteByte('\n')
	}
	writeList(&b, "tags", m.Tags)
	writeList(&b, "aliases", m.Aliases)
	for _, line := range m.Extra {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteString(Delimiter)
	b.WriteByte('\n')
	return b.String()
}

func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(label)
	b.WriteString(":\n")
	for _, item := range items {
		b.WriteString("  - ")
		b.WriteString(item)
		b.WriteByte('\n')
	}
}

// parseHeader runs the per-field state machine over the header lines.
func parseHeader(m *Metadata, lines []string) {
	i := 0
	for i < len(lines) {
		line := lines[i]

		key, rest, ok := cutField(line)
		if !ok {
			m.Extra = append(m.Extra, line)
			i++
			continue
		}

		switch key {
		case "title":
			m.Title = strings.TrimSpace(rest)
			i++
		case "created":
			m.Created = strings.TrimSpace(rest)
			i++
		case "tags":
			items, next := collectItems(lines, i+1, rest)
			m.Tags = append(m.Tags, items...)
			i = next
		case "aliases":
			items, next := collectItems(lines, i+1, rest)
			m.Aliases = append(m.Aliases, items...)
			i = next
		default:
			// Unrecognized field: keep the label line and any indented
			// continuation lines exactly as written.
			m.Extra = append(m.Extra, line)
			i++
			for i < len(lines) && isIndented(lines[i]) {
				m.Extra = append(m.Extra, lines[i])
				i++
			}
		}
	}
}

// cutField matches a top-level "key: value" or "key:" line.
// Indented lines are never fields.
func cutField(line string) (key, rest string, ok bool) {
	if line == "" || line[0] == ' ' || line[0] == '\t' {
		return "", "", false
	}
	idx := strings.IndexByte(line, ':')
	if idx <= 0 {
		return "", "", false
	}
	key = line[:idx]
	for _, r := range key {
		if !isWordRune(r) {
			return "", "", false
		}
	}
	return key, line[idx+1:], true
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_' || r == '-':
		return true
	}
	return false
}

// collectItems gathers "- " item lines following a list label at lines[start:].
// An inline value on the label line ("tags: work") counts as a single item.
// Returns the items and the index of the first unconsumed line.
func collectItems(lines []string, start int, inline string) ([]string, int) {
	var items []string
	if v := strings.TrimSpace(inline); v != "" {
		items = append(items, v)
	}

	i := start
	for i < len(lines) {
		trimmed := strings.TrimLeft(lines[i], " \t")
		if trimmed == lines[i] || !strings.HasPrefix(trimmed, "- ") {
			break
		}
		items = append(items, strings.TrimSpace(trimmed[2:]))
		i++
	}
	return items, i
}

func isIndented(line string) bool {
	return line != "" && (line[0] == ' ' || line[0] == '\t')
}
