package frontmatter

import (
	"reflect"
	"testing"
)

func TestDecodeFullHeader(t *testing.T) {
	content := `---
title: Meeting Notes
created: 2025-01-15T09:30:00
tags:
  - work
  - planning
aliases:
  - minutes
---

# Meeting Notes

Body text here.
`
	m, body := Decode(content)

	if m.Title != "Meeting Notes" {
		t.Errorf("Title = %q, want %q", m.Title, "Meeting Notes")
	}
	if m.Created != "2025-01-15T09:30:00" {
		t.Errorf("Created = %q", m.Created)
	}
	if !reflect.DeepEqual(m.Tags, []string{"work", "planning"}) {
		t.Errorf("Tags = %#v", m.Tags)
	}
	if !reflect.DeepEqual(m.Aliases, []string{"minutes"}) {
		t.Errorf("Aliases = %#v", m.Aliases)
	}
	if body != "\n# Meeting Notes\n\nBody text here.\n" {
		t.Errorf("body = %q", body)
	}
}

func TestDecodeNoHeader(t *testing.T) {
	content := "# Just a note\n\nNo header at all.\n"
	m, body := Decode(content)
	if !m.IsZero() {
		t.Errorf("expected zero metadata, got %#v", m)
	}
	if body != content {
		t.Errorf("body = %q, want full content", body)
	}
}

func TestDecodeUnclosedHeader(t *testing.T) {
	content := "---\ntitle: Broken\nno closing delimiter\n"
	m, body := Decode(content)
	if !m.IsZero() {
		t.Errorf("expected zero metadata for unclosed header, got %#v", m)
	}
	if body != content {
		t.Errorf("body = %q, want full content", body)
	}
}

func TestDecodeFieldsInAnyOrder(t *testing.T) {
	content := "---\ntags:\n  - a\ntitle: Late Title\n---\nbody"
	m, body := Decode(content)
	if m.Title != "Late Title" {
		t.Errorf("Title = %q", m.Title)
	}
	if !reflect.DeepEqual(m.Tags, []string{"a"}) {
		t.Errorf("Tags = %#v", m.Tags)
	}
	if body != "body" {
		t.Errorf("body = %q", body)
	}
}

func TestDecodeInlineListValue(t *testing.T) {
	content := "---\ntags: work\n---\n"
	m, _ := Decode(content)
	if !reflect.DeepEqual(m.Tags, []string{"work"}) {
		t.Errorf("Tags = %#v", m.Tags)
	}
}

func TestDecodePreservesUnknownFields(t *testing.T) {
	content := "---\ntitle: T\nstatus: draft\nrelated:\n  - other\n---\nbody"
	m, _ := Decode(content)
	want := []string{"status: draft", "related:", "  - other"}
	if !reflect.DeepEqual(m.Extra, want) {
		t.Errorf("Extra = %#v, want %#v", m.Extra, want)
	}

	// Unknown lines come back out on encode.
	encoded := Encode(m)
	m2, _ := Decode(encoded + "body")
	if !reflect.DeepEqual(m2, m) {
		t.Errorf("re-decoded = %#v, want %#v", m2, m)
	}
}

func TestEncodeCanonicalOrder(t *testing.T) {
	m := Metadata{
		Title:   "My Note",
		Created: "2025-01-15",
		Tags:    []string{"one", "two"},
		Aliases: []string{"alt"},
	}
	want := `---
title: My Note
created: 2025-01-15
tags:
  - one
  - two
aliases:
  - alt
---
`
	if got := Encode(m); got != want {
		t.Errorf("Encode =\n%q\nwant\n%q", got, want)
	}
}

func TestEncodeOmitsEmptyFields(t *testing.T) {
	m := Metadata{Title: "Sparse"}
	want := "---\ntitle: Sparse\n---\n"
	if got := Encode(m); got != want {
		t.Errorf("Encode = %q, want %q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		m    Metadata
		body string
	}{
		{
			name: "full",
			m: Metadata{
				Title:   "Project X",
				Created: "2025-01-15T09:30:00",
				Tags:    []string{"work", "work", "dup-allowed"},
				Aliases: []string{"px", "the project"},
			},
			body: "\n# Project X\n\nSee [[meeting-notes]].\n",
		},
		{
			name: "title only",
			m:    Metadata{Title: "Minimal"},
			body: "body\n",
		},
		{
			name: "empty body",
			m:    Metadata{Title: "No Body", Created: "2024-12-31"},
			body: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMeta, gotBody := Decode(Encode(tt.m) + tt.body)
			if !reflect.DeepEqual(gotMeta, tt.m) {
				t.Errorf("metadata = %#v, want %#v", gotMeta, tt.m)
			}
			if gotBody != tt.body {
				t.Errorf("body = %q, want %q", gotBody, tt.body)
			}
		})
	}
}

func TestEncodeIdempotentOnDecodedHeader(t *testing.T) {
	header := "---\ntitle: Stable\ncreated: 2025-01-01\ntags:\n  - t1\n---\n"
	m, _ := Decode(header + "body")
	if got := Encode(m); got != header {
		t.Errorf("re-encoded header = %q, want byte-identical %q", got, header)
	}
}
