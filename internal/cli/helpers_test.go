package cli

import (
	"testing"

	"github.com/blanzp/mdvault/internal/vault"
)

func TestStripLeadingHeading(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		title string
		want  string
	}{
		{
			name:  "matching heading removed",
			body:  "\n# Meeting Notes\n\nAgenda.\n",
			title: "Meeting Notes",
			want:  "\nAgenda.\n",
		},
		{
			name:  "different heading kept",
			body:  "\n# Something Else\n\nAgenda.\n",
			title: "Meeting Notes",
			want:  "\n# Something Else\n\nAgenda.\n",
		},
		{
			name:  "no heading",
			body:  "\njust text\n",
			title: "Meeting Notes",
			want:  "\njust text\n",
		},
		{
			name:  "empty body",
			body:  "",
			title: "Meeting Notes",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripLeadingHeading(tt.body, tt.title); got != tt.want {
				t.Errorf("stripLeadingHeading() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCountTags(t *testing.T) {
	notes := []vault.Summary{
		{Path: "a.md", Tags: []string{"work", "planning"}},
		{Path: "b.md", Tags: []string{"work"}},
		{Path: "c.md", Tags: []string{"ideas"}},
		{Path: "d.md"},
	}

	counts := countTags(notes)
	want := []tagCount{
		{Tag: "work", Count: 2},
		{Tag: "ideas", Count: 1},
		{Tag: "planning", Count: 1},
	}
	if len(counts) != len(want) {
		t.Fatalf("got %d tags, want %d", len(counts), len(want))
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("counts[%d] = %+v, want %+v", i, counts[i], want[i])
		}
	}
}

func TestCountTagsEmpty(t *testing.T) {
	if counts := countTags(nil); len(counts) != 0 {
		t.Errorf("expected no tags, got %v", counts)
	}
}
