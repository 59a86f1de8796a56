package slugs

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Meeting Log", "meeting-log"},
		{"Project X", "project-x"},
		{"UPPER CASE", "upper-case"},
		{"already-slugged", "already-slugged"},
		{"Special: Characters!", "special-characters"},
		{"  spaced   out  ", "spaced-out"},
		{"test.md", "test"},
		{"2025-01-15", "2025-01-15"},
		// Symbols transliterate instead of dropping.
		{"R&D", "r-and-d"},
		{"café notes", "cafe-notes"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Fatalf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("Meeting Log"); got != "meeting-log.md" {
		t.Fatalf("Filename = %q, want %q", got, "meeting-log.md")
	}
}

func TestTitleizeStem(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"project-x", "Project X"},
		{"meeting-notes", "Meeting Notes"},
		{"single", "Single"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := TitleizeStem(tt.in); got != tt.want {
				t.Fatalf("TitleizeStem(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"meeting-notes.md", "meeting-notes"},
		{"daily/2025-01-15.md", "2025-01-15"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Stem(tt.in); got != tt.want {
				t.Fatalf("Stem(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
