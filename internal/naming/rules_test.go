package naming

import (
	"path/filepath"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Team Fortress 2", "Team Fortress 2"},
		{"Half-Life: Alyx", "Half-Life- Alyx"},
		{"a/b\\c", "a-b-c"},
		{"what?", "what"},
		{"<angle> \"quotes\" |pipe|", "angle quotes pipe"},
		{"ctrl\x00\x1fchars", "ctrlchars"},
		{"  padded  ", "padded"},
	}
	for _, tc := range cases {
		if got := SanitizeFileName(tc.in); got != tc.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestOutputName(t *testing.T) {
	got := OutputName("Path of Exile", "20240815", "015514")
	if got != "Path of Exile 20240815 015514" {
		t.Fatalf("OutputName = %q", got)
	}

	got = OutputName("Half-Life: Alyx", "20240815", "015514")
	if got != "Half-Life- Alyx 20240815 015514" {
		t.Fatalf("OutputName with reserved chars = %q", got)
	}
}

func TestDestinationPath(t *testing.T) {
	if got := DestinationPath("", "clip 1 2"); got != "clip 1 2.mp4" {
		t.Fatalf("relative destination = %q", got)
	}
	want := filepath.Join("/out", "clip 1 2.mp4")
	if got := DestinationPath("/out", "clip 1 2"); got != want {
		t.Fatalf("destination with output dir = %q, want %q", got, want)
	}
}
