package clips

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindSegmentDir(t *testing.T) {
	clipDir := t.TempDir()
	segDir := filepath.Join(clipDir, "video", "bg_abc123")
	if err := os.MkdirAll(segDir, 0o755); err != nil {
		t.Fatal(err)
	}

	got, found, err := FindSegmentDir(clipDir)
	if err != nil {
		t.Fatalf("FindSegmentDir returned error: %v", err)
	}
	if !found {
		t.Fatal("expected segment directory to be found")
	}
	if got != segDir {
		t.Fatalf("got %q, want %q", got, segDir)
	}
}

func TestFindSegmentDirMissingVideoDir(t *testing.T) {
	_, found, err := FindSegmentDir(t.TempDir())
	if err != nil {
		t.Fatalf("missing video dir should not error: %v", err)
	}
	if found {
		t.Fatal("expected not found")
	}
}

func TestFindSegmentDirNoQualifyingChild(t *testing.T) {
	clipDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(clipDir, "video", "thumbnails"), 0o755); err != nil {
		t.Fatal(err)
	}
	// A bg_-named regular file must not qualify.
	if err := os.WriteFile(filepath.Join(clipDir, "video", "bg_file"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	_, found, err := FindSegmentDir(clipDir)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatal("expected not found")
	}
}

func TestFindSegmentDirDoesNotRecurse(t *testing.T) {
	clipDir := t.TempDir()
	// bg_ directory nested one level too deep should be ignored.
	if err := os.MkdirAll(filepath.Join(clipDir, "video", "nested", "bg_deep"), 0o755); err != nil {
		t.Fatal(err)
	}

	_, found, err := FindSegmentDir(clipDir)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatal("nested segment directory should not be located")
	}
}
