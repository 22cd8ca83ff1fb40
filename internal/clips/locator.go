package clips

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	videoSubdir      = "video"
	segmentDirPrefix = "bg_"
)

// FindSegmentDir looks for the fragmented-media segment directory of a
// clip: the first child of <clip>/video whose name starts with "bg_".
// A missing video directory or no qualifying child is not an error; the
// second result is false and the caller treats the clip as having nothing
// to process. The search does not recurse past that one level.
func FindSegmentDir(clipDir string) (string, bool, error) {
	videoDir := filepath.Join(clipDir, videoSubdir)

	entries, err := os.ReadDir(videoDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read %s: %w", videoDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), segmentDirPrefix) {
			return filepath.Join(videoDir, entry.Name()), true, nil
		}
	}
	return "", false, nil
}
