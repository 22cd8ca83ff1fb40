package clips

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

const dirPrefix = "clip_"

// Clip identifies one recorded session parsed from its directory name,
// which Steam writes as clip_<appid>_<date>_<time>.
type Clip struct {
	// Dir is the absolute path of the clip directory.
	Dir string
	// AppID is the numeric Steam application identifier.
	AppID uint64
	// Date and Time keep the original zero-padded text so output names
	// match what the recording client wrote (015514 must not become
	// 15514).
	Date string
	Time string
}

// DirName returns the base name of the clip directory.
func (c Clip) DirName() string {
	return filepath.Base(c.Dir)
}

// Parse interprets a clip directory path. The base name must have the form
// clip_<appid>_<date>_<time> with numeric fields.
func Parse(dir string) (Clip, error) {
	name := filepath.Base(dir)
	trimmed, ok := strings.CutPrefix(name, dirPrefix)
	if !ok {
		return Clip{}, fmt.Errorf("clip directory %q: missing %q prefix", name, dirPrefix)
	}

	parts := strings.Split(trimmed, "_")
	if len(parts) != 3 {
		return Clip{}, fmt.Errorf("clip directory %q: want <appid>_<date>_<time>, got %d fields", name, len(parts))
	}

	appID, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return Clip{}, fmt.Errorf("clip directory %q: app id: %w", name, err)
	}
	for i, label := range []string{"date", "time"} {
		if _, err := strconv.ParseUint(parts[i+1], 10, 64); err != nil {
			return Clip{}, fmt.Errorf("clip directory %q: %s: %w", name, label, err)
		}
	}

	return Clip{
		Dir:   dir,
		AppID: appID,
		Date:  parts[1],
		Time:  parts[2],
	}, nil
}
