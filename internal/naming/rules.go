// Package naming builds filesystem-safe output names for exported clips.
package naming

import (
	"path/filepath"
	"strings"
)

// fileNameReplacer replaces filesystem-unsafe characters with safe
// alternatives. Slashes, backslashes, colons, and asterisks become dashes;
// the rest are dropped.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName strips control characters and replaces reserved path
// characters so the result is safe as a single path element on common
// filesystems.
func SanitizeFileName(name string) string {
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, name)
	return strings.TrimSpace(fileNameReplacer.Replace(name))
}

// OutputName combines a resolved title with the clip's date and time:
// "<name> <date> <time>". The title is sanitized first.
func OutputName(title, date, clipTime string) string {
	title = SanitizeFileName(title)
	return title + " " + date + " " + clipTime
}

// DestinationPath resolves where the muxed clip is written. With an output
// directory the file lands there; otherwise the name is relative to the
// current working directory.
func DestinationPath(outputDir, name string) string {
	file := name + ".mp4"
	if outputDir == "" {
		return file
	}
	return filepath.Join(outputDir, file)
}
