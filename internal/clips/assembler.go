package clips

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNoSegments reports that a stream's initialization segment or chunk
// files are absent. It aborts assembly for the whole clip, and the
// orchestrator records the clip as skipped rather than failed.
var ErrNoSegments = errors.New("stream segments not found")

// StreamSpec names the files that make up one elementary stream inside a
// segment directory.
type StreamSpec struct {
	// Init is the initialization segment filename.
	Init string
	// ChunkPrefix selects the chunk files belonging to the stream.
	ChunkPrefix string
}

// Stream specs for the two tracks Steam records per clip.
var (
	VideoStream = StreamSpec{Init: "init-stream0.m4s", ChunkPrefix: "chunk-stream0-"}
	AudioStream = StreamSpec{Init: "init-stream1.m4s", ChunkPrefix: "chunk-stream1-"}
)

// AssembleStream concatenates the stream's initialization segment followed
// by its chunks in sequence order into destPath. The copy is byte-exact;
// nothing inside the segments is inspected or rewritten. The output file
// is fully materialized before the caller hands it to the muxer.
func AssembleStream(segmentDir string, spec StreamSpec, destPath string) error {
	initPath := filepath.Join(segmentDir, spec.Init)
	if _, err := os.Stat(initPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNoSegments, spec.Init)
		}
		return fmt.Errorf("stat %s: %w", initPath, err)
	}

	chunks, err := ListChunks(segmentDir, spec.ChunkPrefix)
	if err != nil {
		return err
	}
	if len(chunks) == 0 {
		return fmt.Errorf("%w: no %s* files", ErrNoSegments, spec.ChunkPrefix)
	}

	out, err := os.OpenFile(destPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create assembled stream: %w", err)
	}
	defer out.Close()

	if err := appendFile(out, initPath); err != nil {
		return err
	}
	for _, chunk := range chunks {
		if err := appendFile(out, chunk); err != nil {
			return err
		}
	}
	return out.Close()
}

func appendFile(out *os.File, path string) error {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open segment %s: %w", path, err)
	}
	defer in.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("append segment %s: %w", path, err)
	}
	return nil
}
