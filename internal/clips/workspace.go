package clips

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Workspace is a clip-scoped temporary directory holding the two assembled
// elementary streams between assembly and muxing. Each clip gets its own
// uniquely named workspace, so nothing leaks between clips and concurrent
// runs cannot collide on fixed file names.
type Workspace struct {
	dir string
}

// NewWorkspace creates a fresh workspace under baseDir.
func NewWorkspace(baseDir string) (*Workspace, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create workspace base: %w", err)
	}
	dir := filepath.Join(baseDir, "clip-"+uuid.NewString())
	if err := os.Mkdir(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	return &Workspace{dir: dir}, nil
}

// Dir returns the workspace directory path.
func (w *Workspace) Dir() string { return w.dir }

// VideoPath returns the assembled video stream location.
func (w *Workspace) VideoPath() string { return filepath.Join(w.dir, "video.mp4") }

// AudioPath returns the assembled audio stream location.
func (w *Workspace) AudioPath() string { return filepath.Join(w.dir, "audio.mp4") }

// Close removes the workspace and everything in it. Safe to call more than
// once; callers defer it so cleanup runs on every exit path.
func (w *Workspace) Close() error {
	if w.dir == "" {
		return nil
	}
	dir := w.dir
	w.dir = ""
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove workspace: %w", err)
	}
	return nil
}
