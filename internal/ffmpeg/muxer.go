package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/bapplebo/steamclipexporter/internal/logging"
)

// Muxer wraps ffmpeg CLI interactions.
type Muxer struct {
	binary string
	exec   Executor
	logger *slog.Logger
}

// Option configures the muxer.
type Option func(*Muxer)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(m *Muxer) {
		if exec != nil {
			m.exec = exec
		}
	}
}

// New constructs a Muxer driving the given binary.
func New(binary string, logger *slog.Logger, opts ...Option) (*Muxer, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("ffmpeg binary required")
	}
	muxer := &Muxer{
		binary: binary,
		exec:   commandExecutor{},
		logger: logging.WithComponent(logger, "ffmpeg"),
	}
	for _, opt := range opts {
		opt(muxer)
	}
	return muxer, nil
}

// Mux combines the assembled video and audio streams into destPath using
// stream copy, no re-encode. ffmpeg's console output is mirrored to the
// operator as it arrives. The call blocks until the process exits; a
// non-zero exit returns a *MuxError.
func (m *Muxer) Mux(ctx context.Context, videoPath, audioPath, destPath string) error {
	if videoPath == "" || audioPath == "" {
		return errors.New("two input streams required")
	}
	if destPath == "" {
		return errors.New("destination path required")
	}

	args := []string{
		"-nostdin",
		"-y",
		"-i", videoPath,
		"-i", audioPath,
		"-c", "copy",
		destPath,
	}

	m.logger.Debug("invoking ffmpeg", slog.String("dest", destPath))
	err := m.exec.Run(ctx, m.binary, args, func(line string) {
		m.logger.Info(line)
	})
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &MuxError{ExitCode: exitErr.ExitCode(), Output: destPath}
		}
		return fmt.Errorf("run ffmpeg: %w", err)
	}
	return nil
}
