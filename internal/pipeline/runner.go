package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/bapplebo/steamclipexporter/internal/clips"
	"github.com/bapplebo/steamclipexporter/internal/ledger"
	"github.com/bapplebo/steamclipexporter/internal/logging"
	"github.com/bapplebo/steamclipexporter/internal/naming"
)

// TitleNamer resolves a clip's output name. Implementations are
// best-effort and must not fail.
type TitleNamer interface {
	Name(ctx context.Context, clip clips.Clip) string
}

// MuxInvoker combines two assembled streams into the destination file.
type MuxInvoker interface {
	Mux(ctx context.Context, videoPath, audioPath, destPath string) error
}

// Options configures one export run.
type Options struct {
	// InputDir holds the candidate clip directories.
	InputDir string
	// OutputDir receives the muxed files; empty means the current
	// working directory.
	OutputDir string
	// TempDir hosts the per-clip workspaces and the run lock.
	TempDir string
	// Overwrite replaces existing destination files instead of skipping.
	Overwrite bool
	// Refresh reprocesses clips the ledger already recorded as
	// completed.
	Refresh bool
}

// Runner orchestrates the clip-assembly pipeline.
type Runner struct {
	namer  TitleNamer
	muxer  MuxInvoker
	store  *ledger.Store
	logger *slog.Logger
}

// NewRunner constructs a Runner. store may be nil to disable the ledger.
func NewRunner(namer TitleNamer, muxer MuxInvoker, store *ledger.Store, logger *slog.Logger) (*Runner, error) {
	if namer == nil || muxer == nil {
		return nil, errors.New("runner requires a namer and a muxer")
	}
	return &Runner{
		namer:  namer,
		muxer:  muxer,
		store:  store,
		logger: logging.WithComponent(logger, "pipeline"),
	}, nil
}

// Run processes every clip directory under opts.InputDir in enumeration
// order and returns the accumulated summary. Per-clip errors are contained
// and counted; Run itself only fails for run-level problems such as an
// unreadable input directory or a concurrent exporter holding the lock.
func (r *Runner) Run(ctx context.Context, opts Options) (Summary, error) {
	var summary Summary

	if opts.TempDir == "" {
		opts.TempDir = filepath.Join(os.TempDir(), "steamclipexporter")
	}
	if err := os.MkdirAll(opts.TempDir, 0o755); err != nil {
		return summary, fmt.Errorf("create temp directory: %w", err)
	}

	lock := flock.New(filepath.Join(opts.TempDir, "export.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return summary, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return summary, errors.New("another export is already running")
	}
	defer func() { _ = lock.Unlock() }()

	entries, err := os.ReadDir(opts.InputDir)
	if err != nil {
		return summary, fmt.Errorf("read clips directory: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		res := r.processClip(ctx, filepath.Join(opts.InputDir, entry.Name()), opts)
		summary.add(res)
		r.logResult(res)
		r.recordResult(ctx, res)
	}

	r.logger.Info("run finished",
		slog.Int("completed", summary.Completed),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failed", summary.Failed))
	return summary, nil
}

// processClip walks one clip through the state machine
// discovered → located → assembled → named → muxed, with skip and failure
// edges. The workspace is closed on every path.
func (r *Runner) processClip(ctx context.Context, clipPath string, opts Options) Result {
	dirName := filepath.Base(clipPath)
	res := Result{ClipDir: dirName}

	clip, err := clips.Parse(clipPath)
	if err != nil {
		res.Outcome, res.Stage, res.Err = OutcomeFailed, StageParse, err
		return res
	}

	if prior := r.priorExport(ctx, dirName, opts); prior != nil {
		res.Outcome = OutcomeSkippedExported
		res.Output = prior.OutputPath
		return res
	}

	segmentDir, found, err := clips.FindSegmentDir(clipPath)
	if err != nil {
		res.Outcome, res.Stage, res.Err = OutcomeFailed, StageLocate, err
		return res
	}
	if !found {
		res.Outcome = OutcomeSkippedNoSegments
		return res
	}

	ws, err := clips.NewWorkspace(opts.TempDir)
	if err != nil {
		res.Outcome, res.Stage, res.Err = OutcomeFailed, StageWorkspace, err
		return res
	}
	defer func() {
		if closeErr := ws.Close(); closeErr != nil {
			r.logger.Warn("workspace cleanup failed",
				slog.String(logging.FieldClip, dirName),
				logging.Error(closeErr))
		}
	}()

	for _, stream := range []struct {
		spec clips.StreamSpec
		dest string
	}{
		{clips.VideoStream, ws.VideoPath()},
		{clips.AudioStream, ws.AudioPath()},
	} {
		if err := clips.AssembleStream(segmentDir, stream.spec, stream.dest); err != nil {
			if errors.Is(err, clips.ErrNoSegments) {
				res.Outcome = OutcomeSkippedNoSegments
				res.Err = err
				return res
			}
			res.Outcome, res.Stage, res.Err = OutcomeFailed, StageAssemble, err
			return res
		}
	}

	name := r.namer.Name(ctx, clip)
	dest := naming.DestinationPath(opts.OutputDir, name)

	if !opts.Overwrite {
		if _, err := os.Stat(dest); err == nil {
			res.Outcome = OutcomeSkippedExists
			res.Output = dest
			return res
		} else if !errors.Is(err, fs.ErrNotExist) {
			res.Outcome, res.Stage, res.Err = OutcomeFailed, StageMux, err
			return res
		}
	}

	// Mux into a sibling partial file and rename on success, so a failed
	// mux never replaces a previous run's output.
	partial := dest + ".part"
	if err := r.muxer.Mux(ctx, ws.VideoPath(), ws.AudioPath(), partial); err != nil {
		_ = os.Remove(partial)
		res.Outcome, res.Stage, res.Err = OutcomeFailed, StageMux, err
		return res
	}
	if err := os.Rename(partial, dest); err != nil {
		_ = os.Remove(partial)
		res.Outcome, res.Stage, res.Err = OutcomeFailed, StageMux, err
		return res
	}

	res.Outcome = OutcomeCompleted
	res.Output = dest
	return res
}

// priorExport consults the ledger for a completed export of this clip.
func (r *Runner) priorExport(ctx context.Context, dirName string, opts Options) *ledger.Entry {
	if r.store == nil || opts.Refresh {
		return nil
	}
	entry, err := r.store.Find(ctx, dirName)
	if err != nil {
		r.logger.Warn("ledger lookup failed",
			slog.String(logging.FieldClip, dirName),
			logging.Error(err))
		return nil
	}
	if entry == nil || !entry.Completed() {
		return nil
	}
	return entry
}

func (r *Runner) recordResult(ctx context.Context, res Result) {
	if r.store == nil {
		return
	}
	var status string
	switch res.Outcome {
	case OutcomeCompleted:
		status = ledger.StatusCompleted
	case OutcomeFailed:
		status = ledger.StatusFailed
	default:
		// Skips are transient states; leaving them unrecorded means a
		// clip whose segments appear later is still picked up.
		return
	}

	var appID uint64
	if clip, err := clips.Parse(res.ClipDir); err == nil {
		appID = clip.AppID
	}
	err := r.store.Record(ctx, ledger.Entry{
		ClipDir:    res.ClipDir,
		AppID:      appID,
		OutputPath: res.Output,
		Status:     status,
	})
	if err != nil {
		r.logger.Warn("ledger record failed",
			slog.String(logging.FieldClip, res.ClipDir),
			logging.Error(err))
	}
}

func (r *Runner) logResult(res Result) {
	attrs := []any{slog.String(logging.FieldClip, res.ClipDir)}
	switch res.Outcome {
	case OutcomeCompleted:
		attrs = append(attrs, slog.String(logging.FieldOutput, res.Output))
		r.logger.Info("clip exported", attrs...)
	case OutcomeFailed:
		attrs = append(attrs, slog.String(logging.FieldStage, res.Stage), logging.Error(res.Err))
		r.logger.Error("clip failed", attrs...)
	case OutcomeSkippedExported:
		attrs = append(attrs, slog.String(logging.FieldOutput, res.Output))
		r.logger.Info("clip already exported", attrs...)
	case OutcomeSkippedExists:
		attrs = append(attrs, slog.String(logging.FieldOutput, res.Output))
		r.logger.Info("destination exists, skipping", attrs...)
	default:
		r.logger.Info("no segments found, skipping", attrs...)
	}
}
