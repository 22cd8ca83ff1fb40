package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS exports (
	clip_dir     TEXT PRIMARY KEY,
	app_id       INTEGER NOT NULL,
	output_path  TEXT NOT NULL,
	status       TEXT NOT NULL,
	completed_at TEXT NOT NULL
);
`

// Entry is one recorded export outcome.
type Entry struct {
	ClipDir     string
	AppID       uint64
	OutputPath  string
	Status      string
	CompletedAt time.Time
}

// Completed reports whether the entry records a successful export.
func (e Entry) Completed() bool { return e.Status == StatusCompleted }

// Ledger status values.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusSkipped   = "skipped"
)

// Store manages export history backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or opens the ledger database at path and applies the
// schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("ledger path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create ledger directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	// A single writer; avoids SQLITE_BUSY churn under the lock anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply ledger schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Path returns the database location.
func (s *Store) Path() string { return s.path }

// Close releases the database handle.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Record upserts the outcome for a clip directory.
func (s *Store) Record(ctx context.Context, entry Entry) error {
	if entry.ClipDir == "" {
		return errors.New("ledger entry requires a clip directory")
	}
	if entry.CompletedAt.IsZero() {
		entry.CompletedAt = time.Now().UTC()
	}

	const query = `
INSERT INTO exports (clip_dir, app_id, output_path, status, completed_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(clip_dir) DO UPDATE SET
	app_id = excluded.app_id,
	output_path = excluded.output_path,
	status = excluded.status,
	completed_at = excluded.completed_at
`
	_, err := s.db.ExecContext(ctx, query,
		entry.ClipDir,
		int64(entry.AppID),
		entry.OutputPath,
		entry.Status,
		entry.CompletedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record export: %w", err)
	}
	return nil
}

// Find returns the recorded entry for a clip directory, or nil when the
// clip has never been processed.
func (s *Store) Find(ctx context.Context, clipDir string) (*Entry, error) {
	const query = `
SELECT clip_dir, app_id, output_path, status, completed_at
FROM exports WHERE clip_dir = ?
`
	row := s.db.QueryRowContext(ctx, query, clipDir)

	var entry Entry
	var appID int64
	var completedAt string
	err := row.Scan(&entry.ClipDir, &appID, &entry.OutputPath, &entry.Status, &completedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("find export: %w", err)
	}

	entry.AppID = uint64(appID)
	if ts, parseErr := time.Parse(time.RFC3339, completedAt); parseErr == nil {
		entry.CompletedAt = ts
	}
	return &entry, nil
}

// List returns every recorded entry, most recent first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	const query = `
SELECT clip_dir, app_id, output_path, status, completed_at
FROM exports ORDER BY completed_at DESC, clip_dir
`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var appID int64
		var completedAt string
		if err := rows.Scan(&entry.ClipDir, &appID, &entry.OutputPath, &entry.Status, &completedAt); err != nil {
			return nil, fmt.Errorf("scan export: %w", err)
		}
		entry.AppID = uint64(appID)
		if ts, parseErr := time.Parse(time.RFC3339, completedAt); parseErr == nil {
			entry.CompletedAt = ts
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
