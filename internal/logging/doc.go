// Package logging assembles the structured slog loggers used across the
// exporter.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes attribute helpers so pipeline code tags log lines
// with clip directories and stage names in one consistent shape. A no-op
// logger is provided for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup.
package logging
