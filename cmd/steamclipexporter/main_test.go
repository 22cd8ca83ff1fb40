package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bapplebo/steamclipexporter/internal/pipeline"
)

func TestValidateDirectory(t *testing.T) {
	dir := t.TempDir()
	got, err := validateDirectory(dir)
	if err != nil {
		t.Fatalf("validateDirectory returned error: %v", err)
	}
	if got != dir {
		t.Fatalf("got %q, want %q", got, dir)
	}

	if _, err := validateDirectory(filepath.Join(dir, "missing")); err == nil {
		t.Fatal("expected error for missing directory")
	}

	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := validateDirectory(file); err == nil {
		t.Fatal("expected error for regular file")
	}
}

func TestPrintSummaryPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, pipeline.Summary{})
	if !strings.Contains(buf.String(), "No clip directories found") {
		t.Fatalf("empty summary output = %q", buf.String())
	}

	buf.Reset()
	full := pipeline.Summary{
		Completed: 1,
		Failed:    1,
		Results: []pipeline.Result{
			{ClipDir: "clip_1_2_3", Outcome: pipeline.OutcomeCompleted, Output: "/out/a.mp4"},
			{ClipDir: "clip_4_5_6", Outcome: pipeline.OutcomeFailed, Stage: pipeline.StageMux, Err: errors.New("boom")},
		},
	}
	printSummary(&buf, full)

	out := buf.String()
	if !strings.Contains(out, "1 exported, 0 skipped, 1 failed") {
		t.Fatalf("missing totals line: %q", out)
	}
	if !strings.Contains(out, "clip_1_2_3") || !strings.Contains(out, "/out/a.mp4") {
		t.Fatalf("missing completed row: %q", out)
	}
	if !strings.Contains(out, "mux: boom") {
		t.Fatalf("missing failure detail: %q", out)
	}
}

func TestConfigInitCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	cmd := newConfigInitCommand()
	cmd.SetArgs([]string{"--path", target})
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config not written: %v", err)
	}

	// A second run without --overwrite refuses to clobber.
	cmd = newConfigInitCommand()
	cmd.SetArgs([]string{"--path", target})
	cmd.SetOut(&buf)
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error when config already exists")
	}
}

func TestConfigPathCommand(t *testing.T) {
	cmd := newConfigPathCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("config path failed: %v", err)
	}
	if !strings.Contains(buf.String(), "config.toml") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
