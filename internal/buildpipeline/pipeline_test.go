package buildpipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"istudio/internal/buildpipeline"
)

func writeSource(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestBuildCompilesEveryFileAndWritesOutput(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.ist", "let a = 1;\nreturn a;")
	writeSource(t, dir, "b.ist", "let b = 2;\nreturn b;")

	outDir := filepath.Join(dir, "dist")
	events := make(chan buildpipeline.Event, 64)
	var seen []buildpipeline.Event
	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range events {
			seen = append(seen, ev)
		}
	}()

	result, err := buildpipeline.Build(context.Background(), buildpipeline.Request{
		Dir:       dir,
		OutputDir: outDir,
	}, events)
	<-done
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if result.HasErrors {
		t.Fatalf("unexpected diagnostics: %+v", result.Diagnostics)
	}
	if len(result.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(result.Files))
	}
	if len(result.Written) == 0 {
		t.Fatalf("expected generated files to be written")
	}
	for _, path := range result.Written {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected %s to exist: %v", path, err)
		}
	}
	if len(seen) == 0 {
		t.Fatalf("expected progress events")
	}
}

func TestBuildRejectsUnknownBackend(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.ist", "let a = 1;\nreturn a;")

	_, err := buildpipeline.Build(context.Background(), buildpipeline.Request{
		Dir:         dir,
		OutputDir:   filepath.Join(dir, "dist"),
		BackendName: "llvm",
	}, nil)
	if err == nil {
		t.Fatalf("expected an error for an unregistered backend")
	}
}

func TestBuildReportsParseDiagnosticsWithoutWriting(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "broken.ist", "let = ;")

	result, err := buildpipeline.Build(context.Background(), buildpipeline.Request{
		Dir:       dir,
		OutputDir: filepath.Join(dir, "dist"),
	}, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !result.HasErrors {
		t.Fatalf("expected HasErrors for malformed source")
	}
	if len(result.Written) != 0 {
		t.Fatalf("expected no generated output for a failing file")
	}
}
