// Package buildpipeline drives a directory-wide build (parse, diagnose,
// lower, emit) over channel-delivered Events, so a terminal UI and a plain
// batch run can share the same progress model.
package buildpipeline

import (
	"context"
	"os"
	"path/filepath"

	"istudio/internal/backend"
	"istudio/internal/backend/cfamily"
	"istudio/internal/diag"
	"istudio/internal/driver"
)

// ListFiles returns every source file that a build over dir would compile,
// in the same order Build will process them.
func ListFiles(dir string) ([]string, error) {
	return driver.ListSourceFiles(dir)
}

// Stage names one step of compiling a single file. IStudio's pipeline ends
// at backend emission and writing the generated file to disk — there is no
// link or run step (linking and execution are both out of scope).
type Stage int

const (
	StageParse Stage = iota
	StageDiagnose
	StageLower
	StageEmit
	StageWrite
)

// Status is the state of one file at one Stage.
type Status int

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event reports one file's progress. File is empty for pipeline-wide
// events (e.g. announcing a new stage label with no associated file).
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

// Request configures one build run.
type Request struct {
	Dir            string
	OutputDir      string
	BackendName    string
	Jobs           int
	MaxDiagnostics int
	Cache          *driver.DiskCache
}

// Result summarizes a completed build.
type Result struct {
	Files       []string
	Diagnostics []diag.Diagnostic
	Written     []string
	HasErrors   bool
}

// Build compiles every .ist file under req.Dir, writing events to events
// (if non-nil) as each file advances through the stages, and returns once
// every file has been compiled and its backend output written under
// req.OutputDir.
func Build(ctx context.Context, req Request, events chan<- Event) (Result, error) {
	emit := func(file string, stage Stage, status Status) {
		if events == nil {
			return
		}
		select {
		case events <- Event{File: file, Stage: stage, Status: status}:
		case <-ctx.Done():
		}
	}

	be, err := resolveBackend(req.BackendName)
	if err != nil {
		return Result{}, err
	}

	files, err := ListFiles(req.Dir)
	if err != nil {
		return Result{}, err
	}
	for _, f := range files {
		emit(f, StageParse, StatusQueued)
	}

	opts := driver.Options{
		MaxDiagnostics: req.MaxDiagnostics,
		Backend:        be,
		Cache:          req.Cache,
	}

	for _, f := range files {
		emit(f, StageParse, StatusWorking)
	}

	_, results, err := driver.CompileDir(ctx, req.Dir, opts, req.Jobs)
	if err != nil {
		return Result{}, err
	}

	result := Result{Files: files}
	for _, r := range results {
		if r == nil {
			continue
		}
		emit(r.Path, StageDiagnose, StatusWorking)
		result.Diagnostics = append(result.Diagnostics, r.Bag.Items()...)
		if r.Bag.HasErrors() {
			result.HasErrors = true
			emit(r.Path, StageDiagnose, StatusError)
			continue
		}
		emit(r.Path, StageLower, StatusWorking)
		emit(r.Path, StageEmit, StatusWorking)
		emit(r.Path, StageEmit, StatusDone)

		emit(r.Path, StageWrite, StatusWorking)
		written, werr := writeGenerated(req.OutputDir, r.Generated)
		if werr != nil {
			return result, werr
		}
		result.Written = append(result.Written, written...)
		emit(r.Path, StageWrite, StatusDone)
	}

	if events != nil {
		close(events)
	}
	return result, nil
}

func resolveBackend(name string) (backend.Backend, error) {
	registry := backend.NewRegistry()
	registry.Register(cfamily.New(cfamily.DefaultOptions()))
	if name == "" {
		name = "cpp"
	}
	be, ok := registry.Lookup(name)
	if !ok {
		return nil, errUnsupportedBackend(name)
	}
	return be, nil
}

type errUnsupportedBackend string

func (e errUnsupportedBackend) Error() string {
	return "unsupported backend: " + string(e)
}

func writeGenerated(outDir string, generated []backend.GeneratedFile) ([]string, error) {
	var written []string
	for _, g := range generated {
		path := filepath.Join(outDir, g.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return written, err
		}
		if err := os.WriteFile(path, []byte(g.Contents), 0o644); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
