package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"istudio/internal/source"
)

// ListSourceFiles returns every .ist file under dir, sorted, so build
// output and diagnostic ordering stay deterministic across runs.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".ist") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CompileDir compiles every .ist file under dir in parallel, capped at
// jobs concurrent goroutines (GOMAXPROCS when jobs <= 0). Each file gets
// its own Bag, so one file's diagnostics never interleave with another's;
// safe parallelism across independent translation units is the caller's
// responsibility to exploit, not the pipeline's — each CompileFile call is
// independent and touches no shared mutable state beyond the DiskCache,
// which already serializes its own access.
func CompileDir(ctx context.Context, dir string, opts Options, jobs int) (*source.FileSet, []*Result, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	fileIDs := make([]source.FileID, len(files))
	for i, path := range files {
		id, loadErr := fileSet.Load(path)
		if loadErr != nil {
			return fileSet, nil, loadErr
		}
		fileIDs[i] = id
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	results := make([]*Result, len(files))
	if len(files) == 0 {
		return fileSet, results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = CompileFile(fileSet, fileIDs[i], path, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
