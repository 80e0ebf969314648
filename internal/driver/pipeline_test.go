package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"istudio/internal/backend/cfamily"
	"istudio/internal/driver"
	"istudio/internal/source"
)

func TestCompileFileLowersAndEmits(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.Add("sum.ist", []byte("let a = 1;\nlet b = 2;\nreturn a + b;"))

	result := driver.CompileFile(fs, id, "sum.ist", driver.Options{
		Backend: cfamily.New(cfamily.DefaultOptions()),
	})
	if result.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", result.Bag.Items())
	}
	if result.Module == nil {
		t.Fatalf("expected a lowered module")
	}
	if len(result.Generated) == 0 {
		t.Fatalf("expected generated backend files")
	}
}

func TestCompileFileReportsParseError(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.Add("broken.ist", []byte("let = ;"))

	result := driver.CompileFile(fs, id, "broken.ist", driver.Options{})
	if !result.Bag.HasErrors() {
		t.Fatalf("expected a diagnostic for malformed source")
	}
	if result.Module != nil {
		t.Fatalf("expected no module after a parse error")
	}
}

func TestCompileFileUsesDiskCacheOnSecondRun(t *testing.T) {
	dir := t.TempDir()
	cache, err := driver.OpenDiskCache(filepath.Join(dir, ".istudio-cache"))
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	fs := source.NewFileSet()
	id := fs.Add("sum.ist", []byte("let a = 1;\nlet b = 2;\nreturn a + b;"))
	opts := driver.Options{Cache: cache}

	first := driver.CompileFile(fs, id, "sum.ist", opts)
	if first.Cached {
		t.Fatalf("first run should not be served from cache")
	}

	second := driver.CompileFile(fs, id, "sum.ist", opts)
	if !second.Cached {
		t.Fatalf("second run should be served from cache")
	}
	if second.Module.Name != first.Module.Name {
		t.Fatalf("cached module name = %q, want %q", second.Module.Name, first.Module.Name)
	}
}

func TestCompileDirCompilesEveryFile(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.ist": "let a = 1;\nreturn a;",
		"b.ist": "let b = 2;\nreturn b;",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	_, results, err := driver.CompileDir(context.Background(), dir, driver.Options{}, 2)
	if err != nil {
		t.Fatalf("CompileDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, r := range results {
		if r.Bag.HasErrors() {
			t.Fatalf("%s: unexpected diagnostics: %+v", r.Path, r.Bag.Items())
		}
	}
}
