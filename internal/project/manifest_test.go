package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"istudio/internal/project"
)

func writeManifest(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, project.ManifestName), []byte(body), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
}

func TestLoadFindsManifestInParentDirectory(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n\n[build]\nentry = \"main.ist\"\n")

	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	manifest, ok, err := project.Load(nested)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatalf("expected a manifest to be found")
	}
	if manifest.Config.Package.Name != "demo" {
		t.Fatalf("package name = %q", manifest.Config.Package.Name)
	}
	if manifest.Config.Build.Backend != "cpp" {
		t.Fatalf("backend default = %q, want cpp", manifest.Config.Build.Backend)
	}
	if got, want := manifest.EntryPath(), filepath.Join(root, "main.ist"); got != want {
		t.Fatalf("EntryPath = %q, want %q", got, want)
	}
}

func TestLoadReturnsNotFoundWithoutError(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := project.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Fatalf("expected no manifest to be found")
	}
}

func TestLoadRejectsMissingEntry(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\nname = \"demo\"\n")

	_, _, err := project.Load(dir)
	if err == nil {
		t.Fatalf("expected an error for a missing [build].entry")
	}
}
