package backend_test

import (
	"testing"

	"istudio/internal/backend"
	"istudio/internal/ir"
)

type stubBackend struct{ name string }

func (s stubBackend) Name() string { return s.name }
func (s stubBackend) Emit(*ir.Module, backend.TargetProfile) ([]backend.GeneratedFile, error) {
	return nil, nil
}

func TestRegistryLookupAndOrder(t *testing.T) {
	r := backend.NewRegistry()
	r.Register(stubBackend{name: "cpp"})
	r.Register(stubBackend{name: "rust"})

	if _, ok := r.Lookup("missing"); ok {
		t.Fatal("expected missing backend to not be found")
	}
	cpp, ok := r.Lookup("cpp")
	if !ok || cpp.Name() != "cpp" {
		t.Fatalf("Lookup(cpp) = %+v, %v", cpp, ok)
	}

	all := r.All()
	if len(all) != 2 || all[0].Name() != "cpp" || all[1].Name() != "rust" {
		t.Fatalf("All() = %+v, want [cpp rust]", all)
	}
}

func TestRegistryIgnoresDuplicateName(t *testing.T) {
	r := backend.NewRegistry()
	r.Register(stubBackend{name: "cpp"})
	r.Register(stubBackend{name: "cpp"})

	if len(r.All()) != 1 {
		t.Fatalf("All() = %+v, want single entry", r.All())
	}
}
