package ir_test

import (
	"testing"

	"istudio/internal/ast"
	"istudio/internal/diag"
	"istudio/internal/ir"
	"istudio/internal/sema"
	"istudio/internal/source"
)

func TestLowerMapsFunctionSignatures(t *testing.T) {
	arena := ast.NewContext(0)
	ctx := sema.NewSemanticContext()

	param := sema.FunctionParameter{Name: "n", Type: sema.Type{Kind: sema.Integer}}
	node := arena.CreateNode(ast.Function, source.Span{Start: 0, End: 1}, "add_one")
	entry, inserted := ctx.Functions.Declare(sema.FunctionSignature{
		Name:       "add_one",
		Node:       node,
		Parameters: []sema.FunctionParameter{param},
		ReturnType: sema.Type{Kind: sema.Integer},
	})
	if !inserted {
		t.Fatal("expected first declaration to insert")
	}
	_ = entry

	module := ir.Lower(ctx, "sample")
	if module.Name != "sample" {
		t.Fatalf("module name = %q, want sample", module.Name)
	}
	if len(module.Functions) != 1 {
		t.Fatalf("functions = %d, want 1", len(module.Functions))
	}
	fn := module.Functions[0]
	if fn.Name != "add_one" {
		t.Fatalf("function name = %q, want add_one", fn.Name)
	}
	if fn.ReturnType.Kind != ir.I64 {
		t.Fatalf("return type = %v, want I64", fn.ReturnType.Kind)
	}
	if len(fn.Parameters) != 1 || fn.Parameters[0].Name != "n" || fn.Parameters[0].Type.Kind != ir.I64 {
		t.Fatalf("parameters = %+v", fn.Parameters)
	}
}

func TestLowerPreservesDeclarationOrder(t *testing.T) {
	ctx := sema.NewSemanticContext()
	names := []string{"third", "first", "second"}
	for i, name := range names {
		ctx.Functions.Declare(sema.FunctionSignature{
			Name: name,
			Node: ast.NodeId(i),
		})
	}

	module := ir.Lower(ctx, "order")
	if len(module.Functions) != len(names) {
		t.Fatalf("functions = %d, want %d", len(module.Functions), len(names))
	}
	for i, name := range names {
		if module.Functions[i].Name != name {
			t.Fatalf("functions[%d] = %q, want %q", i, module.Functions[i].Name, name)
		}
	}
}

func TestLowerUnknownTypesMapToVoid(t *testing.T) {
	ctx := sema.NewSemanticContext()
	ctx.Functions.Declare(sema.FunctionSignature{Name: "f", Node: ast.NodeId(0)})

	module := ir.Lower(ctx, "m")
	if module.Functions[0].ReturnType.Kind != ir.Void {
		t.Fatalf("return type = %v, want Void", module.Functions[0].ReturnType.Kind)
	}
}

func TestLowerDuplicateNameKeepsFirst(t *testing.T) {
	ctx := sema.NewSemanticContext()
	bag := diag.NewBag(10)
	_ = bag
	ctx.Functions.Declare(sema.FunctionSignature{Name: "f", Node: ast.NodeId(0), ReturnType: sema.Type{Kind: sema.Integer}})
	_, inserted := ctx.Functions.Declare(sema.FunctionSignature{Name: "f", Node: ast.NodeId(1), ReturnType: sema.Type{Kind: sema.Bool}})
	if inserted {
		t.Fatal("expected duplicate declaration to be rejected")
	}

	module := ir.Lower(ctx, "m")
	if len(module.Functions) != 1 {
		t.Fatalf("functions = %d, want 1", len(module.Functions))
	}
	if module.Functions[0].ReturnType.Kind != ir.I64 {
		t.Fatalf("return type = %v, want I64 (first declaration wins)", module.Functions[0].ReturnType.Kind)
	}
}
