package ast_test

import (
	"testing"

	"istudio/internal/ast"
	"istudio/internal/source"
)

func TestCreateNodeAssignsSequentialIds(t *testing.T) {
	ctx := ast.NewContext(0)
	id0 := ctx.CreateNode(ast.LiteralExpr, source.Span{Start: 0, End: 1}, "1")
	id1 := ctx.CreateNode(ast.LiteralExpr, source.Span{Start: 2, End: 3}, "2")
	if id0 != 0 || id1 != 1 {
		t.Fatalf("ids = %d, %d, want 0, 1", id0, id1)
	}
	if ctx.Len() != 2 {
		t.Fatalf("Len = %d, want 2", ctx.Len())
	}
}

func TestChildIdsPrecedeParent(t *testing.T) {
	ctx := ast.NewContext(0)
	lhs := ctx.CreateNode(ast.LiteralExpr, source.Span{Start: 0, End: 1}, "1")
	rhs := ctx.CreateNode(ast.LiteralExpr, source.Span{Start: 4, End: 5}, "2")
	add := ctx.CreateNode(ast.BinaryExpr, source.Span{Start: 0, End: 5}, "+", lhs, rhs)

	node := ctx.Node(add)
	if node.ID <= lhs || node.ID <= rhs {
		t.Fatalf("parent id %d must exceed child ids %d, %d", node.ID, lhs, rhs)
	}
	if len(node.Children) != 2 || node.Children[0] != lhs || node.Children[1] != rhs {
		t.Fatalf("children = %v, want [%d %d]", node.Children, lhs, rhs)
	}
}

func TestNodeLookupPanicsOnInvalidId(t *testing.T) {
	ctx := ast.NewContext(0)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-range id")
		}
	}()
	ctx.Node(0)
}
