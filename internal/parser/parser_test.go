package parser_test

import (
	"testing"

	"istudio/internal/ast"
	"istudio/internal/lexer"
	"istudio/internal/parser"
	"istudio/internal/source"
)

func parseModule(t *testing.T, src string) parser.Result {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.Add("t.ist", []byte(src))
	stream := lexer.Lex(fs.Get(id), lexer.DefaultConfig())
	res, err := parser.ParseModule(stream)
	if err != nil {
		t.Fatalf("ParseModule(%q) error: %v", src, err)
	}
	return res
}

func TestParseLetStatement(t *testing.T) {
	res := parseModule(t, "let x = 1;")
	root := res.Arena.Node(res.Root)
	if root.Kind != ast.Module || len(root.Children) != 1 {
		t.Fatalf("root = %+v", root)
	}
	letNode := res.Arena.Node(root.Children[0])
	if letNode.Kind != ast.LetStmt || letNode.Value != "let" {
		t.Fatalf("let node = %+v", letNode)
	}
	if len(letNode.Children) != 2 {
		t.Fatalf("let children = %v", letNode.Children)
	}
	name := res.Arena.Node(letNode.Children[0])
	if name.Kind != ast.IdentifierExpr || name.Value != "x" {
		t.Fatalf("name node = %+v", name)
	}
	init := res.Arena.Node(letNode.Children[1])
	if init.Kind != ast.LiteralExpr || init.Value != "1" {
		t.Fatalf("init node = %+v", init)
	}
}

func TestParseLetMut(t *testing.T) {
	res := parseModule(t, "let mut y = 2;")
	letNode := res.Arena.Node(res.Arena.Node(res.Root).Children[0])
	if letNode.Value != "mut" {
		t.Fatalf("value = %q, want mut", letNode.Value)
	}
}

func TestParseReturnWithAndWithoutValue(t *testing.T) {
	res := parseModule(t, "return 1; return;")
	root := res.Arena.Node(res.Root)
	if len(root.Children) != 2 {
		t.Fatalf("children = %v", root.Children)
	}
	r1 := res.Arena.Node(root.Children[0])
	if r1.Kind != ast.ReturnStmt || len(r1.Children) != 1 {
		t.Fatalf("return1 = %+v", r1)
	}
	r2 := res.Arena.Node(root.Children[1])
	if r2.Kind != ast.ReturnStmt || len(r2.Children) != 0 {
		t.Fatalf("return2 = %+v", r2)
	}
}

func TestParseBlock(t *testing.T) {
	res := parseModule(t, "{ let x = 1; return x; }")
	block := res.Arena.Node(res.Arena.Node(res.Root).Children[0])
	if block.Kind != ast.BlockStmt || len(block.Children) != 2 {
		t.Fatalf("block = %+v", block)
	}
}

func TestParseBinaryPrecedence(t *testing.T) {
	// 1 + 2 * 3 should parse as 1 + (2 * 3)
	res := parseModule(t, "1 + 2 * 3;")
	exprStmt := res.Arena.Node(res.Arena.Node(res.Root).Children[0])
	add := res.Arena.Node(exprStmt.Children[0])
	if add.Kind != ast.BinaryExpr || add.Value != "+" {
		t.Fatalf("top = %+v", add)
	}
	rhs := res.Arena.Node(add.Children[1])
	if rhs.Kind != ast.BinaryExpr || rhs.Value != "*" {
		t.Fatalf("rhs = %+v, want multiplication", rhs)
	}
}

func TestParseAssignmentRightAssociative(t *testing.T) {
	res := parseModule(t, "a = b = 1;")
	exprStmt := res.Arena.Node(res.Arena.Node(res.Root).Children[0])
	assign := res.Arena.Node(exprStmt.Children[0])
	if assign.Kind != ast.AssignmentExpr {
		t.Fatalf("top = %+v, want AssignmentExpr", assign)
	}
	rhs := res.Arena.Node(assign.Children[1])
	if rhs.Kind != ast.AssignmentExpr {
		t.Fatalf("rhs = %+v, want nested AssignmentExpr", rhs)
	}
}

func TestParseUnaryChain(t *testing.T) {
	res := parseModule(t, "-!x;")
	exprStmt := res.Arena.Node(res.Arena.Node(res.Root).Children[0])
	neg := res.Arena.Node(exprStmt.Children[0])
	if neg.Kind != ast.UnaryExpr || neg.Value != "-" {
		t.Fatalf("outer = %+v", neg)
	}
	not := res.Arena.Node(neg.Children[0])
	if not.Kind != ast.UnaryExpr || not.Value != "!" {
		t.Fatalf("inner = %+v", not)
	}
}

func TestParseCallChaining(t *testing.T) {
	res := parseModule(t, "f(1)(2, 3);")
	exprStmt := res.Arena.Node(res.Arena.Node(res.Root).Children[0])
	outer := res.Arena.Node(exprStmt.Children[0])
	if outer.Kind != ast.CallExpr || len(outer.Children) != 3 {
		t.Fatalf("outer call = %+v", outer)
	}
	inner := res.Arena.Node(outer.Children[0])
	if inner.Kind != ast.CallExpr || len(inner.Children) != 2 {
		t.Fatalf("inner call = %+v", inner)
	}
}

func TestParseGroupExpr(t *testing.T) {
	res := parseModule(t, "(1 + 2) * 3;")
	exprStmt := res.Arena.Node(res.Arena.Node(res.Root).Children[0])
	mul := res.Arena.Node(exprStmt.Children[0])
	if mul.Kind != ast.BinaryExpr || mul.Value != "*" {
		t.Fatalf("top = %+v", mul)
	}
	group := res.Arena.Node(mul.Children[0])
	if group.Kind != ast.GroupExpr || len(group.Children) != 1 {
		t.Fatalf("group = %+v", group)
	}
}

func TestParseErrorUnexpectedPrimary(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.Add("t.ist", []byte("let x = ;"))
	stream := lexer.Lex(fs.Get(id), lexer.DefaultConfig())
	_, err := parser.ParseModule(stream)
	if err == nil {
		t.Fatal("expected parse error for missing initializer")
	}
}

func TestParseErrorMissingCloseParen(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.Add("t.ist", []byte("f(1;"))
	stream := lexer.Lex(fs.Get(id), lexer.DefaultConfig())
	_, err := parser.ParseModule(stream)
	if err == nil {
		t.Fatal("expected parse error for missing ')'")
	}
}

func TestParseModuleSpanCoversEntireStream(t *testing.T) {
	res := parseModule(t, "let x = 1;")
	root := res.Arena.Node(res.Root)
	if root.Span.Start != 0 {
		t.Fatalf("module span start = %d, want 0", root.Span.Start)
	}
}
