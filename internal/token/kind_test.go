package token_test

import (
	"testing"

	"istudio/internal/source"
	"istudio/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	for _, k := range []token.Kind{token.Number, token.StringLiteral} {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	for _, k := range []token.Kind{token.Identifier, token.Keyword, token.Symbol, token.EndOfFile} {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsPunctOrOp(t *testing.T) {
	if !tok(token.Symbol).IsPunctOrOp() {
		t.Fatal("Symbol should be punct/op")
	}
	if tok(token.Identifier).IsPunctOrOp() {
		t.Fatal("Identifier must NOT be punct/op")
	}
}

func TestIsIdent(t *testing.T) {
	if !tok(token.Identifier).IsIdent() {
		t.Fatal("Identifier should be ident")
	}
	if tok(token.Keyword).IsIdent() {
		t.Fatal("Keyword must not be ident")
	}
}

func TestIsKeyword(t *testing.T) {
	if !tok(token.Keyword).IsKeyword() {
		t.Fatal("Keyword should be keyword")
	}
	if tok(token.Identifier).IsKeyword() {
		t.Fatal("Identifier must not be keyword")
	}
}
