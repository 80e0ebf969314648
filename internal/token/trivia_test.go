package token_test

import (
	"testing"

	"istudio/internal/source"
	"istudio/internal/token"
)

func TestTokenCarriesLeadingTrivia(t *testing.T) {
	ws := token.Trivia{Kind: token.Whitespace, Span: source.Span{Start: 0, End: 1}, Text: " "}
	comment := token.Trivia{Kind: token.Comment, Span: source.Span{Start: 1, End: 10}, Text: "// hi"}
	tk := token.Token{
		Kind:    token.Keyword,
		Span:    source.Span{Start: 10, End: 12},
		Text:    "fn",
		Leading: []token.Trivia{ws, comment},
	}
	if len(tk.Leading) != 2 {
		t.Fatalf("Leading = %d trivia, want 2", len(tk.Leading))
	}
	if tk.Leading[0].Kind != token.Whitespace || tk.Leading[1].Kind != token.Comment {
		t.Fatalf("unexpected trivia kinds: %+v", tk.Leading)
	}
}
