package token

import "istudio/internal/source"

// Token is a single lexed token: its kind, its exact source span and
// lexeme, and any trivia accumulated immediately before it.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a number or string literal.
// Boolean literals lex as Keyword (true/false), not as a literal kind.
func (t Token) IsLiteral() bool {
	return t.Kind == Number || t.Kind == StringLiteral
}

// IsPunctOrOp reports whether the token is a Symbol.
func (t Token) IsPunctOrOp() bool { return t.Kind == Symbol }

// IsKeyword reports whether the token is a Keyword.
func (t Token) IsKeyword() bool { return t.Kind == Keyword }

// IsIdent reports whether the token is an Identifier.
func (t Token) IsIdent() bool { return t.Kind == Identifier }
