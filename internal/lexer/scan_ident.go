package lexer

import "istudio/internal/token"

// scanIdentOrKeyword scans [A-Za-z_][A-Za-z0-9_]* and classifies it as
// Keyword or Identifier depending on token.LookupKeyword. Matching is
// case-sensitive.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if token.LookupKeyword(text) {
		return token.Token{Kind: token.Keyword, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Identifier, Span: sp, Text: text}
}
