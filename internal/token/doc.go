// Package token defines the lexical token and trivia model the lexer
// produces and the parser consumes.
// Invariants:
//   - Token.Text is the exact source slice covered by Token.Span.
//   - The final token of every stream has Kind EndOfFile and an empty span
//     at the end of the source.
//   - Keywords are case-sensitive; only the lowercase spelling is recognized.
package token
