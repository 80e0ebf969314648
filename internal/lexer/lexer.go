// Package lexer turns source bytes into a token.Stream, preserving leading
// trivia on every token.
package lexer

import (
	"istudio/internal/source"
	"istudio/internal/token"
)

// Lexer scans one source file into a token.Stream.
type Lexer struct {
	file   *source.File
	cursor Cursor
	cfg    Config
	look   *token.Token
	hold   []token.Trivia
}

// New creates a Lexer over file using cfg.
func New(file *source.File, cfg Config) *Lexer {
	return &Lexer{file: file, cursor: NewCursor(file), cfg: cfg}
}

// Lex scans the entire file and returns the resulting token stream. The
// final token always has Kind EndOfFile.
func Lex(file *source.File, cfg Config) token.Stream {
	lx := New(file, cfg)
	var tokens []token.Token
	for {
		tk := lx.Next()
		tokens = append(tokens, tk)
		if tk.Kind == token.EndOfFile {
			break
		}
	}
	return token.NewStream(tokens)
}

// Next returns the next significant token with its leading trivia already
// attached. Every call after the stream is exhausted returns EndOfFile.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EndOfFile, Span: lx.emptySpan(), Text: "", Leading: lx.takeHold()}
	}

	b := lx.cursor.Peek()
	var tok token.Token
	switch {
	case isIdentStart(b):
		tok = lx.scanIdentOrKeyword()
	case isDigit(b):
		tok = lx.scanNumber()
	case b == '"':
		tok = lx.scanString()
	default:
		tok = lx.scanSymbol()
	}

	tok.Leading = lx.takeHold()
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) takeHold() []token.Trivia {
	if len(lx.hold) == 0 {
		return nil
	}
	out := lx.hold
	lx.hold = nil
	return out
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
