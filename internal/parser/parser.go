// Package parser implements a Pratt/precedence-climbing parser that turns a
// token.Stream into an AST rooted at a Module node.
package parser

import (
	"istudio/internal/ast"
	"istudio/internal/source"
	"istudio/internal/token"
)

// Error is a structural parse failure: a bad token or missing punctuation.
// The parser is fail-fast — the first Error aborts the parse. Recovery is
// left to callers, who may forward it as a diagnostic.
type Error struct {
	Span    source.Span
	Message string
}

func (e *Error) Error() string { return e.Message }

// Result is the outcome of parsing one token stream.
type Result struct {
	Root  ast.NodeId
	Arena *ast.Context
}

// Parser holds the state needed to parse one token stream into one arena.
// It never mutates the stream it was handed.
type Parser struct {
	stream token.Stream
	pos    int
	arena  *ast.Context
	err    *Error
}

// ParseModule parses an entire token stream into a Module node and returns
// the arena it was built in alongside that root id. On the first structural
// error it stops and returns it.
func ParseModule(stream token.Stream) (Result, error) {
	p := &Parser{
		stream: stream,
		arena:  ast.NewContext(stream.Len()),
	}
	root := p.parseModule()
	if p.err != nil {
		return Result{}, p.err
	}
	return Result{Root: root, Arena: p.arena}, nil
}

// ParseExpression parses a single expression at minimum precedence and
// returns its root node.
func ParseExpression(stream token.Stream) (Result, error) {
	p := &Parser{
		stream: stream,
		arena:  ast.NewContext(stream.Len()),
	}
	root := p.parseExpression(precAssignment)
	if p.err != nil {
		return Result{}, p.err
	}
	return Result{Root: root, Arena: p.arena}, nil
}

func (p *Parser) parseModule() ast.NodeId {
	startSpan := p.peek().Span
	var children []ast.NodeId
	for !p.at(token.EndOfFile) && p.err == nil {
		stmt := p.parseStatement()
		if p.err != nil {
			break
		}
		children = append(children, stmt)
	}
	span := startSpan
	if len(children) > 0 {
		last := p.arena.Node(children[len(children)-1])
		span = span.Cover(last.Span)
	}
	span = span.Cover(p.peek().Span)
	return p.arena.CreateNode(ast.Module, span, "", children...)
}

func (p *Parser) peek() token.Token    { return p.stream.At(p.pos) }
func (p *Parser) at(k token.Kind) bool { return p.peek().Kind == k }

func (p *Parser) atSymbol(lexeme string) bool {
	tk := p.peek()
	return tk.Kind == token.Symbol && tk.Text == lexeme
}

func (p *Parser) atKeyword(lexeme string) bool {
	tk := p.peek()
	return tk.Kind == token.Keyword && tk.Text == lexeme
}

func (p *Parser) advance() token.Token {
	tk := p.peek()
	if p.pos < p.stream.Len()-1 {
		p.pos++
	}
	return tk
}

func (p *Parser) expectSymbol(lexeme string) (token.Token, bool) {
	if p.atSymbol(lexeme) {
		return p.advance(), true
	}
	p.fail(p.peek().Span, "expected '"+lexeme+"', got \""+p.peek().Text+"\"")
	return token.Token{}, false
}

func (p *Parser) fail(span source.Span, msg string) {
	if p.err != nil {
		return
	}
	p.err = &Error{Span: span, Message: msg}
}
