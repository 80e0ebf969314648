package parser

import (
	"istudio/internal/ast"
	"istudio/internal/token"
)

// parseStatement dispatches on the leading token to one of the four
// statement shapes: let, return, block, or a bare expression statement.
func (p *Parser) parseStatement() ast.NodeId {
	switch {
	case p.atKeyword("let"):
		return p.parseLetStatement()
	case p.atKeyword("return"):
		return p.parseReturnStatement()
	case p.atSymbol("{"):
		return p.parseBlock()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() ast.NodeId {
	kw := p.advance() // 'let'

	value := "let"
	if p.atKeyword("mut") {
		p.advance()
		value = "mut"
	}

	if !p.at(token.Identifier) {
		p.fail(p.peek().Span, "expected identifier after 'let'")
		return 0
	}
	nameTok := p.advance()
	name := p.arena.CreateNode(ast.IdentifierExpr, nameTok.Span, nameTok.Text)

	if _, ok := p.expectSymbol("="); !ok {
		return 0
	}

	init := p.parseExpression(precAssignment)
	if p.err != nil {
		return 0
	}

	semi, ok := p.expectSymbol(";")
	if !ok {
		return 0
	}

	span := kw.Span.Cover(semi.Span)
	return p.arena.CreateNode(ast.LetStmt, span, value, name, init)
}

func (p *Parser) parseReturnStatement() ast.NodeId {
	kw := p.advance() // 'return'

	var children []ast.NodeId
	if !p.atSymbol(";") {
		val := p.parseExpression(precAssignment)
		if p.err != nil {
			return 0
		}
		children = append(children, val)
	}

	semi, ok := p.expectSymbol(";")
	if !ok {
		return 0
	}

	span := kw.Span.Cover(semi.Span)
	return p.arena.CreateNode(ast.ReturnStmt, span, "", children...)
}

func (p *Parser) parseBlock() ast.NodeId {
	open, _ := p.expectSymbol("{")

	var children []ast.NodeId
	for !p.atSymbol("}") && !p.at(token.EndOfFile) && p.err == nil {
		stmt := p.parseStatement()
		if p.err != nil {
			return 0
		}
		children = append(children, stmt)
	}

	closeBrace, ok := p.expectSymbol("}")
	if !ok {
		return 0
	}

	span := open.Span.Cover(closeBrace.Span)
	return p.arena.CreateNode(ast.BlockStmt, span, "", children...)
}

func (p *Parser) parseExpressionStatement() ast.NodeId {
	expr := p.parseExpression(precAssignment)
	if p.err != nil {
		return 0
	}
	semi, ok := p.expectSymbol(";")
	if !ok {
		return 0
	}
	exprNode := p.arena.Node(expr)
	span := exprNode.Span.Cover(semi.Span)
	return p.arena.CreateNode(ast.ExpressionStmt, span, "", expr)
}
