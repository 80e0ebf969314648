package parser

import (
	"istudio/internal/ast"
	"istudio/internal/token"
)

// parseExpression implements precedence-climbing: it parses a unary operand
// then repeatedly folds in binary operators whose precedence is at least
// minPrec, recursing at prec+1 for left-associative operators and at prec
// for right-associative assignment.
func (p *Parser) parseExpression(minPrec int) ast.NodeId {
	left := p.parseUnary()
	if p.err != nil {
		return 0
	}

	for {
		tk := p.peek()
		prec, ok := binaryPrecedence(tk.Kind, tk.Text)
		if !ok || prec < minPrec {
			return left
		}
		opTok := p.advance()

		nextMin := prec + 1
		kind := ast.BinaryExpr
		if assignmentOps[opTok.Text] {
			nextMin = prec
			kind = ast.AssignmentExpr
		}

		right := p.parseExpression(nextMin)
		if p.err != nil {
			return 0
		}

		leftNode := p.arena.Node(left)
		rightNode := p.arena.Node(right)
		span := leftNode.Span.Cover(rightNode.Span)
		left = p.arena.CreateNode(kind, span, opTok.Text, left, right)
	}
}

// parseUnary handles prefix !, -, +, and the (currently unreachable, since
// the lexer never classifies "await" as a Keyword) await branch, then falls
// through to a primary expression wrapped in postfix call parsing.
func (p *Parser) parseUnary() ast.NodeId {
	if isUnaryPrefix(p.peek()) {
		opTok := p.advance()
		operand := p.parseUnary()
		if p.err != nil {
			return 0
		}
		operandNode := p.arena.Node(operand)
		span := opTok.Span.Cover(operandNode.Span)
		return p.arena.CreateNode(ast.UnaryExpr, span, opTok.Text, operand)
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary expression then chains any number of call
// suffixes: `f(a)(b)` builds nested CallExpr nodes.
func (p *Parser) parsePostfix() ast.NodeId {
	expr := p.parsePrimary()
	if p.err != nil {
		return 0
	}
	for p.atSymbol("(") {
		expr = p.parseCall(expr)
		if p.err != nil {
			return 0
		}
	}
	return expr
}

func (p *Parser) parseCall(callee ast.NodeId) ast.NodeId {
	open, _ := p.expectSymbol("(")

	children := []ast.NodeId{callee}
	if !p.atSymbol(")") {
		for {
			arg := p.parseExpression(precAssignment)
			if p.err != nil {
				return 0
			}
			children = append(children, arg)
			if !p.atSymbol(",") {
				break
			}
			p.advance()
		}
	}

	closeParen, ok := p.expectSymbol(")")
	if !ok {
		return 0
	}

	calleeNode := p.arena.Node(callee)
	span := calleeNode.Span.Cover(open.Span).Cover(closeParen.Span)
	return p.arena.CreateNode(ast.CallExpr, span, "", children...)
}

// parsePrimary parses an identifier, a number/string literal, a keyword used
// in expression position, or a parenthesized group. Any other token is a
// structural parse error.
func (p *Parser) parsePrimary() ast.NodeId {
	tk := p.peek()
	switch tk.Kind {
	case token.Identifier:
		p.advance()
		return p.arena.CreateNode(ast.IdentifierExpr, tk.Span, tk.Text)
	case token.Number, token.StringLiteral:
		p.advance()
		return p.arena.CreateNode(ast.LiteralExpr, tk.Span, tk.Text)
	case token.Keyword:
		p.advance()
		return p.arena.CreateNode(ast.LiteralExpr, tk.Span, tk.Text)
	case token.Symbol:
		if tk.Text == "(" {
			return p.parseGroup()
		}
	}
	p.fail(tk.Span, "unexpected token \""+tk.Text+"\" in expression")
	return 0
}

func (p *Parser) parseGroup() ast.NodeId {
	open, _ := p.expectSymbol("(")
	inner := p.parseExpression(precAssignment)
	if p.err != nil {
		return 0
	}
	closeParen, ok := p.expectSymbol(")")
	if !ok {
		return 0
	}
	span := open.Span.Cover(closeParen.Span)
	return p.arena.CreateNode(ast.GroupExpr, span, "", inner)
}
