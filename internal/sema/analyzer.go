package sema

import (
	"strconv"
	"strings"

	"istudio/internal/ast"
	"istudio/internal/diag"
	"istudio/internal/source"
)

type activeFunction struct {
	signature      *FunctionSignature
	inferredReturn Type
	sawReturn      bool
}

// Analyzer walks an AST arena and records a Type for every node it visits.
type Analyzer struct {
	arena    *ast.Context
	reporter diag.Reporter
	ctx      *SemanticContext
	types    *TypeTable
	stack    []activeFunction
}

// New creates an Analyzer over arena, reporting diagnostics to reporter.
func New(arena *ast.Context, reporter diag.Reporter) *Analyzer {
	return &Analyzer{
		arena:    arena,
		reporter: reporter,
		ctx:      NewSemanticContext(),
		types:    NewTypeTable(),
	}
}

// Context returns the symbol table and function registry built by Analyze.
func (a *Analyzer) Context() *SemanticContext { return a.ctx }

// Types returns the NodeId -> Type map built by Analyze.
func (a *Analyzer) Types() *TypeTable { return a.types }

// Analyze walks root (expected to be a Module node) and its descendants.
func (a *Analyzer) Analyze(root ast.NodeId) {
	a.analyzeNode(root)
}

func (a *Analyzer) analyzeNode(id ast.NodeId) {
	node := a.arena.Node(id)
	switch node.Kind {
	case ast.Module:
		a.analyzeModule(node)
	case ast.Function:
		a.analyzeFunction(node)
	case ast.BlockStmt:
		a.analyzeBlock(node)
	case ast.LetStmt:
		a.analyzeLet(node)
	case ast.ReturnStmt:
		a.analyzeReturn(node)
	case ast.ExpressionStmt:
		a.analyzeExpressionStmt(node)
	}
}

func (a *Analyzer) analyzeModule(node *ast.Node) {
	for _, child := range node.Children {
		a.analyzeNode(child)
	}
	a.assignType(node.ID, Type{Kind: Unknown})
}

func (a *Analyzer) analyzeBlock(node *ast.Node) {
	a.ctx.Symbols.PushScope()
	for _, child := range node.Children {
		a.analyzeNode(child)
	}
	a.ctx.Symbols.PopScope()
	a.assignType(node.ID, Type{Kind: Unknown})
}

// analyzeFunction expects children in the order [name, ArgumentList?, body...].
func (a *Analyzer) analyzeFunction(node *ast.Node) {
	if len(node.Children) == 0 {
		a.assignType(node.ID, Type{Kind: Function, Reference: node.ID})
		return
	}

	nameNode := a.arena.Node(node.Children[0])
	a.declareSymbol(nameNode.Value, nameNode.ID, nameNode.Span)

	functionType := Type{Kind: Function, Reference: node.ID}
	a.assignType(nameNode.ID, functionType)
	a.assignType(node.ID, functionType)

	signature := FunctionSignature{
		Name:       nameNode.Value,
		Node:       node.ID,
		ReturnType: Type{Kind: Unknown},
	}

	nextIndex := 1
	if len(node.Children) > 1 {
		potentialParams := a.arena.Node(node.Children[1])
		if potentialParams.Kind == ast.ArgumentList {
			for _, paramID := range potentialParams.Children {
				paramNode := a.arena.Node(paramID)
				signature.Parameters = append(signature.Parameters, FunctionParameter{
					Name: paramNode.Value,
					Node: paramNode.ID,
					Type: Type{Kind: Unknown},
				})
			}
			nextIndex = 2
		}
	}

	entry, inserted := a.ctx.Functions.Declare(signature)
	if !inserted {
		a.report(diag.SemDuplicateSymbol, nameNode.Span, "duplicate function '"+nameNode.Value+"'")
	}

	a.stack = append(a.stack, activeFunction{signature: entry, inferredReturn: Type{Kind: Unknown}})

	a.ctx.Symbols.PushScope()
	for _, param := range entry.Parameters {
		paramNode := a.arena.Node(param.Node)
		a.declareSymbol(param.Name, param.Node, paramNode.Span)
		a.assignType(param.Node, param.Type)
	}

	for i := nextIndex; i < len(node.Children); i++ {
		a.analyzeNode(node.Children[i])
	}

	a.ctx.Symbols.PopScope()

	active := a.stack[len(a.stack)-1]
	a.stack = a.stack[:len(a.stack)-1]

	returnType := active.inferredReturn
	if !active.sawReturn && returnType.Kind == Unknown {
		returnType.Kind = Void
	}
	entry.ReturnType = returnType
	for i := range entry.Parameters {
		entry.Parameters[i].Type = a.types.Get(entry.Parameters[i].Node)
	}
}

func (a *Analyzer) analyzeLet(node *ast.Node) {
	if len(node.Children) == 0 {
		a.assignType(node.ID, Type{Kind: Unknown})
		return
	}

	nameNode := a.arena.Node(node.Children[0])
	a.declareSymbol(nameNode.Value, nameNode.ID, nameNode.Span)

	initType := Type{Kind: Unknown}
	if len(node.Children) > 1 {
		initType = a.analyzeExpression(node.Children[1])
	}

	a.assignType(nameNode.ID, initType)
	a.assignType(node.ID, initType)
}

func (a *Analyzer) analyzeReturn(node *ast.Node) {
	returnType := Type{Kind: Void}
	if len(node.Children) > 0 {
		returnType = a.analyzeExpression(node.Children[0])
	}
	a.assignType(node.ID, returnType)

	if active := a.currentFunction(); active != nil && active.signature != nil {
		message := "return type mismatch for function '" + active.signature.Name + "'"
		unified := a.unify(active.signature.ReturnType, returnType, node.Span, message)
		active.signature.ReturnType = unified
		returnType = unified
	}
	a.updateCurrentFunctionReturn(returnType, node)
}

func (a *Analyzer) analyzeExpressionStmt(node *ast.Node) {
	if len(node.Children) > 0 {
		exprType := a.analyzeExpression(node.Children[0])
		a.assignType(node.ID, exprType)
	} else {
		a.assignType(node.ID, Type{Kind: Unknown})
	}
}

func (a *Analyzer) analyzeExpression(id ast.NodeId) Type {
	node := a.arena.Node(id)
	switch node.Kind {
	case ast.IdentifierExpr:
		return a.analyzeIdentifier(node)
	case ast.LiteralExpr:
		return a.analyzeLiteral(node)
	case ast.BinaryExpr:
		return a.analyzeBinary(node)
	case ast.AssignmentExpr:
		return a.analyzeAssignment(node)
	case ast.UnaryExpr:
		return a.analyzeUnary(node)
	case ast.GroupExpr:
		return a.analyzeGroup(node)
	case ast.CallExpr:
		return a.analyzeCall(node)
	default:
		for _, child := range node.Children {
			a.analyzeExpression(child)
		}
		result := Type{Kind: Unknown}
		a.assignType(node.ID, result)
		return result
	}
}

func (a *Analyzer) analyzeIdentifier(node *ast.Node) Type {
	symbolID := a.ctx.Symbols.Lookup(node.Value)
	if symbolID == NoNode {
		a.report(diag.SemUnknownIdentifier, node.Span, "use of undeclared symbol '"+node.Value+"'")
		result := Type{Kind: Unknown}
		a.assignType(node.ID, result)
		return result
	}

	declType := a.types.Get(symbolID)
	a.assignType(node.ID, declType)
	return declType
}

func (a *Analyzer) analyzeLiteral(node *ast.Node) Type {
	result := Type{Kind: Unknown}
	value := node.Value

	switch {
	case len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`):
		result.Kind = String
	case value == "true" || value == "false":
		result.Kind = Bool
	case isNumberLiteral(value):
		if strings.Contains(value, ".") {
			result.Kind = Float
		} else {
			result.Kind = Integer
		}
	}

	a.assignType(node.ID, result)
	return result
}

func isNumberLiteral(value string) bool {
	if value == "" {
		return false
	}
	seenDecimal := false
	for _, ch := range value {
		switch {
		case ch >= '0' && ch <= '9':
			continue
		case ch == '.' && !seenDecimal:
			seenDecimal = true
		default:
			return false
		}
	}
	return true
}

func (a *Analyzer) analyzeBinary(node *ast.Node) Type {
	if len(node.Children) < 2 {
		result := Type{Kind: Unknown}
		a.assignType(node.ID, result)
		return result
	}

	left := a.analyzeExpression(node.Children[0])
	right := a.analyzeExpression(node.Children[1])
	result := a.unify(left, right, node.Span, "type mismatch in '"+node.Value+"' expression")
	a.assignType(node.ID, result)
	return result
}

func (a *Analyzer) analyzeAssignment(node *ast.Node) Type {
	if len(node.Children) < 2 {
		result := Type{Kind: Unknown}
		a.assignType(node.ID, result)
		return result
	}

	lhsID, rhsID := node.Children[0], node.Children[1]
	left := a.analyzeExpression(lhsID)
	right := a.analyzeExpression(rhsID)
	result := a.unify(left, right, node.Span, "type mismatch in assignment")

	lhsNode := a.arena.Node(lhsID)
	if lhsNode.Kind == ast.IdentifierExpr {
		if declID := a.ctx.Symbols.Lookup(lhsNode.Value); declID != NoNode {
			declType := a.types.Get(declID)
			unified := a.unify(declType, right, lhsNode.Span, "assignment to '"+lhsNode.Value+"'")
			a.types.Set(declID, unified)
			a.assignType(lhsID, unified)
			left = unified
		}
	}

	result = pickKnown(right, left)
	a.assignType(node.ID, result)
	return result
}

func (a *Analyzer) analyzeUnary(node *ast.Node) Type {
	if len(node.Children) == 0 {
		result := Type{Kind: Unknown}
		a.assignType(node.ID, result)
		return result
	}
	operand := a.analyzeExpression(node.Children[0])
	a.assignType(node.ID, operand)
	return operand
}

func (a *Analyzer) analyzeGroup(node *ast.Node) Type {
	if len(node.Children) == 0 {
		result := Type{Kind: Unknown}
		a.assignType(node.ID, result)
		return result
	}
	inner := a.analyzeExpression(node.Children[0])
	a.assignType(node.ID, inner)
	return inner
}

func (a *Analyzer) analyzeCall(node *ast.Node) Type {
	if len(node.Children) == 0 {
		result := Type{Kind: Unknown}
		a.assignType(node.ID, result)
		return result
	}

	calleeID := node.Children[0]
	calleeType := a.analyzeExpression(calleeID)

	argTypes := make([]Type, 0, len(node.Children)-1)
	for i := 1; i < len(node.Children); i++ {
		argTypes = append(argTypes, a.analyzeExpression(node.Children[i]))
	}

	result := Type{Kind: Unknown}
	if calleeType.Kind == Function {
		if signature := a.ctx.Functions.LookupByNode(calleeType.Reference); signature != nil {
			expected := len(signature.Parameters)
			provided := len(argTypes)
			if expected != provided {
				a.report(diag.SemArgumentCountMismatch, node.Span,
					"expected "+strconv.Itoa(expected)+" argument(s) but got "+strconv.Itoa(provided)+
						" when calling '"+signature.Name+"'")
			}

			limit := expected
			if provided < limit {
				limit = provided
			}
			for i := 0; i < limit; i++ {
				param := signature.Parameters[i]
				paramType := a.types.Get(param.Node)
				argNode := a.arena.Node(node.Children[1+i])
				unified := a.unify(paramType, argTypes[i], argNode.Span, "argument type mismatch for parameter '"+param.Name+"'")
				a.types.Set(param.Node, unified)
				signature.Parameters[i].Type = unified
			}

			result = signature.ReturnType
		}
	}

	a.assignType(node.ID, result)
	return result
}

func (a *Analyzer) declareSymbol(name string, id ast.NodeId, span source.Span) {
	if !a.ctx.Symbols.Insert(name, id) {
		a.report(diag.SemDuplicateSymbol, span, "duplicate symbol '"+name+"'")
	}
}

func (a *Analyzer) assignType(id ast.NodeId, ty Type) {
	a.types.Set(id, ty)
}

func (a *Analyzer) updateCurrentFunctionReturn(returnType Type, node *ast.Node) {
	if len(a.stack) == 0 {
		return
	}
	active := &a.stack[len(a.stack)-1]
	if returnType.Kind != Void {
		active.sawReturn = true
	}

	if returnType.Kind == Unknown {
		active.inferredReturn = Type{Kind: Unknown}
		if active.signature != nil {
			active.signature.ReturnType = Type{Kind: Unknown}
		}
		return
	}

	message := "conflicting return types"
	if active.signature != nil {
		message += " in function '" + active.signature.Name + "'"
	}
	active.inferredReturn = a.unify(active.inferredReturn, returnType, node.Span, message)
	if active.signature != nil {
		active.signature.ReturnType = active.inferredReturn
	}
}

// unify applies the four-step unification rule, reporting SemTypeMismatch
// and returning Unknown on disagreement.
func (a *Analyzer) unify(lhs, rhs Type, span source.Span, message string) Type {
	if lhs.Kind == Unknown {
		return rhs
	}
	if rhs.Kind == Unknown {
		return lhs
	}
	if lhs.Kind == rhs.Kind {
		if lhs.Kind == Function && lhs.Reference != rhs.Reference {
			a.report(diag.SemTypeMismatch, span, message)
			return Type{Kind: Unknown}
		}
		return lhs
	}
	a.report(diag.SemTypeMismatch, span, message)
	return Type{Kind: Unknown}
}

func (a *Analyzer) currentFunction() *activeFunction {
	if len(a.stack) == 0 {
		return nil
	}
	return &a.stack[len(a.stack)-1]
}

func (a *Analyzer) report(code diag.Code, span source.Span, message string) {
	if a.reporter == nil {
		return
	}
	a.reporter.Report(code, diag.SevError, span, message, nil)
}

// pickKnown returns lhs if it is not Unknown, otherwise rhs.
func pickKnown(lhs, rhs Type) Type {
	if lhs.Kind != Unknown {
		return lhs
	}
	return rhs
}
