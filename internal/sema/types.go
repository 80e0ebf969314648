// Package sema walks an AST arena, assigns types to every node, and
// accumulates diagnostics. It never mutates the AST.
package sema

import "istudio/internal/ast"

// TypeKind is the closed set of types the analyzer can infer.
type TypeKind uint8

const (
	Unknown TypeKind = iota
	Void
	Integer
	Float
	Bool
	String
	Function
)

// NoNode is the sentinel NodeId returned by SymbolTable.Lookup when a name
// is not found in any live scope.
const NoNode = ast.NodeId(^uint32(0))

// Type is a tagged value. Reference identifies the defining node for
// Function types, resolved through the FunctionRegistry; it is meaningless
// for any other kind.
type Type struct {
	Kind      TypeKind
	Reference ast.NodeId
}
