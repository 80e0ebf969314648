package ast

import "istudio/internal/source"

// NodeId is a dense, 0-based, monotonically assigned index into a Context's
// node arena. Edges between nodes are always by id, never by pointer, so the
// arena can grow without invalidating existing references.
type NodeId uint32

// Node is one AST record. Value carries an identifier name, a literal
// spelling, or an operator lexeme depending on Kind; it is empty for purely
// structural nodes. Children are ordered and always have an id smaller than
// this node's own id, since nodes are built bottom-up.
type Node struct {
	ID       NodeId
	Kind     Kind
	Span     source.Span
	Value    string
	Children []NodeId
}
