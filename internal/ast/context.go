package ast

import (
	"fmt"

	"istudio/internal/source"
)

// Context is the append-only arena that owns every Node produced while
// parsing one module. Lookup by NodeId is O(1).
type Context struct {
	nodes []Node
}

// NewContext creates an empty arena with capHint pre-allocated slots.
func NewContext(capHint int) *Context {
	return &Context{nodes: make([]Node, 0, capHint)}
}

// CreateNode appends a new node and returns its freshly assigned id. span
// must already cover value's own span plus, for structural nodes, the union
// of children's spans.
func (c *Context) CreateNode(kind Kind, span source.Span, value string, children ...NodeId) NodeId {
	id := NodeId(len(c.nodes))
	c.nodes = append(c.nodes, Node{
		ID:       id,
		Kind:     kind,
		Span:     span,
		Value:    value,
		Children: children,
	})
	return id
}

// Node returns the node stored at id. It panics on an out-of-range id,
// mirroring the arena's closed-world invariant: every id a caller holds was
// handed out by this same Context.
func (c *Context) Node(id NodeId) *Node {
	if int(id) >= len(c.nodes) {
		panic(fmt.Sprintf("ast: invalid node id %d (arena has %d nodes)", id, len(c.nodes)))
	}
	return &c.nodes[id]
}

// Len returns the number of nodes allocated so far.
func (c *Context) Len() int { return len(c.nodes) }
