// Package testkit holds structural invariant checks shared by several
// packages' tests: span containment and node id ordering over an ast.Context.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"istudio/internal/ast"
	"istudio/internal/source"
)

// CheckNodeInvariants walks every node reachable from root and verifies:
//  1. every child id is strictly less than its parent's id (nodes are built
//     bottom-up, so an id can never point forward);
//  2. every node's span lies within file's content bounds;
//  3. a structural node's span covers the union of its children's spans
//     (leaf nodes — those with no children — are exempt, since their span is
//     their own lexeme).
func CheckNodeInvariants(arena *ast.Context, root ast.NodeId, file *source.File) error {
	if arena == nil || file == nil {
		return fmt.Errorf("testkit: nil arena or file")
	}
	lenContent, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return fmt.Errorf("testkit: content length overflow: %w", err)
	}
	return checkNode(arena, root, lenContent)
}

func checkNode(arena *ast.Context, id ast.NodeId, lenContent uint32) error {
	node := arena.Node(id)

	if node.Span.End > lenContent {
		return fmt.Errorf("testkit: node #%d span %v exceeds content length %d", id, node.Span, lenContent)
	}
	if node.Span.Start > node.Span.End {
		return fmt.Errorf("testkit: node #%d span %v has start past end", id, node.Span)
	}

	var union source.Span
	haveChild := false
	for _, childID := range node.Children {
		if childID >= id {
			return fmt.Errorf("testkit: node #%d has child #%d with id >= parent id", id, childID)
		}
		if err := checkNode(arena, childID, lenContent); err != nil {
			return err
		}
		child := arena.Node(childID)
		if !haveChild {
			union = child.Span
			haveChild = true
		} else {
			union = union.Cover(child.Span)
		}
	}

	if haveChild {
		if union.Start < node.Span.Start || union.End > node.Span.End {
			return fmt.Errorf("testkit: node #%d span %v does not cover children's union %v", id, node.Span, union)
		}
	}
	return nil
}
