// Package format renders an AST arena as human-readable text or JSON, used
// by the CLI's parse subcommand and by golden-file tests.
package format

import (
	"strconv"
	"strings"

	"istudio/internal/ast"
)

// DumpOptions controls which optional fields a dump includes.
type DumpOptions struct {
	IncludeIDs   bool
	IncludeSpans bool
}

// DefaultDumpOptions includes both ids and spans, matching the original
// dumper's defaults.
func DefaultDumpOptions() DumpOptions {
	return DumpOptions{IncludeIDs: true, IncludeSpans: true}
}

// DumpText renders root and its descendants as indented text: two spaces
// per depth level, one line per node, in the form
// "Kind#id value=\"...\" span=[a, b)".
func DumpText(ctx *ast.Context, root ast.NodeId, options DumpOptions) string {
	var b strings.Builder
	dumpTextNode(ctx, root, options, &b, 0)
	return b.String()
}

func dumpTextNode(ctx *ast.Context, id ast.NodeId, options DumpOptions, b *strings.Builder, depth int) {
	node := ctx.Node(id)

	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(node.Kind.String())

	if options.IncludeIDs {
		b.WriteByte('#')
		b.WriteString(strconv.FormatUint(uint64(node.ID), 10))
	}

	if node.Value != "" {
		b.WriteString(" value=\"")
		b.WriteString(escapeText(node.Value))
		b.WriteByte('"')
	}

	if options.IncludeSpans {
		b.WriteString(" span=[")
		b.WriteString(strconv.FormatUint(uint64(node.Span.Start), 10))
		b.WriteString(", ")
		b.WriteString(strconv.FormatUint(uint64(node.Span.End), 10))
		b.WriteString(")")
	}

	b.WriteByte('\n')

	for _, child := range node.Children {
		dumpTextNode(ctx, child, options, b, depth+1)
	}
}

func escapeText(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteByte(value[i])
		}
	}
	return b.String()
}
