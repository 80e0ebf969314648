package format

import (
	"strconv"
	"strings"

	"istudio/internal/ast"
)

// DumpJSON renders root and its descendants as a hand-indented JSON tree
// (2-space step), matching the structural shape a decoder would expect:
// optional "id", "kind", optional "span", "value", "children".
func DumpJSON(ctx *ast.Context, root ast.NodeId, options DumpOptions) string {
	var b strings.Builder
	dumpJSONNode(ctx, root, options, &b, 0)
	b.WriteByte('\n')
	return b.String()
}

func dumpJSONNode(ctx *ast.Context, id ast.NodeId, options DumpOptions, b *strings.Builder, indent int) {
	node := ctx.Node(id)
	indentStr := strings.Repeat(" ", indent)
	b.WriteString(indentStr)
	b.WriteString("{\n")

	innerIndentValue := indent + 2
	innerIndent := strings.Repeat(" ", innerIndentValue)

	fieldIndex := 0
	addField := func(field string) {
		if fieldIndex > 0 {
			b.WriteString(",\n")
		}
		b.WriteString(innerIndent)
		b.WriteString(field)
		fieldIndex++
	}

	if options.IncludeIDs {
		addField(`"id": ` + strconv.FormatUint(uint64(node.ID), 10))
	}

	addField(`"kind": "` + node.Kind.String() + `"`)

	if options.IncludeSpans {
		addField(`"span": {"start": ` + strconv.FormatUint(uint64(node.Span.Start), 10) +
			`, "end": ` + strconv.FormatUint(uint64(node.Span.End), 10) + `}`)
	}

	addField(`"value": "` + jsonEscape(node.Value) + `"`)

	if fieldIndex > 0 {
		b.WriteString(",\n")
	}
	b.WriteString(innerIndent)
	b.WriteString(`"children": [`)

	if len(node.Children) > 0 {
		b.WriteString("\n")
		for i, child := range node.Children {
			dumpJSONNode(ctx, child, options, b, innerIndentValue+2)
			if i+1 < len(node.Children) {
				b.WriteString(",\n")
			} else {
				b.WriteString("\n")
			}
		}
		b.WriteString(innerIndent)
		b.WriteString("]")
	} else {
		b.WriteString("]")
	}

	b.WriteString("\n")
	b.WriteString(indentStr)
	b.WriteString("}")
}

func jsonEscape(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		ch := value[i]
		switch ch {
		case '"':
			b.WriteString(`\"`)
			continue
		case '\\':
			b.WriteString(`\\`)
			continue
		case '\b':
			b.WriteString(`\b`)
			continue
		case '\f':
			b.WriteString(`\f`)
			continue
		case '\n':
			b.WriteString(`\n`)
			continue
		case '\r':
			b.WriteString(`\r`)
			continue
		case '\t':
			b.WriteString(`\t`)
			continue
		}
		if ch < 0x20 {
			b.WriteString(escapeControlCharacter(ch))
			continue
		}
		b.WriteByte(ch)
	}
	return b.String()
}

const hexDigits = "0123456789ABCDEF"

func escapeControlCharacter(ch byte) string {
	return "\\u00" + string(hexDigits[(ch>>4)&0x0F]) + string(hexDigits[ch&0x0F])
}
