package cfamily

import (
	"strings"

	"istudio/internal/ir"
)

// collectIncludesForType records the standard headers type transitively
// needs: fixed-width integers request <cstdint>, strings request <string>.
// Struct/generic types request no header of their own but recurse into
// type arguments.
func collectIncludesForType(t ir.Type, includes map[string]bool) {
	switch t.Kind {
	case ir.I32, ir.I64:
		includes["<cstdint>"] = true
	case ir.String:
		includes["<string>"] = true
	}
	for _, arg := range t.TypeArguments {
		collectIncludesForType(arg, includes)
	}
}

// typeToString renders an IR type as a C-family type expression.
func typeToString(t ir.Type) string {
	switch t.Kind {
	case ir.Void:
		return "void"
	case ir.I32:
		return "std::int32_t"
	case ir.I64:
		return "std::int64_t"
	case ir.F32:
		return "float"
	case ir.F64:
		return "double"
	case ir.Bool:
		return "bool"
	case ir.String:
		return "std::string"
	case ir.Generic:
		return t.Name
	case ir.StructKind:
		if len(t.TypeArguments) == 0 {
			return t.Name
		}
		args := make([]string, len(t.TypeArguments))
		for i, arg := range t.TypeArguments {
			args[i] = typeToString(arg)
		}
		return t.Name + "<" + strings.Join(args, ", ") + ">"
	default:
		return "void"
	}
}

func formatTemplateParameters(params []string) string {
	if len(params) == 0 {
		return ""
	}
	named := make([]string, len(params))
	for i, p := range params {
		named[i] = "typename " + p
	}
	return "template <" + strings.Join(named, ", ") + ">\n"
}

func formatParameterList(params []ir.Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = typeToString(p.Type) + " " + p.Name
	}
	return strings.Join(parts, ", ")
}
