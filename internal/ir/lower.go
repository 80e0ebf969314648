package ir

import "istudio/internal/sema"

// mapType projects a semantic Type onto its IR counterpart, per the table
// the analyzer and backend both agree on.
func mapType(t sema.Type) Type {
	switch t.Kind {
	case sema.Void:
		return VoidType()
	case sema.Integer:
		return I64Type()
	case sema.Float:
		return F64Type()
	case sema.Bool:
		return BoolType()
	case sema.String:
		return StringType()
	case sema.Function:
		return GenericType("fn")
	case sema.Unknown:
		fallthrough
	default:
		return VoidType()
	}
}

// Lower projects a SemanticContext's function registry into an IR module.
// It builds one Function per FunctionSignature with a mapped return type
// and parameter list; function bodies are not lowered in this revision —
// the result is a type-correct symbol skeleton, populated later by
// backend-specific heuristics or future IR builders.
func Lower(ctx *sema.SemanticContext, moduleName string) *Module {
	module := NewModule(moduleName)

	for _, signature := range ctx.Functions.Declarations() {
		params := make([]Parameter, 0, len(signature.Parameters))
		for _, p := range signature.Parameters {
			params = append(params, Parameter{Name: p.Name, Type: mapType(p.Type)})
		}
		module.AddFunction(Function{
			Name:       signature.Name,
			ReturnType: mapType(signature.ReturnType),
			Parameters: params,
		})
	}

	return module
}
