package ir

import (
	"strconv"
	"strings"
)

// Print renders a module as the textual IR form: one "function NAME { ... }"
// block per function, one instruction per line.
func Print(module *Module) string {
	var b strings.Builder

	for _, fn := range module.Functions {
		b.WriteString("function ")
		b.WriteString(fn.Name)
		b.WriteString(" {\n")
		for _, inst := range fn.Instructions {
			b.WriteString("  ")
			b.WriteString(inst.Result)
			b.WriteString(" = ")
			if inst.IsConstant {
				b.WriteString("const ")
				b.WriteString(strconv.FormatInt(inst.ConstantValue, 10))
			} else {
				b.WriteString(inst.Op)
				if len(inst.Operands) > 0 {
					b.WriteString(" ")
					b.WriteString(strings.Join(inst.Operands, ", "))
				}
			}
			b.WriteString(";\n")
		}
		b.WriteString("}\n")
	}

	return b.String()
}
