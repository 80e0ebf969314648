package cfamily

import (
	"strconv"
	"strings"

	"istudio/internal/ir"
)

func emitBinaryOp(inst ir.Value, symbol string) string {
	if len(inst.Operands) != 2 {
		return "// unsupported operand count for '" + inst.Op + "'"
	}
	var b strings.Builder
	if inst.Result != "" {
		b.WriteString("auto ")
		b.WriteString(inst.Result)
		b.WriteString(" = ")
	}
	b.WriteString(inst.Operands[0])
	b.WriteString(" ")
	b.WriteString(symbol)
	b.WriteString(" ")
	b.WriteString(inst.Operands[1])
	b.WriteString(";")
	return b.String()
}

// translateInstructions lowers a function's IR instructions to target-
// syntax lines, one per instruction. Malformed instructions emit a
// commented placeholder instead of failing; an empty body emits a single
// TODO comment so the generated shell still compiles.
func translateInstructions(fn ir.Function) []string {
	lines := make([]string, 0, len(fn.Instructions))

	for _, inst := range fn.Instructions {
		switch {
		case inst.IsConstant:
			if inst.Result == "" {
				lines = append(lines, "// constant value discarded (no target)")
			} else {
				lines = append(lines, "auto "+inst.Result+" = "+strconv.FormatInt(inst.ConstantValue, 10)+";")
			}

		case inst.Op == "ret" || inst.Op == "return":
			if len(inst.Operands) == 0 {
				lines = append(lines, "return;")
			} else {
				lines = append(lines, "return "+inst.Operands[0]+";")
			}

		case inst.Op == "const":
			switch {
			case len(inst.Operands) == 0:
				lines = append(lines, "// const missing operand")
			case inst.Result == "":
				lines = append(lines, inst.Operands[0]+";")
			default:
				lines = append(lines, "auto "+inst.Result+" = "+inst.Operands[0]+";")
			}

		case inst.Op == "add":
			lines = append(lines, emitBinaryOp(inst, "+"))
		case inst.Op == "sub":
			lines = append(lines, emitBinaryOp(inst, "-"))
		case inst.Op == "mul":
			lines = append(lines, emitBinaryOp(inst, "*"))
		case inst.Op == "div":
			lines = append(lines, emitBinaryOp(inst, "/"))
		case inst.Op == "mod":
			lines = append(lines, emitBinaryOp(inst, "%"))

		case inst.Op == "neg":
			switch {
			case len(inst.Operands) != 1:
				lines = append(lines, "// neg expects one operand")
			case inst.Result == "":
				lines = append(lines, "-"+inst.Operands[0]+";")
			default:
				lines = append(lines, "auto "+inst.Result+" = -"+inst.Operands[0]+";")
			}

		case inst.Op == "call":
			if len(inst.Operands) == 0 {
				lines = append(lines, "// call missing callee")
				continue
			}
			var b strings.Builder
			if inst.Result != "" {
				b.WriteString("auto ")
				b.WriteString(inst.Result)
				b.WriteString(" = ")
			}
			b.WriteString(inst.Operands[0])
			b.WriteString("(")
			b.WriteString(strings.Join(inst.Operands[1:], ", "))
			b.WriteString(");")
			lines = append(lines, b.String())

		default:
			lines = append(lines, "// unsupported op '"+inst.Op+"'")
		}
	}

	if len(lines) == 0 {
		lines = append(lines, "// TODO: provide implementation")
	}

	return lines
}
