package opt

import (
	"strconv"

	"istudio/internal/ir"
)

// ConstantFoldingPass folds integer-literal arithmetic, one function at a
// time, in a single forward pass. Division by zero and non-integer
// operands are left untouched; integer overflow wraps, matching Go's
// native int64 arithmetic.
type ConstantFoldingPass struct{}

func (ConstantFoldingPass) Run(module *ir.Module) {
	for i := range module.Functions {
		foldFunction(&module.Functions[i])
	}
}

func foldFunction(fn *ir.Function) {
	constants := make(map[string]int64)

	for i := range fn.Instructions {
		inst := &fn.Instructions[i]

		if inst.IsConstant {
			constants[inst.Result] = inst.ConstantValue
			continue
		}

		if inst.Op == "const" {
			if literal, ok := parseLiteral(inst); ok {
				markConstant(inst, literal)
				constants[inst.Result] = literal
			}
			continue
		}

		if len(inst.Operands) != 2 {
			continue
		}

		lhs, lok := constants[inst.Operands[0]]
		rhs, rok := constants[inst.Operands[1]]
		if !lok || !rok {
			continue
		}

		result, ok := fold(inst.Op, lhs, rhs)
		if !ok {
			continue
		}

		markConstant(inst, result)
		constants[inst.Result] = result
	}
}

func fold(op string, lhs, rhs int64) (int64, bool) {
	switch op {
	case "add":
		return lhs + rhs, true
	case "sub":
		return lhs - rhs, true
	case "mul":
		return lhs * rhs, true
	case "div":
		if rhs == 0 {
			return 0, false
		}
		return lhs / rhs, true
	default:
		return 0, false
	}
}

func parseLiteral(value *ir.Value) (int64, bool) {
	if len(value.Operands) == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(value.Operands[0], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func markConstant(value *ir.Value, constant int64) {
	value.Op = "const"
	value.Operands = nil
	value.IsConstant = true
	value.ConstantValue = constant
}
