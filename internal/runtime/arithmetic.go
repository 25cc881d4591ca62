package runtime

import (
	"fmt"

	"github.com/varun-ramani/blockpipe/internal/value"
)

// builtinArith implements binop_arith: (a, b, op) -> numeric, with integer
// arithmetic when both operands are integers and float arithmetic
// (widening either operand) otherwise.
func builtinArith(params []value.Value) (value.Value, error) {
	a, b, op, err := numericParams(params, "binop_arith requires 2 numbers and an operation")
	if err != nil {
		return value.Value{}, err
	}

	if a.Kind == value.Integer && b.Kind == value.Integer {
		result, err := arithInt(a.Int, b.Int, op)
		if err != nil {
			return value.Value{}, err
		}
		return value.Int64(result), nil
	}

	result, err := arithFloat(a.AsFloat(), b.AsFloat(), op)
	if err != nil {
		return value.Value{}, err
	}
	return value.Float64(result), nil
}

func arithInt(a, b int64, op string) (int64, error) {
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, fmt.Errorf("Division by zero")
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("Unknown arithmetic operation: %s", op)
	}
}

func arithFloat(a, b float64, op string) (float64, error) {
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, fmt.Errorf("Division by zero")
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("Unknown arithmetic operation: %s", op)
	}
}

// numericParams validates the common (a, b, op) shape shared by
// binop_arith and binop_cmp.
func numericParams(params []value.Value, shapeErr string) (value.Value, value.Value, string, error) {
	if len(params) != 3 {
		return value.Value{}, value.Value{}, "", fmt.Errorf(shapeErr)
	}
	a, b, opVal := params[0], params[1], params[2]
	if opVal.Kind != value.String {
		return value.Value{}, value.Value{}, "", fmt.Errorf("Third parameter must be an operation string")
	}
	if !a.IsNumeric() || !b.IsNumeric() {
		return value.Value{}, value.Value{}, "", fmt.Errorf("binop_arith requires both operands to be numeric")
	}
	return a, b, opVal.Str, nil
}
