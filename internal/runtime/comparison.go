package runtime

import (
	"fmt"

	"github.com/varun-ramani/blockpipe/internal/value"
)

// builtinCmp implements binop_cmp: (a, b, op) -> boolean, with integer
// comparison when both operands are integers and float comparison
// (widening either operand) otherwise.
func builtinCmp(params []value.Value) (value.Value, error) {
	a, b, op, err := numericParams(params, "binop_cmp requires 2 numbers and an operation")
	if err != nil {
		return value.Value{}, err
	}

	if a.Kind == value.Integer && b.Kind == value.Integer {
		result, err := cmpOrdered(a.Int, b.Int, op)
		if err != nil {
			return value.Value{}, err
		}
		return value.Bool_(result), nil
	}

	result, err := cmpOrdered(a.AsFloat(), b.AsFloat(), op)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool_(result), nil
}

// cmpOrdered is shared by both the integer and float comparison paths via
// Go's generic ordered constraint.
func cmpOrdered[T int64 | float64](a, b T, op string) (bool, error) {
	switch op {
	case "<":
		return a < b, nil
	case "<=":
		return a <= b, nil
	case ">":
		return a > b, nil
	case ">=":
		return a >= b, nil
	case "==":
		return a == b, nil
	case "!=":
		return a != b, nil
	default:
		return false, fmt.Errorf("Unknown comparison operation: %s", op)
	}
}
