package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varun-ramani/blockpipe/internal/runtime"
	"github.com/varun-ramani/blockpipe/internal/value"
	"github.com/varun-ramani/blockpipe/logging"
)

func newTestInterpreter(t *testing.T) *Interpreter {
	t.Helper()
	return New(runtime.AllNames(), 512, 4096, logging.Nop(), false)
}

func TestRun_Literals(t *testing.T) {
	interp := newTestInterpreter(t)

	result, err := interp.Run("1", nil, false)
	require.NoError(t, err)
	assert.Equal(t, value.Int64(1), result)

	result, err = interp.Run("-1.0", nil, false)
	require.NoError(t, err)
	assert.Equal(t, value.Float64(-1.0), result)

	result, err = interp.Run("T", nil, false)
	require.NoError(t, err)
	assert.Equal(t, value.Bool_(true), result)
}

func TestRun_Tuple(t *testing.T) {
	interp := newTestInterpreter(t)
	result, err := interp.Run("(1 2 3)", nil, false)
	require.NoError(t, err)
	assert.True(t, value.Equal(value.NewTuple([]value.Value{value.Int64(1), value.Int64(2), value.Int64(3)}), result))
}

func TestRun_Binding(t *testing.T) {
	interp := newTestInterpreter(t)
	result, err := interp.Run(`a: "bruh"`, nil, false)
	require.NoError(t, err)
	assert.Equal(t, value.Unit(), result)
}

func TestRun_DestructurePipeScenario(t *testing.T) {
	interp := newTestInterpreter(t)
	result, err := interp.Run("(0 1) | { $0 } |* { ($0 $1 $0 $1) } | { $0 }", nil, false)
	require.NoError(t, err)
	want := value.NewTuple([]value.Value{value.Int64(0), value.Int64(1), value.Int64(0), value.Int64(1)})
	assert.True(t, value.Equal(want, result))
}

func TestRun_RuntimeArithScenario(t *testing.T) {
	interp := newTestInterpreter(t)
	source := `() | { data: (1.0 2.0)  (data |* { (($0 $1 "+") "binop_arith") |* plz }  data |* { (($0 $1 "-") "binop_arith") |* plz }) }`
	result, err := interp.Run(source, nil, false)
	require.NoError(t, err)
	want := value.NewTuple([]value.Value{value.Float64(3.0), value.Float64(-1.0)})
	assert.True(t, value.Equal(want, result))
}

// TestRun_RecursiveFactorial exercises rec-based recursion through the
// "if" built-in. Because rec rebinds to whichever closure is currently
// executing, the then/else branches passed to "if" cannot refer to rec
// directly (by the time they run, rec refers to themselves, not to
// fact) — so fact first copies rec into self, a name "if"'s branches can
// safely capture and call.
func TestRun_RecursiveFactorial(t *testing.T) {
	interp := newTestInterpreter(t)
	source := `
() | {
	fact: {
		self: rec
		n: $0
		isBase: ((n 1 "<=") "binop_cmp") |* plz
		((isBase { 1 } { m: ((n 1 "-") "binop_arith") |* plz
			sub: m | self
			((n sub "*") "binop_arith") |* plz }) "if") |* plz
	}
	5 | fact
}
`
	result, err := interp.Run(source, nil, false)
	require.NoError(t, err)
	assert.True(t, value.Equal(value.Int64(120), result))
}

func TestRun_DestructureNonTupleError(t *testing.T) {
	interp := newTestInterpreter(t)
	_, err := interp.Run("1 |* { $0 }", nil, false)
	require.Error(t, err)
	assert.Equal(t, "Trying to destructure non-tuple value", err.Error())
}

func TestRun_UnboundIdentifier(t *testing.T) {
	interp := newTestInterpreter(t)
	_, err := interp.Run("nope", nil, false)
	require.Error(t, err)
	assert.Equal(t, "Unbound symbol 'nope'", err.Error())
}

func TestRun_ArgsBoundPositionally(t *testing.T) {
	interp := newTestInterpreter(t)
	result, err := interp.Run("($0 $1 $n)", []string{"a", "b"}, false)
	require.NoError(t, err)
	want := value.NewTuple([]value.Value{value.Str_("a"), value.Str_("b"), value.Int64(2)})
	assert.True(t, value.Equal(want, result))
}

func TestRun_Reinvoke(t *testing.T) {
	interp := newTestInterpreter(t)
	result, err := interp.Run("{ $0 }", []string{"hello"}, true)
	require.NoError(t, err)
	assert.Equal(t, value.Str_("hello"), result)
}

func TestRun_ReinvokeRequiresClosure(t *testing.T) {
	interp := newTestInterpreter(t)
	_, err := interp.Run("1", nil, true)
	require.Error(t, err)
}

func TestRun_BlockDoesNotExecuteUntilPiped(t *testing.T) {
	interp := newTestInterpreter(t)
	result, err := interp.Run("{ 1 2 3 }", nil, false)
	require.NoError(t, err)
	assert.True(t, result.IsClosure())
}

func TestRun_PipeThroughNonClosureFails(t *testing.T) {
	interp := newTestInterpreter(t)
	_, err := interp.Run("1 | 2", nil, false)
	require.Error(t, err)
	assert.Equal(t, "Passed non-closure for evaluation", err.Error())
}

func TestRun_TypeAndPasteAreUnsupported(t *testing.T) {
	interp := newTestInterpreter(t)

	_, err := interp.Run("type (1)", nil, false)
	require.Error(t, err)
	assert.Equal(t, "unsupported node: Type", err.Error())

	_, err = interp.Run("paste (1)", nil, false)
	require.Error(t, err)
	assert.Equal(t, "unsupported node: Paste", err.Error())
}

func TestRun_RecursionGuardTripsOnUnboundedRecursion(t *testing.T) {
	interp := New(runtime.AllNames(), 512, 16, logging.Nop(), false)
	_, err := interp.Run("0 | { 0 | rec }", nil, false)
	require.Error(t, err)
	assert.Equal(t, "Maximum recursion depth exceeded", err.Error())
}

func TestRun_FreshEnvironmentPerCall(t *testing.T) {
	interp := newTestInterpreter(t)

	_, err := interp.Run(`a: 1`, nil, false)
	require.NoError(t, err)

	_, err = interp.Run(`a`, nil, false)
	require.Error(t, err, "a binding from one Run must not leak into the next")
}
