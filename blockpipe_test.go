package blockpipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varun-ramani/blockpipe/config"
	"github.com/varun-ramani/blockpipe/internal/value"
)

func TestLex(t *testing.T) {
	tokens, err := Lex("(1 2 3)")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens)
}

func TestLex_UnrecognisedInput(t *testing.T) {
	_, err := Lex("@@@")
	require.Error(t, err)
}

func TestParse(t *testing.T) {
	root, err := Parse("(1 2 3)")
	require.NoError(t, err)
	assert.NotNil(t, root)
}

func TestParse_TrailingTokenFails(t *testing.T) {
	_, err := Parse("1 2")
	require.Error(t, err)
}

// TestInterpret_Scenarios covers spec.md §8's concrete end-to-end scenarios
// against the public Interpret entry point, except the recursive factorial,
// which TestInterpret_RecursiveFactorial covers.
func TestInterpret_Scenarios(t *testing.T) {
	result, err := Interpret("1", nil, false)
	require.NoError(t, err)
	assert.Equal(t, value.Int64(1), result)

	result, err = Interpret("-1.0", nil, false)
	require.NoError(t, err)
	assert.Equal(t, value.Float64(-1.0), result)

	result, err = Interpret("T", nil, false)
	require.NoError(t, err)
	assert.Equal(t, value.Bool_(true), result)

	result, err = Interpret("(1 2 3)", nil, false)
	require.NoError(t, err)
	assert.True(t, value.Equal(
		value.NewTuple([]value.Value{value.Int64(1), value.Int64(2), value.Int64(3)}),
		result,
	))

	result, err = Interpret(`a: "bruh"`, nil, false)
	require.NoError(t, err)
	assert.Equal(t, value.Unit(), result)

	result, err = Interpret("(0 1) | { $0 } |* { ($0 $1 $0 $1) } | { $0 }", nil, false)
	require.NoError(t, err)
	assert.True(t, value.Equal(
		value.NewTuple([]value.Value{value.Int64(0), value.Int64(1), value.Int64(0), value.Int64(1)}),
		result,
	))

	source := `() | { data: (1.0 2.0)  (data |* { (($0 $1 "+") "binop_arith") |* plz }  data |* { (($0 $1 "-") "binop_arith") |* plz }) }`
	result, err = Interpret(source, nil, false)
	require.NoError(t, err)
	assert.True(t, value.Equal(
		value.NewTuple([]value.Value{value.Float64(3.0), value.Float64(-1.0)}),
		result,
	))

	_, err = Interpret("1 |* { $0 }", nil, false)
	require.Error(t, err)
	assert.Equal(t, "Trying to destructure non-tuple value", err.Error())

	_, err = Interpret("nope", nil, false)
	require.Error(t, err)
	assert.Equal(t, "Unbound symbol 'nope'", err.Error())
}

func TestInterpret_RecursiveFactorial(t *testing.T) {
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
	result, err := Interpret(source, nil, false)
	require.NoError(t, err)
	assert.True(t, value.Equal(value.Int64(120), result))
}

func TestInterpret_Reinvoke(t *testing.T) {
	result, err := Interpret("{ $0 }", []string{"hello"}, true)
	require.NoError(t, err)
	assert.Equal(t, value.Str_("hello"), result)
}

func TestInterpretWithConfig_DisabledBuiltin(t *testing.T) {
	cfg := config.Default()
	cfg.DisabledBuiltins = []string{"strcat"}

	_, err := InterpretWithConfig(`(("a" "b") "strcat") |* plz`, nil, false, cfg)
	require.Error(t, err)
	assert.Equal(t, "Unknown runtime call: strcat", err.Error())
}

func TestInterpretWithConfig_RecursionGuard(t *testing.T) {
	cfg := config.Default()
	cfg.MaxEvalDepth = 16

	_, err := InterpretWithConfig("0 | { 0 | rec }", nil, false, cfg)
	require.Error(t, err)
	assert.Equal(t, "Maximum recursion depth exceeded", err.Error())
}
