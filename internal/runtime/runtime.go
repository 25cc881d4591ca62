// Package runtime implements Blockpipe's built-in runtime collaborator
// (spec.md §4.4): the six calls reachable by piping a (parameters, name)
// tuple with Destructure into the `plz` sentinel value.
//
// Dispatch-by-name-through-a-registry is grounded on the teacher's
// runtime.LanguageRuntime interface in runtime/runtime.go, radically
// narrowed: Blockpipe has one fixed built-in table, not a pluggable
// multi-language host, so a 20-method interface collapses to a single
// Builtin function type registered by name. Call semantics and error
// strings grounded on
// original_source/language/src/interpreter/interp_runtime.rs.
package runtime

import (
	"fmt"

	"github.com/varun-ramani/blockpipe/container"
	"github.com/varun-ramani/blockpipe/internal/value"
)

// Builtin is a single named runtime call: parameters in, result value or
// error out.
type Builtin func(params []value.Value) (value.Value, error)

// ClosureExecutor lets a Builtin (namely "if") execute a closure value
// without the runtime package importing the interpreter package, which
// would create an import cycle (interpreter imports runtime to dispatch
// into it).
type ClosureExecutor func(closure value.Value, args []value.Value) (value.Value, error)

// Table is the registered built-in call table, backed by a
// container.Container so individual calls are wired (and can be disabled)
// independently.
type Table struct {
	c *container.Container
}

// NewTable builds a Table with every call in names registered. Omitting a
// name from names (per config.InterpreterConfig.DisabledBuiltins) means
// dispatching to it later fails with the same "Unknown runtime call" shape
// used for a genuinely unrecognised name.
func NewTable(names []string, exec ClosureExecutor) *Table {
	c := container.New()
	all := allBuiltins(exec)
	for _, name := range names {
		if b, ok := all[name]; ok {
			builtin := b // capture
			c.Register(name, func() (interface{}, error) { return builtin, nil }, container.Singleton)
		}
	}
	return &Table{c: c}
}

// AllNames returns the names of every built-in call this package knows how
// to implement, used by factory.New to derive the enabled set.
func AllNames() []string {
	return []string{"foo", "binop_arith", "binop_cmp", "strcat", "print", "if"}
}

// Invoke dispatches call with params, per spec.md §4.4.
func (t *Table) Invoke(call string, params []value.Value) (value.Value, error) {
	instance, err := t.c.Resolve(call)
	if err != nil {
		return value.Value{}, fmt.Errorf("Unknown runtime call: %s", call)
	}
	builtin := instance.(Builtin)
	return builtin(params)
}

func allBuiltins(exec ClosureExecutor) map[string]Builtin {
	return map[string]Builtin{
		"foo":         builtinFoo,
		"binop_arith": builtinArith,
		"binop_cmp":   builtinCmp,
		"strcat":      builtinStrcat,
		"print":       builtinPrint,
		"if":          builtinIf(exec),
	}
}

func builtinFoo(params []value.Value) (value.Value, error) {
	return value.Str_("bar"), nil
}

func builtinStrcat(params []value.Value) (value.Value, error) {
	if len(params) != 2 {
		return value.Value{}, fmt.Errorf("strcat requires 2 arguments")
	}
	a, b := params[0], params[1]
	if a.Kind != value.String || b.Kind != value.String {
		return value.Value{}, fmt.Errorf("strcat requires two strings")
	}
	return value.Str_(a.Str + b.Str), nil
}

func builtinPrint(params []value.Value) (value.Value, error) {
	if len(params) != 1 {
		return value.Value{}, fmt.Errorf("print requires 1 argument")
	}
	fmt.Println(value.Display(params[0]))
	return value.Unit(), nil
}

func builtinIf(exec ClosureExecutor) Builtin {
	return func(params []value.Value) (value.Value, error) {
		if len(params) != 3 {
			return value.Value{}, fmt.Errorf("if requires 3 arguments")
		}
		cond, thenClosure, elseClosure := params[0], params[1], params[2]
		if cond.Kind != value.Boolean || !thenClosure.IsClosure() || !elseClosure.IsClosure() {
			return value.Value{}, fmt.Errorf("if requires boolean and two closures")
		}
		if cond.Bool {
			return exec(thenClosure, nil)
		}
		return exec(elseClosure, nil)
	}
}
