// Package value defines Blockpipe's runtime values: the result type of
// evaluation, including the closure value and its captured environment
// image.
//
// Variant set grounded on
// original_source/language/src/interpreter/value.rs; display formatting
// grounded on the teacher's shared.FormatValueForDisplay idiom (a single
// function centralizing display logic), fully rewritten for these variants
// since Blockpipe has no bitstring value.
package value

import (
	"fmt"
	"strings"

	"github.com/varun-ramani/blockpipe/internal/ast"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	Integer Kind = iota
	Boolean
	Float
	String
	TupleKind
	ClosureKind
	RuntimeInvocationKind
)

// Value is a tagged union over Blockpipe's runtime values. Only the
// field(s) of the variant selected by Kind are meaningful (Body and
// Captured for a closure, one field for every other payload-carrying kind).
type Value struct {
	Kind Kind

	Int   int64
	Bool  bool
	Flt   float64
	Str   string
	Tuple []Value

	// Closure fields.
	Body     []ast.Node
	Captured map[string]Value
}

// Int64 constructs an Integer value.
func Int64(i int64) Value { return Value{Kind: Integer, Int: i} }

// Bool_ constructs a Boolean value.
func Bool_(b bool) Value { return Value{Kind: Boolean, Bool: b} }

// Float64 constructs a Float value.
func Float64(f float64) Value { return Value{Kind: Float, Flt: f} }

// Str_ constructs a String value.
func Str_(s string) Value { return Value{Kind: String, Str: s} }

// NewTuple constructs a Tuple value. A nil or empty elems produces the unit
// value (the empty tuple).
func NewTuple(elems []Value) Value {
	return Value{Kind: TupleKind, Tuple: elems}
}

// Unit is the empty tuple, the default result of bindings and empty
// closure bodies.
func Unit() Value { return NewTuple(nil) }

// NewClosure constructs a Closure value pairing a body with a captured
// environment image.
func NewClosure(body []ast.Node, captured map[string]Value) Value {
	return Value{Kind: ClosureKind, Body: body, Captured: captured}
}

// RuntimeInvocation is the sentinel value bound to `plz`, recognised by the
// pipe engine to dispatch into the built-in runtime table.
func RuntimeInvocation() Value { return Value{Kind: RuntimeInvocationKind} }

// IsTuple reports whether v holds a Tuple.
func (v Value) IsTuple() bool { return v.Kind == TupleKind }

// IsClosure reports whether v holds a Closure.
func (v Value) IsClosure() bool { return v.Kind == ClosureKind }

// IsRuntimeInvocation reports whether v is the `plz` sentinel.
func (v Value) IsRuntimeInvocation() bool { return v.Kind == RuntimeInvocationKind }

// IsNumeric reports whether v holds an Integer or a Float.
func (v Value) IsNumeric() bool { return v.Kind == Integer || v.Kind == Float }

// AsFloat widens an Integer or Float value to float64. Callers must check
// IsNumeric first.
func (v Value) AsFloat() float64 {
	if v.Kind == Integer {
		return float64(v.Int)
	}
	return v.Flt
}

// Equal reports structural equality per spec.md §5 ("values are compared
// structurally"). Closures compare equal when their bodies and captured
// images are equal — this is an explicit choice over reflect.DeepEqual,
// which would also need to look inside AST pointers the spec never asks to
// be compared; a variant-aware walk is simpler and matches the spec's
// "equal captured images" testable property directly.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Integer:
		return a.Int == b.Int
	case Boolean:
		return a.Bool == b.Bool
	case Float:
		return a.Flt == b.Flt
	case String:
		return a.Str == b.Str
	case TupleKind:
		if len(a.Tuple) != len(b.Tuple) {
			return false
		}
		for i := range a.Tuple {
			if !Equal(a.Tuple[i], b.Tuple[i]) {
				return false
			}
		}
		return true
	case ClosureKind:
		if len(a.Body) != len(b.Body) || len(a.Captured) != len(b.Captured) {
			return false
		}
		for i := range a.Body {
			if a.Body[i].String() != b.Body[i].String() {
				return false
			}
		}
		for name, av := range a.Captured {
			bv, ok := b.Captured[name]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	case RuntimeInvocationKind:
		return true
	default:
		return false
	}
}

// Display renders v in Blockpipe's canonical display form: primitives
// print as themselves, a tuple prints as its elements space-separated
// inside parentheses, closures print as <closure>, and the runtime
// sentinel prints as <runtime invocation>.
func Display(v Value) string {
	switch v.Kind {
	case Integer:
		return fmt.Sprintf("%d", v.Int)
	case Boolean:
		if v.Bool {
			return "T"
		}
		return "F"
	case Float:
		return fmt.Sprintf("%g", v.Flt)
	case String:
		return v.Str
	case TupleKind:
		parts := make([]string, len(v.Tuple))
		for i, e := range v.Tuple {
			parts[i] = Display(e)
		}
		return "(" + strings.Join(parts, " ") + ")"
	case ClosureKind:
		return "<closure>"
	case RuntimeInvocationKind:
		return "<runtime invocation>"
	default:
		return "<unknown>"
	}
}
