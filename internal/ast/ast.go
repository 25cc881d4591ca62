// Package ast defines the Blockpipe abstract syntax tree produced by the
// parser and walked by the interpreter.
//
// Modeled on the teacher's go-parser/pkg/ast Node interface
// (Type/String/Children/ToMap) and its Position type, narrowed to the eight
// node shapes spec.md §3 actually names.
package ast

import (
	"fmt"
	"strings"

	"github.com/varun-ramani/blockpipe/internal/lexer"
)

// Position is a human-facing line/column location, derived from a byte
// Span for diagnostics.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// PositionFromSpan converts a byte span into a line/column Position by
// scanning source for newlines up to span.Start.
func PositionFromSpan(source string, span lexer.Span) Position {
	line, col := 1, 1
	for i := 0; i < span.Start && i < len(source); i++ {
		if source[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Position{Line: line, Column: col, Offset: span.Start}
}

// PipeKind distinguishes the two pipe operators.
type PipeKind int

const (
	// Standard is the `|` operator: passes the current value as a single
	// argument.
	Standard PipeKind = iota
	// Destructure is the `|*` operator: requires a tuple and spreads its
	// elements as positional arguments.
	Destructure
)

func (k PipeKind) String() string {
	if k == Destructure {
		return "|*"
	}
	return "|"
}

// LiteralKind distinguishes the four literal payload types.
type LiteralKind int

const (
	IntegerLit LiteralKind = iota
	BooleanLit
	StringLit
	FloatLit
)

// Node is the common interface implemented by every AST node variant.
type Node interface {
	// String renders the node for diagnostics and test failure output.
	String() string
	// ToMap renders the node as a serializable map, for debug dumps.
	ToMap() map[string]interface{}
}

// Literal is a primitive value appearing directly in source.
type Literal struct {
	Kind  LiteralKind
	Int   int64
	Bool  bool
	Str   string
	Float float64
}

func (l *Literal) String() string {
	switch l.Kind {
	case IntegerLit:
		return fmt.Sprintf("Literal(Integer(%d))", l.Int)
	case BooleanLit:
		return fmt.Sprintf("Literal(Boolean(%v))", l.Bool)
	case StringLit:
		return fmt.Sprintf("Literal(String(%q))", l.Str)
	case FloatLit:
		return fmt.Sprintf("Literal(Float(%g))", l.Float)
	default:
		return "Literal(?)"
	}
}

func (l *Literal) ToMap() map[string]interface{} {
	switch l.Kind {
	case IntegerLit:
		return map[string]interface{}{"type": "Literal", "kind": "Integer", "value": l.Int}
	case BooleanLit:
		return map[string]interface{}{"type": "Literal", "kind": "Boolean", "value": l.Bool}
	case StringLit:
		return map[string]interface{}{"type": "Literal", "kind": "String", "value": l.Str}
	case FloatLit:
		return map[string]interface{}{"type": "Literal", "kind": "Float", "value": l.Float}
	default:
		return map[string]interface{}{"type": "Literal", "kind": "Unknown"}
	}
}

// Identifier is a bare name reference.
type Identifier struct {
	Name string
}

func (i *Identifier) String() string { return fmt.Sprintf("Identifier(%s)", i.Name) }

func (i *Identifier) ToMap() map[string]interface{} {
	return map[string]interface{}{"type": "Identifier", "name": i.Name}
}

// Tuple is a parenthesis-delimited ordered sequence of expressions. Order
// is semantically significant.
type Tuple struct {
	Children []Node
}

func (t *Tuple) String() string {
	return fmt.Sprintf("Tuple(%s)", joinNodes(t.Children))
}

func (t *Tuple) ToMap() map[string]interface{} {
	return map[string]interface{}{"type": "Tuple", "children": mapChildren(t.Children)}
}

// Block is a brace-delimited ordered sequence of expressions. Order is
// semantically significant. Evaluating a Block never executes its body; it
// produces a closure value.
type Block struct {
	Children []Node
}

func (b *Block) String() string {
	return fmt.Sprintf("Block(%s)", joinNodes(b.Children))
}

func (b *Block) ToMap() map[string]interface{} {
	return map[string]interface{}{"type": "Block", "children": mapChildren(b.Children)}
}

// Binding names a single value. Evaluating a Binding binds Name in the
// current frame and produces the empty tuple.
type Binding struct {
	Name  string
	Value Node
}

func (b *Binding) String() string {
	return fmt.Sprintf("Binding(%s, %s)", b.Name, b.Value.String())
}

func (b *Binding) ToMap() map[string]interface{} {
	return map[string]interface{}{"type": "Binding", "name": b.Name, "value": b.Value.ToMap()}
}

// Pipe is a flattened n-ary pipe chain. The invariant
// len(Sections) == len(Kinds) + 1 always holds for a successfully parsed
// Pipe; Kinds[i] is the operator joining Sections[i] to Sections[i+1].
type Pipe struct {
	Sections []Node
	Kinds    []PipeKind
}

func (p *Pipe) String() string {
	var b strings.Builder
	b.WriteString("Pipe(")
	for i, s := range p.Sections {
		if i > 0 {
			b.WriteString(fmt.Sprintf(" %s ", p.Kinds[i-1]))
		}
		b.WriteString(s.String())
	}
	b.WriteString(")")
	return b.String()
}

func (p *Pipe) ToMap() map[string]interface{} {
	kinds := make([]string, len(p.Kinds))
	for i, k := range p.Kinds {
		kinds[i] = k.String()
	}
	return map[string]interface{}{
		"type":     "Pipe",
		"sections": mapChildren(p.Sections),
		"kinds":    kinds,
	}
}

// TypeNode wraps a tuple following the reserved `type` keyword. The core
// recognises it but does not evaluate it.
type TypeNode struct {
	Inner Node
}

func (t *TypeNode) String() string { return fmt.Sprintf("Type(%s)", t.Inner.String()) }

func (t *TypeNode) ToMap() map[string]interface{} {
	return map[string]interface{}{"type": "Type", "inner": t.Inner.ToMap()}
}

// Paste wraps a tuple following the reserved `paste` keyword. The core
// recognises it but does not evaluate it.
type Paste struct {
	Inner Node
}

func (p *Paste) String() string { return fmt.Sprintf("Paste(%s)", p.Inner.String()) }

func (p *Paste) ToMap() map[string]interface{} {
	return map[string]interface{}{"type": "Paste", "inner": p.Inner.ToMap()}
}

func joinNodes(nodes []Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, " ")
}

func mapChildren(nodes []Node) []interface{} {
	out := make([]interface{}, len(nodes))
	for i, n := range nodes {
		out[i] = n.ToMap()
	}
	return out
}
