// Package blockpipe exposes the three external entry points of the
// Blockpipe core, per spec.md §6: Lex, Parse, and Interpret. These are the
// only interface a command-line front-end, web binding, or any other
// out-of-scope collaborator needs.
package blockpipe

import (
	"github.com/varun-ramani/blockpipe/config"
	"github.com/varun-ramani/blockpipe/factory"
	"github.com/varun-ramani/blockpipe/internal/ast"
	"github.com/varun-ramani/blockpipe/internal/lexer"
	"github.com/varun-ramani/blockpipe/internal/parser"
	"github.com/varun-ramani/blockpipe/internal/value"
)

// Lex scans source into an ordered sequence of (Token, Span) pairs.
func Lex(source string) ([]lexer.TokenSpan, error) {
	return lexer.Lex(source)
}

// Parse lexes and parses source into a single root AST node.
func Parse(source string) (ast.Node, error) {
	tokens, err := lexer.Lex(source)
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens)
}

// Interpret lexes, parses, and evaluates source under the default
// configuration. args, when non-empty, are bound positionally as $0..$n-1
// plus a $n count before evaluation; when reinvoke is true the evaluated
// root must be a closure, which is then executed with the same args.
func Interpret(source string, args []string, reinvoke bool) (value.Value, error) {
	return InterpretWithConfig(source, args, reinvoke, config.Default())
}

// InterpretWithConfig is Interpret with an explicit configuration, for
// callers that need non-default recursion limits or a disabled-builtins
// list.
func InterpretWithConfig(source string, args []string, reinvoke bool, cfg *config.InterpreterConfig) (value.Value, error) {
	interp, err := factory.New(cfg)
	if err != nil {
		return value.Value{}, err
	}
	return interp.Run(source, args, reinvoke)
}
