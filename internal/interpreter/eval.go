package interpreter

import (
	"fmt"

	"github.com/varun-ramani/blockpipe/errors"
	"github.com/varun-ramani/blockpipe/internal/ast"
	"github.com/varun-ramani/blockpipe/internal/environment"
	"github.com/varun-ramani/blockpipe/internal/value"
)

// eval dispatches on node's concrete type, implementing spec.md §4.3's
// per-variant evaluation rules. s.guard bounds the depth of this recursive
// descent, shared across every nested eval and closure execution this
// session makes, so a chain of recursive closure calls is bounded exactly
// like deeply nested AST structure.
func (s *session) eval(node ast.Node, env *environment.Environment) (value.Value, error) {
	if err := s.guard.Enter(); err != nil {
		return value.Value{}, err
	}
	defer s.guard.Exit()

	switch n := node.(type) {
	case *ast.Literal:
		return evalLiteral(n), nil

	case *ast.Identifier:
		v, ok := env.Lookup(n.Name)
		if !ok {
			return value.Value{}, errors.NewEvaluationError(fmt.Sprintf("Unbound symbol '%s'", n.Name))
		}
		return v, nil

	case *ast.Tuple:
		elems := make([]value.Value, len(n.Children))
		for i, child := range n.Children {
			v, err := s.eval(child, env)
			if err != nil {
				return value.Value{}, err
			}
			elems[i] = v
		}
		return value.NewTuple(elems), nil

	case *ast.Block:
		return value.NewClosure(n.Children, env.Image()), nil

	case *ast.Binding:
		v, err := s.eval(n.Value, env)
		if err != nil {
			return value.Value{}, err
		}
		env.Bind(n.Name, v)
		return value.Unit(), nil

	case *ast.Pipe:
		return s.evalPipe(n, env)

	case *ast.TypeNode:
		return value.Value{}, errors.NewEvaluationError("unsupported node: Type")

	case *ast.Paste:
		return value.Value{}, errors.NewEvaluationError("unsupported node: Paste")

	default:
		return value.Value{}, errors.NewEvaluationError(fmt.Sprintf("unsupported node: %T", node))
	}
}

func evalLiteral(l *ast.Literal) value.Value {
	switch l.Kind {
	case ast.IntegerLit:
		return value.Int64(l.Int)
	case ast.BooleanLit:
		return value.Bool_(l.Bool)
	case ast.StringLit:
		return value.Str_(l.Str)
	case ast.FloatLit:
		return value.Float64(l.Float)
	default:
		return value.Unit()
	}
}

// evalBody evaluates a closure body's expressions in order,
// returning the last value (or the empty tuple for an empty body) per
// spec.md §4.3.
func (s *session) evalBody(body []ast.Node, env *environment.Environment) (value.Value, error) {
	result := value.Unit()
	for _, expr := range body {
		v, err := s.eval(expr, env)
		if err != nil {
			return value.Value{}, err
		}
		result = v
	}
	return result, nil
}
