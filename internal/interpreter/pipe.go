package interpreter

import (
	"github.com/varun-ramani/blockpipe/errors"
	"github.com/varun-ramani/blockpipe/internal/ast"
	"github.com/varun-ramani/blockpipe/internal/environment"
	"github.com/varun-ramani/blockpipe/internal/value"
	"github.com/varun-ramani/blockpipe/logging"
)

// evalPipe threads current through each subsequent pipe section, per
// spec.md §4.3's Pipe evaluation rule.
func (s *session) evalPipe(n *ast.Pipe, env *environment.Environment) (value.Value, error) {
	current, err := s.eval(n.Sections[0], env)
	if err != nil {
		return value.Value{}, err
	}

	for i, kind := range n.Kinds {
		stage, err := s.eval(n.Sections[i+1], env)
		if err != nil {
			return value.Value{}, err
		}

		argv, err := deriveArgs(current, kind)
		if err != nil {
			return value.Value{}, err
		}

		if s.verbose {
			s.logger.Debug("pipe stage", logging.F("kind", kind.String()), logging.F("argc", len(argv)))
		}

		switch {
		case stage.IsRuntimeInvocation():
			current, err = s.invokeRuntime(argv)
		case stage.IsClosure():
			current, err = s.executeClosure(stage, argv)
		default:
			err = errors.NewEvaluationError("Passed non-closure for evaluation")
		}
		if err != nil {
			return value.Value{}, err
		}
	}

	return current, nil
}

// deriveArgs derives the argument vector passed into a pipe stage from the
// current value and the joining PipeKind.
func deriveArgs(current value.Value, kind ast.PipeKind) ([]value.Value, error) {
	if kind == ast.Standard {
		return []value.Value{current}, nil
	}
	if !current.IsTuple() {
		return nil, errors.NewEvaluationError("Trying to destructure non-tuple value")
	}
	return current.Tuple, nil
}

// invokeRuntime dispatches a RuntimeInvocation stage: argv must be exactly
// a parameters Tuple followed by a call-name String, per spec.md §4.4.
func (s *session) invokeRuntime(argv []value.Value) (value.Value, error) {
	if len(argv) != 2 || !argv[0].IsTuple() || argv[1].Kind != value.String {
		return value.Value{}, errors.NewEvaluationError("Runtime invocation requires (parameters tuple, call name)")
	}
	result, err := s.table.Invoke(argv[1].Str, argv[0].Tuple)
	if err != nil {
		return value.Value{}, errors.NewEvaluationError(err.Error())
	}
	return result, nil
}
