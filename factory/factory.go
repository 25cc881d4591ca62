// Package factory wires a config.InterpreterConfig into a fully
// constructed interpreter.Interpreter: the enabled built-in set, the
// recursion ceilings, and the logger.
//
// Grounded on the teacher's factory.Factory (config in, constructed
// collaborator out), narrowed from a multi-language runtime registry down
// to this repo's single construction path — there is exactly one kind of
// thing to build, so no registry-of-factories indirection is needed.
package factory

import (
	"github.com/varun-ramani/blockpipe/config"
	"github.com/varun-ramani/blockpipe/internal/interpreter"
	"github.com/varun-ramani/blockpipe/internal/runtime"
	"github.com/varun-ramani/blockpipe/logging"
)

// New builds an *interpreter.Interpreter from cfg: every built-in name
// returned by runtime.AllNames except those listed in
// cfg.DisabledBuiltins is registered, the parser and evaluator recursion
// ceilings are taken from cfg, and the logger is silent unless
// cfg.Verbose is set.
func New(cfg *config.InterpreterConfig) (*interpreter.Interpreter, error) {
	names := enabledBuiltinNames(cfg.DisabledBuiltins)

	logger := logging.Nop()
	if cfg.Verbose {
		logger = logging.NewDefault(logging.ParseLevel(cfg.LogLevel))
	}

	return interpreter.New(names, cfg.MaxParseDepth, cfg.MaxEvalDepth, logger, cfg.Verbose), nil
}

func enabledBuiltinNames(disabled []string) []string {
	skip := make(map[string]struct{}, len(disabled))
	for _, name := range disabled {
		skip[name] = struct{}{}
	}

	var enabled []string
	for _, name := range runtime.AllNames() {
		if _, ok := skip[name]; ok {
			continue
		}
		enabled = append(enabled, name)
	}
	return enabled
}
