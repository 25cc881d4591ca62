package interpreter

import (
	"strconv"

	"github.com/varun-ramani/blockpipe/internal/environment"
	"github.com/varun-ramani/blockpipe/internal/value"
	"github.com/varun-ramani/blockpipe/logging"
)

// executeClosure runs closure with args, per spec.md §4.3's closure
// execution semantics. It satisfies runtime.ClosureExecutor so the
// built-in "if" call can invoke a then/else branch without runtime
// importing this package.
//
// A fresh Environment is created for every execution rather than nesting
// inside any caller's environment — the closure's only link to its
// defining scope is the captured image, per spec.md §9 ("closures ...
// do not retain a reference to the live environment"). The session's
// single recursion guard is shared across this call and whatever eval
// calls it makes, so a chain of recursive closure calls is bounded, not
// just one execution's own AST depth.
func (s *session) executeClosure(closure value.Value, args []value.Value) (value.Value, error) {
	if err := s.guard.Enter(); err != nil {
		return value.Value{}, err
	}
	defer s.guard.Exit()

	env := environment.New()
	env.PushFrame()
	defer env.PopFrame()

	for name, v := range closure.Captured {
		env.Bind(name, v)
	}

	env.Bind("rec", closure)

	for i, arg := range args {
		env.Bind(dollarName(i), arg)
	}
	env.Bind("$n", value.Int64(int64(len(args))))

	if s.verbose {
		s.logger.Debug("closure execution", logging.F("argc", len(args)), logging.F("bodyLen", len(closure.Body)))
	}

	return s.evalBody(closure.Body, env)
}

func dollarName(i int) string {
	return "$" + strconv.Itoa(i)
}
