package interpreter

import "github.com/varun-ramani/blockpipe/errors"

// recursionGuard bounds evaluation nesting depth (every eval call and every
// closure execution counts as one level), mirroring
// internal/parser's guard over parse-nesting depth. Grounded on the
// teacher's parser.recursionGuard idiom, reapplied here to the evaluator's
// own native call-stack risk per SPEC_FULL.md §4.3: a pathological
// recursive Blockpipe program fails with a catchable evaluation error
// instead of exhausting the Go call stack.
type recursionGuard struct {
	maxDepth     int
	currentDepth int
}

func newRecursionGuard(maxDepth int) *recursionGuard {
	return &recursionGuard{maxDepth: maxDepth}
}

func (g *recursionGuard) Enter() error {
	g.currentDepth++
	if g.currentDepth > g.maxDepth {
		g.currentDepth--
		return errors.NewEvaluationError("Maximum recursion depth exceeded")
	}
	return nil
}

func (g *recursionGuard) Exit() {
	g.currentDepth--
}
