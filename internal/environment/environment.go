// Package environment implements Blockpipe's lexical-scope environment: a
// stack of frames over a name-to-value-stack mapping, with same-frame
// shadowing and exact restoration of outer bindings on frame pop.
//
// Grounded on
// original_source/language/src/interpreter/environment.rs
// (Environment{stack_frames, keys}), translated from Rust's
// Vec<HashSet<String>> / HashMap<String, Vec<Value>> into Go maps of sets
// and value stacks with identical bind/pop semantics.
package environment

import "github.com/varun-ramani/blockpipe/internal/value"

// Environment is a scoped binding stack. The zero value is not usable; use
// New.
type Environment struct {
	frames []map[string]struct{}
	keys   map[string][]value.Value
}

// New returns an empty environment with no frames pushed.
func New() *Environment {
	return &Environment{keys: make(map[string][]value.Value)}
}

// PushFrame starts a new scope. Call at the start of a block/closure
// activation.
func (e *Environment) PushFrame() {
	e.frames = append(e.frames, make(map[string]struct{}))
}

// PopFrame ends the most recent scope, restoring exactly the bindings
// visible before the matching PushFrame. Popping with no frame pushed is a
// programmer bug per spec.md §7 ("must never arise from user input") and
// panics rather than returning a user-facing error.
func (e *Environment) PopFrame() {
	if len(e.frames) == 0 {
		panic("environment: pop frame with no frame pushed")
	}

	last := e.frames[len(e.frames)-1]
	e.frames = e.frames[:len(e.frames)-1]

	for name := range last {
		stack := e.keys[name]
		if len(stack) == 0 {
			panic("environment: stack corruption popping " + name)
		}
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			delete(e.keys, name)
		} else {
			e.keys[name] = stack
		}
	}
}

// Bind records name in the current (top) frame. If name is already bound
// in the current frame, its top value is replaced in place; otherwise a
// new value is pushed and name is recorded against the current frame so
// PopFrame will restore the prior binding (if any).
func (e *Environment) Bind(name string, v value.Value) {
	if len(e.frames) == 0 {
		panic("environment: bind with no frame pushed")
	}

	top := e.frames[len(e.frames)-1]
	if _, shadowedInFrame := top[name]; shadowedInFrame {
		stack := e.keys[name]
		e.keys[name] = append(stack[:len(stack)-1], v)
		return
	}

	top[name] = struct{}{}
	e.keys[name] = append(e.keys[name], v)
}

// Lookup returns the most recently bound value for name and true, or the
// zero Value and false if name is unbound.
func (e *Environment) Lookup(name string) (value.Value, bool) {
	stack := e.keys[name]
	if len(stack) == 0 {
		return value.Value{}, false
	}
	return stack[len(stack)-1], true
}

// Image captures a snapshot of the current top value for every bound name,
// for use as a closure's captured environment. The returned map is
// independent of the live environment: later Bind/PopFrame calls on e do
// not affect it.
func (e *Environment) Image() map[string]value.Value {
	image := make(map[string]value.Value, len(e.keys))
	for name, stack := range e.keys {
		image[name] = stack[len(stack)-1]
	}
	return image
}

// Depth returns the number of frames currently pushed, exposed for tests
// asserting the "push/pop leaves depth unchanged" invariant.
func (e *Environment) Depth() int {
	return len(e.frames)
}
