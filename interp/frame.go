package interp

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/podhmo/tickeval/expr"
)

// Value is a resolved operand value, or Unset.
type Value struct {
	n   int
	set bool
}

// Unset is the value of a slot that has not been resolved.
var Unset = Value{}

// Int returns a resolved value.
func Int(n int) Value { return Value{n: n, set: true} }

func boolValue(b bool) Value {
	if b {
		return Int(1)
	}
	return Int(0)
}

// Int returns the resolved integer and whether the value is set.
func (v Value) Int() (int, bool) { return v.n, v.set }

// IsSet reports whether v has been resolved.
func (v Value) IsSet() bool { return v.set }

// truthy reports whether v is set and nonzero.
func (v Value) truthy() bool { return v.set && v.n != 0 }

func (v Value) String() string {
	if !v.set {
		return "~"
	}
	return strconv.Itoa(v.n)
}

func (v Value) LogValue() slog.Value {
	if !v.set {
		return slog.StringValue("~")
	}
	return slog.IntValue(v.n)
}

// State is the lifecycle of a frame.
type State int

const (
	// Evaluating: operand Frame.Operand is the next to evaluate.
	Evaluating State = iota
	// Resolving: every operand has been visited; the frame's own result is
	// computed by the next step.
	Resolving
	// Finished: the result is in Returns[0]; the frame is popped next step.
	Finished
)

func (s State) String() string {
	switch s {
	case Evaluating:
		return "evaluating"
	case Resolving:
		return "resolving"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// Frame is one pending application. While a frame has a sub-application
// pushed above it, Operand names the operand being evaluated by that frame.
type Frame struct {
	Scope   *expr.Application
	State   State
	Operand int
	// Returns has one slot per child of Scope; slot 0 holds the frame's own
	// result.
	Returns []Value
}

func newFrame(scope *expr.Application) *Frame {
	f := &Frame{
		Scope:   scope,
		Operand: 1,
		Returns: make([]Value, scope.Len()),
	}
	if scope.NumOperands() == 0 {
		f.State = Resolving
		f.Operand = 0
	}
	return f
}

// Result returns the frame's own result.
func (f *Frame) Result() Value {
	if len(f.Returns) == 0 {
		return Unset
	}
	return f.Returns[0]
}

// Position returns the frame cursor in the compact encoding: 1..N for the
// next operand, 0 while resolving and -1 once finished.
func (f *Frame) Position() int {
	switch f.State {
	case Resolving:
		return 0
	case Finished:
		return -1
	}
	return f.Operand
}

// advance moves the cursor past the current operand.
func (f *Frame) advance() {
	switch f.State {
	case Evaluating:
		if f.Operand >= f.Scope.NumOperands() {
			f.State = Resolving
			f.Operand = 0
			return
		}
		f.Operand++
	case Resolving:
		f.State = Finished
	}
}

func (f *Frame) String() string {
	vs := make([]string, len(f.Returns))
	for i, v := range f.Returns {
		vs[i] = v.String()
	}
	return fmt.Sprintf("%d @ %s = [%s]", f.Position(), f.Scope, strings.Join(vs, ", "))
}

// Stack is the continuation stack; the innermost frame is last.
type Stack struct {
	frames []*Frame
}

func (s *Stack) Len() int { return len(s.frames) }

// Top returns the innermost frame, or nil when the stack is empty.
func (s *Stack) Top() *Frame {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

func (s *Stack) Push(f *Frame) { s.frames = append(s.frames, f) }

// Pop removes and returns the innermost frame, or nil when empty.
func (s *Stack) Pop() *Frame {
	if len(s.frames) == 0 {
		return nil
	}
	f := s.frames[len(s.frames)-1]
	s.frames[len(s.frames)-1] = nil
	s.frames = s.frames[:len(s.frames)-1]
	return f
}

// Frames returns a copy of the frames, outermost first.
func (s *Stack) Frames() []*Frame {
	fs := make([]*Frame, len(s.frames))
	copy(fs, s.frames)
	return fs
}

func (s *Stack) Clear() {
	clear(s.frames)
	s.frames = s.frames[:0]
}
