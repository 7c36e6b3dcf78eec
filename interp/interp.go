// Package interp runs agent programs one transition at a time against a game
// environment. Evaluation is driven by an explicit continuation stack so that
// it can be suspended after any environment tick and resumed later.
package interp

import (
	"context"
	"log/slog"
	"os"

	"github.com/podhmo/tickeval/expr"
	"github.com/podhmo/tickeval/game"
)

// Stats counts the work done since construction or the last Reset.
// Ticks == Rounds + Actions.
type Stats struct {
	Steps   int
	Ticks   int
	Rounds  int
	Actions int
}

// Interpreter evaluates one program against one environment. It is not safe
// for concurrent use; run independent interpreters with distinct
// environments instead.
type Interpreter struct {
	program *expr.Application
	env     game.Environment
	stack   Stack
	stats   Stats

	logger *slog.Logger
	tracer Tracer
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger sets the logger. Transitions are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Interpreter) {
		i.logger = logger
	}
}

// WithTracer registers a tracer that is called for every transition.
func WithTracer(tracer Tracer) Option {
	return func(i *Interpreter) {
		i.tracer = tracer
	}
}

// New creates an interpreter. No work is done until Step is called.
// The program is not validated here; see expr.Validate.
func New(program *expr.Application, env game.Environment, options ...Option) *Interpreter {
	if program == nil {
		panic("interp: nil program")
	}
	if env == nil {
		panic("interp: nil environment")
	}
	i := &Interpreter{program: program, env: env}
	for _, opt := range options {
		opt(i)
	}
	if i.logger == nil {
		i.logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	}
	return i
}

// Program returns the program being run.
func (i *Interpreter) Program() *expr.Application { return i.program }

// Environment returns the environment the program acts on.
func (i *Interpreter) Environment() game.Environment { return i.env }

// Frames returns a snapshot of the continuation stack, outermost first.
// The frames themselves are live and must not be modified.
func (i *Interpreter) Frames() []*Frame { return i.stack.Frames() }

// Stats returns the counters since construction or the last Reset.
func (i *Interpreter) Stats() Stats { return i.stats }

// Reset discards the continuation stack and counters. Effects already applied
// to the environment are not undone.
func (i *Interpreter) Reset() {
	i.stack.Clear()
	i.stats = Stats{}
}

// Step performs exactly one transition and reports whether the environment
// advanced by a tick. It panics with a *expr.MalformedProgramError when it
// meets a node outside the closed vocabulary.
func (i *Interpreter) Step() bool {
	ctx := context.Background()
	i.stats.Steps++

	top := i.stack.Top()
	if top == nil {
		i.stack.Push(newFrame(i.program))
		i.logc(ctx, slog.LevelDebug, "start round")
		i.emit(TraceEvent{Kind: EventStart, Depth: 1, Node: i.program})
		return false
	}

	switch top.State {
	case Finished:
		return i.pop(ctx)
	case Resolving:
		i.resolve(ctx, top)
		top.advance()
		return false
	}

	depth := i.stack.Len()
	advanced := i.dispatch(ctx, top)
	if i.stack.Len() == depth {
		top.advance()
	}
	return advanced
}

func (i *Interpreter) pop(ctx context.Context) bool {
	done := i.stack.Pop()
	parent := i.stack.Top()
	if parent == nil {
		i.env.Advance(game.None)
		i.stats.Rounds++
		i.stats.Ticks++
		i.logc(ctx, slog.LevelDebug, "round completed", "result", done.Result())
		i.emit(TraceEvent{Kind: EventRound, Node: done.Scope, Action: game.None, Value: done.Result()})
		return true
	}
	parent.Returns[parent.Operand] = done.Result()
	parent.advance()
	i.logc(ctx, slog.LevelDebug, "return", "result", done.Result())
	i.emit(TraceEvent{Kind: EventReturn, Depth: i.stack.Len(), Node: done.Scope, Value: done.Result()})
	return false
}

// controlOp returns the operator of f, checking it against the vocabulary.
func (i *Interpreter) controlOp(f *Frame) expr.Op {
	op, err := expr.ControlOp(f.Scope)
	if err != nil {
		panic(err)
	}
	if got, want := f.Scope.NumOperands(), op.Arity(); got != want {
		panic(&expr.MalformedProgramError{Node: f.Scope, Reason: "wrong number of operands"})
	}
	return op
}

func (i *Interpreter) dispatch(ctx context.Context, f *Frame) bool {
	k := f.Operand
	switch i.controlOp(f) {
	case expr.OpIf:
		cond := f.Returns[1].truthy()
		if k == 1 || (k == 2 && cond) || (k == 3 && !cond) {
			return i.call(ctx, f, k)
		}
		i.logc(ctx, slog.LevelDebug, "skip branch")
		i.emit(TraceEvent{Kind: EventSkip, Depth: i.stack.Len(), Node: f.Scope.Child(k)})
		return false
	default: // eq, prog2, prog3 evaluate every operand
		return i.call(ctx, f, k)
	}
}

// call evaluates operand k of f.
func (i *Interpreter) call(ctx context.Context, f *Frame, k int) bool {
	switch c := f.Scope.Child(k).(type) {
	case *expr.Application:
		i.stack.Push(newFrame(c))
		i.logc(ctx, slog.LevelDebug, "enter")
		i.emit(TraceEvent{Kind: EventEnter, Depth: i.stack.Len(), Node: c})
		return false

	case expr.Terminal:
		op, err := expr.LeafOp(c)
		if err != nil {
			panic(err)
		}
		switch op {
		case expr.OpLeft, expr.OpRight, expr.OpShoot:
			action := actionOf(op)
			v := boolValue(i.env.Advance(action))
			f.Returns[k] = v
			i.stats.Actions++
			i.stats.Ticks++
			i.logc(ctx, slog.LevelDebug, "action", "action", action.String(), "ok", v)
			i.emit(TraceEvent{Kind: EventAction, Depth: i.stack.Len(), Node: c, Action: action, Value: v})
			return true
		case expr.OpDistX:
			f.Returns[k] = Int(i.env.DistanceX())
		case expr.OpDistY:
			f.Returns[k] = Int(i.env.DistanceY())
		}
		i.logc(ctx, slog.LevelDebug, "observe", "name", c.Name, "value", f.Returns[k])
		i.emit(TraceEvent{Kind: EventObserve, Depth: i.stack.Len(), Node: c, Value: f.Returns[k]})
		return false
	}
	panic(&expr.MalformedProgramError{Node: f.Scope, Reason: "operand is neither an application nor a terminal"})
}

func (i *Interpreter) resolve(ctx context.Context, f *Frame) {
	switch i.controlOp(f) {
	case expr.OpEq:
		a, b := f.Returns[1], f.Returns[2]
		f.Returns[0] = boolValue(a.IsSet() && b.IsSet() && a == b)
	case expr.OpIf:
		if f.Returns[1].truthy() {
			f.Returns[0] = f.Returns[2]
		} else {
			f.Returns[0] = f.Returns[3]
		}
	case expr.OpProg2, expr.OpProg3:
		f.Returns[0] = f.Returns[len(f.Returns)-1]
	}
	i.logc(ctx, slog.LevelDebug, "resolve", "result", f.Returns[0])
	i.emit(TraceEvent{Kind: EventResolve, Depth: i.stack.Len(), Node: f.Scope, Value: f.Returns[0]})
}

func (i *Interpreter) emit(ev TraceEvent) {
	if i.tracer != nil {
		i.tracer.Trace(ev)
	}
}

func actionOf(op expr.Op) game.Action {
	switch op {
	case expr.OpLeft:
		return game.Left
	case expr.OpRight:
		return game.Right
	case expr.OpShoot:
		return game.Shoot
	}
	return game.None
}
