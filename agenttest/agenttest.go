// Package agenttest provides a scripted environment and a small runner that
// take the boilerplate out of interpreter tests.
package agenttest

import (
	"testing"

	"github.com/podhmo/tickeval/expr"
	"github.com/podhmo/tickeval/game"
	"github.com/podhmo/tickeval/interp"
)

// Env is a scripted game.Environment that records every action.
type Env struct {
	// Actions holds every action passed to Advance, in order.
	Actions []game.Action
	// Observations counts DistanceX and DistanceY calls.
	Observations int

	// Outcome decides what Advance returns; nil means every action succeeds.
	Outcome func(tick int, action game.Action) bool
	// Observe returns the distances seen at a tick; nil means (0, 0).
	Observe func(tick int) (x, y int)
	// FinishAfter finishes the game after that many ticks; 0 never finishes.
	FinishAfter int
	// Win decides the result once the game has finished; nil means lost.
	Win func(actions []game.Action) bool
}

var _ game.Environment = (*Env)(nil)

// Tick returns the number of ticks played.
func (e *Env) Tick() int { return len(e.Actions) }

func (e *Env) Advance(action game.Action) bool {
	tick := len(e.Actions)
	e.Actions = append(e.Actions, action)
	if e.Outcome == nil {
		return true
	}
	return e.Outcome(tick, action)
}

func (e *Env) observe() (int, int) {
	e.Observations++
	if e.Observe == nil {
		return 0, 0
	}
	return e.Observe(len(e.Actions))
}

func (e *Env) DistanceX() int {
	x, _ := e.observe()
	return x
}

func (e *Env) DistanceY() int {
	_, y := e.observe()
	return y
}

func (e *Env) Finished() bool {
	return e.FinishAfter > 0 && len(e.Actions) >= e.FinishAfter
}

func (e *Env) Won() bool {
	return e.Finished() && e.Win != nil && e.Win(e.Actions)
}

// Runner drives one interpreter over one scripted environment.
type Runner struct {
	t       *testing.T
	program *expr.Application
	env     game.Environment
	options []interp.Option
	interp  *interp.Interpreter
}

// NewRunner returns a runner for program. The program must be well formed.
func NewRunner(t *testing.T, program *expr.Application) *Runner {
	t.Helper()
	if err := expr.Validate(program); err != nil {
		t.Fatalf("invalid program: %+v", err)
	}
	return &Runner{t: t, program: program, env: &Env{}}
}

// WithEnv replaces the default scripted environment.
func (r *Runner) WithEnv(env game.Environment) *Runner {
	r.env = env
	return r
}

// WithOptions passes options to the interpreter.
func (r *Runner) WithOptions(options ...interp.Option) *Runner {
	r.options = append(r.options, options...)
	return r
}

// Interpreter returns the interpreter, creating it on first use.
func (r *Runner) Interpreter() *interp.Interpreter {
	if r.interp == nil {
		r.interp = interp.New(r.program, r.env, r.options...)
	}
	return r.interp
}

// Env returns the scripted environment. It fails the test if WithEnv
// installed something else.
func (r *Runner) Env() *Env {
	r.t.Helper()
	env, ok := r.env.(*Env)
	if !ok {
		r.t.Fatalf("environment is %T, not *agenttest.Env", r.env)
	}
	return env
}

// Ticks runs n ticks and returns the actions taken during them.
func (r *Runner) Ticks(n int) []game.Action {
	r.t.Helper()
	env := r.Env()
	start := len(env.Actions)
	in := r.Interpreter()
	for range n {
		in.RunUntilEnvironmentAdvances()
	}
	got := make([]game.Action, len(env.Actions)-start)
	copy(got, env.Actions[start:])
	return got
}

// Steps calls Step n times and returns how many of them charged a tick.
func (r *Runner) Steps(n int) int {
	in := r.Interpreter()
	ticks := 0
	for range n {
		if in.Step() {
			ticks++
		}
	}
	return ticks
}
