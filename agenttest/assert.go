package agenttest

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/podhmo/tickeval/expr"
	"github.com/podhmo/tickeval/game"
	"github.com/podhmo/tickeval/interp"
)

// AssertActions fails the test if got differs from want.
func AssertActions(t *testing.T, got []game.Action, want ...game.Action) {
	t.Helper()
	if want == nil {
		want = []game.Action{}
	}
	if got == nil {
		got = []game.Action{}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("actions mismatch (-want +got):\n%s", diff)
	}
}

// AssertTickAccounting fails the test if the interpreter's tick counter is
// not the sum of rounds and actions, or differs from observed.
func AssertTickAccounting(t *testing.T, in *interp.Interpreter, observed int) {
	t.Helper()
	st := in.Stats()
	if st.Ticks != st.Rounds+st.Actions {
		t.Errorf("ticks=%d, want rounds(%d)+actions(%d)", st.Ticks, st.Rounds, st.Actions)
	}
	if st.Ticks != observed {
		t.Errorf("ticks=%d, but %d steps returned true", st.Ticks, observed)
	}
}

// AssertMalformed fails the test unless fn panics with a
// *expr.MalformedProgramError.
func AssertMalformed(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic, but fn returned normally")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected an error panic, got %T (%v)", r, r)
		}
		var mpe *expr.MalformedProgramError
		if !errors.As(err, &mpe) {
			t.Fatalf("expected *expr.MalformedProgramError, got %T (%v)", err, err)
		}
	}()
	fn()
}
