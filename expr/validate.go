package expr

import (
	"errors"
	"fmt"
)

// ErrMalformedProgram is wrapped by every MalformedProgramError.
var ErrMalformedProgram = errors.New("malformed program")

// MalformedProgramError reports a node that falls outside the closed
// vocabulary or has the wrong shape.
type MalformedProgramError struct {
	Node   Node
	Reason string
}

func (e *MalformedProgramError) Error() string {
	if e.Node == nil {
		return fmt.Sprintf("%s: %s", ErrMalformedProgram, e.Reason)
	}
	return fmt.Sprintf("%s: %s in %s", ErrMalformedProgram, e.Reason, e.Node)
}

func (e *MalformedProgramError) Unwrap() error {
	return ErrMalformedProgram
}

func malformed(n Node, format string, args ...any) *MalformedProgramError {
	return &MalformedProgramError{Node: n, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks that node is a well-formed program: the root is an
// application, every application starts with a control operator and has that
// operator's arity, and every terminal operand is an action or observation.
func Validate(node Node) error {
	root, ok := node.(*Application)
	if !ok || root == nil {
		return malformed(node, "program root must be an application")
	}
	// iterative walk; programs may be deep after many generations
	work := []*Application{root}
	for len(work) > 0 {
		a := work[len(work)-1]
		work = work[:len(work)-1]

		op, err := ControlOp(a)
		if err != nil {
			return err
		}
		if got, want := a.NumOperands(), op.Arity(); got != want {
			return malformed(a, "%q takes %d operands, got %d", op, want, got)
		}
		for i := 1; i < a.Len(); i++ {
			switch c := a.Child(i).(type) {
			case *Application:
				if c == nil {
					return malformed(a, "operand %d is nil", i)
				}
				work = append(work, c)
			case Terminal:
				if _, err := LeafOp(c); err != nil {
					return err
				}
			default:
				return malformed(a, "operand %d has unexpected type %T", i, c)
			}
		}
	}
	return nil
}

// ControlOp returns the control operator of a, or a MalformedProgramError.
func ControlOp(a *Application) (Op, error) {
	t, ok := a.Operator()
	if !ok {
		return "", malformed(a, "first child must be an operator terminal")
	}
	op, ok := LookupOp(t.Name)
	if !ok || op.Kind() != KindControl {
		return "", malformed(a, "%q is not a function", t.Name)
	}
	return op, nil
}

// LeafOp returns the action or observation named by t, or a
// MalformedProgramError.
func LeafOp(t Terminal) (Op, error) {
	op, ok := LookupOp(t.Name)
	if !ok {
		return "", malformed(t, "%q is not a function", t.Name)
	}
	if k := op.Kind(); k != KindAction && k != KindObservation {
		return "", malformed(t, "%q cannot be used as an operand", t.Name)
	}
	return op, nil
}
