package interp

import (
	"github.com/podhmo/tickeval/expr"
	"github.com/podhmo/tickeval/game"
)

// EventKind identifies a step transition.
type EventKind int

const (
	EventStart   EventKind = iota // root frame pushed
	EventEnter                    // sub-application frame pushed
	EventAction                   // leaf action sent to the environment
	EventObserve                  // leaf observation read
	EventSkip                     // if branch not taken
	EventResolve                  // frame result computed
	EventReturn                   // finished frame popped into its parent
	EventRound                    // root frame popped, round tick charged
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventEnter:
		return "enter"
	case EventAction:
		return "action"
	case EventObserve:
		return "observe"
	case EventSkip:
		return "skip"
	case EventResolve:
		return "resolve"
	case EventReturn:
		return "return"
	case EventRound:
		return "round"
	}
	return "unknown"
}

// TraceEvent describes one step.
type TraceEvent struct {
	Kind EventKind
	// Depth is the stack depth after the transition.
	Depth int
	// Node is the expression the transition is about.
	Node expr.Node
	// Action is set for EventAction and EventRound.
	Action game.Action
	// Value is the value recorded by the transition, if any.
	Value Value
}

// Tracer observes the interpreter's transitions.
type Tracer interface {
	Trace(event TraceEvent)
}

// TracerFunc adapts a function to a Tracer.
type TracerFunc func(event TraceEvent)

func (f TracerFunc) Trace(event TraceEvent) { f(event) }
