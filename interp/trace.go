package interp

import (
	"strings"

	"github.com/podhmo/tickeval/expr"
)

// TraceString renders the continuation stack over the program. Visited
// operands show their value as "value {expr}" ("~" when unset), the next
// operand of the innermost frame is marked "@[...]", and operands not reached
// yet are printed as they appear in the program.
func (i *Interpreter) TraceString() string {
	var sb strings.Builder
	frames := i.stack.frames
	if len(frames) == 0 {
		sb.WriteString("@[")
		writeRaw(&sb, i.program, 0)
		sb.WriteString("]")
		return sb.String()
	}
	writeFrame(&sb, frames, 0)
	return sb.String()
}

func writeFrame(sb *strings.Builder, frames []*Frame, t int) {
	f := frames[t]
	innermost := t == len(frames)-1
	cursor := 0
	if f.State == Evaluating {
		cursor = f.Operand
	}

	sb.WriteByte('(')
	for k := 0; k < f.Scope.Len(); k++ {
		if k > 0 {
			sb.WriteByte('\n')
			indent(sb, t+1)
		}

		marked := innermost && cursor == k
		bracketed := marked && f.State != Finished
		if marked {
			sb.WriteByte('@')
		}
		if bracketed {
			sb.WriteByte('[')
		}

		child := f.Scope.Child(k)
		switch {
		case k == 0:
			if f.State == Finished {
				writeResolved(sb, f.Returns[0], child, t+1)
			} else {
				sb.WriteString(child.String())
			}
		case !innermost && k == f.Operand:
			writeFrame(sb, frames, t+1)
		case f.State == Evaluating && k >= f.Operand:
			writeRaw(sb, child, t+1)
		default:
			writeResolved(sb, f.Returns[k], child, t+1)
		}

		if bracketed {
			sb.WriteByte(']')
		}
	}
	sb.WriteByte('\n')
	indent(sb, t)
	sb.WriteByte(')')
}

func writeResolved(sb *strings.Builder, v Value, n expr.Node, t int) {
	sb.WriteString(v.String())
	sb.WriteString(" {")
	writeRaw(sb, n, t)
	sb.WriteByte('}')
}

func writeRaw(sb *strings.Builder, n expr.Node, t int) {
	a, ok := n.(*expr.Application)
	if !ok {
		sb.WriteString(n.String())
		return
	}
	sb.WriteByte('(')
	if a.Len() > 0 {
		sb.WriteString(a.Child(0).String())
	}
	for k := 1; k < a.Len(); k++ {
		sb.WriteByte('\n')
		indent(sb, t+1)
		writeRaw(sb, a.Child(k), t+1)
	}
	sb.WriteByte('\n')
	indent(sb, t)
	sb.WriteByte(')')
}

func indent(sb *strings.Builder, t int) {
	for range t {
		sb.WriteString("  ")
	}
}
