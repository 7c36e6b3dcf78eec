// Package expr defines the immutable expression trees that encode an agent
// program: terminals naming actions or observations, and applications of a
// control operator to operand sub-expressions.
package expr

import (
	"hash/fnv"
	"strings"
)

// Node is a program tree node. It is either a Terminal or an *Application.
type Node interface {
	// String returns the canonical one-line rendering of the node.
	String() string
	// Depth is 1 + the maximum depth of the children.
	Depth() int
	// NodeCount is 1 + the sum of the node counts of the children.
	NodeCount() int
	// Hash returns a structural hash; equal nodes hash equally.
	Hash() uint64

	node()
}

// Terminal is a leaf symbol.
type Terminal struct {
	Name string
}

// Sym returns the terminal with the given name.
func Sym(name string) Terminal {
	return Terminal{Name: name}
}

func (t Terminal) String() string { return t.Name }
func (t Terminal) Depth() int     { return 1 }
func (t Terminal) NodeCount() int { return 1 }
func (t Terminal) node()          {}

func (t Terminal) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte{'T'})
	h.Write([]byte(t.Name))
	return h.Sum64()
}

// Application is an operator followed by its operands. The zero value is not
// useful; build one with List.
type Application struct {
	children []Node
}

// List builds an application from its children. The slice is copied, so the
// result cannot be changed through the caller's slice.
func List(children ...Node) *Application {
	cs := make([]Node, len(children))
	copy(cs, children)
	return &Application{children: cs}
}

// Len returns the number of children, operator included.
func (a *Application) Len() int { return len(a.children) }

// Child returns the i-th child; child 0 is the operator.
func (a *Application) Child(i int) Node { return a.children[i] }

// Children returns a copy of the children.
func (a *Application) Children() []Node {
	cs := make([]Node, len(a.children))
	copy(cs, a.children)
	return cs
}

// Operator returns the terminal in operator position.
func (a *Application) Operator() (Terminal, bool) {
	if len(a.children) == 0 {
		return Terminal{}, false
	}
	t, ok := a.children[0].(Terminal)
	return t, ok
}

// NumOperands returns the number of operands (children after the operator).
func (a *Application) NumOperands() int {
	if len(a.children) == 0 {
		return 0
	}
	return len(a.children) - 1
}

func (a *Application) Depth() int {
	max := 0
	for _, c := range a.children {
		if d := c.Depth(); d > max {
			max = d
		}
	}
	return 1 + max
}

func (a *Application) NodeCount() int {
	n := 0
	for _, c := range a.children {
		n += c.NodeCount()
	}
	return 1 + n
}

func (a *Application) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	h.Write([]byte{'A', byte(len(a.children))})
	for _, c := range a.children {
		v := c.Hash()
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}
	return h.Sum64()
}

func (a *Application) String() string {
	var sb strings.Builder
	a.writeTo(&sb)
	return sb.String()
}

func (a *Application) writeTo(sb *strings.Builder) {
	sb.WriteByte('(')
	for i, c := range a.children {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch c := c.(type) {
		case *Application:
			c.writeTo(sb)
		default:
			sb.WriteString(c.String())
		}
	}
	sb.WriteByte(')')
}

func (a *Application) node() {}

// Equal reports whether a and b are structurally identical.
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case Terminal:
		b, ok := b.(Terminal)
		return ok && a.Name == b.Name
	case *Application:
		b, ok := b.(*Application)
		if !ok {
			return false
		}
		if a == b {
			return true
		}
		if a == nil || b == nil || len(a.children) != len(b.children) {
			return false
		}
		for i := range a.children {
			if !Equal(a.children[i], b.children[i]) {
				return false
			}
		}
		return true
	}
	return a == nil && b == nil
}
