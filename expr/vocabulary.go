package expr

// Op is a name in the closed operator vocabulary.
type Op string

const (
	OpIf    Op = "if"
	OpEq    Op = "eq"
	OpProg2 Op = "prog2"
	OpProg3 Op = "prog3"

	OpLeft  Op = "left"
	OpRight Op = "right"
	OpShoot Op = "shoot"

	OpDistX Op = "dist-x"
	OpDistY Op = "dist-y"
)

// Kind classifies an operator.
type Kind int

const (
	KindUnknown Kind = iota
	KindControl
	KindAction
	KindObservation
)

func (k Kind) String() string {
	switch k {
	case KindControl:
		return "control"
	case KindAction:
		return "action"
	case KindObservation:
		return "observation"
	}
	return "unknown"
}

var vocabulary = map[Op]struct {
	kind  Kind
	arity int
}{
	OpIf:    {KindControl, 3},
	OpEq:    {KindControl, 2},
	OpProg2: {KindControl, 2},
	OpProg3: {KindControl, 3},
	OpLeft:  {KindAction, 0},
	OpRight: {KindAction, 0},
	OpShoot: {KindAction, 0},
	OpDistX: {KindObservation, 0},
	OpDistY: {KindObservation, 0},
}

// LookupOp returns the operator named name, if it is part of the vocabulary.
func LookupOp(name string) (Op, bool) {
	op := Op(name)
	_, ok := vocabulary[op]
	return op, ok
}

// Kind returns the kind of op, or KindUnknown.
func (op Op) Kind() Kind {
	return vocabulary[op].kind
}

// Arity returns the number of operands a control form takes. Terminals have
// arity 0.
func (op Op) Arity() int {
	return vocabulary[op].arity
}

// Terminals of the vocabulary.
var (
	Left  = Sym(string(OpLeft))
	Right = Sym(string(OpRight))
	Shoot = Sym(string(OpShoot))
	DistX = Sym(string(OpDistX))
	DistY = Sym(string(OpDistY))
)

// If builds (if cond then else).
func If(cond, then, els Node) *Application {
	return List(Sym(string(OpIf)), cond, then, els)
}

// Eq builds (eq a b).
func Eq(a, b Node) *Application {
	return List(Sym(string(OpEq)), a, b)
}

// Prog2 builds (prog2 a b).
func Prog2(a, b Node) *Application {
	return List(Sym(string(OpProg2)), a, b)
}

// Prog3 builds (prog3 a b c).
func Prog3(a, b, c Node) *Application {
	return List(Sym(string(OpProg3)), a, b, c)
}
