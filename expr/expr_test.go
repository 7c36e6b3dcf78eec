package expr

import (
	"errors"
	"testing"
)

func TestNodeMetrics(t *testing.T) {
	tests := []struct {
		name          string
		node          Node
		wantDepth     int
		wantNodeCount int
		wantString    string
	}{
		{
			name:          "terminal",
			node:          Left,
			wantDepth:     1,
			wantNodeCount: 1,
			wantString:    "left",
		},
		{
			name:          "flat application",
			node:          Prog2(Left, Shoot),
			wantDepth:     2,
			wantNodeCount: 4,
			wantString:    "(prog2 left shoot)",
		},
		{
			name:          "nested application",
			node:          If(Eq(DistX, DistX), Left, Right),
			wantDepth:     3,
			wantNodeCount: 8,
			wantString:    "(if (eq dist-x dist-x) left right)",
		},
		{
			name:          "empty application",
			node:          List(),
			wantDepth:     1,
			wantNodeCount: 1,
			wantString:    "()",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Depth(); got != tt.wantDepth {
				t.Errorf("Depth() = %d, want %d", got, tt.wantDepth)
			}
			if got := tt.node.NodeCount(); got != tt.wantNodeCount {
				t.Errorf("NodeCount() = %d, want %d", got, tt.wantNodeCount)
			}
			if got := tt.node.String(); got != tt.wantString {
				t.Errorf("String() = %q, want %q", got, tt.wantString)
			}
		})
	}
}

func TestEqualIsStructural(t *testing.T) {
	a := If(Eq(DistX, DistY), Prog2(Left, Shoot), Right)
	b := If(Eq(Sym("dist-x"), Sym("dist-y")), Prog2(Left, Shoot), Right)

	if a == b {
		t.Fatal("test requires distinct pointers")
	}
	if !Equal(a, b) {
		t.Errorf("Equal(%s, %s) = false, want true", a, b)
	}
	if a.Hash() != b.Hash() {
		t.Errorf("Hash differs for equal programs: %x != %x", a.Hash(), b.Hash())
	}

	c := If(Eq(DistX, DistY), Prog2(Shoot, Left), Right)
	if Equal(a, c) {
		t.Errorf("Equal(%s, %s) = true, want false", a, c)
	}
	if Equal(Left, List(Left)) {
		t.Error("a terminal must not equal an application")
	}
}

func TestListCopiesChildren(t *testing.T) {
	children := []Node{Sym("prog2"), Left, Right}
	a := List(children...)
	children[1] = Shoot

	if got := a.Child(1); !Equal(got, Left) {
		t.Errorf("Child(1) = %s, want left", got)
	}
	cs := a.Children()
	cs[2] = Shoot
	if got := a.Child(2); !Equal(got, Right) {
		t.Errorf("Child(2) = %s, want right", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		node    Node
		wantErr bool
	}{
		{name: "if", node: If(DistX, Left, Right)},
		{name: "nested", node: Prog3(Eq(DistX, DistY), If(Shoot, Left, Prog2(Right, Shoot)), DistY)},
		{name: "terminal root", node: Left, wantErr: true},
		{name: "unknown operator", node: List(Sym("jump"), Left, Right), wantErr: true},
		{name: "action in operator position", node: List(Left, Right), wantErr: true},
		{name: "application in operator position", node: List(Prog2(Left, Right), Right), wantErr: true},
		{name: "empty application", node: List(), wantErr: true},
		{name: "wrong arity", node: List(Sym("eq"), DistX), wantErr: true},
		{name: "unknown leaf", node: Prog2(Left, Sym("jump")), wantErr: true},
		{name: "control in operand position", node: Prog2(Left, Sym("if")), wantErr: true},
		{name: "deep malformed", node: Prog2(Left, Prog2(Right, List(Sym("??")))), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.node)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate(%s) error = %v, wantErr %v", tt.node, err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, ErrMalformedProgram) {
				t.Errorf("errors.Is(err, ErrMalformedProgram) = false for %v", err)
			}
			var mpe *MalformedProgramError
			if !errors.As(err, &mpe) {
				t.Errorf("errors.As(err, *MalformedProgramError) = false for %v", err)
			}
		})
	}
}

func TestLookupOp(t *testing.T) {
	tests := []struct {
		name      string
		wantOK    bool
		wantKind  Kind
		wantArity int
	}{
		{"if", true, KindControl, 3},
		{"eq", true, KindControl, 2},
		{"prog2", true, KindControl, 2},
		{"prog3", true, KindControl, 3},
		{"left", true, KindAction, 0},
		{"right", true, KindAction, 0},
		{"shoot", true, KindAction, 0},
		{"dist-x", true, KindObservation, 0},
		{"dist-y", true, KindObservation, 0},
		{"prog-2", false, KindUnknown, 0},
	}
	for _, tt := range tests {
		op, ok := LookupOp(tt.name)
		if ok != tt.wantOK {
			t.Errorf("LookupOp(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			continue
		}
		if got := op.Kind(); got != tt.wantKind {
			t.Errorf("%q.Kind() = %v, want %v", tt.name, got, tt.wantKind)
		}
		if got := op.Arity(); got != tt.wantArity {
			t.Errorf("%q.Arity() = %d, want %d", tt.name, got, tt.wantArity)
		}
	}
}
