package runtime

import "testing"

func TestTruthiness(t *testing.T) {
	tests := []struct {
		value Value
		want  bool
	}{
		{NilValue, false},
		{Boolean(false), false},
		{Boolean(true), true},
		{Number(0), true},
		{String(""), true},
	}
	for _, tt := range tests {
		if got := IsTruthy(tt.value); got != tt.want {
			t.Errorf("IsTruthy(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestEquality(t *testing.T) {
	if !Equal(Number(1), Number(1)) {
		t.Error("expected 1 == 1")
	}
	if Equal(Number(1), String("1")) {
		t.Error("expected Number(1) != String(1)")
	}
	if !Equal(NilValue, NilValue) {
		t.Error("expected nil == nil")
	}
	a := NewInstance(&Class{Name: "A"})
	b := NewInstance(&Class{Name: "A"})
	if Equal(a, b) {
		t.Error("expected distinct instances to be unequal")
	}
	if !Equal(a, a) {
		t.Error("expected an instance to equal itself")
	}
}

func TestNumberFormatting(t *testing.T) {
	tests := []struct {
		n    Number
		want string
	}{
		{Number(7), "7"},
		{Number(3.5), "3.5"},
		{Number(-2), "-2"},
	}
	for _, tt := range tests {
		if got := tt.n.String(); got != tt.want {
			t.Errorf("Number(%v).String() = %q, want %q", float64(tt.n), got, tt.want)
		}
	}
}

func TestEnvironmentDistanceOps(t *testing.T) {
	global := NewEnvironment()
	global.Define("a", Number(1))
	child := NewEnclosedEnvironment(global)
	child.Define("a", Number(2))
	grandchild := NewEnclosedEnvironment(child)

	if v := grandchild.GetAt(1, "a"); v != Number(2) {
		t.Errorf("GetAt(1, a) = %v, want 2", v)
	}
	if v := grandchild.GetAt(2, "a"); v != Number(1) {
		t.Errorf("GetAt(2, a) = %v, want 1", v)
	}

	grandchild.AssignAt(2, "a", Number(99))
	if v, _ := global.Get("a"); v != Number(99) {
		t.Errorf("global a = %v, want 99", v)
	}
}

func TestEnvironmentUndefinedVariable(t *testing.T) {
	env := NewEnvironment()
	if _, err := env.Get("missing"); err == nil {
		t.Fatal("expected error for undefined variable")
	}
	if err := env.Assign("missing", Number(1)); err == nil {
		t.Fatal("expected error assigning undefined variable")
	}
}
