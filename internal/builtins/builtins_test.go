package builtins

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-lox/internal/runtime"
)

func TestInputReadsOneLine(t *testing.T) {
	r := NewStdinReader(strings.NewReader("hello\nworld\n"))
	if got := Input(r); got != runtime.String("hello") {
		t.Errorf("Input() = %v, want hello", got)
	}
	if got := Input(r); got != runtime.String("world") {
		t.Errorf("Input() = %v, want world", got)
	}
}

func TestInputReturnsNilOnEOF(t *testing.T) {
	r := NewStdinReader(strings.NewReader(""))
	if got := Input(r); got != runtime.NilValue {
		t.Errorf("Input() on EOF = %v, want nil", got)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile("/nonexistent/path/does-not-exist.lox"); err == nil {
		t.Fatal("expected error reading missing file")
	}
}

func TestClockIsIncreasing(t *testing.T) {
	a := Clock().(runtime.Number)
	b := Clock().(runtime.Number)
	if b < a {
		t.Errorf("expected clock to be monotonic-ish, got %v then %v", a, b)
	}
}

func TestRegisterDefinesAllThree(t *testing.T) {
	env := runtime.NewEnvironment()
	Register(env)
	for _, name := range []string{"clock", "input", "readFile"} {
		if _, err := env.Get(name); err != nil {
			t.Errorf("expected %s to be defined: %v", name, err)
		}
	}
}
