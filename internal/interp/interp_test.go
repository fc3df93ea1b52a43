package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/cwbudde/go-lox/internal/resolver"
)

// run lexes, parses, resolves, and interprets src against a fresh
// Interpreter, returning the captured stdout.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	var out bytes.Buffer

	toks, err := lexer.New(src).Tokenize()
	if err != nil {
		return "", err
	}
	stmts, err := parser.New(toks).ParseProgram()
	if err != nil {
		return "", err
	}
	dist, err := resolver.New().Resolve(stmts)
	if err != nil {
		return "", err
	}
	interp := New(&out, strings.NewReader(""))
	if err := interp.Interpret(stmts, dist); err != nil {
		return out.String(), err
	}
	return out.String(), nil
}

func TestEndToEndScenarios(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"arithmetic precedence", `print 1 + 2 * 3;`, "7\n"},
		{"number/string concat", `var a = "hi"; var b = 3; print a + b;`, "hi3\n"},
		{
			"counter closure",
			`fun mk(){var i=0; fun c(){i=i+1; return i;} return c;} var c=mk(); print c(); print c(); print c();`,
			"1\n2\n3\n",
		},
		{
			"inheritance and super",
			`class A { greet(){ print "A"; } } class B < A { greet(){ super.greet(); print "B"; } } B().greet();`,
			"A\nB\n",
		},
		{"init returns instance", `class P { init(x){ this.x = x; } } var p = P(7); print p.x;`, "7\n"},
		{"logical short-circuit returns operand", `print nil or "fallback"; print 1 and 2;`, "fallback\n2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.source)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReturningFlagClearedAcrossTopLevelCalls(t *testing.T) {
	got, err := run(t, `fun f() { return 1; } f(); print "after";`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "after\n" {
		t.Errorf("output = %q, want %q (statements after a returning call must still run)", got, "after\n")
	}
}

func TestFieldTakesPrecedenceOverMethod(t *testing.T) {
	got, err := run(t, `
		class C { x() { return "method"; } }
		var c = C();
		c.x = "field";
		print c.x;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "field\n" {
		t.Errorf("output = %q, want %q", got, "field\n")
	}
}

func TestLexicalCapture(t *testing.T) {
	got, err := run(t, `
		var x = "outer";
		fun showX() { print x; }
		fun wrap() {
			var x = "inner";
			return showX;
		}
		wrap()();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "outer\n" {
		t.Errorf("expected closure to observe binding at creation time, got %q", got)
	}
}

func TestNegativeCases(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"self initializer read", `{ var a = a; }`},
		{"return outside function", `return 1;`},
		{"self inheritance", `class A < A {}`},
		{"this outside class", `this;`},
		{"calling a number", `3();`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.source); err == nil {
				t.Errorf("expected an error for %q", tt.source)
			}
		})
	}
}

func TestNotCallableRuntimeError(t *testing.T) {
	_, err := run(t, `3();`)
	if err == nil {
		t.Fatal("expected error")
	}
	re, ok := err.(*RuntimeError)
	if !ok || re.Kind != "NotCallable" {
		t.Fatalf("expected NotCallable RuntimeError, got %#v", err)
	}
}

func TestArityMismatch(t *testing.T) {
	_, err := run(t, `fun f(a, b) { return a + b; } f(1);`)
	if err == nil {
		t.Fatal("expected arity error")
	}
	re, ok := err.(*RuntimeError)
	if !ok || re.Kind != "ArityError" {
		t.Fatalf("expected ArityError, got %#v", err)
	}
}

func TestForLoopEquivalentToDesugaredWhile(t *testing.T) {
	forOut, err := run(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	whileOut, err := run(t, `{ var i = 0; while (i < 3) { print i; i = i + 1; } }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if forOut != whileOut {
		t.Errorf("for-loop output %q != desugared while-loop output %q", forOut, whileOut)
	}
}
