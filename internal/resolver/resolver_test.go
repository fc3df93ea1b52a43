package resolver

import (
	"testing"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
)

func resolveSource(t *testing.T, src string) ([]ast.Stmt, Distances, error) {
	t.Helper()
	toks, err := lexer.New(src).Tokenize()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	stmts, err := parser.New(toks).ParseProgram()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	dist, err := New().Resolve(stmts)
	return stmts, dist, err
}

func TestClosureCaptureDistance(t *testing.T) {
	_, dist, err := resolveSource(t, `
		fun mk() {
			var i = 0;
			fun c() {
				i = i + 1;
				return i;
			}
			return c;
		}
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dist) == 0 {
		t.Fatal("expected at least one resolved local distance")
	}
}

func TestSelfInitializerRead(t *testing.T) {
	_, _, err := resolveSource(t, "{ var a = a; }")
	if err == nil {
		t.Fatal("expected SelfInitializerRead error")
	}
	re, ok := err.(*Error)
	if !ok || re.Kind != "SelfInitializerRead" {
		t.Fatalf("expected SelfInitializerRead, got %#v", err)
	}
}

func TestReturnOutsideFunction(t *testing.T) {
	_, _, err := resolveSource(t, "return 1;")
	if err == nil {
		t.Fatal("expected ReturnOutsideFunction error")
	}
	if re, ok := err.(*Error); !ok || re.Kind != "ReturnOutsideFunction" {
		t.Fatalf("expected ReturnOutsideFunction, got %#v", err)
	}
}

func TestSelfInheritance(t *testing.T) {
	_, _, err := resolveSource(t, "class A < A {}")
	if err == nil {
		t.Fatal("expected SelfInheritance error")
	}
	if re, ok := err.(*Error); !ok || re.Kind != "SelfInheritance" {
		t.Fatalf("expected SelfInheritance, got %#v", err)
	}
}

func TestThisOutsideClass(t *testing.T) {
	_, _, err := resolveSource(t, "print this;")
	if err == nil {
		t.Fatal("expected ThisOutsideClass error")
	}
	if re, ok := err.(*Error); !ok || re.Kind != "ThisOutsideClass" {
		t.Fatalf("expected ThisOutsideClass, got %#v", err)
	}
}

func TestSuperWithoutSuperclass(t *testing.T) {
	_, _, err := resolveSource(t, "class A { m() { return super.m(); } }")
	if err == nil {
		t.Fatal("expected SuperWithoutSuperclass error")
	}
	if re, ok := err.(*Error); !ok || re.Kind != "SuperWithoutSuperclass" {
		t.Fatalf("expected SuperWithoutSuperclass, got %#v", err)
	}
}

func TestReturnFromInitializer(t *testing.T) {
	_, _, err := resolveSource(t, "class A { init() { return 1; } }")
	if err == nil {
		t.Fatal("expected ReturnFromInitializer error")
	}
	if re, ok := err.(*Error); !ok || re.Kind != "ReturnFromInitializer" {
		t.Fatalf("expected ReturnFromInitializer, got %#v", err)
	}
}

func TestReDeclarationInBlock(t *testing.T) {
	_, _, err := resolveSource(t, "{ var a = 1; var a = 2; }")
	if err == nil {
		t.Fatal("expected ReDeclaration error")
	}
	if re, ok := err.(*Error); !ok || re.Kind != "ReDeclaration" {
		t.Fatalf("expected ReDeclaration, got %#v", err)
	}
}

func TestGlobalRedeclarationAllowed(t *testing.T) {
	_, _, err := resolveSource(t, "var a = 1; var a = 2;")
	if err != nil {
		t.Fatalf("unexpected error for global redeclaration: %v", err)
	}
}
