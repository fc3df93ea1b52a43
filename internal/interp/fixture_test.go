package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/cwbudde/go-lox/internal/resolver"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestProgramFixtures snapshot-tests whole-program stdout for a handful
// of representative Lox programs, the way go-dws's fixture_test.go
// snapshot-tests whole DWScript programs with go-snaps.
func TestProgramFixtures(t *testing.T) {
	fixtures := []struct {
		name   string
		source string
	}{
		{
			name: "FibonacciRecursive",
			source: `
				fun fib(n) {
					if (n < 2) return n;
					return fib(n - 1) + fib(n - 2);
				}
				for (var i = 0; i < 8; i = i + 1) print fib(i);
			`,
		},
		{
			name: "ClassHierarchy",
			source: `
				class Animal {
					init(name) { this.name = name; }
					speak() { print this.name + " makes a sound."; }
				}
				class Dog < Animal {
					speak() {
						super.speak();
						print this.name + " barks.";
					}
				}
				Dog("Rex").speak();
			`,
		},
		{
			name: "Closures",
			source: `
				fun counter() {
					var n = 0;
					fun next() { n = n + 1; return n; }
					return next;
				}
				var a = counter();
				var b = counter();
				print a();
				print a();
				print b();
			`,
		},
	}

	for _, fx := range fixtures {
		t.Run(fx.name, func(t *testing.T) {
			var out bytes.Buffer
			toks, err := lexer.New(fx.source).Tokenize()
			if err != nil {
				t.Fatalf("lex error: %v", err)
			}
			stmts, err := parser.New(toks).ParseProgram()
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			dist, err := resolver.New().Resolve(stmts)
			if err != nil {
				t.Fatalf("resolve error: %v", err)
			}
			interp := New(&out, strings.NewReader(""))
			if err := interp.Interpret(stmts, dist); err != nil {
				t.Fatalf("runtime error: %v", err)
			}
			snaps.MatchSnapshot(t, out.String())
		})
	}
}
