// Package interp is the tree-walking evaluator: AST + resolver.Distances
// → observable effects (spec.md §4.4).
package interp

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/builtins"
	"github.com/cwbudde/go-lox/internal/resolver"
	"github.com/cwbudde/go-lox/internal/runtime"
	"github.com/cwbudde/go-lox/internal/token"
)

// Interpreter holds the global environment (with native built-ins
// pre-bound), the current environment, the resolved-distance map, and the
// single `returning` flag (spec.md §4.4, §5). It is long-lived across
// REPL lines: each line's Interpret call reuses Globals and accumulates
// into the same distance map.
type Interpreter struct {
	Globals     *runtime.Environment
	env         *runtime.Environment
	distances   resolver.Distances
	stdout      io.Writer
	stdinReader *bufio.Reader

	returning   bool
	returnValue runtime.Value
}

// New creates an Interpreter writing `print` output to stdout and reading
// input() lines from stdin.
func New(stdout io.Writer, stdin io.Reader) *Interpreter {
	globals := runtime.NewEnvironment()
	builtins.Register(globals)
	return &Interpreter{
		Globals:     globals,
		env:         globals,
		distances:   make(resolver.Distances),
		stdout:      stdout,
		stdinReader: builtins.NewStdinReader(stdin),
	}
}

// Interpret merges dist into the interpreter's accumulated distance map
// (so a REPL's per-line resolution appends rather than replaces, per
// spec.md §6) and then executes stmts. The `returning` flag is false
// before and after every call, per the invariant in spec.md §8.
func (i *Interpreter) Interpret(stmts []ast.Stmt, dist resolver.Distances) error {
	for id, d := range dist {
		i.distances[id] = d
	}
	i.returning = false
	defer func() { i.returning = false }()

	for _, stmt := range stmts {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) execute(stmt ast.Stmt) error {
	if i.returning {
		return nil
	}

	switch s := stmt.(type) {
	case *ast.Expression:
		_, err := i.evaluate(s.Expression)
		return err

	case *ast.Print:
		v, err := i.evaluate(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.stdout, v.String())
		return nil

	case *ast.Var:
		var v runtime.Value = runtime.NilValue
		if s.Initializer != nil {
			var err error
			v, err = i.evaluate(s.Initializer)
			if err != nil {
				return err
			}
		}
		i.env.Define(s.Name.Lexeme, v)
		return nil

	case *ast.Block:
		return i.executeBlock(s.Statements, runtime.NewEnclosedEnvironment(i.env))

	case *ast.If:
		cond, err := i.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if runtime.IsTruthy(cond) {
			return i.execute(s.Then)
		}
		if s.Else != nil {
			return i.execute(s.Else)
		}
		return nil

	case *ast.While:
		for !i.returning {
			cond, err := i.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !runtime.IsTruthy(cond) {
				return nil
			}
			if err := i.execute(s.Body); err != nil {
				return err
			}
		}
		return nil

	case *ast.Function:
		fn := &runtime.Function{
			Name:       s.Name.Lexeme,
			Parameters: paramNames(s.Parameters),
			Body:       s.Body,
			Closure:    i.env,
		}
		i.env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.Return:
		var v runtime.Value = runtime.NilValue
		if s.Value != nil {
			var err error
			v, err = i.evaluate(s.Value)
			if err != nil {
				return err
			}
		}
		i.returnValue = v
		i.returning = true
		return nil

	case *ast.Class:
		return i.executeClass(s)

	default:
		return fmt.Errorf("interp: unhandled statement %T", stmt)
	}
}

// executeBlock swaps in env for the duration of executing stmts,
// restoring the previous environment unconditionally on exit (spec.md
// §4.4 "Block").
func (i *Interpreter) executeBlock(stmts []ast.Stmt, env *runtime.Environment) error {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, stmt := range stmts {
		if i.returning {
			return nil
		}
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// executeClass implements the six-step class-declaration protocol of
// spec.md §4.4.
func (i *Interpreter) executeClass(s *ast.Class) error {
	var superclass *runtime.Class
	if s.Superclass != nil {
		v, err := i.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*runtime.Class)
		if !ok {
			return &RuntimeError{Line: s.Superclass.Name.Line, Kind: "SuperclassNotAClass", Message: "Superclass must be a class."}
		}
		superclass = sc
	}

	// Step 2: forward-declare the class name as Nil so methods may refer
	// to it transitively.
	i.env.Define(s.Name.Lexeme, runtime.NilValue)

	methodEnv := i.env
	if superclass != nil {
		methodEnv = runtime.NewEnclosedEnvironment(i.env)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*runtime.Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &runtime.Function{
			Name:          m.Name.Lexeme,
			Parameters:    paramNames(m.Parameters),
			Body:          m.Body,
			Closure:       methodEnv,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &runtime.Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}
	return i.env.Assign(s.Name.Lexeme, class)
}

func paramNames(params []token.Token) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Lexeme
	}
	return names
}
