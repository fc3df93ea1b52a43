// Package resolver implements the static pre-pass described in spec.md
// §4.3: it assigns to every Variable, Assign, This, and Super expression a
// scope distance, keyed by the expression's stable ast.ID.
package resolver

import (
	"fmt"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/token"
)

// Error is a single static-resolution failure (ReDeclaration,
// SelfInitializerRead, ReturnOutsideFunction, ReturnFromInitializer,
// ThisOutsideClass, SuperOutsideClass, SuperWithoutSuperclass,
// SelfInheritance — spec.md §7).
type Error struct {
	Line    int
	Kind    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

type functionKind int

const (
	fnNone functionKind = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classKind int

const (
	classNone classKind = iota
	classClass
	classSubclass
)

// Distances maps an expression's stable ID to the number of scope hops
// from its use site to the scope that binds its name. Expressions not
// present in the map are global references.
type Distances map[ast.ID]int

// Resolver runs the static pass over a parsed statement list.
type Resolver struct {
	scopes      []map[string]bool
	distances   Distances
	currentFn   functionKind
	currentCls  classKind
}

// New creates a Resolver with an empty distance map.
func New() *Resolver {
	return &Resolver{distances: make(Distances)}
}

// Resolve walks stmts and returns the accumulated distance map, or the
// first Error encountered. Calling Resolve again on the same Resolver
// (e.g. successive REPL lines) accumulates into the same Distances map,
// matching the long-lived-interpreter REPL model of spec.md §6.
func (r *Resolver) Resolve(stmts []ast.Stmt) (Distances, error) {
	if err := r.resolveStmts(stmts); err != nil {
		return nil, err
	}
	return r.distances, nil
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := r.resolveStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		err := r.resolveStmts(s.Statements)
		r.endScope()
		return err

	case *ast.Var:
		if err := r.declare(s.Name); err != nil {
			return err
		}
		if s.Initializer != nil {
			if err := r.resolveExpr(s.Initializer); err != nil {
				return err
			}
		}
		r.define(s.Name.Lexeme)
		return nil

	case *ast.Function:
		if err := r.declare(s.Name); err != nil {
			return err
		}
		r.define(s.Name.Lexeme)
		return r.resolveFunction(s, fnFunction)

	case *ast.Expression:
		return r.resolveExpr(s.Expression)

	case *ast.Print:
		return r.resolveExpr(s.Expression)

	case *ast.If:
		if err := r.resolveExpr(s.Condition); err != nil {
			return err
		}
		if err := r.resolveStmt(s.Then); err != nil {
			return err
		}
		if s.Else != nil {
			return r.resolveStmt(s.Else)
		}
		return nil

	case *ast.While:
		if err := r.resolveExpr(s.Condition); err != nil {
			return err
		}
		return r.resolveStmt(s.Body)

	case *ast.Return:
		if r.currentFn == fnNone {
			return &Error{Line: s.Keyword.Line, Kind: "ReturnOutsideFunction", Message: "Can't return from top-level code."}
		}
		if s.Value != nil {
			if r.currentFn == fnInitializer {
				return &Error{Line: s.Keyword.Line, Kind: "ReturnFromInitializer", Message: "Can't return a value from an initializer."}
			}
			return r.resolveExpr(s.Value)
		}
		return nil

	case *ast.Class:
		return r.resolveClass(s)

	default:
		return fmt.Errorf("resolver: unhandled statement %T", stmt)
	}
}

func (r *Resolver) resolveClass(s *ast.Class) error {
	enclosingCls := r.currentCls
	r.currentCls = classClass

	if err := r.declare(s.Name); err != nil {
		return err
	}
	r.define(s.Name.Lexeme)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			return &Error{Line: s.Superclass.Name.Line, Kind: "SelfInheritance", Message: "A class can't inherit from itself."}
		}
		r.currentCls = classSubclass
		if err := r.resolveExpr(s.Superclass); err != nil {
			return err
		}
		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		kind := fnMethod
		if method.Name.Lexeme == "init" {
			kind = fnInitializer
		}
		if err := r.resolveFunction(method, kind); err != nil {
			return err
		}
	}

	r.endScope()
	if s.Superclass != nil {
		r.endScope()
	}

	r.currentCls = enclosingCls
	return nil
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind functionKind) error {
	enclosingFn := r.currentFn
	r.currentFn = kind

	r.beginScope()
	for _, param := range fn.Parameters {
		if err := r.declare(param); err != nil {
			return err
		}
		r.define(param.Lexeme)
	}
	err := r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFn = enclosingFn
	return err
}

func (r *Resolver) resolveExpr(expr ast.Expr) error {
	switch e := expr.(type) {
	case *ast.Literal:
		return nil

	case *ast.Grouping:
		return r.resolveExpr(e.Expression)

	case *ast.Unary:
		return r.resolveExpr(e.Right)

	case *ast.Binary:
		if err := r.resolveExpr(e.Left); err != nil {
			return err
		}
		return r.resolveExpr(e.Right)

	case *ast.Logical:
		if err := r.resolveExpr(e.Left); err != nil {
			return err
		}
		return r.resolveExpr(e.Right)

	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				return &Error{Line: e.Name.Line, Kind: "SelfInitializerRead",
					Message: "Can't read local variable '" + e.Name.Lexeme + "' in its own initializer."}
			}
		}
		r.resolveLocal(e.NodeID(), e.Name.Lexeme)
		return nil

	case *ast.Assign:
		if err := r.resolveExpr(e.Value); err != nil {
			return err
		}
		r.resolveLocal(e.NodeID(), e.Name.Lexeme)
		return nil

	case *ast.Call:
		if err := r.resolveExpr(e.Callee); err != nil {
			return err
		}
		for _, arg := range e.Arguments {
			if err := r.resolveExpr(arg); err != nil {
				return err
			}
		}
		return nil

	case *ast.Get:
		return r.resolveExpr(e.Object)

	case *ast.Set:
		if err := r.resolveExpr(e.Value); err != nil {
			return err
		}
		return r.resolveExpr(e.Object)

	case *ast.This:
		if r.currentCls == classNone {
			return &Error{Line: e.Keyword.Line, Kind: "ThisOutsideClass", Message: "Can't use 'this' outside of a class."}
		}
		r.resolveLocal(e.NodeID(), "this")
		return nil

	case *ast.Super:
		if r.currentCls == classNone {
			return &Error{Line: e.Keyword.Line, Kind: "SuperOutsideClass", Message: "Can't use 'super' outside of a class."}
		}
		if r.currentCls != classSubclass {
			return &Error{Line: e.Keyword.Line, Kind: "SuperWithoutSuperclass", Message: "Can't use 'super' in a class with no superclass."}
		}
		r.resolveLocal(e.NodeID(), "super")
		return nil

	default:
		return fmt.Errorf("resolver: unhandled expression %T", expr)
	}
}

func (r *Resolver) resolveLocal(id ast.ID, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.distances[id] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any scope: treated as a global (spec.md §4.3); no
	// entry recorded, interpreter falls back to global lookup.
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare inserts name=false (not yet initialized) in the innermost scope.
// A duplicate declaration in a non-global scope is a ReDeclaration error;
// at global scope (no enclosing scopes) redeclaration is permitted, since
// spec.md treats unresolved names as globals with no local scope entry.
func (r *Resolver) declare(name token.Token) error {
	if len(r.scopes) == 0 {
		return nil
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		return &Error{Line: name.Line, Kind: "ReDeclaration",
			Message: "Already a variable with this name in this scope."}
	}
	scope[name.Lexeme] = false
	return nil
}

func (r *Resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}
