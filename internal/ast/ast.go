// Package ast defines the expression and statement node types produced by
// the parser and consumed by the resolver and interpreter.
package ast

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/cwbudde/go-lox/internal/token"
)

// ID is the stable identity of an expression node. The resolver keys its
// distance map by ID; the interpreter looks values up by the same ID. IDs
// must never be reused or recomputed after parsing (spec.md §3).
type ID uint64

var nextID uint64

func newID() ID {
	return ID(atomic.AddUint64(&nextID, 1))
}

// Expr is any expression node. Every node carries a stable ID via NodeID.
type Expr interface {
	exprNode()
	NodeID() ID
	String() string
}

type exprBase struct {
	id ID
}

func (exprBase) exprNode()    {}
func (e exprBase) NodeID() ID { return e.id }

func newExprBase() exprBase { return exprBase{id: newID()} }

// Literal is a literal value: number, string, boolean, or nil. Value holds
// a Go-native representation (float64, string, bool, or nil) that the
// interpreter wraps into a runtime.Value.
type Literal struct {
	exprBase
	Value any
}

func NewLiteral(value any) *Literal { return &Literal{exprBase: newExprBase(), Value: value} }

func (l *Literal) String() string {
	if l.Value == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", l.Value)
}

// Grouping is a parenthesized expression.
type Grouping struct {
	exprBase
	Expression Expr
}

func NewGrouping(e Expr) *Grouping { return &Grouping{exprBase: newExprBase(), Expression: e} }
func (g *Grouping) String() string { return "(group " + g.Expression.String() + ")" }

// Unary is a prefix operator application: `-x` or `!x`.
type Unary struct {
	exprBase
	Operator token.Token
	Right    Expr
}

func NewUnary(op token.Token, right Expr) *Unary {
	return &Unary{exprBase: newExprBase(), Operator: op, Right: right}
}
func (u *Unary) String() string { return paren(u.Operator.Lexeme, u.Right) }

// Binary is an infix arithmetic/comparison/equality operator application.
type Binary struct {
	exprBase
	Left     Expr
	Operator token.Token
	Right    Expr
}

func NewBinary(left Expr, op token.Token, right Expr) *Binary {
	return &Binary{exprBase: newExprBase(), Left: left, Operator: op, Right: right}
}
func (b *Binary) String() string { return paren(b.Operator.Lexeme, b.Left, b.Right) }

// Logical is `and`/`or`, which short-circuit and are therefore distinct
// from Binary (spec.md §4.4).
type Logical struct {
	exprBase
	Left     Expr
	Operator token.Token
	Right    Expr
}

func NewLogical(left Expr, op token.Token, right Expr) *Logical {
	return &Logical{exprBase: newExprBase(), Left: left, Operator: op, Right: right}
}
func (l *Logical) String() string { return paren(l.Operator.Lexeme, l.Left, l.Right) }

// Variable is a bare name reference.
type Variable struct {
	exprBase
	Name token.Token
}

func NewVariable(name token.Token) *Variable { return &Variable{exprBase: newExprBase(), Name: name} }
func (v *Variable) String() string           { return v.Name.Lexeme }

// Assign is `name = value`.
type Assign struct {
	exprBase
	Name  token.Token
	Value Expr
}

func NewAssign(name token.Token, value Expr) *Assign {
	return &Assign{exprBase: newExprBase(), Name: name, Value: value}
}
func (a *Assign) String() string { return paren("= "+a.Name.Lexeme, a.Value) }

// Call is `callee(arguments...)`. Paren is retained only for error-site
// reporting (spec.md §3).
type Call struct {
	exprBase
	Callee    Expr
	Paren     token.Token
	Arguments []Expr
}

func NewCall(callee Expr, paren token.Token, args []Expr) *Call {
	return &Call{exprBase: newExprBase(), Callee: callee, Paren: paren, Arguments: args}
}
func (c *Call) String() string {
	parts := make([]Expr, 0, len(c.Arguments)+1)
	parts = append(parts, c.Callee)
	parts = append(parts, c.Arguments...)
	return paren("call", parts...)
}

// Get is `object.name`, a property/method read.
type Get struct {
	exprBase
	Object Expr
	Name   token.Token
}

func NewGet(object Expr, name token.Token) *Get {
	return &Get{exprBase: newExprBase(), Object: object, Name: name}
}
func (g *Get) String() string { return paren("get "+g.Name.Lexeme, g.Object) }

// Set is `object.name = value`, a field write.
type Set struct {
	exprBase
	Object Expr
	Name   token.Token
	Value  Expr
}

func NewSet(object Expr, name token.Token, value Expr) *Set {
	return &Set{exprBase: newExprBase(), Object: object, Name: name, Value: value}
}
func (s *Set) String() string { return paren("set "+s.Name.Lexeme, s.Object, s.Value) }

// This is the `this` keyword reference.
type This struct {
	exprBase
	Keyword token.Token
}

func NewThis(keyword token.Token) *This { return &This{exprBase: newExprBase(), Keyword: keyword} }
func (t *This) String() string          { return "this" }

// Super is `super.method`.
type Super struct {
	exprBase
	Keyword token.Token
	Method  token.Token
}

func NewSuper(keyword, method token.Token) *Super {
	return &Super{exprBase: newExprBase(), Keyword: keyword, Method: method}
}
func (s *Super) String() string { return "(super " + s.Method.Lexeme + ")" }

func paren(name string, exprs ...Expr) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, e := range exprs {
		sb.WriteByte(' ')
		sb.WriteString(e.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
