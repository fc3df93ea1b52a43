package interp

import (
	"fmt"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/runtime"
	"github.com/cwbudde/go-lox/internal/token"
)

func (i *Interpreter) evaluate(expr ast.Expr) (runtime.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Grouping:
		return i.evaluate(e.Expression)

	case *ast.Unary:
		return i.evalUnary(e)

	case *ast.Binary:
		return i.evalBinary(e)

	case *ast.Logical:
		return i.evalLogical(e)

	case *ast.Variable:
		return i.lookUpVariable(e.Name, e.NodeID())

	case *ast.Assign:
		return i.evalAssign(e)

	case *ast.Call:
		return i.evalCall(e)

	case *ast.Get:
		return i.evalGet(e)

	case *ast.Set:
		return i.evalSet(e)

	case *ast.This:
		return i.lookUpVariable(e.Keyword, e.NodeID())

	case *ast.Super:
		return i.evalSuper(e)

	default:
		return nil, fmt.Errorf("interp: unhandled expression %T", expr)
	}
}

// literalValue converts the Go-native literal payload a *ast.Literal
// carries (float64, string, bool, or nil) into a runtime.Value.
func literalValue(v any) runtime.Value {
	switch vv := v.(type) {
	case nil:
		return runtime.NilValue
	case float64:
		return runtime.Number(vv)
	case string:
		return runtime.String(vv)
	case bool:
		return runtime.Boolean(vv)
	default:
		panic(fmt.Sprintf("interp: literal with unexpected payload type %T", v))
	}
}

func (i *Interpreter) lookUpVariable(name token.Token, id ast.ID) (runtime.Value, error) {
	if d, ok := i.distances[id]; ok {
		return i.env.GetAt(d, name.Lexeme), nil
	}
	v, err := i.Globals.Get(name.Lexeme)
	if err != nil {
		return nil, &RuntimeError{Line: name.Line, Kind: "UndefinedVariable", Message: err.Error()}
	}
	return v, nil
}

func (i *Interpreter) evalUnary(e *ast.Unary) (runtime.Value, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case token.MINUS:
		n, ok := right.(runtime.Number)
		if !ok {
			return nil, &RuntimeError{Line: e.Operator.Line, Kind: "TypeError", Message: "Operand must be a number."}
		}
		return -n, nil
	case token.BANG:
		return runtime.Boolean(!runtime.IsTruthy(right)), nil
	default:
		return nil, fmt.Errorf("interp: unhandled unary operator %v", e.Operator.Type)
	}
}

func (i *Interpreter) evalLogical(e *ast.Logical) (runtime.Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Type == token.OR {
		if runtime.IsTruthy(left) {
			return left, nil
		}
	} else { // AND
		if !runtime.IsTruthy(left) {
			return left, nil
		}
	}
	return i.evaluate(e.Right)
}

func (i *Interpreter) evalBinary(e *ast.Binary) (runtime.Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.PLUS:
		return addValues(left, right, e.Operator.Line)
	case token.MINUS:
		return numericOp(left, right, e.Operator.Line, func(a, b float64) float64 { return a - b })
	case token.STAR:
		return numericOp(left, right, e.Operator.Line, func(a, b float64) float64 { return a * b })
	case token.SLASH:
		return numericOp(left, right, e.Operator.Line, func(a, b float64) float64 { return a / b })
	case token.GREATER:
		return compareOp(left, right, e.Operator.Line, func(a, b float64) bool { return a > b })
	case token.GREATER_EQUAL:
		return compareOp(left, right, e.Operator.Line, func(a, b float64) bool { return a >= b })
	case token.LESS:
		return compareOp(left, right, e.Operator.Line, func(a, b float64) bool { return a < b })
	case token.LESS_EQUAL:
		return compareOp(left, right, e.Operator.Line, func(a, b float64) bool { return a <= b })
	case token.EQUAL_EQUAL:
		return runtime.Boolean(runtime.Equal(left, right)), nil
	case token.BANG_EQUAL:
		return runtime.Boolean(!runtime.Equal(left, right)), nil
	default:
		return nil, fmt.Errorf("interp: unhandled binary operator %v", e.Operator.Type)
	}
}

// addValues implements spec.md §4.4's `+` overload set: Number+Number
// adds; String(+Number|+String|+Nil) and Number+String concatenate with
// the non-string side stringified; anything else is a TypeError.
func addValues(left, right runtime.Value, line int) (runtime.Value, error) {
	if l, ok := left.(runtime.Number); ok {
		if r, ok := right.(runtime.Number); ok {
			return l + r, nil
		}
		if r, ok := right.(runtime.String); ok {
			return runtime.String(l.String()) + r, nil
		}
	}
	if l, ok := left.(runtime.String); ok {
		switch r := right.(type) {
		case runtime.String:
			return l + r, nil
		case runtime.Number:
			return l + runtime.String(r.String()), nil
		case runtime.Nil:
			return l + "nil", nil
		}
	}
	return nil, &RuntimeError{Line: line, Kind: "TypeError", Message: "Operands must be two numbers or two strings."}
}

func numericOp(left, right runtime.Value, line int, fn func(a, b float64) float64) (runtime.Value, error) {
	l, lok := left.(runtime.Number)
	r, rok := right.(runtime.Number)
	if !lok || !rok {
		return nil, &RuntimeError{Line: line, Kind: "TypeError", Message: "Operands must be numbers."}
	}
	return runtime.Number(fn(float64(l), float64(r))), nil
}

func compareOp(left, right runtime.Value, line int, fn func(a, b float64) bool) (runtime.Value, error) {
	l, lok := left.(runtime.Number)
	r, rok := right.(runtime.Number)
	if !lok || !rok {
		return nil, &RuntimeError{Line: line, Kind: "TypeError", Message: "Operands must be numbers."}
	}
	return runtime.Boolean(fn(float64(l), float64(r))), nil
}

func (i *Interpreter) evalAssign(e *ast.Assign) (runtime.Value, error) {
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if d, ok := i.distances[e.NodeID()]; ok {
		i.env.AssignAt(d, e.Name.Lexeme, value)
		return value, nil
	}
	if err := i.Globals.Assign(e.Name.Lexeme, value); err != nil {
		return nil, &RuntimeError{Line: e.Name.Line, Kind: "UndefinedVariable", Message: err.Error()}
	}
	return value, nil
}

func (i *Interpreter) evalGet(e *ast.Get) (runtime.Value, error) {
	obj, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*runtime.Instance)
	if !ok {
		return nil, &RuntimeError{Line: e.Name.Line, Kind: "TypeError", Message: "Only instances have properties."}
	}
	v, err := inst.Get(e.Name.Lexeme)
	if err != nil {
		return nil, &RuntimeError{Line: e.Name.Line, Kind: "UndefinedProperty", Message: err.Error()}
	}
	return v, nil
}

func (i *Interpreter) evalSet(e *ast.Set) (runtime.Value, error) {
	obj, err := i.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*runtime.Instance)
	if !ok {
		return nil, &RuntimeError{Line: e.Name.Line, Kind: "TypeError", Message: "Only instances have fields."}
	}
	value, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	inst.Set(e.Name.Lexeme, value)
	return value, nil
}

// evalSuper implements spec.md §4.4 "Super": the distance recorded for
// the `super` keyword locates both `super` (at distance d) and `this`
// (at distance d-1), which the resolver guarantees are stacked that way.
func (i *Interpreter) evalSuper(e *ast.Super) (runtime.Value, error) {
	d := i.distances[e.NodeID()]
	superVal := i.env.GetAt(d, "super")
	superclass, ok := superVal.(*runtime.Class)
	if !ok {
		return nil, &RuntimeError{Line: e.Keyword.Line, Kind: "SuperclassNotAClass", Message: "Superclass must be a class."}
	}
	instance := i.env.GetAt(d-1, "this").(*runtime.Instance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, &RuntimeError{Line: e.Method.Line, Kind: "UndefinedProperty",
			Message: fmt.Sprintf("Undefined property '%s'.", e.Method.Lexeme)}
	}
	return method.Bind(instance), nil
}
