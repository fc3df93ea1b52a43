package interp

import (
	"fmt"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/builtins"
	"github.com/cwbudde/go-lox/internal/runtime"
	"github.com/cwbudde/go-lox/internal/token"
)

// evalCall implements spec.md §4.4 "Call": the callee and all arguments
// are evaluated left-to-right before dispatch (spec.md §5 ordering),
// then dispatch proceeds by callee kind.
func (i *Interpreter) evalCall(e *ast.Call) (runtime.Value, error) {
	callee, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]runtime.Value, 0, len(e.Arguments))
	for _, a := range e.Arguments {
		v, err := i.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	switch c := callee.(type) {
	case *runtime.Function:
		return i.callFunction(c, args, e.Paren)

	case *runtime.NativeFunction:
		return i.callNative(c, args, e.Paren)

	case *runtime.Class:
		instance := runtime.NewInstance(c)
		if init, ok := c.FindMethod("init"); ok {
			if _, err := i.callFunction(init.Bind(instance), args, e.Paren); err != nil {
				return nil, err
			}
		}
		return instance, nil

	default:
		return nil, &RuntimeError{Line: e.Paren.Line, Kind: "NotCallable", Message: "Can only call functions and classes."}
	}
}

// callFunction runs the body-execution/return protocol of spec.md §4.4:
// arity check, a fresh child of the captured environment with parameters
// bound, the block-execution protocol, then the `returning` flag
// cleared. Initializers always return `this` regardless of any
// Return statement (the resolver forbids `return <value>;` inside init,
// spec.md §4.3).
func (i *Interpreter) callFunction(fn *runtime.Function, args []runtime.Value, paren token.Token) (runtime.Value, error) {
	if len(args) != fn.Arity() {
		return nil, &RuntimeError{Line: paren.Line, Kind: "ArityError",
			Message: fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args))}
	}

	callEnv := runtime.NewEnclosedEnvironment(fn.Closure)
	for idx, param := range fn.Parameters {
		callEnv.Define(param, args[idx])
	}

	if err := i.executeBlock(fn.Body, callEnv); err != nil {
		return nil, err
	}

	returnValue := i.returnValue
	i.returning = false
	i.returnValue = nil

	if fn.IsInitializer {
		return fn.Closure.GetAt(0, "this"), nil
	}
	if returnValue == nil {
		return runtime.NilValue, nil
	}
	return returnValue, nil
}

func (i *Interpreter) callNative(n *runtime.NativeFunction, args []runtime.Value, paren token.Token) (runtime.Value, error) {
	if len(args) != n.Arity {
		return nil, &RuntimeError{Line: paren.Line, Kind: "ArityError",
			Message: fmt.Sprintf("Expected %d arguments but got %d.", n.Arity, len(args))}
	}

	switch n.Tag {
	case runtime.NativeClock:
		return builtins.Clock(), nil

	case runtime.NativeInput:
		return builtins.Input(i.stdinReader), nil

	case runtime.NativeReadFile:
		path, ok := args[0].(runtime.String)
		if !ok {
			return nil, &RuntimeError{Line: paren.Line, Kind: "TypeError", Message: "readFile() expects a string path."}
		}
		v, err := builtins.ReadFile(string(path))
		if err != nil {
			return nil, &RuntimeError{Line: paren.Line, Kind: "NativeIOError", Message: err.Error()}
		}
		return v, nil

	default:
		return nil, fmt.Errorf("interp: unknown native function tag %d", n.Tag)
	}
}
