package runtime

import "github.com/cwbudde/go-lox/internal/ast"

// Function is a Lox closure: a name, parameter list, body, the
// environment captured at creation, and whether it is a class
// initializer (spec.md §3).
type Function struct {
	Name          string
	Parameters    []string
	Body          []ast.Stmt
	Closure       *Environment
	IsInitializer bool
}

func (*Function) Type() string { return "FUNCTION" }

func (f *Function) String() string {
	if f.Name == "" {
		return "anonymous function"
	}
	return f.Name + " function"
}

// Arity is the declared parameter count.
func (f *Function) Arity() int { return len(f.Parameters) }

// Bind returns a new Function whose captured environment is a fresh
// child of f.Closure with "this" bound to instance. IsInitializer is
// preserved (spec.md §3 "Function").
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define("this", instance)
	return &Function{
		Name:          f.Name,
		Parameters:    f.Parameters,
		Body:          f.Body,
		Closure:       env,
		IsInitializer: f.IsInitializer,
	}
}

// NativeTag identifies a built-in function (spec.md §3: "a fixed enum of
// built-ins"). The interpreter's Call dispatch switches on this tag
// rather than storing a Go closure, matching spec.md §4.4's "dispatch by
// enum tag".
type NativeTag int

const (
	NativeClock NativeTag = iota
	NativeInput
	NativeReadFile
)

// NativeFunction is a pre-bound built-in (clock, input, readFile).
type NativeFunction struct {
	Name  string
	Tag   NativeTag
	Arity int
}

func (*NativeFunction) Type() string     { return "NATIVE_FUNCTION" }
func (n *NativeFunction) String() string { return "<native fn " + n.Name + ">" }
