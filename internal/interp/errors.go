package interp

import "fmt"

// RuntimeError is a single evaluation failure (spec.md §7): TypeError,
// UndefinedVariable, UndefinedProperty, NotCallable, ArityError,
// SuperclassNotAClass, or NativeIOError. A RuntimeError aborts the
// current Interpret call (spec.md §7 propagation policy).
type RuntimeError struct {
	Line    int
	Kind    string
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}
