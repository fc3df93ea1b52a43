// Package builtins implements the three native functions spec.md §4.7
// pre-binds into the global environment: clock, input, and readFile.
package builtins

import (
	"bufio"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cwbudde/go-lox/internal/runtime"
)

// Register defines clock, input, and readFile in env as NativeFunction
// values. It takes no reader: the stream input() reads lines from is held
// by the caller (see NewStdinReader) and passed to Input at call time.
func Register(env *runtime.Environment) {
	env.Define("clock", &runtime.NativeFunction{Name: "clock", Tag: runtime.NativeClock, Arity: 0})
	env.Define("input", &runtime.NativeFunction{Name: "input", Tag: runtime.NativeInput, Arity: 0})
	env.Define("readFile", &runtime.NativeFunction{Name: "readFile", Tag: runtime.NativeReadFile, Arity: 1})
}

// Clock returns nanoseconds since the Unix epoch (spec.md §4.7; the
// NativeFunction behavior, per the Open Question resolved in
// SPEC_FULL.md §5 — not the source's constant-16 debug override).
func Clock() runtime.Value {
	return runtime.Number(time.Now().UnixNano())
}

// Input reads one line from r. Returns Nil on I/O error, including a
// clean EOF, per spec.md §4.7.
func Input(r *bufio.Reader) runtime.Value {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return runtime.NilValue
	}
	return runtime.String(strings.TrimRight(line, "\r\n"))
}

// NewStdinReader wraps stdin for use with Input.
func NewStdinReader(stdin io.Reader) *bufio.Reader {
	return bufio.NewReader(stdin)
}

// ReadFile returns the entire contents of the file at path, trimmed of
// surrounding whitespace before opening (spec.md §4.7). I/O errors are
// fatal: the second return is non-nil and the interpreter surfaces it as
// a NativeIOError runtime error.
func ReadFile(path string) (runtime.Value, error) {
	trimmed := strings.TrimSpace(path)
	data, err := os.ReadFile(trimmed)
	if err != nil {
		return nil, err
	}
	return runtime.String(string(data)), nil
}
