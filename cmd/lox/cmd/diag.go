package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-lox/internal/diag"
	"github.com/cwbudde/go-lox/internal/interp"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/cwbudde/go-lox/internal/resolver"
)

// toDiagnostic adapts one of the four stages' distinct error types into
// the shared diag.Diagnostic the way go-dws's errors.FromStringErrors
// adapts parser/analyzer string errors at the reporting boundary.
func toDiagnostic(err error, source, file string) diag.Diagnostic {
	switch e := err.(type) {
	case *lexer.Error:
		return diag.FromParts(e.Line, "", e.Message, source, file)
	case *parser.Error:
		return diag.FromParts(e.Line, e.Where, e.Message, source, file)
	case *resolver.Error:
		return diag.FromParts(e.Line, "", e.Message, source, file)
	case *interp.RuntimeError:
		return diag.FromParts(e.Line, "", e.Message, source, file)
	default:
		return diag.FromParts(0, "", err.Error(), source, file)
	}
}

// reportAndExit prints err's diagnostic to stderr and exits with code,
// the exit-code discipline SPEC_FULL.md §4 fixes: 65 for lex/parse/resolve
// failures, 70 for runtime failures.
func reportAndExit(err error, source, file string, code int) {
	d := toDiagnostic(err, source, file)
	fmt.Fprintln(os.Stderr, d.Format(true))
	os.Exit(code)
}

const (
	exitDataError = 65
	exitRuntime   = 70
)
