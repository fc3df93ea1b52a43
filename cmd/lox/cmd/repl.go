package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/interp"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/cwbudde/go-lox/internal/resolver"
)

// runREPL implements spec.md §6's REPL: a long-lived Interpreter and
// Resolver span the whole session so earlier lines' bindings and scope
// distances remain visible to later ones, while each line is
// independently lexed, parsed, resolved, and interpreted. A line that
// fails at any stage reports its diagnostic and returns to the prompt
// rather than aborting the session.
func runREPL(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	interpreter := interp.New(out, in)
	res := resolver.New()

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return nil // EOF: exit cleanly
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		stmts, source, ok := parseREPLLine(out, line)
		if !ok {
			continue
		}

		dist, err := res.Resolve(stmts)
		if err != nil {
			fmt.Fprintln(out, toDiagnostic(err, source, "<repl>").Format(false))
			continue
		}
		if err := interpreter.Interpret(stmts, dist); err != nil {
			fmt.Fprintln(out, toDiagnostic(err, source, "<repl>").Format(false))
			continue
		}
	}
}

// parseREPLLine lexes and parses line. If the line fails to parse as a
// program but the text `print <line>;` lexes and parses, that wrapped form
// is used instead (SPEC_FULL.md §4's REPL ergonomic) so a user can type
// `1 + 2` instead of `print 1 + 2;`. The raw line is not itself checked to
// be a single bare expression.
func parseREPLLine(out io.Writer, line string) (stmts []ast.Stmt, source string, ok bool) {
	toks, err := lexer.New(line).Tokenize()
	if err != nil {
		fmt.Fprintln(out, toDiagnostic(err, line, "<repl>").Format(false))
		return nil, line, false
	}

	stmts, perr := parser.New(toks).ParseProgram()
	if perr == nil {
		return stmts, line, true
	}

	wrapped := "print " + line + ";"
	wToks, werr := lexer.New(wrapped).Tokenize()
	if werr == nil {
		if wStmts, werr2 := parser.New(wToks).ParseProgram(); werr2 == nil {
			return wStmts, wrapped, true
		}
	}

	fmt.Fprintln(out, toDiagnostic(perr, line, "<repl>").Format(false))
	return nil, line, false
}
