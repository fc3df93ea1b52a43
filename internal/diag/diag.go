// Package diag renders the uniform "[line N] Error <where>: <message>"
// diagnostic spec.md §6 requires, with an optional source-line/caret
// excerpt. It is the shared landing point for the four stages' distinct
// error types (lexer.Error, parser.Error, resolver.Error,
// interp.RuntimeError), adapted from go-dws's internal/errors package.
package diag

import (
	"fmt"
	"strings"
)

// Diagnostic is a single reported failure, already normalized out of
// whichever stage produced it.
type Diagnostic struct {
	Line    int
	Where   string // e.g. "at 'foo'"; empty when not applicable
	Message string
	Source  string // full program source, for the caret excerpt; may be empty
	File    string // script path, or "<repl>"/"<eval>" for inline input
}

// FromParts builds a Diagnostic directly from a line, a location and a
// message. Only parser errors carry a location; the other stages' errors
// are passed with an empty where.
func FromParts(line int, where, message, source, file string) Diagnostic {
	return Diagnostic{Line: line, Where: where, Message: message, Source: source, File: file}
}

// Format renders the diagnostic in the form spec.md §6 mandates:
// `[line N] Error <location>: <message>`, optionally preceded by a
// source-line excerpt with a caret when Source is non-empty. When color
// is true, ANSI codes highlight the caret (go-dws's errors.Format
// convention).
func (d Diagnostic) Format(color bool) string {
	var sb strings.Builder

	if d.Source != "" {
		if line := sourceLine(d.Source, d.Line); line != "" {
			prefix := fmt.Sprintf("%4d | ", d.Line)
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", len(prefix)))
			if color {
				sb.WriteString("\033[1;31m")
			}
			sb.WriteString("^\n")
			if color {
				sb.WriteString("\033[0m")
			}
		}
	}

	if d.Where != "" {
		fmt.Fprintf(&sb, "[line %d] Error %s: %s", d.Line, d.Where, d.Message)
	} else {
		fmt.Fprintf(&sb, "[line %d] Error: %s", d.Line, d.Message)
	}
	return sb.String()
}

func (d Diagnostic) Error() string { return d.Format(false) }

func sourceLine(source string, line int) string {
	if line <= 0 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}
