package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-lox/internal/interp"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/cwbudde/go-lox/internal/resolver"
	"github.com/spf13/cobra"
)

var (
	evalExpr    string
	dumpTokens  bool
	dumpAST     bool
	traceRun    bool
	noResolve   bool
)

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Run a Lox script or expression",
	Long: `Execute a Lox program from a file or inline expression.

Examples:
  # Run a script file
  lox run script.lox

  # Evaluate an inline expression
  lox run -e "print 1 + 2;"

  # Run with the parsed AST dumped first (for debugging)
  lox run --dump-ast script.lox`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpTokens, "dump-tokens", false, "dump the token stream before running")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST before running")
	runCmd.Flags().BoolVar(&traceRun, "trace", false, "trace pipeline stages to stderr")
	runCmd.Flags().BoolVar(&noResolve, "no-resolve", false, "skip the static resolver pass (variables resolve dynamically as globals)")
}

func runScript(_ *cobra.Command, args []string) error {
	var (
		source   string
		filename string
	)

	switch {
	case evalExpr != "":
		source = evalExpr
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		source = string(content)
	default:
		return fmt.Errorf("either provide a script path or use -e for inline code")
	}

	return execute(source, filename)
}

// runFile is the entry point for the bare `lox script.lox` invocation
// (no subcommand, no debug flags) that spec.md §6 describes.
func runFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return execute(string(content), path)
}

// execute runs the four-stage pipeline (lex, parse, resolve, interpret)
// once over source, applying whatever debug flags are set, and exits the
// process with spec.md §6's fixed exit-code discipline on failure.
func execute(source, filename string) error {
	if verbose {
		fmt.Fprintf(os.Stderr, "Running %s (%d bytes)\n", filename, len(source))
	}
	if traceRun {
		fmt.Fprintf(os.Stderr, "[trace] lexing %s\n", filename)
	}
	toks, err := lexer.New(source).Tokenize()
	if err != nil {
		reportAndExit(err, source, filename, exitDataError)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "%d tokens\n", len(toks))
	}
	if dumpTokens {
		for _, t := range toks {
			fmt.Println(t.String())
		}
	}

	if traceRun {
		fmt.Fprintf(os.Stderr, "[trace] parsing %s\n", filename)
	}
	stmts, err := parser.New(toks).ParseProgram()
	if err != nil {
		reportAndExit(err, source, filename, exitDataError)
	}
	if dumpAST {
		for _, s := range stmts {
			fmt.Println(s.String())
		}
	}

	var dist resolver.Distances
	if !noResolve {
		if traceRun {
			fmt.Fprintf(os.Stderr, "[trace] resolving %s\n", filename)
		}
		dist, err = resolver.New().Resolve(stmts)
		if err != nil {
			reportAndExit(err, source, filename, exitDataError)
		}
	}

	if traceRun {
		fmt.Fprintf(os.Stderr, "[trace] interpreting %s\n", filename)
	}
	in := interp.New(os.Stdout, os.Stdin)
	if err := in.Interpret(stmts, dist); err != nil {
		reportAndExit(err, source, filename, exitRuntime)
	}
	return nil
}
