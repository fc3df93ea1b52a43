package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/spf13/cobra"
)

var astCmd = &cobra.Command{
	Use:   "ast [script]",
	Short: "Parse a Lox script or expression and print its AST",
	Long: `Lex and parse a Lox program, printing each top-level statement's
parenthesized-prefix AST form without resolving or interpreting it.

Examples:
  lox ast script.lox
  lox ast -e "1 + 2 * 3;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
	astCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func runAST(_ *cobra.Command, args []string) error {
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

	toks, err := lexer.New(source).Tokenize()
	if err != nil {
		reportAndExit(err, source, filename, exitDataError)
	}
	stmts, err := parser.New(toks).ParseProgram()
	if err != nil {
		reportAndExit(err, source, filename, exitDataError)
	}
	for _, s := range stmts {
		fmt.Println(s.String())
	}
	return nil
}
