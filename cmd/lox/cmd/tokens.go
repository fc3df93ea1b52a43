package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [script]",
	Short: "Tokenize a Lox script or expression and print the resulting tokens",
	Long: `Tokenize (lex) a Lox program and print the resulting token stream.

Useful for debugging the lexer independently of the rest of the pipeline.

Examples:
  lox tokens script.lox
  lox tokens -e "var x = 1 + 2;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
}

func runTokens(_ *cobra.Command, args []string) error {
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
	for _, t := range toks {
		fmt.Println(t.String())
	}
	return nil
}
