package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "lox [script]",
	Short: "A tree-walking interpreter for Lox",
	Long: `lox is a Go implementation of the Lox scripting language: a small,
dynamically-typed, class-based language with closures and single
inheritance.

Run with no arguments to start a REPL, or pass a single script path to
execute it.`,
	Version:      Version,
	Args:         cobra.ArbitraryArgs,
	RunE:         runRootOrREPL,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// runRootOrREPL implements the CLI contract: zero arguments starts the
// REPL, one argument runs that script, more than one is a usage error
// exiting 64 (the same convention jlox's Lox.java uses).
func runRootOrREPL(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return runREPL(os.Stdin, os.Stdout)
	case 1:
		return runFile(args[0])
	default:
		fmt.Fprintln(os.Stderr, "Usage: lox [script]")
		os.Exit(64)
		return nil
	}
}
