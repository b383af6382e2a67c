package cmd

import (
	"fmt"

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
	Use:   "luna",
	Short: "luna symbolic term-rewriting evaluator",
	Long: `luna is a Go implementation of a Wolfram/Mathematica-style symbolic
term-rewriting language: expressions are Term values (strings, arbitrary
precision integers and reals, symbols, and head[args...] compounds),
rewritten to a fixed point by a pattern-matching evaluator against a
per-session symbol table of rules and attributes.`,
	Version: Version,
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
