package cmd

import (
	"fmt"
	"os"

	"github.com/lunalang/luna/internal/builtins"
	"github.com/lunalang/luna/internal/evaluator"
	"github.com/lunalang/luna/pkg/synparse"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Evaluate a luna file or expression",
	Long: `Parse and evaluate a luna term expression from a file or inline
string, printing the fully reduced term.

Examples:
  # Run a script file
  luna run session.luna

  # Evaluate an inline expression
  luna run -e "Plus[1, 2, 3]"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate an inline expression instead of reading from a file")
}

func runScript(_ *cobra.Command, args []string) error {
	var input string

	switch {
	case evalExpr != "":
		input = evalExpr
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e flag for an inline expression")
	}

	t, err := synparse.Parse(input)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	ctx := builtins.NewGlobal()
	result := evaluator.Evaluate(ctx, t)

	if verbose {
		fmt.Fprintf(os.Stderr, "in:  %s\n", synparse.Display(t))
	}
	fmt.Println(synparse.Display(result))
	return nil
}
