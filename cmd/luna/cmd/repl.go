package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/lunalang/luna/internal/builtins"
	"github.com/lunalang/luna/internal/context"
	"github.com/lunalang/luna/internal/evaluator"
	"github.com/lunalang/luna/pkg/synparse"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive evaluation loop",
	Long: `Start a read-eval-print loop over luna term expressions. Each line is
parsed and evaluated against a single persistent symbol table, so
SetDelayed/Set definitions from one line are visible to later lines.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		runREPL(os.Stdin, os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(in *os.File, out *os.File) {
	ctx := builtins.NewGlobal()
	scanner := bufio.NewScanner(in)

	interactive := false
	if fi, err := in.Stat(); err == nil {
		interactive = fi.Mode()&os.ModeCharDevice != 0
	}
	if interactive {
		fmt.Fprintln(out, "luna repl")
		fmt.Fprintln(out, "Type 'quit' or 'exit' to leave.")
	}

	var pending strings.Builder
	for {
		if interactive {
			if pending.Len() == 0 {
				fmt.Fprint(out, "luna> ")
			} else {
				fmt.Fprint(out, "   ...> ")
			}
		}

		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		if pending.Len() == 0 {
			switch line {
			case "exit", "end", "quit":
				return
			case "":
				continue
			}
		}

		if pending.Len() > 0 {
			pending.WriteString("\n")
		}
		pending.WriteString(line)

		evalREPLLine(ctx, out, &pending)
	}
}

// evalREPLLine attempts to parse the accumulated input. An unterminated
// bracket (more opens than closes) is treated as an incomplete expression
// and left in pending for the next line; any other parse error or a
// successful parse both clear pending. A panic raised while evaluating is
// reported on out and the loop continues.
func evalREPLLine(ctx *context.Context, out *os.File, pending *strings.Builder) {
	text := pending.String()
	if strings.Count(text, "[") > strings.Count(text, "]") {
		return
	}

	t, err := synparse.Parse(text)
	pending.Reset()
	if err != nil {
		fmt.Fprintf(out, "parse error: %v\n", err)
		return
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(out, "internal error: %v\n", r)
		}
	}()
	result := evaluator.Evaluate(ctx, t)
	fmt.Fprintln(out, synparse.Display(result))
}
