package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"modthree/internal/automaton"
)

// rem: print the remainder mod 3 of each binary string.
func remCmd() *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:   "rem [BITS...]",
		Short: "Print the remainder of binary numbers divided by 3",
		Long: `Print the remainder of each binary number divided by 3.

With no arguments, one binary string is read per line from stdin.
An empty string is the number 0.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				var err error
				if inputs, err = readLines(cmd); err != nil {
					return err
				}
			}

			if trace {
				return runTraces(cmd, inputs)
			}

			results, err := appCtx.Remainders.ComputeAll(cmd.Context(), inputs)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", ErrorStyle.Render("✗"), r.Err)
					continue
				}
				fmt.Fprintf(out, "%s\t%d\n", r.Input, r.Remainder)
			}
			if failed > 0 {
				return &ExitError{Code: exitRejected, Err: fmt.Errorf("%d of %d inputs rejected", failed, len(results))}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "print the state visited after each bit")
	return cmd
}

func runTraces(cmd *cobra.Command, inputs []string) error {
	out := cmd.OutOrStdout()
	for _, in := range inputs {
		path, r, err := appCtx.Remainders.Trace(in)
		if err != nil {
			return &ExitError{Code: exitRejected, Err: err}
		}
		fmt.Fprintf(out, "%s\t%d\t%s\n", in, r, joinStates(path))
	}
	return nil
}

func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}

func joinStates(path []automaton.State) string {
	parts := make([]string, len(path))
	for i, s := range path {
		parts[i] = s.String()
	}
	return strings.Join(parts, " -> ")
}
