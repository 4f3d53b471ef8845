package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	demoExamples  = []string{"1101", "1110", "1111", "110", "1010"}
	demoEdgeCases = []string{"0", "1", "10", "11", "100", "101", ""}
	demoBadInputs = []string{"102", "abc"}
)

// demo: walk through the worked examples, checking each against integer
// arithmetic.
func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the worked examples and error cases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			mismatches := 0

			section := func(title string, inputs []string) error {
				fmt.Fprintln(out, TitleStyle.Render(title))
				for _, bits := range inputs {
					got, err := appCtx.Remainders.Compute(bits)
					if err != nil {
						return err
					}
					var value uint64
					if bits != "" {
						if value, err = strconv.ParseUint(bits, 2, 64); err != nil {
							return err
						}
					}
					mark := SuccessStyle.Render("✓")
					if int(value%3) != got {
						mark = ErrorStyle.Render("✗")
						mismatches++
					}
					fmt.Fprintf(out, "  %6s (decimal %2d) -> remainder %d %s\n", bits, value, got, mark)
				}
				fmt.Fprintln(out)
				return nil
			}

			if err := section("Examples", demoExamples); err != nil {
				return err
			}
			if err := section("Edge cases", demoEdgeCases); err != nil {
				return err
			}

			fmt.Fprintln(out, TitleStyle.Render("Error handling"))
			for _, bits := range demoBadInputs {
				_, err := appCtx.Remainders.Compute(bits)
				fmt.Fprintf(out, "  %q: %v\n", bits, err)
			}

			if mismatches > 0 {
				return &ExitError{Code: exitFailure, Err: fmt.Errorf("%d results disagree with integer arithmetic", mismatches)}
			}
			return nil
		},
	}
}
