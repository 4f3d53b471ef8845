package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"modthree/internal/domain"
)

// run: feed an input string to a stored definition, or to one read from
// --file.
func runCmd() *cobra.Command {
	var (
		file    string
		asJSON  bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "run [NAME] INPUT",
		Short: "Run an automaton definition over an input string",
		Long: `Run an automaton definition over an input string and print the final state.

The definition is either a stored one (NAME) or a JSON file (--file).
Exits with status 2 if the final state is not accepting.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				res domain.RunResult
				err error
			)
			switch {
			case file != "" && len(args) == 1:
				def, rerr := readDefinitionFile(file)
				if rerr != nil {
					return rerr
				}
				res, err = appCtx.Definitions.RunDocument(cmd.Context(), def, args[0])
			case file == "" && len(args) == 2:
				res, err = appCtx.Definitions.Run(cmd.Context(), domain.DefinitionName(args[0]), args[1])
			default:
				return fmt.Errorf("usage: run NAME INPUT or run --file PATH INPUT")
			}
			if err != nil {
				return &ExitError{Code: exitRejected, Err: err}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				b, err := json.MarshalIndent(res, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(b))
			} else {
				if verbose {
					fmt.Fprintf(out, "path: %s\n", strings.Join(res.Path, " -> "))
				}
				verdict := SuccessStyle.Render("accepted")
				if !res.Accepted {
					verdict = ErrorStyle.Render("rejected")
				}
				fmt.Fprintf(out, "final: %s (%s)\n", res.Final, verdict)
			}

			if !res.Accepted {
				return &ExitError{Code: exitRejected, Err: fmt.Errorf("input not accepted: final state %s", res.Final)}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the definition from a JSON file instead of the store")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the full state path")
	return cmd
}
