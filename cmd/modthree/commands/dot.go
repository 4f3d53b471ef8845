package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"modthree/internal/automaton"
	"modthree/internal/automaton/modthree"
	"modthree/internal/domain"
)

// dot: print a GraphViz digraph of a stored definition, or of the mod-3
// automaton when no name is given.
func dotCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "dot [NAME]",
		Short: "Print a GraphViz digraph of an automaton",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				a   *automaton.Automaton
				err error
			)
			switch {
			case file != "":
				def, rerr := readDefinitionFile(file)
				if rerr != nil {
					return rerr
				}
				a, err = appCtx.Definitions.Build(def)
			case len(args) == 1:
				def, gerr := appCtx.Definitions.Get(domain.DefinitionName(args[0]))
				if gerr != nil {
					return gerr
				}
				a, err = appCtx.Definitions.Build(def)
			default:
				a = modthree.New().Automaton()
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), a.DOT())
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the definition from a JSON file")
	return cmd
}
