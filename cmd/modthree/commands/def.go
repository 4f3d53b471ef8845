package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"modthree/internal/domain"
)

func defCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "def",
		Short: "Manage stored automaton definitions",
	}
	cmd.AddCommand(defAddCmd(), defListCmd(), defShowCmd(), defRmCmd())
	return cmd
}

// def add: validate a JSON definition file and store it.
func defAddCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add FILE",
		Short: "Validate, fingerprint and store a definition file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := readDefinitionFile(args[0])
			if err != nil {
				return err
			}
			if name != "" {
				def.Name = domain.DefinitionName(name)
			}
			saved, err := appCtx.Definitions.Import(def)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored %s.\nFingerprint: %s\n", saved.Name, saved.Fingerprint)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "store under this name instead of the file's name field")
	return cmd
}

func defListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := appCtx.Definitions.List()
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("No definitions stored."))
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tFINGERPRINT\tSTATES\tSYMBOLS\tCOMPLETE")
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%t\n", r.Name, r.Fingerprint, r.States, r.Symbols, r.Complete)
			}
			return tw.Flush()
		},
	}
}

func defShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Print a stored definition as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := appCtx.Definitions.Get(domain.DefinitionName(args[0]))
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(def, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
}

func defRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm NAME",
		Short: "Delete a stored definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Definitions.Remove(domain.DefinitionName(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", args[0])
			return nil
		},
	}
}

// readDefinitionFile decodes a JSON definition, rejecting unknown fields. A
// missing name defaults to the file's base name.
func readDefinitionFile(path string) (domain.Definition, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Definition{}, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()

	var def domain.Definition
	if err := dec.Decode(&def); err != nil {
		return domain.Definition{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if def.Name == "" {
		base := path[strings.LastIndexAny(path, `/\`)+1:]
		def.Name = domain.DefinitionName(strings.ToLower(strings.TrimSuffix(base, ".json")))
	}
	return def, nil
}
