package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"vecop-generator/internal/variant"
)

func (a *app) tableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the operator decision table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := variant.Default()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "FUNC\tFAMILY\tLEFT\tRIGHT\tMUTATES\tRESULT\tBODY\tDOC")

			for _, k := range table.Keys() {
				spec, _ := table.Lookup(k)

				right := "-"
				if k.Family.IsBinary() {
					right = k.Right.String()
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					k.FuncName(), k.Family, k.Left, right,
					spec.MutationTarget, spec.ResultOwnership, spec.BodyTemplate, spec.DocTemplate)
			}

			return w.Flush()
		},
	}
}
