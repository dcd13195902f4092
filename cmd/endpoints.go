package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/matheuskafuri/headlines/internal/newsapi"
	"github.com/spf13/cobra"
)

func newEndpointsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "endpoints",
		Aliases: []string{"ls"},
		Short:   "List the available endpoints and countries",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ENDPOINT\tPATH")
			for _, e := range newsapi.Endpoints() {
				fmt.Fprintf(w, "%s\t%s\n", e, e.Fragment())
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, "COUNTRY\tNAME")
			for _, c := range newsapi.Countries() {
				fmt.Fprintf(w, "%s\t%s\n", c.Code(), c.Name())
			}
			return w.Flush()
		},
	}
}
