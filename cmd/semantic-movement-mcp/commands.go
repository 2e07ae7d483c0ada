package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/averycrespi/semantic-movement-mcp/internal/navigation"

	"github.com/spf13/cobra"
)

func newCommandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the navigation commands and their tool names",
		Args:  cobra.NoArgs,
		// Listing needs neither config nor logging.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "COMMAND\tTOOL\tPREDICATE\tPROJECTOR")
			for _, command := range navigation.NewCommandTable().All() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", command.ID, command.ToolName(), command.Predicate, command.Projector)
			}
			return w.Flush()
		},
	}
}
