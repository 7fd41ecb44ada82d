package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var recentLimit int

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show the latest recorded prices across all flights",
	RunE: func(cmd *cobra.Command, args []string) error {
		prices, err := app.Reporter.Recent(cmd.Context(), recentLimit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(prices) == 0 {
			fmt.Fprintln(out, "No prices recorded yet")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "FLIGHT\tDEPARTURE\tOUTBOUND\tRETURN\tOBSERVED")
		for _, p := range prices {
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%s\n",
				p.FlightNumber,
				p.DepartureDateTime.Format("2006-01-02 15:04"),
				p.OutboundPrice,
				p.ReturnPrice,
				p.SnapshotTime.Format(time.RFC3339))
		}
		return w.Flush()
	},
}

func init() {
	recentCmd.Flags().IntVar(&recentLimit, "limit", 10, "number of snapshots to show")
}
