package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show counts of recorded searches, flights and prices",
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := app.Reporter.Summary(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		failed := fmt.Sprint(summary.FailedCount)
		if summary.FailedCount > 0 {
			failed = color.New(color.FgRed).Sprint(summary.FailedCount)
		}
		fmt.Fprintf(out, "Search operations: %d (%d successful, %s failed)\n",
			summary.SearchCount, summary.SuccessfulCount, failed)
		fmt.Fprintf(out, "Tracked flights:   %d\n", summary.TrackedFlights)
		fmt.Fprintf(out, "Price records:     %d\n", summary.PriceRecords)
		return nil
	},
}
