package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var historyDays int

var historyCmd = &cobra.Command{
	Use:   "history <flight-number>",
	Short: "Show the recorded prices of a flight, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		trend, err := app.Reporter.Trend(cmd.Context(), args[0], historyDays)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(trend.Points) == 0 {
			fmt.Fprintf(out, "No price history for %s\n", trend.FlightNumber)
			return nil
		}

		fmt.Fprintf(out, "Price history for %s (%s)\n", trend.FlightNumber, app.Config.Currency)
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "OBSERVED\tOUTBOUND\tCHANGE\tRETURN\tCHANGE")
		for i, p := range trend.Points {
			last := i == len(trend.Points)-1
			fmt.Fprintf(w, "%s\t%.2f\t%s\t%.2f\t%s\n",
				p.Timestamp.Format(time.RFC3339),
				p.OutboundPrice, formatDelta(p.OutboundDelta, last),
				p.ReturnPrice, formatDelta(p.ReturnDelta, last))
		}
		w.Flush()

		fmt.Fprintf(out, "Outbound %.2f - %.2f, return %.2f - %.2f\n",
			trend.MinOutbound, trend.MaxOutbound, trend.MinReturn, trend.MaxReturn)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyDays, "max", 30, "maximum number of observations")
}

// formatDelta colours price drops green and rises red
func formatDelta(delta float64, oldest bool) string {
	switch {
	case oldest:
		return "-"
	case delta < 0:
		return color.New(color.FgGreen).Sprintf("%.2f", delta)
	case delta > 0:
		return color.New(color.FgRed).Sprintf("+%.2f", delta)
	default:
		return "0.00"
	}
}
