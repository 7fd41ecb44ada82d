package main

import (
	"fmt"

	"faretrack-service/internal/usecase"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	pollStart     string
	pollDays      int
	pollDeparture string
	pollArrival   string
)

var pollCmd = &cobra.Command{
	Use:   "poll",
	Short: "Fetch and record fares for a range of departure dates",
	Long: `Fetch the fares of each date in [start, start+days) one date at a time and
record them. A failed request is recorded and the next date is still polled.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		days := pollDays
		if days <= 0 {
			days = app.Config.PollDays
		}

		result, err := app.Poller.Run(cmd.Context(), usecase.CampaignRequest{
			StartDate: pollStart,
			Days:      days,
			Departure: pollDeparture,
			Arrival:   pollArrival,
		})
		if result != nil {
			printCampaign(cmd, result)
		}
		return err
	},
}

func init() {
	pollCmd.Flags().StringVar(&pollStart, "start", "", "first departure date YYYY-MM-DD (default tomorrow)")
	pollCmd.Flags().IntVar(&pollDays, "days", 0, "number of consecutive dates (default POLL_DAYS)")
	pollCmd.Flags().StringVar(&pollDeparture, "from", "", "departure airport code (default DEFAULT_DEPARTURE)")
	pollCmd.Flags().StringVar(&pollArrival, "to", "", "arrival airport code (default DEFAULT_ARRIVAL)")
}

func printCampaign(cmd *cobra.Command, result *usecase.CampaignResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run %s\n", result.RunID)

	for _, op := range result.Operations {
		status := color.New(color.FgGreen).Sprint("OK  ")
		detail := fmt.Sprintf("%d snapshots", op.SnapshotCount)
		if !op.Successful {
			status = color.New(color.FgRed).Sprint("FAIL")
			detail = op.ErrorMessage
		}
		if op.FaresRejected > 0 {
			detail += color.New(color.FgYellow).Sprintf(" (%d rejected)", op.FaresRejected)
		}
		fmt.Fprintf(out, "  %s %s %s-%s  %s\n", status, op.DepartureDate, op.DepartureAirport, op.ArrivalAirport, detail)
	}

	fmt.Fprintf(out, "%d dates, %d failed, %d snapshots written\n",
		len(result.Operations), len(result.FailedDates), result.SnapshotsWritten)
}
