package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the bundled airport directory and the default airline",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.SeedDefaults(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Reference data seeded")
		return nil
	},
}
