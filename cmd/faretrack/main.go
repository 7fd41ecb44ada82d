// Package main provides the faretrack CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"faretrack-service/internal/infrastructure/config"
	"faretrack-service/internal/wire"
	"faretrack-service/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	// flags shared by every command
	dbDriver   string
	sqlitePath string
	logLevel   string

	// app is built by PersistentPreRunE and closed after the command
	app *wire.App
	log *logger.ZapLogger
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "faretrack",
	Short: "Poll easyJet fares and inspect recorded price history",
	Long: `faretrack polls the easyJet fare endpoint for a range of departure dates,
records every observed price in the relational store and reports on the
recorded price history.`,
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeApp(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbDriver, "db", "", "database driver: postgres or sqlite (default from DB_DRIVER)")
	rootCmd.PersistentFlags().StringVar(&sqlitePath, "sqlite-path", "", "SQLite database file (default from SQLITE_PATH)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (default from LOG_LEVEL)")

	rootCmd.AddCommand(pollCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(seedCmd)
}

// initApp loads configuration, applies flag overrides and wires the services
func initApp(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if dbDriver != "" {
		cfg.DBDriver = dbDriver
	}
	if sqlitePath != "" {
		cfg.SQLitePath = sqlitePath
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	log = logger.NewLoggerWithLevel(cfg.LogLevel)

	app, err = wire.New(cmd.Context(), cfg, log, nil)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	return nil
}

func closeApp(ctx context.Context) error {
	if log != nil {
		defer log.Sync()
	}
	if app == nil {
		return nil
	}
	return app.Close(context.WithoutCancel(ctx))
}
