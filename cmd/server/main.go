package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"faretrack-service/internal/infrastructure/config"
	"faretrack-service/internal/usecase"
	"faretrack-service/internal/wire"
	"faretrack-service/pkg/logger"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger().Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log := logger.NewLoggerWithLevel(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Faretrack Service", "version", cfg.AppVersion)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := wire.New(ctx, cfg, log, nil)
	if err != nil {
		log.Fatal("Failed to initialize services", "error", err)
	}

	if err := app.SeedDefaults(ctx); err != nil {
		log.Fatal("Failed to seed reference data", "error", err)
	}

	// Start the polling loop in a goroutine
	done := make(chan struct{})
	go func() {
		defer close(done)
		runCampaign(ctx, app, log)

		pollTicker := time.NewTicker(cfg.PollInterval)
		defer pollTicker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("Fare poller stopped")
				return
			case <-pollTicker.C:
				runCampaign(ctx, app, log)
			}
		}
	}()

	// Set up HTTP server for metrics
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		sqlDB, err := app.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(r.Context())
		}
		if err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("Unhealthy"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop the poller
	<-done

	if err := app.Close(shutdownCtx); err != nil {
		log.Error("Shutdown error", "error", err)
	}

	log.Info("Faretrack Service stopped")
}

// runCampaign polls the configured route; a failed run is logged and retried on the next tick
func runCampaign(ctx context.Context, app *wire.App, log logger.Logger) {
	result, err := app.Poller.Run(ctx, usecase.CampaignRequest{Days: app.Config.PollDays})
	if err != nil {
		log.Error("Fare campaign failed", "error", err)
		return
	}
	log.Info("Fare campaign completed",
		"runId", result.RunID,
		"dates", len(result.Operations),
		"failedDates", len(result.FailedDates),
		"snapshots", result.SnapshotsWritten)
}
