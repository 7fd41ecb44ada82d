// Package wire builds the application's services from configuration.
package wire

import (
	"context"
	"errors"
	"fmt"

	"faretrack-service/internal/domain/entity"
	"faretrack-service/internal/domain/repository"
	"faretrack-service/internal/infrastructure/config"
	"faretrack-service/internal/infrastructure/persistence"
	repo "faretrack-service/internal/interface/repository"
	"faretrack-service/internal/usecase"
	"faretrack-service/pkg/logger"
	"faretrack-service/pkg/metrics"
	"faretrack-service/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// MetricsNamespace prefixes every exported metric
const MetricsNamespace = "faretrack"

// App holds the wired services
type App struct {
	Config   *config.Config
	Logger   logger.Logger
	DB       *gorm.DB
	Metrics  *metrics.Metrics
	Poller   *usecase.FarePoller
	Reporter *usecase.PriceReporter
	Seeder   *usecase.ReferenceSeeder

	mongoClient *mongo.Client
}

// New opens the stores, migrates the schema and builds the services.
// reg receives the metrics; nil means the default registerer.
func New(ctx context.Context, cfg *config.Config, log logger.Logger, reg prometheus.Registerer) (*App, error) {
	db, err := persistence.OpenDatabase(cfg)
	if err != nil {
		return nil, err
	}
	if err := repo.Migrate(db); err != nil {
		persistence.CloseDatabase(db)
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Relational store ready", "driver", cfg.DBDriver)

	app := &App{
		Config:  cfg,
		Logger:  log,
		DB:      db,
		Metrics: metrics.NewMetrics(MetricsNamespace, reg),
	}

	exporters := []repository.ExportRepository{
		repo.NewFileExportRepository(cfg.OutputDir, log),
	}
	if cfg.MongoURI != "" {
		archive, err := app.connectArchive(ctx)
		if err != nil {
			// the archive is a secondary copy; polling goes on without it
			log.Warn("MongoDB run archive unavailable", "error", err)
		} else {
			exporters = append(exporters, archive)
		}
	}

	fetcher := repo.NewFareAPIRepository(repo.FareAPIOptions{
		BaseURL:          cfg.FareAPIBaseURL,
		Headers:          cfg.FareAPIHeaders,
		Currency:         cfg.Currency,
		DefaultDeparture: cfg.DefaultDeparture,
		DefaultArrival:   cfg.DefaultArrival,
		MinDelay:         cfg.MinDelay,
		MaxDelay:         cfg.MaxDelay,
		Timeout:          cfg.FareAPITimeout,
	}, log)

	snapshots := repo.NewGormSnapshotRepository(db, app.DefaultAirline(), log)

	app.Poller = usecase.NewFarePoller(fetcher, utils.NewFareParser(log), snapshots, exporters, app.Metrics, log)
	app.Reporter = usecase.NewPriceReporter(repo.NewGormPriceHistoryRepository(db), log)
	app.Seeder = usecase.NewReferenceSeeder(
		repo.NewGormAirportDirectoryRepository(db),
		repo.NewGormAirlineRepository(db),
		log,
	)

	return app, nil
}

// DefaultAirline is the configured carrier
func (a *App) DefaultAirline() entity.Airline {
	return entity.Airline{Code: a.Config.AirlineCode, Name: a.Config.AirlineName}
}

// SeedDefaults loads the bundled airport directory and the configured carrier
func (a *App) SeedDefaults(ctx context.Context) error {
	return a.Seeder.Seed(ctx, persistence.DefaultAirportDirectory(), a.DefaultAirline())
}

// Close releases the database and MongoDB connections
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.mongoClient != nil {
		if err := a.mongoClient.Disconnect(ctx); err != nil {
			errs = append(errs, fmt.Errorf("mongo disconnect: %w", err))
		}
	}
	if err := persistence.CloseDatabase(a.DB); err != nil {
		errs = append(errs, fmt.Errorf("database close: %w", err))
	}
	return errors.Join(errs...)
}

func (a *App) connectArchive(ctx context.Context) (repository.ExportRepository, error) {
	client, err := persistence.NewMongoClient(ctx, a.Config.MongoURI, a.Config.MongoUser, a.Config.MongoPassword)
	if err != nil {
		return nil, err
	}

	archive, err := repo.NewMongoExportRepository(ctx, persistence.GetDatabase(client, a.Config.MongoDB))
	if err != nil {
		client.Disconnect(ctx)
		return nil, err
	}

	a.mongoClient = client
	a.Logger.Info("MongoDB run archive ready", "database", a.Config.MongoDB)
	return archive, nil
}
