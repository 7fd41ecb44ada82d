package usecase

import (
	"context"
	"fmt"

	"faretrack-service/internal/domain/entity"
	"faretrack-service/internal/domain/repository"
	"faretrack-service/pkg/logger"
)

// ReferenceSeeder loads airport reference data and the default carrier
type ReferenceSeeder struct {
	directory repository.AirportDirectoryRepository
	airlines  repository.AirlineRepository
	logger    logger.Logger
}

// NewReferenceSeeder creates a new reference data seeder
func NewReferenceSeeder(directory repository.AirportDirectoryRepository, airlines repository.AirlineRepository, logger logger.Logger) *ReferenceSeeder {
	return &ReferenceSeeder{
		directory: directory,
		airlines:  airlines,
		logger:    logger,
	}
}

// Seed upserts the directory entries and makes sure the airline exists.
// Running it again is harmless.
func (s *ReferenceSeeder) Seed(ctx context.Context, entries []entity.AirportDirectoryEntry, airline entity.Airline) error {
	if err := s.directory.Seed(ctx, entries); err != nil {
		return fmt.Errorf("failed to seed airport directory: %w", err)
	}

	stored, err := s.airlines.GetOrCreate(ctx, airline.Code, airline.Name)
	if err != nil {
		return fmt.Errorf("failed to seed airline %s: %w", airline.Code, err)
	}

	s.logger.Info("Reference data seeded",
		"airports", len(entries),
		"airline", stored.Code,
		"airlineId", stored.ID)
	return nil
}
