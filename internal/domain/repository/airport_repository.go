package repository

import (
	"context"

	"faretrack-service/internal/domain/entity"
)

// AirportRepository defines get-or-create access to airports
type AirportRepository interface {
	GetByIATACode(ctx context.Context, code string) (*entity.Airport, error)
	GetOrCreate(ctx context.Context, airport *entity.Airport) (*entity.Airport, error)
}

// AirportDirectoryRepository serves authoritative airport reference data
type AirportDirectoryRepository interface {
	GetByIATACode(ctx context.Context, code string) (*entity.AirportDirectoryEntry, error)
	Seed(ctx context.Context, entries []entity.AirportDirectoryEntry) error
}
