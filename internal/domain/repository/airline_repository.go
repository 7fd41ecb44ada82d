package repository

import (
	"context"

	"faretrack-service/internal/domain/entity"
)

// AirlineRepository defines the interface for airline operations
type AirlineRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.Airline, error)
	GetOrCreate(ctx context.Context, code, name string) (*entity.Airline, error)
}
