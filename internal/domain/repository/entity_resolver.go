package repository

import (
	"context"

	"faretrack-service/internal/domain/entity"
)

// EntityResolver maps a fare onto normalized airport, airline, route and flight rows
type EntityResolver interface {
	Resolve(ctx context.Context, fare *entity.FlightFare) (*entity.Flight, error)
}
