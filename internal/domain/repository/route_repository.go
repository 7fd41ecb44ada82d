package repository

import (
	"context"

	"faretrack-service/internal/domain/entity"
)

// RouteRepository defines get-or-create access to routes
type RouteRepository interface {
	GetOrCreate(ctx context.Context, airlineID, departureAirportID, arrivalAirportID uint) (*entity.Route, error)
}

// FlightRepository defines get-or-create access to flights
type FlightRepository interface {
	GetOrCreate(ctx context.Context, flight *entity.Flight) (*entity.Flight, error)
}
