package repository

import (
	"context"

	"faretrack-service/internal/domain/entity"
	"faretrack-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormRouteRepository implements the RouteRepository interface
type GormRouteRepository struct {
	db *gorm.DB
}

// NewGormRouteRepository creates a new GORM route repository
func NewGormRouteRepository(db *gorm.DB) repository.RouteRepository {
	return &GormRouteRepository{
		db: db,
	}
}

// GetOrCreate returns the route for the (airline, departure, arrival) triple
func (r *GormRouteRepository) GetOrCreate(ctx context.Context, airlineID, departureAirportID, arrivalAirportID uint) (*entity.Route, error) {
	key := map[string]interface{}{
		"airline_id":           airlineID,
		"departure_airport_id": departureAirportID,
		"arrival_airport_id":   arrivalAirportID,
	}
	row, _, err := getOrCreate(ctx, r.db, key, &Routes{
		AirlineID:          airlineID,
		DepartureAirportID: departureAirportID,
		ArrivalAirportID:   arrivalAirportID,
	})
	if err != nil {
		return nil, err
	}
	return row.toEntity(), nil
}

// GormFlightRepository implements the FlightRepository interface
type GormFlightRepository struct {
	db *gorm.DB
}

// NewGormFlightRepository creates a new GORM flight repository
func NewGormFlightRepository(db *gorm.DB) repository.FlightRepository {
	return &GormFlightRepository{
		db: db,
	}
}

// GetOrCreate returns the flight for the (route, flight number, departure) triple.
// The arrival time of an existing flight is kept as first observed.
func (r *GormFlightRepository) GetOrCreate(ctx context.Context, flight *entity.Flight) (*entity.Flight, error) {
	departure := flight.DepartureDateTime.UTC()
	key := map[string]interface{}{
		"route_id":           flight.RouteID,
		"flight_number":      flight.FlightNumber,
		"departure_datetime": departure,
	}
	row, _, err := getOrCreate(ctx, r.db, key, &Flights{
		RouteID:           flight.RouteID,
		FlightNumber:      flight.FlightNumber,
		DepartureDateTime: departure,
		ArrivalDateTime:   flight.ArrivalDateTime.UTC(),
	})
	if err != nil {
		return nil, err
	}
	return row.toEntity(), nil
}
