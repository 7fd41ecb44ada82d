package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"faretrack-service/internal/domain/entity"
	"faretrack-service/internal/domain/repository"
	"faretrack-service/pkg/logger"

	"gorm.io/gorm"
)

// GormEntityResolver resolves the airports, airline, route and flight of a fare.
// It is bound to one transaction handle; build a new one per unit of work.
type GormEntityResolver struct {
	airports       repository.AirportRepository
	directory      repository.AirportDirectoryRepository
	airlines       repository.AirlineRepository
	routes         repository.RouteRepository
	flights        repository.FlightRepository
	defaultAirline entity.Airline
	logger         logger.Logger

	// rows already resolved in this unit of work
	airportCache map[string]*entity.Airport
	airlineCache map[string]*entity.Airline
	routeCache   map[[3]uint]*entity.Route
}

// NewGormEntityResolver creates a resolver working on tx
func NewGormEntityResolver(tx *gorm.DB, defaultAirline entity.Airline, logger logger.Logger) *GormEntityResolver {
	return &GormEntityResolver{
		airports:       NewGormAirportRepository(tx),
		directory:      NewGormAirportDirectoryRepository(tx),
		airlines:       NewGormAirlineRepository(tx),
		routes:         NewGormRouteRepository(tx),
		flights:        NewGormFlightRepository(tx),
		defaultAirline: defaultAirline,
		logger:         logger,
		airportCache:   make(map[string]*entity.Airport),
		airlineCache:   make(map[string]*entity.Airline),
		routeCache:     make(map[[3]uint]*entity.Route),
	}
}

var _ repository.EntityResolver = (*GormEntityResolver)(nil)

// Resolve gets or creates every row the fare references and returns its flight
func (r *GormEntityResolver) Resolve(ctx context.Context, fare *entity.FlightFare) (*entity.Flight, error) {
	departure, err := r.resolveAirport(ctx, fare.DepartureAirport, "")
	if err != nil {
		return nil, fmt.Errorf("resolve departure airport %s: %w", fare.DepartureAirport, err)
	}

	arrival, err := r.resolveAirport(ctx, fare.ArrivalAirport, fare.ArrivalCountry)
	if err != nil {
		return nil, fmt.Errorf("resolve arrival airport %s: %w", fare.ArrivalAirport, err)
	}

	airline, err := r.resolveAirline(ctx, fare.AirlineCode)
	if err != nil {
		return nil, fmt.Errorf("resolve airline: %w", err)
	}

	routeKey := [3]uint{airline.ID, departure.ID, arrival.ID}
	route, ok := r.routeCache[routeKey]
	if !ok {
		route, err = r.routes.GetOrCreate(ctx, airline.ID, departure.ID, arrival.ID)
		if err != nil {
			return nil, fmt.Errorf("resolve route %s-%s: %w", departure.IATACode, arrival.IATACode, err)
		}
		r.routeCache[routeKey] = route
	}

	flight, err := r.flights.GetOrCreate(ctx, &entity.Flight{
		RouteID:           route.ID,
		FlightNumber:      fare.FlightNumber,
		DepartureDateTime: fare.DepartureDateTime,
		ArrivalDateTime:   fare.ArrivalDateTime,
	})
	if err != nil {
		return nil, fmt.Errorf("resolve flight %s: %w", fare.FlightNumber, err)
	}

	if !flight.ArrivalDateTime.Equal(fare.ArrivalDateTime) {
		r.logger.Warn("Observed arrival differs from stored flight",
			"flightNumber", flight.FlightNumber,
			"departure", flight.DepartureDateTime,
			"storedArrival", flight.ArrivalDateTime,
			"observedArrival", fare.ArrivalDateTime)
	}

	return flight, nil
}

// resolveAirport returns the airport row for code. New airports take their
// city and country from the airport directory; codes missing there are stored
// with placeholder values and flagged provisional.
func (r *GormEntityResolver) resolveAirport(ctx context.Context, code, countryHint string) (*entity.Airport, error) {
	code = strings.ToUpper(code)
	if airport, ok := r.airportCache[code]; ok {
		return airport, nil
	}

	airport, err := r.airports.GetByIATACode(ctx, code)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if airport == nil {
		candidate := &entity.Airport{IATACode: code}

		ref, err := r.directory.GetByIATACode(ctx, code)
		switch {
		case err == nil:
			candidate.City = ref.City
			candidate.Country = ref.Country
		case errors.Is(err, gorm.ErrRecordNotFound):
			candidate.City = entity.UnknownCity
			candidate.Country = entity.UnknownCountry
			if countryHint != "" {
				candidate.Country = countryHint
			}
			candidate.Provisional = true
			r.logger.Warn("Airport not in directory, storing provisional row",
				"iataCode", code,
				"country", candidate.Country)
		default:
			return nil, err
		}

		airport, err = r.airports.GetOrCreate(ctx, candidate)
		if err != nil {
			return nil, err
		}
	}

	r.airportCache[code] = airport
	return airport, nil
}

func (r *GormEntityResolver) resolveAirline(ctx context.Context, code string) (*entity.Airline, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	name := ""
	if code == "" || code == r.defaultAirline.Code {
		code = r.defaultAirline.Code
		name = r.defaultAirline.Name
	}

	if airline, ok := r.airlineCache[code]; ok {
		return airline, nil
	}

	airline, err := r.airlines.GetOrCreate(ctx, code, name)
	if err != nil {
		return nil, err
	}
	r.airlineCache[code] = airline
	return airline, nil
}
