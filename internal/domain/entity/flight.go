package entity

import "time"

// Flight is one scheduled departure of a flight number on a route.
// The same flight number flown on another day is a different Flight.
type Flight struct {
	ID                uint
	RouteID           uint
	FlightNumber      string
	DepartureDateTime time.Time
	ArrivalDateTime   time.Time
	CreatedAt         time.Time
}
