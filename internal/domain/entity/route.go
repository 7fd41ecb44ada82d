package entity

import "time"

// Route is a fixed (airline, departure airport, arrival airport) triple
type Route struct {
	ID                 uint
	AirlineID          uint
	DepartureAirportID uint
	ArrivalAirportID   uint
	CreatedAt          time.Time
}
