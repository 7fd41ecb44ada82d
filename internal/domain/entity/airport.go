package entity

import "time"

// Placeholder values used for airports that are not in the airport directory
const (
	UnknownCity    = "Unknown"
	UnknownCountry = "Unknown"
)

// Airport represents an airport referenced by at least one route
type Airport struct {
	ID          uint
	IATACode    string
	City        string
	Country     string
	Provisional bool // city/country were synthesized, not looked up
	CreatedAt   time.Time
}

// AirportDirectoryEntry is authoritative reference data for an airport code
type AirportDirectoryEntry struct {
	ID          uint
	IATACode    string
	AirportName string
	City        string
	Country     string
	TzName      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
