package entity

import "time"

// SearchOperation is the audit record of one fetched date.
// Rows are append-only.
type SearchOperation struct {
	ID               uint
	RunID            string
	Timestamp        time.Time
	Successful       bool
	ErrorMessage     string
	DepartureDate    string
	DepartureAirport string
	ArrivalAirport   string
	Currency         string
	URL              string
	StatusCode       int
	FaresReceived    int
	FaresRejected    int
	QueryParams      map[string]interface{}
	SnapshotCount    int
}

// PriceSnapshot is one immutable price observation for a flight
type PriceSnapshot struct {
	ID            uint
	FlightID      uint
	SearchID      uint
	Timestamp     time.Time
	OutboundPrice float64
	ReturnPrice   float64
}

// PricePoint is one row of a flight's price history
type PricePoint struct {
	Timestamp     time.Time `json:"timestamp"`
	OutboundPrice float64   `json:"outboundPrice"`
	ReturnPrice   float64   `json:"returnPrice"`
}

// RecentPrice is a snapshot joined with its flight and search operation
type RecentPrice struct {
	FlightNumber      string
	DepartureDateTime time.Time
	OutboundPrice     float64
	ReturnPrice       float64
	SnapshotTime      time.Time
	SearchTime        time.Time
}

// StoreSummary aggregates the contents of the snapshot store
type StoreSummary struct {
	SearchCount     int64
	SuccessfulCount int64
	FailedCount     int64
	TrackedFlights  int64
	PriceRecords    int64
}
