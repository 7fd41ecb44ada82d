// internal/domain/entity/fare.go
package entity

import (
	"encoding/json"
	"time"
)

// FlightFare is one priced flight offer parsed from the fare endpoint
type FlightFare struct {
	FlightNumber      string    `json:"flightNumber" validate:"required"`
	DepartureAirport  string    `json:"departureAirport" validate:"required,len=3,alpha"`
	ArrivalAirport    string    `json:"arrivalAirport" validate:"required,len=3,alpha,nefield=DepartureAirport"`
	ArrivalCountry    string    `json:"arrivalCountry" validate:"required"`
	OutboundPrice     float64   `json:"outboundPrice" validate:"gte=0"`
	ReturnPrice       float64   `json:"returnPrice" validate:"gte=0"`
	DepartureDateTime time.Time `json:"departureDateTime" validate:"required"`
	ArrivalDateTime   time.Time `json:"arrivalDateTime" validate:"required,gtefield=DepartureDateTime"`

	// AirlineCode is optional; when empty the resolver uses the configured carrier.
	AirlineCode string `json:"airlineCode,omitempty" validate:"omitempty,min=2,max=3,alphanum"`
}

// DurationHours returns the flight duration in hours
func (f *FlightFare) DurationHours() float64 {
	return f.ArrivalDateTime.Sub(f.DepartureDateTime).Hours()
}

// FetchResult is the outcome of one request against the fare endpoint.
// Exactly one of Records or Err is meaningful.
type FetchResult struct {
	Date             string
	DepartureAirport string
	ArrivalAirport   string
	Currency         string
	URL              string
	StatusCode       int
	QueryParams      map[string]string
	Records          []json.RawMessage
	Err              *TransportError
}

// IsSuccessful reports whether the request returned a 2xx response with a decodable body
func (r *FetchResult) IsSuccessful() bool {
	return r.Err == nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// FareBatch is everything the snapshot writer needs to record one fetched date
type FareBatch struct {
	RunID    string
	Fetch    *FetchResult
	Fares    []*FlightFare
	Rejected []*ParseError
}

// Successful reports whether the batch should produce a successful search operation.
// A response whose every record was rejected counts as a failed operation.
func (b *FareBatch) Successful() bool {
	if b.Fetch == nil || !b.Fetch.IsSuccessful() {
		return false
	}
	return len(b.Fares) > 0 || len(b.Rejected) == 0
}

// ErrorMessage returns the human-readable reason a batch failed, or ""
func (b *FareBatch) ErrorMessage() string {
	if b.Fetch == nil {
		return "no fetch result"
	}
	if b.Fetch.Err != nil {
		return b.Fetch.Err.Error()
	}
	if !b.Successful() {
		return (&BatchRejectedError{Rejected: len(b.Rejected)}).Error()
	}
	return ""
}
