package entity

import "time"

// ExportedFare is the file-export form of a FlightFare
type ExportedFare struct {
	FlightNumber      string  `json:"flightNumber" bson:"flightNumber"`
	DepartureAirport  string  `json:"departureAirport" bson:"departureAirport"`
	ArrivalAirport    string  `json:"arrivalAirport" bson:"arrivalAirport"`
	ArrivalCountry    string  `json:"arrivalCountry" bson:"arrivalCountry"`
	OutboundPrice     float64 `json:"outboundPrice" bson:"outboundPrice"`
	ReturnPrice       float64 `json:"returnPrice" bson:"returnPrice"`
	DepartureDateTime string  `json:"departureDateTime" bson:"departureDateTime"`
	ArrivalDateTime   string  `json:"arrivalDateTime" bson:"arrivalDateTime"`
	FlightDuration    float64 `json:"flightDuration" bson:"flightDuration"`
	AirlineCode       string  `json:"airlineCode,omitempty" bson:"airlineCode,omitempty"`
}

// ExportMetadata is attached to every exported response
type ExportMetadata struct {
	SavedAt    time.Time `json:"saved_at" bson:"savedAt"`
	Successful bool      `json:"successful" bson:"successful"`
}

// ExportedResponse is one fetched date in a run export
type ExportedResponse struct {
	URL        string         `json:"url" bson:"url"`
	StatusCode *int           `json:"status_code" bson:"statusCode"`
	Error      *string        `json:"error" bson:"error"`
	Data       []ExportedFare `json:"data" bson:"data"`
	Metadata   ExportMetadata `json:"metadata" bson:"metadata"`
}

// RunExport is the document written once per polling run
type RunExport struct {
	RunID     string             `json:"-" bson:"runId"`
	CreatedAt time.Time          `json:"-" bson:"createdAt"`
	Responses []ExportedResponse `json:"-" bson:"responses"`
}
