package utils

// Constants
const (
	DATE_LAYOUT            = "2006-01-02"
	LOCAL_DATETIME_LAYOUT  = "2006-01-02T15:04:05.999999999"
	SPACED_DATETIME_LAYOUT = "2006-01-02 15:04:05.999999999"
	EXPORT_FILE_STAMP      = "20060102T150405"
)

// Fare record keys as sent by the fare endpoint
const (
	FieldFlightNumber      = "flightNumber"
	FieldDepartureAirport  = "departureAirport"
	FieldArrivalAirport    = "arrivalAirport"
	FieldArrivalCountry    = "arrivalCountry"
	FieldOutboundPrice     = "outboundPrice"
	FieldReturnPrice       = "returnPrice"
	FieldDepartureDateTime = "departureDateTime"
	FieldArrivalDateTime   = "arrivalDateTime"
	FieldAirlineCode       = "airlineCode"
)
