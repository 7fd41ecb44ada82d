package utils

import (
	"time"

	"faretrack-service/internal/domain/entity"
)

// ExportFare converts a parsed fare into its file-export form
func ExportFare(fare *entity.FlightFare) entity.ExportedFare {
	return entity.ExportedFare{
		FlightNumber:      fare.FlightNumber,
		DepartureAirport:  fare.DepartureAirport,
		ArrivalAirport:    fare.ArrivalAirport,
		ArrivalCountry:    fare.ArrivalCountry,
		OutboundPrice:     fare.OutboundPrice,
		ReturnPrice:       fare.ReturnPrice,
		DepartureDateTime: fare.DepartureDateTime.Format(time.RFC3339Nano),
		ArrivalDateTime:   fare.ArrivalDateTime.Format(time.RFC3339Nano),
		FlightDuration:    fare.DurationHours(),
		AirlineCode:       fare.AirlineCode,
	}
}

// ExportResponse builds the exported form of one fetched date
func ExportResponse(batch *entity.FareBatch, savedAt time.Time) entity.ExportedResponse {
	resp := entity.ExportedResponse{
		Data: make([]entity.ExportedFare, 0, len(batch.Fares)),
		Metadata: entity.ExportMetadata{
			SavedAt:    savedAt.UTC(),
			Successful: batch.Successful(),
		},
	}

	if batch.Fetch != nil {
		resp.URL = batch.Fetch.URL
		if batch.Fetch.StatusCode != 0 {
			code := batch.Fetch.StatusCode
			resp.StatusCode = &code
		}
	}
	if msg := batch.ErrorMessage(); msg != "" {
		resp.Error = &msg
	}

	for _, fare := range batch.Fares {
		resp.Data = append(resp.Data, ExportFare(fare))
	}
	return resp
}
