package persistence

import "faretrack-service/internal/domain/entity"

// DefaultAirportDirectory is the reference data loaded by the seed step:
// the airports of the initial route set plus common easyJet bases.
func DefaultAirportDirectory() []entity.AirportDirectoryEntry {
	return []entity.AirportDirectoryEntry{
		{IATACode: "ZRH", AirportName: "Zurich Airport", City: "Zurich", Country: "Switzerland", TzName: "Europe/Zurich"},
		{IATACode: "FCO", AirportName: "Leonardo da Vinci-Fiumicino Airport", City: "Rome", Country: "Italy", TzName: "Europe/Rome"},
		{IATACode: "LGW", AirportName: "London Gatwick Airport", City: "London", Country: "United Kingdom", TzName: "Europe/London"},
		{IATACode: "CDG", AirportName: "Paris Charles de Gaulle Airport", City: "Paris", Country: "France", TzName: "Europe/Paris"},
		{IATACode: "GVA", AirportName: "Geneva Airport", City: "Geneva", Country: "Switzerland", TzName: "Europe/Zurich"},
		{IATACode: "BSL", AirportName: "EuroAirport Basel Mulhouse Freiburg", City: "Basel", Country: "Switzerland", TzName: "Europe/Zurich"},
		{IATACode: "LTN", AirportName: "London Luton Airport", City: "London", Country: "United Kingdom", TzName: "Europe/London"},
		{IATACode: "MXP", AirportName: "Milan Malpensa Airport", City: "Milan", Country: "Italy", TzName: "Europe/Rome"},
		{IATACode: "NAP", AirportName: "Naples International Airport", City: "Naples", Country: "Italy", TzName: "Europe/Rome"},
		{IATACode: "AMS", AirportName: "Amsterdam Airport Schiphol", City: "Amsterdam", Country: "Netherlands", TzName: "Europe/Amsterdam"},
		{IATACode: "BER", AirportName: "Berlin Brandenburg Airport", City: "Berlin", Country: "Germany", TzName: "Europe/Berlin"},
		{IATACode: "BCN", AirportName: "Barcelona-El Prat Airport", City: "Barcelona", Country: "Spain", TzName: "Europe/Madrid"},
		{IATACode: "LIS", AirportName: "Humberto Delgado Airport", City: "Lisbon", Country: "Portugal", TzName: "Europe/Lisbon"},
	}
}
