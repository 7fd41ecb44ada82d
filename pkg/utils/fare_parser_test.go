package utils

import (
	"encoding/json"
	"testing"
	"time"

	"faretrack-service/internal/domain/entity"
	"faretrack-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRecord = `{
	"flightNumber": "u2123",
	"departureAirport": "zrh",
	"arrivalAirport": "FCO",
	"arrivalCountry": "Italy",
	"outboundPrice": 100.5,
	"returnPrice": "50",
	"departureDateTime": "2025-04-01T06:30:00",
	"arrivalDateTime": "2025-04-01T08:05:00"
}`

func TestParse_ValidRecord(t *testing.T) {
	fare, err := NewFareParser(logger.NewNopLogger()).Parse(json.RawMessage(validRecord))
	require.NoError(t, err)

	assert.Equal(t, "U2123", fare.FlightNumber)
	assert.Equal(t, "ZRH", fare.DepartureAirport)
	assert.Equal(t, "FCO", fare.ArrivalAirport)
	assert.Equal(t, "Italy", fare.ArrivalCountry)
	assert.Equal(t, 100.5, fare.OutboundPrice)
	assert.Equal(t, 50.0, fare.ReturnPrice)
	assert.True(t, fare.DepartureDateTime.Equal(time.Date(2025, 4, 1, 6, 30, 0, 0, time.UTC)))
	assert.InDelta(t, 95.0/60.0, fare.DurationHours(), 1e-9)
}

func TestParse_AirlineCode(t *testing.T) {
	parser := NewFareParser(logger.NewNopLogger())

	fare, err := parser.Parse(json.RawMessage(validRecord))
	require.NoError(t, err)
	assert.Empty(t, fare.AirlineCode)

	tests := []struct {
		value interface{}
		want  string
	}{
		{" u2 ", "U2"},
		{"EZS", "EZS"},
		{nil, ""},
		{"", ""},
	}
	for _, tt := range tests {
		var record map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(validRecord), &record))
		record["airlineCode"] = tt.value
		raw, err := json.Marshal(record)
		require.NoError(t, err)

		fare, err := parser.Parse(raw)
		require.NoError(t, err, "airlineCode %v", tt.value)
		assert.Equal(t, tt.want, fare.AirlineCode)
	}
}

func TestParse_RejectsMalformedRecords(t *testing.T) {
	parser := NewFareParser(logger.NewNopLogger())

	tests := []struct {
		name   string
		mutate func(map[string]interface{})
		field  string
	}{
		{"missing arrival country", func(m map[string]interface{}) { delete(m, "arrivalCountry") }, "arrivalCountry"},
		{"null flight number", func(m map[string]interface{}) { m["flightNumber"] = nil }, "flightNumber"},
		{"price not a number", func(m map[string]interface{}) { m["outboundPrice"] = "cheap" }, "outboundPrice"},
		{"negative price", func(m map[string]interface{}) { m["returnPrice"] = -1 }, "returnPrice"},
		{"bad timestamp", func(m map[string]interface{}) { m["departureDateTime"] = "01/04/2025 06:30" }, "departureDateTime"},
		{"arrival before departure", func(m map[string]interface{}) { m["arrivalDateTime"] = "2025-04-01T05:00:00" }, "arrivalDateTime"},
		{"airport code too long", func(m map[string]interface{}) { m["departureAirport"] = "ZURICH" }, "departureAirport"},
		{"same airports", func(m map[string]interface{}) { m["arrivalAirport"] = "ZRH" }, "arrivalAirport"},
		{"airline code not a string", func(m map[string]interface{}) { m["airlineCode"] = 2 }, "airlineCode"},
		{"airline code too long", func(m map[string]interface{}) { m["airlineCode"] = "EASY" }, "airlineCode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var record map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(validRecord), &record))
			tt.mutate(record)
			raw, err := json.Marshal(record)
			require.NoError(t, err)

			fare, err := parser.Parse(raw)
			assert.Nil(t, fare)

			var parseErr *entity.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.field, parseErr.Field)
			assert.NotEmpty(t, parseErr.Reason)
			assert.JSONEq(t, string(raw), string(parseErr.Raw))
		})
	}
}

func TestParse_NotAnObject(t *testing.T) {
	_, err := NewFareParser(logger.NewNopLogger()).Parse(json.RawMessage(`[1,2]`))

	var parseErr *entity.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Empty(t, parseErr.Field)
}

func TestParseAll_SkipsBadRecordsAndKeepsTheRest(t *testing.T) {
	records := []json.RawMessage{
		json.RawMessage(validRecord),
		json.RawMessage(`{"flightNumber":"U2125","departureAirport":"ZRH","arrivalAirport":"FCO","outboundPrice":80,"returnPrice":45,"departureDateTime":"2025-04-01T12:30:00","arrivalDateTime":"2025-04-01T14:05:00"}`),
		json.RawMessage(`{"flightNumber":"U2127","departureAirport":"ZRH","arrivalAirport":"FCO","arrivalCountry":"Italy","outboundPrice":70,"returnPrice":40,"departureDateTime":"2025-04-01T18:30:00+02:00","arrivalDateTime":"2025-04-01T20:05:00+02:00"}`),
	}

	fares, rejected := NewFareParser(logger.NewNopLogger()).ParseAll(records)

	require.Len(t, fares, 2)
	assert.Equal(t, "U2123", fares[0].FlightNumber)
	assert.Equal(t, "U2127", fares[1].FlightNumber)
	assert.True(t, fares[1].DepartureDateTime.Equal(time.Date(2025, 4, 1, 16, 30, 0, 0, time.UTC)))

	require.Len(t, rejected, 1)
	assert.Equal(t, "arrivalCountry", rejected[0].Field)
}
