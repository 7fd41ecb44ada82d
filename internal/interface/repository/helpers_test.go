package repository

import (
	"path/filepath"
	"testing"
	"time"

	"faretrack-service/internal/domain/entity"
	"faretrack-service/internal/infrastructure/persistence"
	"faretrack-service/pkg/logger"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testAirline = entity.Airline{Code: "EZY", Name: "EasyJet"}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := persistence.OpenSQLite(filepath.Join(t.TempDir(), "faretrack.db"))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() {
		persistence.CloseDatabase(db)
	})
	return db
}

func newFare(number string, departure time.Time, outbound, ret float64) *entity.FlightFare {
	return &entity.FlightFare{
		FlightNumber:      number,
		DepartureAirport:  "ZRH",
		ArrivalAirport:    "FCO",
		ArrivalCountry:    "Italy",
		OutboundPrice:     outbound,
		ReturnPrice:       ret,
		DepartureDateTime: departure,
		ArrivalDateTime:   departure.Add(95 * time.Minute),
	}
}

func newBatch(runID, date string, fares ...*entity.FlightFare) *entity.FareBatch {
	status := 200
	return &entity.FareBatch{
		RunID: runID,
		Fetch: &entity.FetchResult{
			Date:             date,
			DepartureAirport: "ZRH",
			ArrivalAirport:   "FCO",
			Currency:         "CHF",
			URL:              "https://fares.test/search?departureDateFrom=" + date,
			StatusCode:       status,
			QueryParams:      map[string]string{"departureDateFrom": date, "departureDateTo": date},
		},
		Fares: fares,
	}
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func fixedClock(ts ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		t := ts[i]
		if i < len(ts)-1 {
			i++
		}
		return t
	}
}

func nopLogger() logger.Logger {
	return logger.NewNopLogger()
}
