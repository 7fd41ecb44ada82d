package repository

import (
	"context"
	"testing"
	"time"

	"faretrack-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_TwoRunsOfSameFlight(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	departure := time.Date(2025, 4, 1, 6, 30, 0, 0, time.UTC)
	t1 := time.Date(2025, 3, 20, 8, 0, 0, 0, time.UTC)
	t2 := t1.Add(6 * time.Hour)

	writer := NewGormSnapshotRepository(db, testAirline, nopLogger()).WithClock(fixedClock(t1, t2))
	_, err := writer.Record(ctx, newBatch("run-1", "2025-04-01", newFare("U2123", departure, 100.0, 50.0)))
	require.NoError(t, err)
	_, err = writer.Record(ctx, newBatch("run-2", "2025-04-01", newFare("U2123", departure, 95.0, 55.0)))
	require.NoError(t, err)

	assert.EqualValues(t, 1, countRows(t, db, &Flights{}))
	assert.EqualValues(t, 2, countRows(t, db, &PriceSnapshots{}))

	history, err := NewGormPriceHistoryRepository(db).History(ctx, "U2123", 30)
	require.NoError(t, err)
	assert.Equal(t, []entity.PricePoint{
		{Timestamp: t2, OutboundPrice: 95.0, ReturnPrice: 55.0},
		{Timestamp: t1, OutboundPrice: 100.0, ReturnPrice: 50.0},
	}, history)
}

func TestHistory_OrderedAndCapped(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	departure := time.Date(2025, 4, 1, 6, 30, 0, 0, time.UTC)
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	// recorded out of chronological order
	offsets := []int{3, 0, 4, 1, 2}
	clocks := make([]time.Time, 0, len(offsets))
	for _, d := range offsets {
		clocks = append(clocks, base.AddDate(0, 0, d))
	}
	writer := NewGormSnapshotRepository(db, testAirline, nopLogger()).WithClock(fixedClock(clocks...))
	for i := range offsets {
		_, err := writer.Record(ctx, newBatch("run", "2025-04-01", newFare("U2123", departure, float64(100+i), 50)))
		require.NoError(t, err)
	}

	history, err := NewGormPriceHistoryRepository(db).History(ctx, "u2123", 3)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.True(t, history[0].Timestamp.Equal(base.AddDate(0, 0, 4)))
	assert.True(t, history[1].Timestamp.Equal(base.AddDate(0, 0, 3)))
	assert.True(t, history[2].Timestamp.Equal(base.AddDate(0, 0, 2)))
	for i := 1; i < len(history); i++ {
		assert.True(t, history[i-1].Timestamp.After(history[i].Timestamp))
	}
}

func TestHistory_UnknownFlightIsEmpty(t *testing.T) {
	db := newTestDB(t)
	history := NewGormPriceHistoryRepository(db)

	points, err := history.History(context.Background(), "XX999", 30)
	require.NoError(t, err)
	assert.NotNil(t, points)
	assert.Empty(t, points)

	points, err = history.History(context.Background(), "U2123", 0)
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestRecentPricesAndSummary(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	departure := time.Date(2025, 4, 1, 6, 30, 0, 0, time.UTC)
	t1 := time.Date(2025, 3, 20, 8, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)

	writer := NewGormSnapshotRepository(db, testAirline, nopLogger()).WithClock(fixedClock(t1, t2, t3))
	_, err := writer.Record(ctx, newBatch("run-1", "2025-04-01",
		newFare("U2123", departure, 100, 50),
		newFare("U2125", departure.Add(6*time.Hour), 80, 45)))
	require.NoError(t, err)

	failed := newBatch("run-1", "2025-04-02")
	failed.Fetch.Err = &entity.TransportError{URL: failed.Fetch.URL, StatusCode: 503, Message: "unavailable"}
	_, err = writer.Record(ctx, failed)
	require.NoError(t, err)

	_, err = writer.Record(ctx, newBatch("run-2", "2025-04-01", newFare("U2123", departure, 90, 50)))
	require.NoError(t, err)

	history := NewGormPriceHistoryRepository(db)

	recent, err := history.RecentPrices(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "U2123", recent[0].FlightNumber)
	assert.Equal(t, 90.0, recent[0].OutboundPrice)
	assert.True(t, recent[0].SnapshotTime.Equal(t3))
	assert.True(t, recent[0].SearchTime.Equal(t3))
	assert.True(t, recent[0].DepartureDateTime.Equal(departure))
	assert.True(t, recent[1].SnapshotTime.Equal(t1))

	summary, err := history.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.StoreSummary{
		SearchCount:     3,
		SuccessfulCount: 2,
		FailedCount:     1,
		TrackedFlights:  2,
		PriceRecords:    3,
	}, summary)
}
