package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"faretrack-service/internal/domain/entity"
	"faretrack-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHistory struct {
	points []entity.PricePoint
	err    error
	asked  string
}

func (s *stubHistory) History(ctx context.Context, flightNumber string, maxDays int) ([]entity.PricePoint, error) {
	s.asked = flightNumber
	if len(s.points) > maxDays {
		return s.points[:maxDays], s.err
	}
	return s.points, s.err
}

func (s *stubHistory) RecentPrices(ctx context.Context, limit int) ([]entity.RecentPrice, error) {
	return nil, s.err
}

func (s *stubHistory) Summary(ctx context.Context) (*entity.StoreSummary, error) {
	return &entity.StoreSummary{}, s.err
}

func TestTrend_ComputesDeltasAgainstOlderPoint(t *testing.T) {
	t1 := time.Date(2025, 3, 20, 8, 0, 0, 0, time.UTC)
	history := &stubHistory{points: []entity.PricePoint{
		{Timestamp: t1.Add(12 * time.Hour), OutboundPrice: 90, ReturnPrice: 60},
		{Timestamp: t1.Add(6 * time.Hour), OutboundPrice: 95, ReturnPrice: 55},
		{Timestamp: t1, OutboundPrice: 100, ReturnPrice: 50},
	}}

	trend, err := NewPriceReporter(history, logger.NewNopLogger()).Trend(context.Background(), " u2123 ", 30)
	require.NoError(t, err)

	assert.Equal(t, "U2123", history.asked)
	require.Len(t, trend.Points, 3)
	assert.Equal(t, -5.0, trend.Points[0].OutboundDelta)
	assert.Equal(t, 5.0, trend.Points[0].ReturnDelta)
	assert.Equal(t, -5.0, trend.Points[1].OutboundDelta)
	assert.Equal(t, 0.0, trend.Points[2].OutboundDelta)
	assert.Equal(t, 90.0, trend.MinOutbound)
	assert.Equal(t, 100.0, trend.MaxOutbound)
	assert.Equal(t, 50.0, trend.MinReturn)
	assert.Equal(t, 60.0, trend.MaxReturn)
}

func TestTrend_EmptyAndInvalid(t *testing.T) {
	reporter := NewPriceReporter(&stubHistory{}, logger.NewNopLogger())

	trend, err := reporter.Trend(context.Background(), "XX999", 30)
	require.NoError(t, err)
	assert.Empty(t, trend.Points)

	_, err = reporter.Trend(context.Background(), "  ", 30)
	assert.Error(t, err)

	failing := NewPriceReporter(&stubHistory{err: errors.New("db down")}, logger.NewNopLogger())
	_, err = failing.Trend(context.Background(), "U2123", 30)
	assert.ErrorContains(t, err, "db down")
}
