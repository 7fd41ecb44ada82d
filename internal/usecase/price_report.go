package usecase

import (
	"context"
	"fmt"
	"strings"

	"faretrack-service/internal/domain/entity"
	"faretrack-service/internal/domain/repository"
	"faretrack-service/pkg/logger"
)

// PriceChange is one history row with its change against the previous observation
type PriceChange struct {
	entity.PricePoint
	OutboundDelta float64
	ReturnDelta   float64
}

// PriceTrend is the price history of one flight number, newest first
type PriceTrend struct {
	FlightNumber string
	Points       []PriceChange
	MinOutbound  float64
	MaxOutbound  float64
	MinReturn    float64
	MaxReturn    float64
}

// PriceReporter answers read-side questions about recorded prices
type PriceReporter struct {
	history repository.PriceHistoryRepository
	logger  logger.Logger
}

// NewPriceReporter creates a new price reporter
func NewPriceReporter(history repository.PriceHistoryRepository, logger logger.Logger) *PriceReporter {
	return &PriceReporter{
		history: history,
		logger:  logger,
	}
}

// Trend returns up to maxDays observations of flightNumber with deltas.
// Each delta compares a point with the next older one; the oldest has none.
func (r *PriceReporter) Trend(ctx context.Context, flightNumber string, maxDays int) (*PriceTrend, error) {
	flightNumber = strings.ToUpper(strings.TrimSpace(flightNumber))
	if flightNumber == "" {
		return nil, fmt.Errorf("flight number is required")
	}

	points, err := r.history.History(ctx, flightNumber, maxDays)
	if err != nil {
		return nil, fmt.Errorf("failed to load price history for %s: %w", flightNumber, err)
	}

	trend := &PriceTrend{
		FlightNumber: flightNumber,
		Points:       make([]PriceChange, 0, len(points)),
	}
	for i, point := range points {
		change := PriceChange{PricePoint: point}
		if i+1 < len(points) {
			change.OutboundDelta = point.OutboundPrice - points[i+1].OutboundPrice
			change.ReturnDelta = point.ReturnPrice - points[i+1].ReturnPrice
		}
		trend.Points = append(trend.Points, change)

		if i == 0 || point.OutboundPrice < trend.MinOutbound {
			trend.MinOutbound = point.OutboundPrice
		}
		if i == 0 || point.OutboundPrice > trend.MaxOutbound {
			trend.MaxOutbound = point.OutboundPrice
		}
		if i == 0 || point.ReturnPrice < trend.MinReturn {
			trend.MinReturn = point.ReturnPrice
		}
		if i == 0 || point.ReturnPrice > trend.MaxReturn {
			trend.MaxReturn = point.ReturnPrice
		}
	}

	r.logger.Debug("Loaded price trend", "flightNumber", flightNumber, "points", len(trend.Points))
	return trend, nil
}

// Recent returns the latest snapshots across all flights
func (r *PriceReporter) Recent(ctx context.Context, limit int) ([]entity.RecentPrice, error) {
	return r.history.RecentPrices(ctx, limit)
}

// Summary returns store-wide counts
func (r *PriceReporter) Summary(ctx context.Context) (*entity.StoreSummary, error) {
	return r.history.Summary(ctx)
}
