package repository

import (
	"context"
	"strings"
	"time"

	"faretrack-service/internal/domain/entity"
	"faretrack-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormPriceHistoryRepository implements the PriceHistoryRepository interface
type GormPriceHistoryRepository struct {
	db *gorm.DB
}

// NewGormPriceHistoryRepository creates a new GORM price history repository
func NewGormPriceHistoryRepository(db *gorm.DB) repository.PriceHistoryRepository {
	return &GormPriceHistoryRepository{
		db: db,
	}
}

type pricePointRow struct {
	Timestamp     time.Time
	OutboundPrice float64
	ReturnPrice   float64
}

// History returns up to maxDays snapshots of every flight carrying flightNumber,
// newest first. An unknown flight number yields an empty slice.
func (r *GormPriceHistoryRepository) History(ctx context.Context, flightNumber string, maxDays int) ([]entity.PricePoint, error) {
	points := []entity.PricePoint{}
	if maxDays <= 0 {
		return points, nil
	}

	var rows []pricePointRow
	result := r.db.WithContext(ctx).
		Table("price_snapshots AS ps").
		Select("ps.timestamp, ps.outbound_price, ps.return_price").
		Joins("JOIN flights AS f ON f.id = ps.flight_id").
		Where("f.flight_number = ?", strings.ToUpper(strings.TrimSpace(flightNumber))).
		Order("ps.timestamp DESC").
		Order("ps.id DESC").
		Limit(maxDays).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	for _, row := range rows {
		points = append(points, entity.PricePoint{
			Timestamp:     row.Timestamp.UTC(),
			OutboundPrice: row.OutboundPrice,
			ReturnPrice:   row.ReturnPrice,
		})
	}
	return points, nil
}

type recentPriceRow struct {
	FlightNumber      string
	DepartureDatetime time.Time
	OutboundPrice     float64
	ReturnPrice       float64
	SnapshotTime      time.Time
	SearchTime        time.Time
}

// RecentPrices returns the latest snapshots across all flights
func (r *GormPriceHistoryRepository) RecentPrices(ctx context.Context, limit int) ([]entity.RecentPrice, error) {
	prices := []entity.RecentPrice{}
	if limit <= 0 {
		return prices, nil
	}

	var rows []recentPriceRow
	result := r.db.WithContext(ctx).
		Table("price_snapshots AS ps").
		Select("f.flight_number, f.departure_datetime, ps.outbound_price, ps.return_price, " +
			"ps.timestamp AS snapshot_time, so.timestamp AS search_time").
		Joins("JOIN flights AS f ON f.id = ps.flight_id").
		Joins("JOIN search_operations AS so ON so.id = ps.search_id").
		Order("ps.timestamp DESC").
		Order("ps.id DESC").
		Limit(limit).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	for _, row := range rows {
		prices = append(prices, entity.RecentPrice{
			FlightNumber:      row.FlightNumber,
			DepartureDateTime: row.DepartureDatetime.UTC(),
			OutboundPrice:     row.OutboundPrice,
			ReturnPrice:       row.ReturnPrice,
			SnapshotTime:      row.SnapshotTime.UTC(),
			SearchTime:        row.SearchTime.UTC(),
		})
	}
	return prices, nil
}

// Summary counts search operations, tracked flights and price records
func (r *GormPriceHistoryRepository) Summary(ctx context.Context) (*entity.StoreSummary, error) {
	db := r.db.WithContext(ctx)
	summary := &entity.StoreSummary{}

	if err := db.Model(&SearchOperations{}).Count(&summary.SearchCount).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&SearchOperations{}).Where("successful = ?", true).Count(&summary.SuccessfulCount).Error; err != nil {
		return nil, err
	}
	summary.FailedCount = summary.SearchCount - summary.SuccessfulCount

	if err := db.Model(&Flights{}).Distinct("flight_number").Count(&summary.TrackedFlights).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&PriceSnapshots{}).Count(&summary.PriceRecords).Error; err != nil {
		return nil, err
	}
	return summary, nil
}
