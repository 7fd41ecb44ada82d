package repository

import (
	"context"

	"faretrack-service/internal/domain/entity"
)

// SnapshotRepository records a search operation and its price snapshots atomically
type SnapshotRepository interface {
	Record(ctx context.Context, batch *entity.FareBatch) (*entity.SearchOperation, error)
}

// PriceHistoryRepository is the read path over recorded snapshots
type PriceHistoryRepository interface {
	History(ctx context.Context, flightNumber string, maxDays int) ([]entity.PricePoint, error)
	RecentPrices(ctx context.Context, limit int) ([]entity.RecentPrice, error)
	Summary(ctx context.Context) (*entity.StoreSummary, error)
}
