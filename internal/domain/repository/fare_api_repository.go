package repository

import (
	"context"

	"faretrack-service/internal/domain/entity"
)

// FareAPIRepository fetches raw fare records for one date from the fare endpoint.
// Failures are reported in the result, never as a returned error.
type FareAPIRepository interface {
	FetchFares(ctx context.Context, date, departure, arrival string) *entity.FetchResult
}
