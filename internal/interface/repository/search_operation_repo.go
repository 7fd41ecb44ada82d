package repository

import (
	"context"
	"errors"
	"time"

	"faretrack-service/internal/domain/entity"
	"faretrack-service/internal/domain/repository"
	"faretrack-service/pkg/logger"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSnapshotRepository implements the SnapshotRepository interface
type GormSnapshotRepository struct {
	db             *gorm.DB
	defaultAirline entity.Airline
	logger         logger.Logger
	now            func() time.Time
}

// NewGormSnapshotRepository creates a snapshot writer. defaultAirline is the
// carrier used for fares that do not name one.
func NewGormSnapshotRepository(db *gorm.DB, defaultAirline entity.Airline, logger logger.Logger) *GormSnapshotRepository {
	return &GormSnapshotRepository{
		db:             db,
		defaultAirline: defaultAirline,
		logger:         logger,
		now:            time.Now,
	}
}

var _ repository.SnapshotRepository = (*GormSnapshotRepository)(nil)

// WithClock replaces the clock used for operation and snapshot timestamps
func (r *GormSnapshotRepository) WithClock(now func() time.Time) *GormSnapshotRepository {
	r.now = now
	return r
}

// Record writes the search operation for batch and, when the batch succeeded,
// one price snapshot per parsed fare. Everything happens in one transaction;
// on any error nothing is written and a *entity.PersistenceError is returned.
func (r *GormSnapshotRepository) Record(ctx context.Context, batch *entity.FareBatch) (*entity.SearchOperation, error) {
	stamp := r.now().UTC()
	model := newSearchOperationModel(batch, stamp)

	var written int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
			return &entity.PersistenceError{Op: "insert search operation", Err: err}
		}

		if !model.Successful {
			return nil
		}

		resolver := NewGormEntityResolver(tx, r.defaultAirline, r.logger)
		for _, fare := range batch.Fares {
			flight, err := resolver.Resolve(ctx, fare)
			if err != nil {
				return &entity.PersistenceError{Op: "resolve flight " + fare.FlightNumber, Err: err}
			}

			snapshot := PriceSnapshots{
				FlightID:      flight.ID,
				SearchID:      model.ID,
				Timestamp:     stamp,
				OutboundPrice: fare.OutboundPrice,
				ReturnPrice:   fare.ReturnPrice,
			}
			if err := tx.Omit(clause.Associations).Create(&snapshot).Error; err != nil {
				return &entity.PersistenceError{Op: "insert price snapshot " + fare.FlightNumber, Err: err}
			}
			written++
		}
		return nil
	})
	if err != nil {
		var persistErr *entity.PersistenceError
		if !errors.As(err, &persistErr) {
			err = &entity.PersistenceError{Op: "commit search operation", Err: err}
		}
		return nil, err
	}

	op := model.toEntity()
	op.SnapshotCount = written
	return op, nil
}

func newSearchOperationModel(batch *entity.FareBatch, stamp time.Time) *SearchOperations {
	model := &SearchOperations{
		RunID:         batch.RunID,
		Timestamp:     stamp,
		Successful:    batch.Successful(),
		FaresReceived: len(batch.Fares) + len(batch.Rejected),
		FaresRejected: len(batch.Rejected),
	}

	if fetch := batch.Fetch; fetch != nil {
		model.DepartureDate = fetch.Date
		model.DepartureAirport = fetch.DepartureAirport
		model.ArrivalAirport = fetch.ArrivalAirport
		model.Currency = fetch.Currency
		model.URL = fetch.URL
		if fetch.StatusCode != 0 {
			code := fetch.StatusCode
			model.StatusCode = &code
		}
		if len(fetch.QueryParams) > 0 {
			params := make(datatypes.JSONMap, len(fetch.QueryParams))
			for k, v := range fetch.QueryParams {
				params[k] = v
			}
			model.QueryParams = params
		}
	}

	if !model.Successful {
		msg := batch.ErrorMessage()
		model.ErrorMessage = &msg
	}
	return model
}
