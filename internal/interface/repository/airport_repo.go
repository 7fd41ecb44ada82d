package repository

import (
	"context"
	"strings"

	"faretrack-service/internal/domain/entity"
	"faretrack-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormAirportRepository implements the AirportRepository interface
type GormAirportRepository struct {
	db *gorm.DB
}

// NewGormAirportRepository creates a new GORM airport repository
func NewGormAirportRepository(db *gorm.DB) repository.AirportRepository {
	return &GormAirportRepository{
		db: db,
	}
}

// GetByIATACode finds an airport by its IATA code
func (r *GormAirportRepository) GetByIATACode(ctx context.Context, code string) (*entity.Airport, error) {
	var airport Airports
	result := r.db.WithContext(ctx).Where("iata_code = ?", strings.ToUpper(code)).Take(&airport)
	if result.Error != nil {
		return nil, result.Error
	}
	return airport.toEntity(), nil
}

// GetOrCreate returns the airport with the candidate's IATA code, inserting the
// candidate when none exists. An existing airport is never modified.
func (r *GormAirportRepository) GetOrCreate(ctx context.Context, airport *entity.Airport) (*entity.Airport, error) {
	code := strings.ToUpper(airport.IATACode)
	row, _, err := getOrCreate(ctx, r.db, map[string]interface{}{"iata_code": code}, &Airports{
		IATACode:    code,
		City:        airport.City,
		Country:     airport.Country,
		Provisional: airport.Provisional,
	})
	if err != nil {
		return nil, err
	}
	return row.toEntity(), nil
}
