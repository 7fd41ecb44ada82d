package repository

import (
	"context"
	"strings"

	"faretrack-service/internal/domain/entity"
	"faretrack-service/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAirportDirectoryRepository implements the AirportDirectoryRepository interface
type GormAirportDirectoryRepository struct {
	db *gorm.DB
}

// NewGormAirportDirectoryRepository creates a new GORM airport directory repository
func NewGormAirportDirectoryRepository(db *gorm.DB) repository.AirportDirectoryRepository {
	return &GormAirportDirectoryRepository{
		db: db,
	}
}

// GetByIATACode finds the reference entry for an airport code
func (r *GormAirportDirectoryRepository) GetByIATACode(ctx context.Context, code string) (*entity.AirportDirectoryEntry, error) {
	var entry AirportDirectory
	result := r.db.WithContext(ctx).Where("iata_code = ?", strings.ToUpper(code)).Take(&entry)

	if result.Error != nil {
		return nil, result.Error
	}

	// Convert GORM model to domain entity
	return entry.toEntity(), nil
}

// Seed inserts the entries, refreshing names of codes already present
func (r *GormAirportDirectoryRepository) Seed(ctx context.Context, entries []entity.AirportDirectoryEntry) error {
	if len(entries) == 0 {
		return nil
	}

	rows := make([]AirportDirectory, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, AirportDirectory{
			IATACode:    strings.ToUpper(e.IATACode),
			AirportName: e.AirportName,
			City:        e.City,
			Country:     e.Country,
			TzName:      e.TzName,
		})
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "iata_code"}},
		DoUpdates: clause.AssignmentColumns([]string{"airport_name", "city", "country", "tz_name", "updated_at"}),
	}).Create(&rows).Error
}
