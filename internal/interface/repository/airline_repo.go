package repository

import (
	"context"
	"strings"

	"faretrack-service/internal/domain/entity"
	"faretrack-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormAirlineRepository implements the AirlineRepository interface
type GormAirlineRepository struct {
	db *gorm.DB
}

// NewGormAirlineRepository creates a new GORM airline repository.
// db may be a transaction handle.
func NewGormAirlineRepository(db *gorm.DB) repository.AirlineRepository {
	return &GormAirlineRepository{
		db: db,
	}
}

// GetByCode finds an airline by code
func (r *GormAirlineRepository) GetByCode(ctx context.Context, code string) (*entity.Airline, error) {
	var airline Airlines
	result := r.db.WithContext(ctx).Where("code = ?", strings.ToUpper(code)).Take(&airline)

	if result.Error != nil {
		return nil, result.Error
	}

	// Convert GORM model to domain entity
	return airline.toEntity(), nil
}

// GetOrCreate returns the airline with code, creating it with name when absent
func (r *GormAirlineRepository) GetOrCreate(ctx context.Context, code, name string) (*entity.Airline, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if name == "" {
		name = code
	}

	row, _, err := getOrCreate(ctx, r.db, map[string]interface{}{"code": code}, &Airlines{
		Code: code,
		Name: name,
	})
	if err != nil {
		return nil, err
	}
	return row.toEntity(), nil
}
