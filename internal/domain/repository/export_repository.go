package repository

import (
	"context"

	"faretrack-service/internal/domain/entity"
)

// ExportRepository stores a finished run document outside the relational store
type ExportRepository interface {
	Save(ctx context.Context, export *entity.RunExport) error
}
