package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"faretrack-service/internal/domain/entity"
	"faretrack-service/internal/domain/repository"
	"faretrack-service/pkg/logger"
	"faretrack-service/pkg/utils"
)

// FileExportRepository writes each run document as a JSON file
type FileExportRepository struct {
	dir    string
	logger logger.Logger
}

// NewFileExportRepository creates an exporter writing into dir
func NewFileExportRepository(dir string, logger logger.Logger) *FileExportRepository {
	return &FileExportRepository{
		dir:    dir,
		logger: logger,
	}
}

var _ repository.ExportRepository = (*FileExportRepository)(nil)

// FileName returns the export file name of a run
func (r *FileExportRepository) FileName(export *entity.RunExport) string {
	runID := export.RunID
	if len(runID) > 8 {
		runID = runID[:8]
	}
	return fmt.Sprintf("fares_%s_%s.json", export.CreatedAt.UTC().Format(utils.EXPORT_FILE_STAMP), runID)
}

// Save writes the run's responses to <dir>/fares_<stamp>_<run>.json
func (r *FileExportRepository) Save(ctx context.Context, export *entity.RunExport) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	responses := export.Responses
	if responses == nil {
		responses = []entity.ExportedResponse{}
	}
	data, err := json.MarshalIndent(responses, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal run export: %w", err)
	}

	path := filepath.Join(r.dir, r.FileName(export))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write run export: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write run export: %w", err)
	}

	r.logger.Info("Run exported to file", "runId", export.RunID, "path", path, "responses", len(responses))
	return nil
}
