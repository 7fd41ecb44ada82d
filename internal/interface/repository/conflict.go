package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"faretrack-service/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// maxResolveAttempts bounds the insert/re-read cycle of getOrCreate
const maxResolveAttempts = 3

// isUniqueViolation reports whether err is a uniqueness-constraint failure
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

// getOrCreate returns the row matching key, inserting row when there is none.
// The insert uses ON CONFLICT (key columns) DO NOTHING so a row committed by
// another writer between lookup and insert shows up as zero affected rows
// instead of an aborted transaction; the row is then re-read. A unique
// violation on any other constraint is returned as is once the re-read shows
// the key is still absent.
func getOrCreate[T any](ctx context.Context, db *gorm.DB, key map[string]interface{}, row *T) (*T, bool, error) {
	target := conflictTarget(key)

	var violation error
	for attempt := 1; attempt <= maxResolveAttempts; attempt++ {
		var existing T
		err := db.WithContext(ctx).Where(key).Take(&existing).Error
		if err == nil {
			return &existing, false, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, err
		}
		if violation != nil {
			return nil, false, violation
		}

		result := db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: target, DoNothing: true}).
			Omit(clause.Associations).
			Create(row)
		if result.Error != nil {
			if !isUniqueViolation(result.Error) {
				return nil, false, result.Error
			}
			violation = result.Error
			continue
		}
		if result.RowsAffected > 0 {
			return row, true, nil
		}
	}

	return nil, false, fmt.Errorf("%w: key %v", entity.ErrResolutionConflict, key)
}

// conflictTarget lists the key columns in a stable order
func conflictTarget(key map[string]interface{}) []clause.Column {
	names := make([]string, 0, len(key))
	for name := range key {
		names = append(names, name)
	}
	sort.Strings(names)

	columns := make([]clause.Column, 0, len(names))
	for _, name := range names {
		columns = append(columns, clause.Column{Name: name})
	}
	return columns
}
