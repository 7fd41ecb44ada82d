package repository

import (
	"context"
	"fmt"

	"faretrack-service/internal/domain/entity"
	"faretrack-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FareRunsCollection holds one archived document per polling run
const FareRunsCollection = "fare_runs"

// MongoExportRepository archives run documents in MongoDB
type MongoExportRepository struct {
	collection *mongo.Collection
}

// NewMongoExportRepository creates a new MongoDB run archive
func NewMongoExportRepository(ctx context.Context, db *mongo.Database) (repository.ExportRepository, error) {
	collection := db.Collection(FareRunsCollection)

	runIDIndex := mongo.IndexModel{
		Keys:    bson.M{"runId": 1},
		Options: options.Index().SetUnique(true),
	}
	createdAtIndex := mongo.IndexModel{
		Keys: bson.M{"createdAt": -1},
	}

	if _, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{runIDIndex, createdAtIndex}); err != nil {
		return nil, fmt.Errorf("failed to create fare_runs indexes: %w", err)
	}

	return &MongoExportRepository{
		collection: collection,
	}, nil
}

// Save inserts the run document. A run already archived is left untouched.
func (r *MongoExportRepository) Save(ctx context.Context, export *entity.RunExport) error {
	_, err := r.collection.InsertOne(ctx, export)
	if mongo.IsDuplicateKeyError(err) {
		return nil
	}
	return err
}
