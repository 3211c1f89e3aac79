// File: database/repository/studio/indexes.go
package studioRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the studio collections.
func (r *mongoStudioRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	studioIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, studioIndexes); err != nil {
		return fmt.Errorf("failed to create studio indexes: %w", err)
	}

	verificationIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "studio_id", Value: 1}, {Key: "submitted_at", Value: -1}},
			Options: options.Index().SetName("studio_submitted_idx"),
		},
	}
	if _, err := r.verificationColl.Indexes().CreateMany(ctx, verificationIndexes); err != nil {
		return fmt.Errorf("failed to create verification record indexes: %w", err)
	}
	return nil
}
