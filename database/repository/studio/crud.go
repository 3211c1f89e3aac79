// File: database/repository/studio/crud.go
package studioRepo

import (
	"context"
	"fmt"
	"time"

	"studiobook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoStudioRepo) Create(ctx context.Context, studio *models.Studio) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, studio); err != nil {
		return fmt.Errorf("failed to insert studio: %w", err)
	}
	return nil
}

func (r *mongoStudioRepo) GetByID(ctx context.Context, studioID string) (*models.Studio, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var studio models.Studio
	err := r.coll.FindOne(ctx, bson.M{"id": studioID}).Decode(&studio)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("studio %s not found: %w", studioID, err)
		}
		return nil, fmt.Errorf("failed to fetch studio %s: %w", studioID, err)
	}
	return &studio, nil
}

func (r *mongoStudioRepo) CreateVerificationRecord(ctx context.Context, record *models.VerificationRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.verificationColl.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert verification record: %w", err)
	}
	return nil
}

func (r *mongoStudioRepo) ListVerificationRecords(ctx context.Context, studioID string) ([]models.VerificationRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.verificationColl.Find(ctx, bson.M{"studio_id": studioID})
	if err != nil {
		return nil, fmt.Errorf("failed to list verification records for studio %s: %w", studioID, err)
	}
	defer cursor.Close(ctx)

	var records []models.VerificationRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode verification records: %w", err)
	}
	return records, nil
}
