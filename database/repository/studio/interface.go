// File: database/repository/studio/interface.go
package studioRepo

import (
	"context"

	"studiobook/database"
	"studiobook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// StudioRepository persists studio listings and their verification records.
type StudioRepository interface {
	Create(ctx context.Context, studio *models.Studio) error
	GetByID(ctx context.Context, studioID string) (*models.Studio, error)
	CreateVerificationRecord(ctx context.Context, record *models.VerificationRecord) error
	ListVerificationRecords(ctx context.Context, studioID string) ([]models.VerificationRecord, error)
	EnsureIndexes() error
}

type mongoStudioRepo struct {
	coll             *mongo.Collection
	verificationColl *mongo.Collection
}

// NewMongoStudioRepo constructs a new MongoDB StudioRepository.
func NewMongoStudioRepo() StudioRepository {
	return &mongoStudioRepo{
		coll:             database.Collection("studios"),
		verificationColl: database.Collection("verification_records"),
	}
}
