// File: services/studio/service.go
package studio

import (
	"context"
	"fmt"
	"time"

	studioRepo "studiobook/database/repository/studio"
	"studiobook/models"
	"studiobook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StudioService manages studio listings and verification submissions.
type StudioService interface {
	Register(ctx context.Context, studio models.Studio) (*models.Studio, error)
	Get(ctx context.Context, studioID string) (*models.Studio, error)
	SubmitVerification(ctx context.Context, record models.VerificationRecord) (*models.VerificationRecord, error)
	ListVerifications(ctx context.Context, studioID string) ([]models.VerificationRecord, error)
}

// DefaultStudioService is the production implementation backed by Mongo.
type DefaultStudioService struct {
	Repo studioRepo.StudioRepository
}

// Register validates and persists a new studio listing. Service IDs are
// assigned here so the caller never invents them.
func (s *DefaultStudioService) Register(ctx context.Context, studio models.Studio) (*models.Studio, error) {
	if studio.Name == "" {
		return nil, fmt.Errorf("studio name is required")
	}
	if len(studio.Services) == 0 {
		return nil, fmt.Errorf("studio must offer at least one service")
	}
	for i := range studio.Services {
		svc := &studio.Services[i]
		if svc.Name == "" {
			return nil, fmt.Errorf("service name is required")
		}
		if svc.HourlyRate <= 0 {
			return nil, fmt.Errorf("service %q must have a positive hourly rate", svc.Name)
		}
		if svc.ID == "" {
			svc.ID = uuid.New().String()
		}
	}
	for weekday, window := range studio.Hours {
		if weekday < 0 || weekday > 6 {
			return nil, fmt.Errorf("invalid weekday %d in business hours", weekday)
		}
		if window.Open < 0 || window.Close > 24 || window.Open > window.Close {
			return nil, fmt.Errorf("invalid hours %d-%d for weekday %d", window.Open, window.Close, weekday)
		}
	}

	studio.ID = uuid.New().String()
	studio.Verified = false
	studio.CreatedAt = time.Now()
	studio.UpdatedAt = studio.CreatedAt

	if err := s.Repo.Create(ctx, &studio); err != nil {
		return nil, fmt.Errorf("failed to register studio: %w", err)
	}

	utils.GetLogger().Info("studio registered",
		zap.String("studioId", studio.ID),
		zap.String("name", studio.Name))
	return &studio, nil
}

// Get fetches a studio listing by ID.
func (s *DefaultStudioService) Get(ctx context.Context, studioID string) (*models.Studio, error) {
	return s.Repo.GetByID(ctx, studioID)
}

// SubmitVerification records an identity document submission for a studio.
// Review happens outside this system; the record only tracks what was sent.
func (s *DefaultStudioService) SubmitVerification(ctx context.Context, record models.VerificationRecord) (*models.VerificationRecord, error) {
	if record.DocumentType == "" || record.DocumentRef == "" || record.LegalName == "" {
		return nil, fmt.Errorf("document type, reference and legal name are required")
	}
	if _, err := s.Repo.GetByID(ctx, record.StudioID); err != nil {
		return nil, fmt.Errorf("failed to submit verification: %w", err)
	}

	record.ID = uuid.New().String()
	record.Status = "submitted"
	record.SubmittedAt = time.Now()

	if err := s.Repo.CreateVerificationRecord(ctx, &record); err != nil {
		return nil, fmt.Errorf("failed to store verification record: %w", err)
	}

	utils.GetLogger().Info("verification record submitted",
		zap.String("studioId", record.StudioID),
		zap.String("documentType", record.DocumentType))
	return &record, nil
}

// ListVerifications returns all verification records for a studio.
func (s *DefaultStudioService) ListVerifications(ctx context.Context, studioID string) ([]models.VerificationRecord, error) {
	return s.Repo.ListVerificationRecords(ctx, studioID)
}
