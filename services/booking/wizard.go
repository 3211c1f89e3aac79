// File: services/booking/wizard.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"studiobook/models"

	"github.com/google/uuid"
)

const (
	draftTTL       = 30 * time.Minute
	draftKeyPrefix = "draft:"
)

func draftKey(draftID string) string {
	return draftKeyPrefix + draftID
}

func (s *DefaultBookingWizardService) loadDraft(ctx context.Context, draftID string) (*models.BookingDraft, error) {
	data, err := s.Sessions.Get(ctx, draftKey(draftID))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDraftNotFound, draftID)
	}
	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse booking draft: %w", err)
	}
	return &draft, nil
}

func (s *DefaultBookingWizardService) saveDraft(ctx context.Context, draft *models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal booking draft: %w", err)
	}
	if err := s.Sessions.Set(ctx, draftKey(draft.DraftID), string(data), draftTTL); err != nil {
		return fmt.Errorf("failed to store booking draft: %w", err)
	}
	return nil
}

// StartDraft creates a new empty draft for the studio and stores it with a
// TTL. The wizard starts at the service stage.
func (s *DefaultBookingWizardService) StartDraft(ctx context.Context, studioID string) (*models.BookingDraft, error) {
	if _, err := s.StudioRepo.GetByID(ctx, studioID); err != nil {
		return nil, fmt.Errorf("failed to start draft: %w", err)
	}

	draft := &models.BookingDraft{
		DraftID:   uuid.New().String(),
		StudioID:  studioID,
		Stage:     models.StageService,
		CreatedAt: time.Now(),
	}
	if err := s.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// GetDraft returns the current draft state.
func (s *DefaultBookingWizardService) GetDraft(ctx context.Context, draftID string) (*models.BookingDraft, error) {
	return s.loadDraft(ctx, draftID)
}

// ChooseService picks a service from the studio catalogue. Allowed at any
// stage; repricing happens immediately.
func (s *DefaultBookingWizardService) ChooseService(ctx context.Context, draftID, serviceID string) (*models.BookingDraft, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	studio, err := s.StudioRepo.GetByID(ctx, draft.StudioID)
	if err != nil {
		return nil, fmt.Errorf("failed to load studio for draft: %w", err)
	}
	svc, ok := studio.ServiceByID(serviceID)
	if !ok {
		return nil, fmt.Errorf("service %s not offered by studio %s", serviceID, draft.StudioID)
	}

	draft.ServiceID = svc.ID
	draft.HourlyRate = svc.HourlyRate
	Reprice(draft)

	if err := s.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// ApplySlotAction drives the selection engine with one grid interaction and
// reprices the draft. A rejected click (booked or unavailable slot) returns
// ErrSlotNotAvailable with the draft untouched.
func (s *DefaultBookingWizardService) ApplySlotAction(ctx context.Context, draftID, action string, slot models.SlotKey) (*models.BookingDraft, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	engine := &SelectionEngine{Oracle: s.Oracle}
	switch action {
	case SlotActionBeginOrCommit:
		next, _, err := engine.BeginOrCommitSelection(ctx, draft.StudioID, draft.Selection, slot)
		if err != nil {
			return nil, err
		}
		draft.Selection = next
	case SlotActionExtend:
		draft.Selection = ExtendSelection(draft.Selection, slot)
	case SlotActionCancelSelection:
		draft.Selection = CancelSelection(draft.Selection)
	default:
		return nil, fmt.Errorf("unknown slot action %q", action)
	}

	Reprice(draft)
	if err := s.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SetContact stores the client contact block on the draft.
func (s *DefaultBookingWizardService) SetContact(ctx context.Context, draftID string, contact models.ClientContact) (*models.BookingDraft, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	draft.Contact = contact
	if err := s.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Advance moves the wizard one stage forward, subject to the stage gate.
func (s *DefaultBookingWizardService) Advance(ctx context.Context, draftID string) (*models.BookingDraft, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if err := AdvanceStage(draft); err != nil {
		return nil, err
	}
	if err := s.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Back moves the wizard one stage back, keeping entered data.
func (s *DefaultBookingWizardService) Back(ctx context.Context, draftID string) (*models.BookingDraft, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	BackStage(draft)
	if err := s.saveDraft(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// CancelDraft discards the draft session.
func (s *DefaultBookingWizardService) CancelDraft(ctx context.Context, draftID string) error {
	if err := s.Sessions.Del(ctx, draftKey(draftID)); err != nil {
		return fmt.Errorf("failed to cancel booking draft: %w", err)
	}
	return nil
}
