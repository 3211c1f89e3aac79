// File: services/booking/submit.go
package booking

import (
	"context"
	"fmt"
	"sort"
	"time"

	"studiobook/models"

	"github.com/google/uuid"
)

const submitLockTTL = 30 * time.Second

// Submit turns a completed draft into a pending booking plus a payment
// session. The backend re-validates everything the wizard gated on and
// re-checks slot availability; a failure leaves the draft intact so the
// client can retry. A short-lived lock rejects a second submission while one
// is in flight.
func (s *DefaultBookingWizardService) Submit(ctx context.Context, draftID string) (*models.Booking, *models.PaymentSession, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, nil, err
	}

	if err := validateSubmission(draft); err != nil {
		return nil, nil, err
	}

	lockKey := "submit:" + draftID
	locked, err := s.Sessions.SetNX(ctx, lockKey, "1", submitLockTTL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to acquire submit lock: %w", err)
	}
	if !locked {
		return nil, nil, ErrSubmitInFlight
	}

	booking, session, err := s.submitLocked(ctx, draft)
	if err != nil {
		// Release the lock so the client can retry with the draft intact.
		s.Sessions.Del(ctx, lockKey)
		return nil, nil, err
	}

	s.Sessions.Del(ctx, draftKey(draftID))
	s.Sessions.Del(ctx, lockKey)
	return booking, session, nil
}

func (s *DefaultBookingWizardService) submitLocked(ctx context.Context, draft *models.BookingDraft) (*models.Booking, *models.PaymentSession, error) {
	slots := append([]models.SlotKey(nil), draft.SelectedSlots()...)
	sort.Slice(slots, func(i, j int) bool { return slots[i].Hour() < slots[j].Hour() })

	// Click-time availability is advisory; the stored records decide now.
	for _, slot := range slots {
		date, hour, err := slot.Parts()
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidSubmission, err)
		}
		status, err := s.Oracle.Status(ctx, draft.StudioID, date, hour)
		if err != nil {
			return nil, nil, fmt.Errorf("availability re-check failed: %w", err)
		}
		if status != models.SlotAvailable {
			return nil, nil, fmt.Errorf("%w: %s is %s", ErrSlotNotAvailable, slot, status)
		}
	}

	total := TotalPrice(draft.HourlyRate, len(slots))
	session := s.Checkout.NewSession(uuid.New().String(), total)

	booking := &models.Booking{
		ID:         session.OrderID,
		StudioID:   draft.StudioID,
		ServiceID:  draft.ServiceID,
		SlotKeys:   slots,
		Contact:    draft.Contact,
		TotalPrice: total,
		Currency:   session.Currency,
		Status:     models.BookingStatusPending,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := s.BookingRepo.Create(ctx, booking); err != nil {
		return nil, nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return booking, &session, nil
}

// validateSubmission re-applies every wizard gate server-side. The stages
// should have prevented all of these, but malformed submissions must not
// reach the database.
func validateSubmission(d *models.BookingDraft) error {
	if d.Stage != models.StagePayment {
		return fmt.Errorf("%w: wizard has not reached the payment stage", ErrInvalidSubmission)
	}
	if !d.HasService() {
		return fmt.Errorf("%w: no service chosen", ErrInvalidSubmission)
	}
	if d.Selection.Active || len(d.SelectedSlots()) == 0 {
		return fmt.Errorf("%w: no committed time slots", ErrInvalidSubmission)
	}
	if !d.HasContact() {
		return fmt.Errorf("%w: missing contact fields", ErrInvalidSubmission)
	}

	date := ""
	for _, slot := range d.SelectedSlots() {
		slotDate, _, err := slot.Parts()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSubmission, err)
		}
		if date == "" {
			date = slotDate
		} else if slotDate != date {
			return fmt.Errorf("%w: slots span multiple dates", ErrInvalidSubmission)
		}
	}
	return nil
}
