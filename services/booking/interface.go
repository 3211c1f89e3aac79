package booking

import (
	"context"

	bookingRepo "studiobook/database/repository/booking"
	studioRepo "studiobook/database/repository/studio"
	"studiobook/models"
	"studiobook/services/payment"
)

// Slot actions accepted by ApplySlotAction.
const (
	SlotActionBeginOrCommit   = "begin_or_commit"
	SlotActionExtend          = "extend"
	SlotActionCancelSelection = "cancel_selection"
)

// BookingWizardService manages the staged booking draft from first click to
// submission.
type BookingWizardService interface {
	StartDraft(ctx context.Context, studioID string) (*models.BookingDraft, error)
	GetDraft(ctx context.Context, draftID string) (*models.BookingDraft, error)
	ChooseService(ctx context.Context, draftID, serviceID string) (*models.BookingDraft, error)
	ApplySlotAction(ctx context.Context, draftID, action string, slot models.SlotKey) (*models.BookingDraft, error)
	SetContact(ctx context.Context, draftID string, contact models.ClientContact) (*models.BookingDraft, error)
	Advance(ctx context.Context, draftID string) (*models.BookingDraft, error)
	Back(ctx context.Context, draftID string) (*models.BookingDraft, error)
	CancelDraft(ctx context.Context, draftID string) error
	Submit(ctx context.Context, draftID string) (*models.Booking, *models.PaymentSession, error)
}

// DefaultBookingWizardService implements BookingWizardService on top of a
// session store for drafts, the availability oracle, and the booking
// repository.
type DefaultBookingWizardService struct {
	StudioRepo  studioRepo.StudioRepository
	BookingRepo bookingRepo.BookingRepository
	Oracle      AvailabilityOracle
	Checkout    payment.CheckoutService
	Sessions    SessionStore
}
