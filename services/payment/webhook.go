package payment

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "studiobook/database/repository/booking"
	studioRepo "studiobook/database/repository/studio"
	"studiobook/models"
	"studiobook/utils"

	"go.uber.org/zap"
)

var (
	// ErrInvalidSignature marks a notification that failed authentication.
	// Nothing is mutated when it is returned.
	ErrInvalidSignature = errors.New("payment notification signature mismatch")

	// ErrUnknownBooking marks a verified notification referencing a booking
	// we have no record of.
	ErrUnknownBooking = errors.New("payment notification references unknown booking")
)

// NoticeEnqueuer hands booking notices to the async dispatch queue. Enqueue
// failures are logged, never surfaced to the provider: acknowledging the
// webhook must not wait on downstream delivery.
type NoticeEnqueuer interface {
	EnqueueBookingNotice(ctx context.Context, payload models.BookingNoticePayload) error
}

// WebhookService applies verified payment notifications to bookings.
type WebhookService interface {
	HandleNotification(ctx context.Context, n models.PaymentNotification) error
}

// DefaultWebhookService implements WebhookService with a conditional-update
// confirmation so duplicate deliveries transition a booking at most once.
type DefaultWebhookService struct {
	BookingRepo    bookingRepo.BookingRepository
	StudioRepo     studioRepo.StudioRepository
	Enqueuer       NoticeEnqueuer
	MerchantID     string
	MerchantSecret string
}

func (s *DefaultWebhookService) HandleNotification(ctx context.Context, n models.PaymentNotification) error {
	logger := utils.GetLogger()

	if !VerifyNotification(n, s.MerchantID, s.MerchantSecret) {
		logger.Warn("rejected payment notification",
			zap.String("orderId", n.OrderID),
			zap.String("merchantId", n.MerchantID),
			zap.String("statusCode", n.StatusCode))
		return ErrInvalidSignature
	}

	bookingID := n.BookingID
	if bookingID == "" {
		bookingID = n.OrderID
	}

	switch n.StatusCode {
	case models.PayHereStatusSuccess:
		return s.confirm(ctx, bookingID, n.PaymentID)
	case models.PayHereStatusPending:
		// Payment still settling at the provider; acknowledge and wait for
		// the next notification.
		logger.Info("payment still pending at provider", zap.String("bookingId", bookingID))
		return nil
	default:
		return s.cancel(ctx, bookingID, n)
	}
}

func (s *DefaultWebhookService) confirm(ctx context.Context, bookingID, paymentID string) error {
	logger := utils.GetLogger()

	transitioned, err := s.BookingRepo.UpdateStatusIfPending(ctx, bookingID, models.BookingStatusConfirmed, paymentID)
	if err != nil {
		return fmt.Errorf("failed to confirm booking %s: %w", bookingID, err)
	}

	if !transitioned {
		booking, err := s.BookingRepo.GetByID(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrUnknownBooking, bookingID)
		}
		// Duplicate delivery for an already settled booking is a no-op
		// success; the provider owns retries.
		logger.Info("booking already settled, ignoring duplicate notification",
			zap.String("bookingId", bookingID),
			zap.String("status", booking.Status))
		return nil
	}

	logger.Info("booking confirmed", zap.String("bookingId", bookingID), zap.String("paymentId", paymentID))
	s.dispatchNotice(ctx, bookingID, "confirmed")
	return nil
}

func (s *DefaultWebhookService) cancel(ctx context.Context, bookingID string, n models.PaymentNotification) error {
	logger := utils.GetLogger()

	transitioned, err := s.BookingRepo.UpdateStatusIfPending(ctx, bookingID, models.BookingStatusCancelled, n.PaymentID)
	if err != nil {
		return fmt.Errorf("failed to cancel booking %s: %w", bookingID, err)
	}
	if !transitioned {
		booking, err := s.BookingRepo.GetByID(ctx, bookingID)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrUnknownBooking, bookingID)
		}
		logger.Info("failure notification for non-pending booking, ignoring",
			zap.String("bookingId", bookingID),
			zap.String("status", booking.Status),
			zap.String("statusCode", n.StatusCode))
		return nil
	}

	logger.Info("booking cancelled on payment failure",
		zap.String("bookingId", bookingID),
		zap.String("statusCode", n.StatusCode),
		zap.String("statusMessage", n.StatusMessage))
	s.dispatchNotice(ctx, bookingID, "cancelled")
	return nil
}

// dispatchNotice enqueues the notification fan-out for a transitioned
// booking. Best effort: a queue hiccup is logged and the webhook is still
// acknowledged.
func (s *DefaultWebhookService) dispatchNotice(ctx context.Context, bookingID, kind string) {
	logger := utils.GetLogger()

	booking, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		logger.Error("failed to load booking for notification", zap.String("bookingId", bookingID), zap.Error(err))
		return
	}

	payload := models.BookingNoticePayload{
		BookingID:   booking.ID,
		Kind:        kind,
		ClientName:  booking.Contact.Name,
		ClientPhone: booking.Contact.Phone,
		ClientEmail: booking.Contact.Email,
		Date:        booking.Date(),
		StartHour:   booking.StartHour(),
		EndHour:     booking.EndHour(),
		TotalPrice:  booking.TotalPrice,
		Currency:    booking.Currency,
	}

	if studio, err := s.StudioRepo.GetByID(ctx, booking.StudioID); err == nil {
		payload.StudioName = studio.Name
		payload.StudioPhone = studio.Phone
	} else {
		logger.Warn("failed to load studio for notification", zap.String("studioId", booking.StudioID), zap.Error(err))
	}

	if err := s.Enqueuer.EnqueueBookingNotice(ctx, payload); err != nil {
		logger.Error("failed to enqueue booking notice", zap.String("bookingId", bookingID), zap.Error(err))
	}
}
