package notification

import (
	"context"
	"fmt"

	"studiobook/models"
	"studiobook/utils"

	"go.uber.org/zap"
)

// NotificationService delivers booking notices to the people involved.
type NotificationService interface {
	SendBookingNotice(ctx context.Context, payload models.BookingNoticePayload) error
}

// DefaultNotificationService is the production implementation: SMS and email
// to the client, SMS to the studio when a phone is on record.
type DefaultNotificationService struct {
	SMS   SMSSender
	Email EmailSender
}

func NewDefaultNotificationService(sms SMSSender, email EmailSender) (*DefaultNotificationService, error) {
	if sms == nil {
		return nil, fmt.Errorf("notification service initialization error: SMS sender is nil")
	}
	if email == nil {
		return nil, fmt.Errorf("notification service initialization error: email sender is nil")
	}
	return &DefaultNotificationService{SMS: sms, Email: email}, nil
}

func (s *DefaultNotificationService) SendBookingNotice(ctx context.Context, p models.BookingNoticePayload) error {
	logger := utils.GetLogger()

	window := fmt.Sprintf("%02d:00-%02d:00", p.StartHour, p.EndHour)

	var clientMsg, studioMsg, subject string
	switch p.Kind {
	case "confirmed":
		subject = fmt.Sprintf("Booking confirmed at %s", p.StudioName)
		clientMsg = fmt.Sprintf("Hi %s, your booking at %s on %s (%s) is confirmed. Total: %s %.2f. Ref: %s",
			p.ClientName, p.StudioName, p.Date, window, p.Currency, p.TotalPrice, p.BookingID)
		studioMsg = fmt.Sprintf("New confirmed booking on %s (%s) for %s (%s). Ref: %s",
			p.Date, window, p.ClientName, p.ClientPhone, p.BookingID)
	case "cancelled":
		subject = fmt.Sprintf("Booking cancelled at %s", p.StudioName)
		clientMsg = fmt.Sprintf("Hi %s, your booking at %s on %s (%s) could not be completed and was cancelled. Ref: %s",
			p.ClientName, p.StudioName, p.Date, window, p.BookingID)
		studioMsg = fmt.Sprintf("Booking on %s (%s) for %s was cancelled. Ref: %s",
			p.Date, window, p.ClientName, p.BookingID)
	default:
		return fmt.Errorf("unknown booking notice kind %q", p.Kind)
	}

	if err := s.SMS.SendSMS(ctx, p.ClientPhone, clientMsg); err != nil {
		return fmt.Errorf("failed to notify client for booking %s: %w", p.BookingID, err)
	}

	if p.ClientEmail != "" {
		if err := s.Email.SendEmail(ctx, p.ClientEmail, p.ClientName, subject, clientMsg); err != nil {
			// The SMS already landed; the email side alone is not worth a
			// queue retry that would double-text the client.
			logger.Warn("failed to email client",
				zap.String("bookingId", p.BookingID),
				zap.Error(err))
		}
	}

	if p.StudioPhone != "" {
		if err := s.SMS.SendSMS(ctx, p.StudioPhone, studioMsg); err != nil {
			logger.Warn("failed to notify studio",
				zap.String("bookingId", p.BookingID),
				zap.Error(err))
		}
	}

	logger.Info("booking notice delivered",
		zap.String("bookingId", p.BookingID),
		zap.String("kind", p.Kind))
	return nil
}
