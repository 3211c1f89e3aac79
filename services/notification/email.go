package notification

import (
	"context"
	"fmt"

	"studiobook/config"
	"studiobook/utils"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailSender sends an email to a single recipient.
type EmailSender interface {
	SendEmail(ctx context.Context, to, toName, subject, body string) error
}

// SendGridEmailSender delivers email through the SendGrid API.
type SendGridEmailSender struct {
	client   *sendgrid.Client
	from     string
	fromName string
}

// NewSendGridEmailSender builds a sender from the configured SendGrid
// settings. Without an API key the client stays nil and messages are logged
// instead, mirroring the SMS sender's development fallback.
func NewSendGridEmailSender() *SendGridEmailSender {
	s := &SendGridEmailSender{
		from:     config.AppConfig.EmailFrom,
		fromName: config.AppConfig.EmailFromName,
	}
	if config.AppConfig.SendGridAPIKey != "" {
		s.client = sendgrid.NewSendClient(config.AppConfig.SendGridAPIKey)
	}
	return s
}

func (s *SendGridEmailSender) SendEmail(ctx context.Context, to, toName, subject, body string) error {
	if s.client == nil {
		utils.GetLogger().Sugar().Infof("Sending email to %s: %s", to, subject)
		return nil
	}

	message := mail.NewSingleEmail(
		mail.NewEmail(s.fromName, s.from),
		subject,
		mail.NewEmail(toName, to),
		body,
		body,
	)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	return nil
}
