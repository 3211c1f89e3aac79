package notification

import (
	"context"
	"testing"

	"studiobook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSMSSender struct {
	mock.Mock
}

func (m *mockSMSSender) SendSMS(ctx context.Context, to, message string) error {
	return m.Called(ctx, to, message).Error(0)
}

type mockEmailSender struct {
	mock.Mock
}

func (m *mockEmailSender) SendEmail(ctx context.Context, to, toName, subject, body string) error {
	return m.Called(ctx, to, toName, subject, body).Error(0)
}

func noticePayload(kind string) models.BookingNoticePayload {
	return models.BookingNoticePayload{
		BookingID:   "bk-1",
		Kind:        kind,
		ClientName:  "Amara",
		ClientPhone: "+94771234567",
		ClientEmail: "amara@example.com",
		StudioName:  "Echo Chamber",
		StudioPhone: "+94112223344",
		Date:        "2026-09-07",
		StartHour:   10,
		EndHour:     13,
		TotalPrice:  270,
		Currency:    "LKR",
	}
}

func TestSendBookingNoticeReachesAllSinks(t *testing.T) {
	sms := new(mockSMSSender)
	email := new(mockEmailSender)

	sms.On("SendSMS", mock.Anything, "+94771234567", mock.Anything).Return(nil)
	sms.On("SendSMS", mock.Anything, "+94112223344", mock.Anything).Return(nil)
	email.On("SendEmail", mock.Anything, "amara@example.com", "Amara",
		"Booking confirmed at Echo Chamber", mock.Anything).Return(nil)

	svc, err := NewDefaultNotificationService(sms, email)
	require.NoError(t, err)
	require.NoError(t, svc.SendBookingNotice(context.Background(), noticePayload("confirmed")))

	sms.AssertExpectations(t)
	email.AssertExpectations(t)
}

func TestSendBookingNoticeSkipsEmailWithoutAddress(t *testing.T) {
	sms := new(mockSMSSender)
	email := new(mockEmailSender)

	sms.On("SendSMS", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	p := noticePayload("cancelled")
	p.ClientEmail = ""

	svc, err := NewDefaultNotificationService(sms, email)
	require.NoError(t, err)
	require.NoError(t, svc.SendBookingNotice(context.Background(), p))

	email.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSendBookingNoticeToleratesEmailFailure(t *testing.T) {
	sms := new(mockSMSSender)
	email := new(mockEmailSender)

	sms.On("SendSMS", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	email.On("SendEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)

	svc, err := NewDefaultNotificationService(sms, email)
	require.NoError(t, err)
	// The client SMS landed, so a flaky email must not fail the task and
	// trigger a redelivery that would double-text the client.
	assert.NoError(t, svc.SendBookingNotice(context.Background(), noticePayload("confirmed")))
}

func TestSendBookingNoticeClientSMSFailureIsRetryable(t *testing.T) {
	sms := new(mockSMSSender)
	email := new(mockEmailSender)

	sms.On("SendSMS", mock.Anything, "+94771234567", mock.Anything).Return(assert.AnError)

	svc, err := NewDefaultNotificationService(sms, email)
	require.NoError(t, err)
	assert.Error(t, svc.SendBookingNotice(context.Background(), noticePayload("confirmed")))
}

func TestSendBookingNoticeRejectsUnknownKind(t *testing.T) {
	svc, err := NewDefaultNotificationService(new(mockSMSSender), new(mockEmailSender))
	require.NoError(t, err)
	assert.Error(t, svc.SendBookingNotice(context.Background(), noticePayload("rescheduled")))
}
