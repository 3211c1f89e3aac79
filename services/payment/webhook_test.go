package payment

import (
	"context"
	"testing"

	"studiobook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) ListForStudioDate(ctx context.Context, studioID, date string) ([]models.Booking, error) {
	args := m.Called(ctx, studioID, date)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *mockBookingRepo) UpdateStatusIfPending(ctx context.Context, id, status, paymentID string) (bool, error) {
	args := m.Called(ctx, id, status, paymentID)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookingRepo) EnsureIndexes() error {
	return m.Called().Error(0)
}

type mockStudioRepo struct {
	mock.Mock
}

func (m *mockStudioRepo) Create(ctx context.Context, s *models.Studio) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockStudioRepo) GetByID(ctx context.Context, id string) (*models.Studio, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*models.Studio), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStudioRepo) CreateVerificationRecord(ctx context.Context, r *models.VerificationRecord) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockStudioRepo) ListVerificationRecords(ctx context.Context, studioID string) ([]models.VerificationRecord, error) {
	args := m.Called(ctx, studioID)
	return args.Get(0).([]models.VerificationRecord), args.Error(1)
}

func (m *mockStudioRepo) EnsureIndexes() error {
	return m.Called().Error(0)
}

type mockEnqueuer struct {
	mock.Mock
}

func (m *mockEnqueuer) EnqueueBookingNotice(ctx context.Context, payload models.BookingNoticePayload) error {
	return m.Called(ctx, payload).Error(0)
}

const (
	testMerchantID = "1213456"
	testSecret     = "S3cret"
)

func signedSuccess(bookingID string) models.PaymentNotification {
	n := models.PaymentNotification{
		MerchantID: testMerchantID,
		OrderID:    bookingID,
		PaymentID:  "pay-900",
		Amount:     "270.00",
		Currency:   "LKR",
		StatusCode: models.PayHereStatusSuccess,
	}
	n.Signature = NotificationSignature(n.MerchantID, n.OrderID, n.Amount, n.Currency, n.StatusCode, testSecret)
	return n
}

func testBooking(id, status string) *models.Booking {
	return &models.Booking{
		ID:       id,
		StudioID: "studio-1",
		SlotKeys: []models.SlotKey{
			models.NewSlotKey("2026-09-07", 10),
			models.NewSlotKey("2026-09-07", 11),
			models.NewSlotKey("2026-09-07", 12),
		},
		Contact:    models.ClientContact{Name: "Amara", Email: "amara@example.com", Phone: "+94771234567"},
		TotalPrice: 270,
		Currency:   "LKR",
		Status:     status,
	}
}

func newWebhookService(bookings *mockBookingRepo, studios *mockStudioRepo, enqueuer *mockEnqueuer) *DefaultWebhookService {
	return &DefaultWebhookService{
		BookingRepo:    bookings,
		StudioRepo:     studios,
		Enqueuer:       enqueuer,
		MerchantID:     testMerchantID,
		MerchantSecret: testSecret,
	}
}

func TestHandleNotificationConfirmsPendingBooking(t *testing.T) {
	bookings := new(mockBookingRepo)
	studios := new(mockStudioRepo)
	enqueuer := new(mockEnqueuer)

	bookings.On("UpdateStatusIfPending", mock.Anything, "bk-1", models.BookingStatusConfirmed, "pay-900").
		Return(true, nil)
	bookings.On("GetByID", mock.Anything, "bk-1").
		Return(testBooking("bk-1", models.BookingStatusConfirmed), nil)
	studios.On("GetByID", mock.Anything, "studio-1").
		Return(&models.Studio{ID: "studio-1", Name: "Echo Chamber", Phone: "+94112223344"}, nil)
	enqueuer.On("EnqueueBookingNotice", mock.Anything, mock.MatchedBy(func(p models.BookingNoticePayload) bool {
		return p.BookingID == "bk-1" && p.Kind == "confirmed" && p.StudioName == "Echo Chamber"
	})).Return(nil)

	svc := newWebhookService(bookings, studios, enqueuer)
	err := svc.HandleNotification(context.Background(), signedSuccess("bk-1"))
	require.NoError(t, err)

	bookings.AssertExpectations(t)
	enqueuer.AssertExpectations(t)
}

func TestHandleNotificationDuplicateDeliveryIsNoOp(t *testing.T) {
	bookings := new(mockBookingRepo)
	studios := new(mockStudioRepo)
	enqueuer := new(mockEnqueuer)

	bookings.On("UpdateStatusIfPending", mock.Anything, "bk-1", models.BookingStatusConfirmed, "pay-900").
		Return(false, nil)
	bookings.On("GetByID", mock.Anything, "bk-1").
		Return(testBooking("bk-1", models.BookingStatusConfirmed), nil)

	svc := newWebhookService(bookings, studios, enqueuer)
	err := svc.HandleNotification(context.Background(), signedSuccess("bk-1"))
	require.NoError(t, err)

	// An already settled booking sends no second notice.
	enqueuer.AssertNotCalled(t, "EnqueueBookingNotice", mock.Anything, mock.Anything)
}

func TestHandleNotificationUnknownBooking(t *testing.T) {
	bookings := new(mockBookingRepo)
	studios := new(mockStudioRepo)
	enqueuer := new(mockEnqueuer)

	bookings.On("UpdateStatusIfPending", mock.Anything, "ghost", models.BookingStatusConfirmed, "pay-900").
		Return(false, nil)
	bookings.On("GetByID", mock.Anything, "ghost").
		Return(nil, assert.AnError)

	svc := newWebhookService(bookings, studios, enqueuer)
	err := svc.HandleNotification(context.Background(), signedSuccess("ghost"))
	assert.ErrorIs(t, err, ErrUnknownBooking)
}

func TestHandleNotificationRejectsBadSignature(t *testing.T) {
	bookings := new(mockBookingRepo)
	studios := new(mockStudioRepo)
	enqueuer := new(mockEnqueuer)

	n := signedSuccess("bk-1")
	n.Amount = "1.00" // tampered after signing

	svc := newWebhookService(bookings, studios, enqueuer)
	err := svc.HandleNotification(context.Background(), n)
	assert.ErrorIs(t, err, ErrInvalidSignature)

	// Nothing may be read or written on an unauthenticated notification.
	bookings.AssertNotCalled(t, "UpdateStatusIfPending", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	bookings.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	enqueuer.AssertNotCalled(t, "EnqueueBookingNotice", mock.Anything, mock.Anything)
}

func TestHandleNotificationPendingCodeAcknowledged(t *testing.T) {
	bookings := new(mockBookingRepo)
	studios := new(mockStudioRepo)
	enqueuer := new(mockEnqueuer)

	n := signedSuccess("bk-1")
	n.StatusCode = models.PayHereStatusPending
	n.Signature = NotificationSignature(n.MerchantID, n.OrderID, n.Amount, n.Currency, n.StatusCode, testSecret)

	svc := newWebhookService(bookings, studios, enqueuer)
	require.NoError(t, svc.HandleNotification(context.Background(), n))

	bookings.AssertNotCalled(t, "UpdateStatusIfPending", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleNotificationFailureCodeCancels(t *testing.T) {
	bookings := new(mockBookingRepo)
	studios := new(mockStudioRepo)
	enqueuer := new(mockEnqueuer)

	n := signedSuccess("bk-1")
	n.StatusCode = "-2"
	n.StatusMessage = "card declined"
	n.Signature = NotificationSignature(n.MerchantID, n.OrderID, n.Amount, n.Currency, n.StatusCode, testSecret)

	bookings.On("UpdateStatusIfPending", mock.Anything, "bk-1", models.BookingStatusCancelled, "pay-900").
		Return(true, nil)
	bookings.On("GetByID", mock.Anything, "bk-1").
		Return(testBooking("bk-1", models.BookingStatusCancelled), nil)
	studios.On("GetByID", mock.Anything, "studio-1").
		Return(&models.Studio{ID: "studio-1", Name: "Echo Chamber"}, nil)
	enqueuer.On("EnqueueBookingNotice", mock.Anything, mock.MatchedBy(func(p models.BookingNoticePayload) bool {
		return p.Kind == "cancelled"
	})).Return(nil)

	svc := newWebhookService(bookings, studios, enqueuer)
	require.NoError(t, svc.HandleNotification(context.Background(), n))

	bookings.AssertExpectations(t)
	enqueuer.AssertExpectations(t)
}

func TestHandleNotificationFailureCodeUnknownBooking(t *testing.T) {
	bookings := new(mockBookingRepo)
	studios := new(mockStudioRepo)
	enqueuer := new(mockEnqueuer)

	n := signedSuccess("ghost")
	n.StatusCode = "-2"
	n.Signature = NotificationSignature(n.MerchantID, n.OrderID, n.Amount, n.Currency, n.StatusCode, testSecret)

	bookings.On("UpdateStatusIfPending", mock.Anything, "ghost", models.BookingStatusCancelled, "pay-900").
		Return(false, nil)
	bookings.On("GetByID", mock.Anything, "ghost").
		Return(nil, assert.AnError)

	// A failure code for a booking we never created is an error, exactly like
	// the success path.
	svc := newWebhookService(bookings, studios, enqueuer)
	err := svc.HandleNotification(context.Background(), n)
	assert.ErrorIs(t, err, ErrUnknownBooking)
	enqueuer.AssertNotCalled(t, "EnqueueBookingNotice", mock.Anything, mock.Anything)
}

func TestHandleNotificationFailureCodeForSettledBookingIsNoOp(t *testing.T) {
	bookings := new(mockBookingRepo)
	studios := new(mockStudioRepo)
	enqueuer := new(mockEnqueuer)

	n := signedSuccess("bk-1")
	n.StatusCode = "-3"
	n.Signature = NotificationSignature(n.MerchantID, n.OrderID, n.Amount, n.Currency, n.StatusCode, testSecret)

	bookings.On("UpdateStatusIfPending", mock.Anything, "bk-1", models.BookingStatusCancelled, "pay-900").
		Return(false, nil)
	bookings.On("GetByID", mock.Anything, "bk-1").
		Return(testBooking("bk-1", models.BookingStatusConfirmed), nil)

	svc := newWebhookService(bookings, studios, enqueuer)
	require.NoError(t, svc.HandleNotification(context.Background(), n))
	enqueuer.AssertNotCalled(t, "EnqueueBookingNotice", mock.Anything, mock.Anything)
}

func TestHandleNotificationFallsBackToOrderID(t *testing.T) {
	bookings := new(mockBookingRepo)
	studios := new(mockStudioRepo)
	enqueuer := new(mockEnqueuer)

	// No custom_1: the order ID doubles as the booking ID.
	n := signedSuccess("order-as-booking")
	n.BookingID = ""

	bookings.On("UpdateStatusIfPending", mock.Anything, "order-as-booking", models.BookingStatusConfirmed, "pay-900").
		Return(false, nil)
	bookings.On("GetByID", mock.Anything, "order-as-booking").
		Return(testBooking("order-as-booking", models.BookingStatusConfirmed), nil)

	svc := newWebhookService(bookings, studios, enqueuer)
	require.NoError(t, svc.HandleNotification(context.Background(), n))
	bookings.AssertExpectations(t)
}
