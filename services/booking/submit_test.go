package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"studiobook/models"
	"studiobook/services/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memSessionStore is an in-memory SessionStore for exercising the draft and
// lock flow without Redis.
type memSessionStore struct {
	data map[string]string
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{data: make(map[string]string)}
}

func (s *memSessionStore) Get(_ context.Context, key string) (string, error) {
	v, ok := s.data[key]
	if !ok {
		return "", errors.New("key not found")
	}
	return v, nil
}

func (s *memSessionStore) Set(_ context.Context, key, value string, _ time.Duration) error {
	s.data[key] = value
	return nil
}

func (s *memSessionStore) Del(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

func (s *memSessionStore) SetNX(_ context.Context, key, value string, _ time.Duration) (bool, error) {
	if _, ok := s.data[key]; ok {
		return false, nil
	}
	s.data[key] = value
	return true, nil
}

func (s *memSessionStore) has(key string) bool {
	_, ok := s.data[key]
	return ok
}

func submitReadyService(store SessionStore, bookings *fakeBookingRepo, oracle AvailabilityOracle) *DefaultBookingWizardService {
	return &DefaultBookingWizardService{
		StudioRepo:  &fakeStudioRepo{studio: mondayStudio()},
		BookingRepo: bookings,
		Oracle:      oracle,
		Checkout: &payment.PayHereCheckout{
			MerchantID:     "1213456",
			MerchantSecret: "S3cret",
			Currency:       "LKR",
		},
		Sessions: store,
	}
}

func paymentStageDraft() *models.BookingDraft {
	return &models.BookingDraft{
		DraftID:    "draft-1",
		StudioID:   "studio-1",
		Stage:      models.StagePayment,
		ServiceID:  "svc-1",
		HourlyRate: 100,
		Selection: models.SelectionState{
			Slots: []models.SlotKey{
				models.NewSlotKey("2026-09-07", 12),
				models.NewSlotKey("2026-09-07", 10),
				models.NewSlotKey("2026-09-07", 11),
			},
		},
		Contact:    models.ClientContact{Name: "Amara", Email: "amara@example.com", Phone: "+94771234567"},
		TotalPrice: 270,
		CreatedAt:  time.Now(),
	}
}

func seedDraft(t *testing.T, svc *DefaultBookingWizardService, draft *models.BookingDraft) {
	t.Helper()
	require.NoError(t, svc.saveDraft(context.Background(), draft))
}

func TestSubmitCreatesPendingBookingAndClearsDraft(t *testing.T) {
	store := newMemSessionStore()
	bookings := &fakeBookingRepo{}
	svc := submitReadyService(store, bookings, &stubOracle{})
	seedDraft(t, svc, paymentStageDraft())

	bkg, session, err := svc.Submit(context.Background(), "draft-1")
	require.NoError(t, err)
	require.NotNil(t, bkg)
	require.NotNil(t, session)

	assert.Equal(t, models.BookingStatusPending, bkg.Status)
	assert.Equal(t, session.OrderID, bkg.ID)
	assert.Equal(t, 270.0, bkg.TotalPrice)
	assert.Equal(t, "270.00", session.Amount)
	assert.Equal(t, "LKR", bkg.Currency)

	// Slots are stored hour-ordered regardless of click order.
	require.Len(t, bkg.SlotKeys, 3)
	assert.Equal(t, 10, bkg.SlotKeys[0].Hour())
	assert.Equal(t, 12, bkg.SlotKeys[2].Hour())

	require.Len(t, bookings.created, 1)
	assert.False(t, store.has("draft:draft-1"))
	assert.False(t, store.has("submit:draft-1"))
}

func TestSubmitFailureKeepsDraftAndReleasesLock(t *testing.T) {
	store := newMemSessionStore()
	bookings := &fakeBookingRepo{}
	// One of the selected slots got booked between commit and submit.
	oracle := &stubOracle{statuses: map[models.SlotKey]models.SlotStatus{
		models.NewSlotKey("2026-09-07", 11): models.SlotBooked,
	}}
	svc := submitReadyService(store, bookings, oracle)
	seedDraft(t, svc, paymentStageDraft())

	_, _, err := svc.Submit(context.Background(), "draft-1")
	require.ErrorIs(t, err, ErrSlotNotAvailable)

	assert.Empty(t, bookings.created)
	assert.True(t, store.has("draft:draft-1"), "draft must survive a failed submit")
	assert.False(t, store.has("submit:draft-1"), "lock must be released for retry")

	// The same draft submits cleanly once the conflict clears.
	svc.Oracle = &stubOracle{}
	_, _, err = svc.Submit(context.Background(), "draft-1")
	require.NoError(t, err)
	assert.Len(t, bookings.created, 1)
}

func TestSubmitRejectsConcurrentSubmission(t *testing.T) {
	store := newMemSessionStore()
	bookings := &fakeBookingRepo{}
	svc := submitReadyService(store, bookings, &stubOracle{})
	seedDraft(t, svc, paymentStageDraft())

	// Another submission holds the lock.
	locked, err := store.SetNX(context.Background(), "submit:draft-1", "1", time.Minute)
	require.NoError(t, err)
	require.True(t, locked)

	_, _, err = svc.Submit(context.Background(), "draft-1")
	require.ErrorIs(t, err, ErrSubmitInFlight)
	assert.Empty(t, bookings.created)
	assert.True(t, store.has("draft:draft-1"))
}

func TestSubmitRepoFailureKeepsDraft(t *testing.T) {
	store := newMemSessionStore()
	bookings := &fakeBookingRepo{createErr: assert.AnError}
	svc := submitReadyService(store, bookings, &stubOracle{})
	seedDraft(t, svc, paymentStageDraft())

	_, _, err := svc.Submit(context.Background(), "draft-1")
	require.Error(t, err)
	assert.True(t, store.has("draft:draft-1"))
	assert.False(t, store.has("submit:draft-1"))
}

func TestSubmitRevalidatesDraftServerSide(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *models.BookingDraft)
	}{
		{"not at the payment stage", func(d *models.BookingDraft) { d.Stage = models.StageDetails }},
		{"no service chosen", func(d *models.BookingDraft) { d.ServiceID = "" }},
		{"no committed slots", func(d *models.BookingDraft) { d.Selection.Slots = nil }},
		{"selection still in progress", func(d *models.BookingDraft) { d.Selection.Active = true }},
		{"missing contact fields", func(d *models.BookingDraft) { d.Contact.Phone = "" }},
		{"slots span multiple dates", func(d *models.BookingDraft) {
			d.Selection.Slots = append(d.Selection.Slots, models.NewSlotKey("2026-09-08", 10))
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newMemSessionStore()
			bookings := &fakeBookingRepo{}
			svc := submitReadyService(store, bookings, &stubOracle{})

			draft := paymentStageDraft()
			tc.mutate(draft)
			seedDraft(t, svc, draft)

			_, _, err := svc.Submit(context.Background(), "draft-1")
			require.ErrorIs(t, err, ErrInvalidSubmission)
			assert.Empty(t, bookings.created)
			assert.True(t, store.has("draft:draft-1"))
		})
	}
}

func TestSubmitUnknownDraft(t *testing.T) {
	svc := submitReadyService(newMemSessionStore(), &fakeBookingRepo{}, &stubOracle{})
	_, _, err := svc.Submit(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}
