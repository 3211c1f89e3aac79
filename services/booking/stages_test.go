package booking

import (
	"testing"

	"studiobook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func committedSelection(date string, hours ...int) models.SelectionState {
	slots := make([]models.SlotKey, 0, len(hours))
	for _, h := range hours {
		slots = append(slots, models.NewSlotKey(date, h))
	}
	return models.SelectionState{Slots: slots}
}

func TestAdvanceStageRequiresService(t *testing.T) {
	draft := &models.BookingDraft{Stage: models.StageService}

	err := AdvanceStage(draft)
	require.ErrorIs(t, err, ErrStageNotReady)
	assert.Equal(t, models.StageService, draft.Stage)

	draft.ServiceID = "svc-1"
	require.NoError(t, AdvanceStage(draft))
	assert.Equal(t, models.StageTime, draft.Stage)
}

func TestAdvanceStageRequiresCommittedSlots(t *testing.T) {
	draft := &models.BookingDraft{Stage: models.StageTime, ServiceID: "svc-1"}

	err := AdvanceStage(draft)
	require.ErrorIs(t, err, ErrStageNotReady)

	// An in-progress selection does not count as committed.
	draft.Selection = committedSelection("2026-09-07", 10, 11)
	draft.Selection.Active = true
	require.ErrorIs(t, AdvanceStage(draft), ErrStageNotReady)

	draft.Selection.Active = false
	require.NoError(t, AdvanceStage(draft))
	assert.Equal(t, models.StageDetails, draft.Stage)
}

func TestAdvanceStageRequiresFullContact(t *testing.T) {
	draft := &models.BookingDraft{
		Stage:     models.StageDetails,
		ServiceID: "svc-1",
		Selection: committedSelection("2026-09-07", 10),
	}

	partials := []models.ClientContact{
		{},
		{Name: "Amara"},
		{Name: "Amara", Email: "amara@example.com"},
		{Name: "Amara", Phone: "+94771234567"},
	}
	for _, contact := range partials {
		draft.Contact = contact
		require.ErrorIs(t, AdvanceStage(draft), ErrStageNotReady)
		assert.Equal(t, models.StageDetails, draft.Stage)
	}

	draft.Contact = models.ClientContact{Name: "Amara", Email: "amara@example.com", Phone: "+94771234567"}
	require.NoError(t, AdvanceStage(draft))
	assert.Equal(t, models.StagePayment, draft.Stage)
}

func TestAdvanceStageStopsAtPayment(t *testing.T) {
	draft := &models.BookingDraft{Stage: models.StagePayment}
	require.ErrorIs(t, AdvanceStage(draft), ErrStageNotReady)
	assert.Equal(t, models.StagePayment, draft.Stage)
}

func TestBackStageKeepsDataAndFloorsAtService(t *testing.T) {
	draft := &models.BookingDraft{
		Stage:     models.StageDetails,
		ServiceID: "svc-1",
		Selection: committedSelection("2026-09-07", 10, 11),
		Contact:   models.ClientContact{Name: "Amara"},
	}

	BackStage(draft)
	assert.Equal(t, models.StageTime, draft.Stage)
	assert.Equal(t, "svc-1", draft.ServiceID)
	assert.Len(t, draft.SelectedSlots(), 2)

	BackStage(draft)
	BackStage(draft)
	assert.Equal(t, models.StageService, draft.Stage)
}

func TestRepriceFollowsSelection(t *testing.T) {
	draft := &models.BookingDraft{
		HourlyRate: 100,
		Selection:  committedSelection("2026-09-07", 10, 11, 12),
	}

	Reprice(draft)
	assert.Equal(t, 270.0, draft.TotalPrice)

	draft.Selection = models.SelectionState{}
	Reprice(draft)
	assert.Equal(t, 0.0, draft.TotalPrice)
}
