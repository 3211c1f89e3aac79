package booking

import (
	"context"
	"fmt"

	"studiobook/models"
)

// SelectionEngine turns slot interactions into a validated selection range.
// All range computation is pure over the SelectionState; the oracle is only
// consulted when a new selection begins, and its answer is authoritative at
// that moment.
type SelectionEngine struct {
	Oracle AvailabilityOracle
}

// BeginOrCommitSelection either starts a new selection anchored at the slot
// (when none is in progress and the slot is available) or commits the one in
// progress, freezing its last computed range. The returned bool reports a
// commit. Beginning on a booked or unavailable slot returns
// ErrSlotNotAvailable and leaves the state unchanged.
func (e *SelectionEngine) BeginOrCommitSelection(ctx context.Context, studioID string, state models.SelectionState, slot models.SlotKey) (models.SelectionState, bool, error) {
	if state.Active {
		state.Active = false
		return state, true, nil
	}

	date, hour, err := slot.Parts()
	if err != nil {
		return state, false, err
	}

	status, err := e.Oracle.Status(ctx, studioID, date, hour)
	if err != nil {
		return state, false, fmt.Errorf("availability check failed for %s: %w", slot, err)
	}
	if status != models.SlotAvailable {
		return state, false, fmt.Errorf("%w: %s is %s", ErrSlotNotAvailable, slot, status)
	}

	return models.SelectionState{
		Active: true,
		Anchor: slot,
		Cursor: slot,
		Slots:  []models.SlotKey{slot},
	}, false, nil
}

// ExtendSelection recomputes the active range as the inclusive hour span
// between the anchor and the cursor slot. A cursor on a different date than
// the anchor collapses the range to empty; multi-day contiguous ranges are
// not a thing in this model. No-op when no selection is in progress.
// Pure and idempotent given (anchor, cursor).
func ExtendSelection(state models.SelectionState, slot models.SlotKey) models.SelectionState {
	if !state.Active {
		return state
	}

	state.Cursor = slot

	anchorDate, anchorHour, err := state.Anchor.Parts()
	if err != nil {
		state.Slots = nil
		return state
	}
	cursorDate, cursorHour, err := slot.Parts()
	if err != nil || cursorDate != anchorDate {
		state.Slots = nil
		return state
	}

	lo, hi := anchorHour, cursorHour
	if lo > hi {
		lo, hi = hi, lo
	}

	slots := make([]models.SlotKey, 0, hi-lo+1)
	for h := lo; h <= hi; h++ {
		slots = append(slots, models.NewSlotKey(anchorDate, h))
	}
	state.Slots = slots
	return state
}

// CancelSelection clears any selection state without committing it.
func CancelSelection(models.SelectionState) models.SelectionState {
	return models.SelectionState{}
}
