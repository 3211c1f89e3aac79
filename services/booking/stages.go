package booking

import (
	"fmt"

	"studiobook/models"
)

// AdvanceStage moves the draft one stage forward if the current stage's gate
// is satisfied. Gates: a chosen service to leave Service, a non-empty
// committed slot range to leave Time, and all three contact fields to leave
// Details.
func AdvanceStage(d *models.BookingDraft) error {
	switch d.Stage {
	case models.StageService:
		if !d.HasService() {
			return fmt.Errorf("%w: choose a service first", ErrStageNotReady)
		}
	case models.StageTime:
		if d.Selection.Active || len(d.SelectedSlots()) == 0 {
			return fmt.Errorf("%w: commit at least one time slot", ErrStageNotReady)
		}
	case models.StageDetails:
		if !d.HasContact() {
			return fmt.Errorf("%w: name, email and phone are required", ErrStageNotReady)
		}
	default:
		return fmt.Errorf("%w: already at the final stage", ErrStageNotReady)
	}
	d.Stage++
	return nil
}

// BackStage moves the draft one stage back. Always permitted; entered data is
// kept.
func BackStage(d *models.BookingDraft) {
	if d.Stage > models.StageService {
		d.Stage--
	}
}

// Reprice recomputes the draft total from its current service rate and slot
// count. Called after every selection or service mutation.
func Reprice(d *models.BookingDraft) {
	d.TotalPrice = TotalPrice(d.HourlyRate, len(d.SelectedSlots()))
}
