package booking

import "errors"

var (
	// ErrSlotNotAvailable is returned when a selection begins on a booked or
	// unavailable slot. The selection state is left untouched.
	ErrSlotNotAvailable = errors.New("slot is not available for selection")

	// ErrDraftNotFound is returned when a draft session is missing or expired.
	ErrDraftNotFound = errors.New("booking draft not found or expired")

	// ErrStageNotReady is returned when a forward stage transition is gated.
	ErrStageNotReady = errors.New("current stage requirements not met")

	// ErrSubmitInFlight is returned when a second submission arrives while one
	// is still being processed.
	ErrSubmitInFlight = errors.New("draft submission already in progress")

	// ErrInvalidSubmission is returned when a draft fails server-side
	// validation at submission time.
	ErrInvalidSubmission = errors.New("draft is not ready for submission")
)
