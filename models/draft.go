package models

import "time"

// Wizard stages, in order. Forward transitions are gated, backward transitions
// are always allowed and never discard entered data.
const (
	StageService = 1
	StageTime    = 2
	StageDetails = 3
	StagePayment = 4
)

// BookingDraft holds wizard state between the first click and submission.
// It lives in the session cache and is discarded once submitted.
type BookingDraft struct {
	DraftID    string         `json:"draftId"`
	StudioID   string         `json:"studioId"`
	Stage      int            `json:"stage"`
	ServiceID  string         `json:"serviceId,omitempty"`
	HourlyRate float64        `json:"hourlyRate,omitempty"`
	Selection  SelectionState `json:"selection"`
	Contact    ClientContact  `json:"contact"`
	TotalPrice float64        `json:"totalPrice"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// SelectedSlots returns the committed (or in-progress) slot range.
func (d *BookingDraft) SelectedSlots() []SlotKey {
	return d.Selection.Slots
}

// HasService reports whether a service has been chosen.
func (d *BookingDraft) HasService() bool {
	return d.ServiceID != ""
}

// HasContact reports whether all required contact fields are populated.
func (d *BookingDraft) HasContact() bool {
	return d.Contact.Name != "" && d.Contact.Email != "" && d.Contact.Phone != ""
}
