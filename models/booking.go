package models

import "time"

// Booking statuses. A booking is created pending and moves to confirmed or
// cancelled exactly once; confirmed is terminal for the happy path.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// ClientContact is the contact block captured in the wizard's details stage.
type ClientContact struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"`
	Notes string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Booking represents a persisted booking record.
type Booking struct {
	ID         string        `bson:"id" json:"id"`
	StudioID   string        `bson:"studio_id" json:"studio_id"`
	ServiceID  string        `bson:"service_id" json:"service_id"`
	SlotKeys   []SlotKey     `bson:"slot_keys" json:"slot_keys"` // hour-ordered, single date
	Contact    ClientContact `bson:"contact" json:"contact"`
	TotalPrice float64       `bson:"total_price" json:"total_price"`
	Currency   string        `bson:"currency" json:"currency"`
	Status     string        `bson:"status" json:"status"`
	PaymentID  string        `bson:"payment_id,omitempty" json:"payment_id,omitempty"`
	CreatedAt  time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time     `bson:"updated_at" json:"updated_at"`
}

// Date returns the booking's calendar date, taken from its first slot key.
func (b *Booking) Date() string {
	if len(b.SlotKeys) == 0 {
		return ""
	}
	return b.SlotKeys[0].Date()
}

// StartHour returns the first booked hour, -1 when there are no slots.
func (b *Booking) StartHour() int {
	if len(b.SlotKeys) == 0 {
		return -1
	}
	return b.SlotKeys[0].Hour()
}

// EndHour returns the hour after the last booked slot, -1 when there are no slots.
func (b *Booking) EndHour() int {
	if len(b.SlotKeys) == 0 {
		return -1
	}
	return b.SlotKeys[len(b.SlotKeys)-1].Hour() + 1
}
