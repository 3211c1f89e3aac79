package models

// BookingNoticePayload is the queued payload for booking notifications.
type BookingNoticePayload struct {
	BookingID   string  `json:"bookingId"`
	Kind        string  `json:"kind"` // "confirmed" or "cancelled"
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	ClientEmail string  `json:"clientEmail"`
	StudioName  string  `json:"studioName"`
	StudioPhone string  `json:"studioPhone,omitempty"`
	Date        string  `json:"date"`
	StartHour   int     `json:"startHour"`
	EndHour     int     `json:"endHour"`
	TotalPrice  float64 `json:"totalPrice"`
	Currency    string  `json:"currency"`
}
