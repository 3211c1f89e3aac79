package models

import "time"

// DayHours is the bookable window for one weekday. A closed day has Open == Close.
type DayHours struct {
	Open  int `bson:"open" json:"open"`   // first bookable hour, inclusive
	Close int `bson:"close" json:"close"` // last bookable hour, exclusive
}

// BusinessHours maps time.Weekday (0 = Sunday) to that day's window.
type BusinessHours map[int]DayHours

// StudioService is one bookable offering of a studio.
type StudioService struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	HourlyRate  float64 `bson:"hourly_rate" json:"hourly_rate"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
}

// Studio represents a bookable studio listing.
type Studio struct {
	ID        string          `bson:"id" json:"id"`
	Name      string          `bson:"name" json:"name"`
	Location  string          `bson:"location,omitempty" json:"location,omitempty"`
	Phone     string          `bson:"phone,omitempty" json:"phone,omitempty"`
	Hours     BusinessHours   `bson:"hours" json:"hours"`
	Services  []StudioService `bson:"services" json:"services"`
	Verified  bool            `bson:"verified" json:"verified"`
	CreatedAt time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time       `bson:"updated_at" json:"updated_at"`
}

// ServiceByID looks up a service on the studio's catalogue.
func (s *Studio) ServiceByID(serviceID string) (StudioService, bool) {
	for _, svc := range s.Services {
		if svc.ID == serviceID {
			return svc, true
		}
	}
	return StudioService{}, false
}

// VerificationRecord stores a studio's submitted identity document for review.
type VerificationRecord struct {
	ID           string    `bson:"id" json:"id"`
	StudioID     string    `bson:"studio_id" json:"studio_id"`
	DocumentType string    `bson:"document_type" json:"document_type"`
	DocumentRef  string    `bson:"document_ref" json:"document_ref"`
	LegalName    string    `bson:"legal_name" json:"legal_name"`
	Status       string    `bson:"status" json:"status"` // "submitted", review is external
	SubmittedAt  time.Time `bson:"submitted_at" json:"submitted_at"`
}
