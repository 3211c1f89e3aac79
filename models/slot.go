package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SlotStatus describes how one bookable hour presents on the grid.
type SlotStatus string

const (
	SlotAvailable   SlotStatus = "available"
	SlotBooked      SlotStatus = "booked"
	SlotUnavailable SlotStatus = "unavailable"
	SlotSelected    SlotStatus = "selected"
)

// SlotKey identifies one bookable hour at a studio, formatted "YYYY-MM-DD-HH:00".
type SlotKey string

// NewSlotKey builds a slot key from a calendar date ("YYYY-MM-DD") and an hour (0-23).
func NewSlotKey(date string, hour int) SlotKey {
	return SlotKey(fmt.Sprintf("%s-%02d:00", date, hour))
}

// Parts splits a slot key into its date and hour components.
func (k SlotKey) Parts() (string, int, error) {
	s := string(k)
	if len(s) != 16 || !strings.HasSuffix(s, ":00") || s[10] != '-' {
		return "", 0, fmt.Errorf("malformed slot key %q", s)
	}
	date := s[:10]
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", 0, fmt.Errorf("malformed slot key %q: %w", s, err)
	}
	hour, err := strconv.Atoi(s[11:13])
	if err != nil || hour < 0 || hour > 23 {
		return "", 0, fmt.Errorf("malformed slot key %q: bad hour", s)
	}
	return date, hour, nil
}

// Date returns the calendar date portion of the key, empty if malformed.
func (k SlotKey) Date() string {
	date, _, err := k.Parts()
	if err != nil {
		return ""
	}
	return date
}

// Hour returns the hour portion of the key, -1 if malformed.
func (k SlotKey) Hour() int {
	_, hour, err := k.Parts()
	if err != nil {
		return -1
	}
	return hour
}

// SelectionState is the serializable state of an in-progress slot selection.
// The committed range is whatever Slots holds once Active flips back to false.
type SelectionState struct {
	Active bool      `json:"active"`
	Anchor SlotKey   `json:"anchor,omitempty"`
	Cursor SlotKey   `json:"cursor,omitempty"`
	Slots  []SlotKey `json:"slots,omitempty"`
}

// DaySlots is one day's worth of grid statuses, keyed by hour.
type DaySlots struct {
	Date  string             `json:"date"`
	Hours map[int]SlotStatus `json:"hours"`
}
