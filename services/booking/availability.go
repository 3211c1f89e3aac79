package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "studiobook/database/repository/booking"
	studioRepo "studiobook/database/repository/studio"
	"studiobook/models"
)

// AvailabilityOracle answers whether a given (studio, date, hour) slot is
// open, booked, or outside business hours. Queries are side-effect free and
// every answer is authoritative at the moment it is given.
type AvailabilityOracle interface {
	Status(ctx context.Context, studioID, date string, hour int) (models.SlotStatus, error)
}

// StorageAvailabilityOracle resolves slot status deterministically against
// stored business hours and reservation records.
type StorageAvailabilityOracle struct {
	StudioRepo  studioRepo.StudioRepository
	BookingRepo bookingRepo.BookingRepository
}

func (o *StorageAvailabilityOracle) Status(ctx context.Context, studioID, date string, hour int) (models.SlotStatus, error) {
	studio, err := o.StudioRepo.GetByID(ctx, studioID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve studio for availability: %w", err)
	}

	bookings, err := o.BookingRepo.ListForStudioDate(ctx, studioID, date)
	if err != nil {
		return "", fmt.Errorf("failed to load reservations for availability: %w", err)
	}

	return slotStatus(studio, bookings, date, hour)
}

// WeekGrid computes the 7-day grid of slot statuses starting at weekStart
// ("YYYY-MM-DD"). One studio fetch and one reservation query per day.
func (o *StorageAvailabilityOracle) WeekGrid(ctx context.Context, studioID, weekStart string) ([]models.DaySlots, error) {
	start, err := time.Parse("2006-01-02", weekStart)
	if err != nil {
		return nil, fmt.Errorf("invalid week start date %q: %w", weekStart, err)
	}

	studio, err := o.StudioRepo.GetByID(ctx, studioID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve studio for availability: %w", err)
	}

	grid := make([]models.DaySlots, 0, 7)
	for d := 0; d < 7; d++ {
		date := start.AddDate(0, 0, d).Format("2006-01-02")

		bookings, err := o.BookingRepo.ListForStudioDate(ctx, studioID, date)
		if err != nil {
			return nil, fmt.Errorf("failed to load reservations for %s: %w", date, err)
		}

		day := models.DaySlots{Date: date, Hours: make(map[int]models.SlotStatus, 24)}
		for h := 0; h < 24; h++ {
			status, err := slotStatus(studio, bookings, date, h)
			if err != nil {
				return nil, err
			}
			day.Hours[h] = status
		}
		grid = append(grid, day)
	}
	return grid, nil
}

// slotStatus is the shared status resolution: outside business hours wins,
// then overlap with any live reservation, then available.
func slotStatus(studio *models.Studio, bookings []models.Booking, date string, hour int) (models.SlotStatus, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}

	hours, ok := studio.Hours[int(day.Weekday())]
	if !ok || hour < hours.Open || hour >= hours.Close {
		return models.SlotUnavailable, nil
	}

	key := models.NewSlotKey(date, hour)
	for _, b := range bookings {
		for _, k := range b.SlotKeys {
			if k == key {
				return models.SlotBooked, nil
			}
		}
	}
	return models.SlotAvailable, nil
}
