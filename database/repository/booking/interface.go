// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"studiobook/database"
	"studiobook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists booking records and their status transitions.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	ListForStudioDate(ctx context.Context, studioID, date string) ([]models.Booking, error)
	// UpdateStatusIfPending applies the status transition only if the booking
	// is still pending. Returns true when this call performed the transition.
	UpdateStatusIfPending(ctx context.Context, bookingID, newStatus, paymentID string) (bool, error)
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.Collection("bookings"),
	}
}
