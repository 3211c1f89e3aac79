// File: database/repository/booking/crud.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"studiobook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": bookingID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking %s not found: %w", bookingID, err)
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", bookingID, err)
	}
	return &booking, nil
}

func (r *mongoBookingRepo) ListForStudioDate(ctx context.Context, studioID, date string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Slot keys embed the date as their prefix, so a prefix match selects the
	// day without a separate date field.
	filter := bson.M{
		"studio_id": studioID,
		"status":    bson.M{"$in": bson.A{models.BookingStatusPending, models.BookingStatusConfirmed}},
		"slot_keys": bson.M{"$elemMatch": bson.M{"$regex": "^" + date}},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for studio %s on %s: %w", studioID, date, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// UpdateStatusIfPending is the conditional update backing the at-most-once
// confirmation guarantee: the filter pins the current status to pending, so a
// retried webhook matches nothing the second time.
func (r *mongoBookingRepo) UpdateStatusIfPending(ctx context.Context, bookingID, newStatus, paymentID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": bookingID, "status": models.BookingStatusPending}
	set := bson.M{"status": newStatus, "updated_at": time.Now()}
	if paymentID != "" {
		set["payment_id"] = paymentID
	}

	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return false, fmt.Errorf("failed to update booking %s status: %w", bookingID, err)
	}
	return res.ModifiedCount == 1, nil
}
