package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"ridelink/database"
	"ridelink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{coll: database.Collection("bookings")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_email", Value: 1}, {Key: "booking_date", Value: -1}}},
		{Keys: bson.D{{Key: "bus_id", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Insert writes a new booking document.
func (r *MongoBookingRepo) Insert(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID, nil when absent.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// Update replaces a booking document.
func (r *MongoBookingRepo) Update(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	booking.UpdatedAt = time.Now()
	filter := bson.M{"id": booking.ID}
	update := bson.M{"$set": booking}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update booking with id %s: %w", booking.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", booking.ID)
	}
	return nil
}

// ListByUserEmail returns all bookings for a user's email, newest first.
func (r *MongoBookingRepo) ListByUserEmail(email string) ([]models.Booking, error) {
	return r.list(bson.M{"user_email": email})
}

// ListPaidByBusIDs returns confirmed, paid bookings referencing the buses.
func (r *MongoBookingRepo) ListPaidByBusIDs(busIDs []string) ([]models.Booking, error) {
	return r.list(bson.M{
		"bus_id":         bson.M{"$in": busIDs},
		"status":         models.BookingConfirmed,
		"payment_status": models.PaymentPaid,
	})
}

// ListPaidWithTaxi returns confirmed, paid bookings carrying a taxi leg.
func (r *MongoBookingRepo) ListPaidWithTaxi() ([]models.Booking, error) {
	return r.list(bson.M{
		"status":         models.BookingConfirmed,
		"payment_status": models.PaymentPaid,
		"taxi_selected":  true,
	})
}

func (r *MongoBookingRepo) list(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "booking_date", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// CancelIfPending cancels a booking only while its payment is pending.
func (r *MongoBookingRepo) CancelIfPending(id string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "payment_status": models.PaymentPending}
	update := bson.M{"$set": bson.M{
		"status":     models.BookingCancelled,
		"updated_at": time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to cancel booking %s: %w", id, err)
	}
	return result.ModifiedCount > 0, nil
}
