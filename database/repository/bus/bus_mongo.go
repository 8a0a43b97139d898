package busRepo

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

// MongoBusRepo implements BusRepository using MongoDB. Buses live in the
// buses collection; per-seat booking state lives in seats.
type MongoBusRepo struct {
	busColl  *mongo.Collection
	seatColl *mongo.Collection
}

// NewMongoBusRepo creates a new instance of BusRepository using MongoDB.
func NewMongoBusRepo() BusRepository {
	repo := &MongoBusRepo{
		busColl:  database.Collection("buses"),
		seatColl: database.Collection("seats"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBusRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	busIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "route_no", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "source", Value: 1}, {Key: "destination", Value: 1}}},
		{Keys: bson.D{{Key: "operator_email", Value: 1}}},
	}
	if _, err := r.busColl.Indexes().CreateMany(ctx, busIndexes); err != nil {
		return fmt.Errorf("failed to create bus indexes: %w", err)
	}

	seatIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "bus_id", Value: 1}, {Key: "seat_number", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.seatColl.Indexes().CreateMany(ctx, seatIndexes); err != nil {
		return fmt.Errorf("failed to create seat indexes: %w", err)
	}
	return nil
}

// Upsert writes a catalog bus keyed by its ID. Used by catalog seeding.
func (r *MongoBusRepo) Upsert(bus *models.Bus) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": bus.ID}
	update := bson.M{"$set": bus}
	opts := options.Update().SetUpsert(true)

	if _, err := r.busColl.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert bus %s: %w", bus.ID, err)
	}
	return nil
}

// GetByID retrieves a bus by its unique ID.
func (r *MongoBusRepo) GetByID(id string) (*models.Bus, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var bus models.Bus
	if err := r.busColl.FindOne(ctx, bson.M{"id": id}).Decode(&bus); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch bus with id %s: %w", id, err)
	}
	return &bus, nil
}

// GetByRouteNo retrieves a bus by its route number.
func (r *MongoBusRepo) GetByRouteNo(routeNo string) (*models.Bus, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var bus models.Bus
	if err := r.busColl.FindOne(ctx, bson.M{"route_no": routeNo}).Decode(&bus); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch bus with route no %s: %w", routeNo, err)
	}
	return &bus, nil
}

// ListByRoute retrieves buses matching the pair, case-insensitive.
func (r *MongoBusRepo) ListByRoute(source, destination string) ([]models.Bus, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"source":      bson.M{"$regex": "^" + source + "$", "$options": "i"},
		"destination": bson.M{"$regex": "^" + destination + "$", "$options": "i"},
	}
	return r.list(ctx, filter)
}

// ListByOperator retrieves the buses owned by an operator.
func (r *MongoBusRepo) ListByOperator(operatorEmail string) ([]models.Bus, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	return r.list(ctx, bson.M{"operator_email": operatorEmail})
}

func (r *MongoBusRepo) list(ctx context.Context, filter bson.M) ([]models.Bus, error) {
	cursor, err := r.busColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve buses: %w", err)
	}
	defer cursor.Close(ctx)

	var buses []models.Bus
	for cursor.Next(ctx) {
		var b models.Bus
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode bus: %w", err)
		}
		buses = append(buses, b)
	}
	return buses, nil
}

// CountBookedSeats counts the booked seats on a bus.
func (r *MongoBusRepo) CountBookedSeats(busID string) (int, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.seatColl.CountDocuments(ctx, bson.M{"bus_id": busID, "is_booked": true})
	if err != nil {
		return 0, fmt.Errorf("failed to count booked seats for bus %s: %w", busID, err)
	}
	return int(n), nil
}

// ListBookedSeats returns the booked seat documents for a bus.
func (r *MongoBusRepo) ListBookedSeats(busID string) ([]models.Seat, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.seatColl.Find(ctx, bson.M{"bus_id": busID, "is_booked": true})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve seats for bus %s: %w", busID, err)
	}
	defer cursor.Close(ctx)

	var seats []models.Seat
	for cursor.Next(ctx) {
		var s models.Seat
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode seat: %w", err)
		}
		seats = append(seats, s)
	}
	return seats, nil
}

// ReserveSeats books every requested seat and inserts the booking inside a
// single multi-document transaction. Each seat is first checked for an
// existing booked document; any hit aborts the whole transaction and the
// offending seat numbers are reported so the client can re-render the seat
// map. Free seats are upserted to booked with the requesting user and
// timestamp, so seat documents are created lazily on first booking.
func (r *MongoBusRepo) ReserveSeats(ctx context.Context, bus *models.Bus, seats []string, userID string, booking *models.Booking) ([]string, error) {
	client := r.busColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var conflicts []string

	// WithTransaction retries on transient write conflicts, so when two
	// requests race on a seat the loser's re-run sees the committed booking
	// and reports the seat instead of an opaque failure.
	txnFn := func(sc mongo.SessionContext) (interface{}, error) {
		conflicts = conflicts[:0]
		for _, seatNum := range seats {
			count, err := r.seatColl.CountDocuments(sc, bson.M{
				"bus_id":      bus.ID,
				"seat_number": seatNum,
				"is_booked":   true,
			})
			if err != nil {
				return nil, fmt.Errorf("seat availability check failed: %w", err)
			}
			if count > 0 {
				conflicts = append(conflicts, seatNum)
				return nil, fmt.Errorf("seat %s is already booked", seatNum)
			}

			filter := bson.M{"bus_id": bus.ID, "seat_number": seatNum}
			update := bson.M{"$set": bson.M{
				"is_booked":    true,
				"booked_by":    userID,
				"booking_date": time.Now(),
			}}
			opts := options.Update().SetUpsert(true)
			if _, err := r.seatColl.UpdateOne(sc, filter, update, opts); err != nil {
				return nil, fmt.Errorf("failed to book seat %s: %w", seatNum, err)
			}
		}

		bookingColl := r.busColl.Database().Collection("bookings")
		if _, err := bookingColl.InsertOne(sc, booking); err != nil {
			return nil, fmt.Errorf("insert booking failed: %w", err)
		}
		return nil, nil
	}

	if _, err := sess.WithTransaction(ctx, txnFn); err != nil {
		if len(conflicts) > 0 {
			return conflicts, nil
		}
		// The transaction can still abort without naming a seat. Re-check
		// the requested seats against the committed state before giving up.
		if booked, lerr := r.ListBookedSeats(bus.ID); lerr == nil {
			if c := bookedConflicts(booked, seats); len(c) > 0 {
				return c, nil
			}
		}
		return nil, fmt.Errorf("seat reservation transaction failed: %w", err)
	}

	return nil, nil
}

// bookedConflicts returns the requested seat numbers that appear in the
// booked set, preserving request order.
func bookedConflicts(booked []models.Seat, requested []string) []string {
	bookedSet := make(map[string]bool, len(booked))
	for _, s := range booked {
		if s.IsBooked {
			bookedSet[s.SeatNumber] = true
		}
	}
	var out []string
	for _, seatNum := range requested {
		if bookedSet[seatNum] {
			out = append(out, seatNum)
		}
	}
	return out
}
