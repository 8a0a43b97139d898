package booking

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"ridelink/catalog"
	"ridelink/database"
	bookingRepo "ridelink/database/repository/booking"
	busRepo "ridelink/database/repository/bus"
	"ridelink/models"
	"ridelink/services/fare"
	"ridelink/services/seatlock"
	"ridelink/services/tasks"
	"ridelink/services/user"
	"ridelink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fareEpsilon is the tolerance when comparing client and server totals.
const fareEpsilon = 0.01

// DefaultBookingService is the standard implementation of BookingService.
type DefaultBookingService struct {
	Buses    busRepo.BusRepository
	Bookings bookingRepo.BookingRepository
	Users    user.UserService
	Lease    seatlock.Lease

	// Scheduler is optional; when set, reservations get a payment-timeout
	// sweep enqueued.
	Scheduler      *tasks.Scheduler
	PaymentTimeout time.Duration

	// StoreAvailable reports primary-store reachability. Defaults to
	// database.Available; swappable in tests.
	StoreAvailable func(ctx context.Context) bool
}

func (s *DefaultBookingService) storeAvailable(ctx context.Context) bool {
	if s.StoreAvailable != nil {
		return s.StoreAvailable(ctx)
	}
	return database.Available(ctx)
}

// ReserveSeats books the requested seats. With the store reachable the whole
// request commits or aborts as one transaction; otherwise it degrades to a
// time-boxed seat lease and the result is flagged accordingly.
func (s *DefaultBookingService) ReserveSeats(ctx context.Context, req ReserveRequest) (*ReserveResult, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return nil, &ValidationError{Field: "userId", Message: "required"}
	}
	if req.BusID == "" && req.RouteNo == "" {
		return nil, &ValidationError{Field: "busId", Message: "busId or routeId is required"}
	}
	if len(req.Seats) == 0 {
		return nil, &ValidationError{Field: "seats", Message: "at least one seat is required"}
	}

	if !s.storeAvailable(ctx) {
		return s.reserveDegraded(ctx, req)
	}

	// Resolve the user; an email identifier not yet registered gets a
	// passenger record created on the fly.
	var usr *models.User
	var err error
	if strings.Contains(req.UserID, "@") {
		usr, err = s.Users.EnsureByEmail(req.UserID)
	} else {
		usr, err = s.Users.GetByID(req.UserID)
	}
	if err != nil || usr == nil {
		return nil, &NotFoundError{Entity: "user", ID: req.UserID}
	}

	// Resolve the bus by ID, falling back to route number.
	var bus *models.Bus
	if req.BusID != "" {
		bus, err = s.Buses.GetByID(req.BusID)
	} else {
		bus, err = s.Buses.GetByRouteNo(req.RouteNo)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve bus: %w", err)
	}
	if bus == nil {
		return nil, &NotFoundError{Entity: "bus", ID: req.BusID + req.RouteNo}
	}

	booking := s.buildBooking(req, usr, bus)

	conflicts, err := s.Buses.ReserveSeats(ctx, bus, req.Seats, usr.ID, booking)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, &ConflictError{Seats: conflicts}
	}

	s.scheduleExpiry(booking.ID)

	return &ReserveResult{Booking: booking}, nil
}

func (s *DefaultBookingService) buildBooking(req ReserveRequest, usr *models.User, bus *models.Bus) *models.Booking {
	busFare := req.Fare
	if busFare <= 0 {
		busFare = float64(len(req.Seats)) * bus.FarePerSeat
	}

	from := req.From
	if from == "" {
		from = bus.Source
	}
	to := req.To
	if to == "" {
		to = bus.Destination
	}

	bookingDate := time.Now()
	if req.BookingDate != "" {
		if parsed, err := time.Parse(time.RFC3339, req.BookingDate); err == nil {
			bookingDate = parsed
		}
	}

	return &models.Booking{
		ID:             uuid.New().String(),
		UserEmail:      usr.Email,
		PassengerName:  usr.Name,
		PassengerPhone: usr.Phone,
		Route:          models.RouteLeg{From: from, To: to},
		BusID:          bus.ID,
		BusName:        bus.RouteNo,
		SeatNumbers:    req.Seats,
		BusFare:        busFare,
		TaxiFare:       0,
		TotalFare:      busFare,
		PaymentStatus:  models.PaymentPending,
		BookingDate:    bookingDate,
		Status:         models.BookingConfirmed,
	}
}

// reserveDegraded holds the requested seats under expiring leases. No
// durable booking is persisted; the first held seat aborts the request.
func (s *DefaultBookingService) reserveDegraded(ctx context.Context, req ReserveRequest) (*ReserveResult, error) {
	busID := req.BusID
	if busID == "" {
		busID = req.RouteNo
	}

	// Leases acquired before a conflict are released again, so a failed
	// request does not block the caller's own retry with adjusted seats.
	var held []string
	for _, seatNum := range req.Seats {
		ok, err := s.Lease.Acquire(ctx, busID, seatNum)
		if err != nil {
			s.releaseLeases(ctx, busID, held)
			return nil, fmt.Errorf("seat lease failed: %w", err)
		}
		if !ok {
			s.releaseLeases(ctx, busID, held)
			return nil, &ConflictError{Seats: []string{seatNum}}
		}
		held = append(held, seatNum)
	}

	busFare := req.Fare
	if busFare < 0 {
		busFare = 0
	}
	booking := &models.Booking{
		ID:            uuid.New().String(),
		UserEmail:     req.UserID,
		Route:         models.RouteLeg{From: req.From, To: req.To},
		BusID:         busID,
		SeatNumbers:   req.Seats,
		BusFare:       busFare,
		TotalFare:     busFare,
		PaymentStatus: models.PaymentPending,
		BookingDate:   time.Now(),
		Status:        models.BookingConfirmed,
	}
	return &ReserveResult{Booking: booking, Degraded: true}, nil
}

func (s *DefaultBookingService) releaseLeases(ctx context.Context, busID string, seats []string) {
	for _, seatNum := range seats {
		if err := s.Lease.Release(ctx, busID, seatNum); err != nil {
			utils.GetLogger().Warn("failed to release seat lease",
				zap.String("busId", busID), zap.String("seat", seatNum), zap.Error(err))
		}
	}
}

func (s *DefaultBookingService) scheduleExpiry(bookingID string) {
	if s.Scheduler == nil {
		return
	}
	window := s.PaymentTimeout
	if window <= 0 {
		window = 30 * time.Minute
	}
	if err := s.Scheduler.ScheduleExpireUnpaid(bookingID, window); err != nil {
		utils.GetLogger().Warn("failed to schedule payment-timeout sweep",
			zap.String("bookingId", bookingID), zap.Error(err))
	}
}

// AttachTaxiLeg adds or replaces the taxi leg on a booking. The fare is
// recomputed from the cheapest available taxi rate for the given distance;
// re-invoking with the same leg leaves totals unchanged.
func (s *DefaultBookingService) AttachTaxiLeg(ctx context.Context, bookingID string, distanceKm float64, pickup, drop string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, &NotFoundError{Entity: "booking", ID: bookingID}
	}

	taxi := cheapestCatalogTaxi()
	if taxi == nil {
		return nil, &ValidationError{Field: "taxi", Message: "no taxi available"}
	}

	taxiFare, err := fare.TaxiFare(distanceKm, taxi.FarePerKm, taxi.BaseFee)
	if err != nil {
		return nil, &ValidationError{Field: "distance", Message: err.Error()}
	}

	// Replace, never accumulate: the leg is recomputed wholesale.
	booking.TaxiSelected = true
	booking.TaxiFare = taxiFare
	booking.TaxiDistanceKm = distanceKm
	booking.TaxiPickup = pickup
	booking.TaxiDrop = drop
	booking.TotalFare = booking.BusFare + taxiFare

	if err := s.Bookings.Update(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func cheapestCatalogTaxi() *models.TaxiOption {
	var best *models.TaxiOption
	for _, t := range catalog.AvailableTaxis() {
		t := t
		if best == nil || t.FarePerKm < best.FarePerKm {
			best = &t
		}
	}
	return best
}

// FinalizeWithPayment marks a booking paid. The total is always re-derived
// from the stored fares; a client total that deviates is rejected rather
// than persisted.
func (s *DefaultBookingService) FinalizeWithPayment(ctx context.Context, req FinalizeRequest) (*models.Booking, error) {
	if req.BookingID == "" {
		return nil, &ValidationError{Field: "bookingId", Message: "required"}
	}

	booking, err := s.Bookings.GetByID(req.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, &NotFoundError{Entity: "booking", ID: req.BookingID}
	}

	expected := booking.BusFare + booking.TaxiFare
	if math.Abs(req.TotalFare-expected) > fareEpsilon {
		return nil, &FareMismatchError{Claimed: req.TotalFare, Expected: expected}
	}

	booking.TotalFare = expected
	booking.PaymentStatus = models.PaymentPaid
	booking.Status = models.BookingConfirmed
	if booking.TransactionID == "" {
		booking.TransactionID = req.TransactionID
	}
	if booking.TransactionID == "" {
		booking.TransactionID = "TXN_" + uuid.New().String()
	}

	if err := s.Bookings.Update(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// ListForUser resolves the user to an email and returns their bookings,
// newest first.
func (s *DefaultBookingService) ListForUser(ctx context.Context, userID string) ([]models.Booking, error) {
	usr, err := s.Users.GetByID(userID)
	if err != nil || usr == nil {
		return nil, &NotFoundError{Entity: "user", ID: userID}
	}
	return s.Bookings.ListByUserEmail(usr.Email)
}

// ListForBusOperator returns confirmed, paid bookings on the operator's buses.
func (s *DefaultBookingService) ListForBusOperator(ctx context.Context, operatorEmail string) ([]models.Booking, error) {
	if operatorEmail == "" {
		return nil, &ValidationError{Field: "operatorEmail", Message: "required"}
	}

	buses, err := s.Buses.ListByOperator(operatorEmail)
	if err != nil {
		return nil, err
	}
	if len(buses) == 0 {
		return []models.Booking{}, nil
	}

	ids := make([]string, 0, len(buses))
	for _, b := range buses {
		ids = append(ids, b.ID)
	}
	return s.Bookings.ListPaidByBusIDs(ids)
}

// ListForTaxiOperator returns confirmed, paid bookings with a taxi leg.
func (s *DefaultBookingService) ListForTaxiOperator(ctx context.Context) ([]models.Booking, error) {
	return s.Bookings.ListPaidWithTaxi()
}

// CancelIfUnpaid cancels a booking still pending payment; used by the
// payment-timeout sweeper.
func (s *DefaultBookingService) CancelIfUnpaid(ctx context.Context, bookingID string) (bool, error) {
	return s.Bookings.CancelIfPending(bookingID)
}
