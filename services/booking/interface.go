package booking

import (
	"context"

	"ridelink/models"
)

// ReserveRequest is a seat reservation submission. UserID may be an internal
// ID or an email; emails not yet registered get a passenger record created
// on the fly. Fare, when positive, overrides seats × farePerSeat.
type ReserveRequest struct {
	UserID      string   `json:"userId"`
	BusID       string   `json:"busId"`
	RouteNo     string   `json:"routeId"`
	From        string   `json:"from"`
	To          string   `json:"to"`
	Seats       []string `json:"seats"`
	Fare        float64  `json:"fare"`
	BookingDate string   `json:"bookingDate"`
}

// ReserveResult carries the booking plus the mode it was made in. Degraded
// bookings are lease-backed only and never persisted.
type ReserveResult struct {
	Booking  *models.Booking
	Degraded bool
}

// FinalizeRequest asserts a successful payment for a booking. TotalFare is
// verified against the server-derived total before anything is persisted.
type FinalizeRequest struct {
	BookingID     string  `json:"bookingId"`
	TotalFare     float64 `json:"totalFare"`
	TransactionID string  `json:"transactionId"`
}

// BookingService is the booking record manager plus the seat reservation
// entry point.
type BookingService interface {
	ReserveSeats(ctx context.Context, req ReserveRequest) (*ReserveResult, error)
	AttachTaxiLeg(ctx context.Context, bookingID string, distanceKm float64, pickup, drop string) (*models.Booking, error)
	FinalizeWithPayment(ctx context.Context, req FinalizeRequest) (*models.Booking, error)

	CreatePaymentIntent(ctx context.Context, bookingID string) (string, error)

	ListForUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListForBusOperator(ctx context.Context, operatorEmail string) ([]models.Booking, error)
	ListForTaxiOperator(ctx context.Context) ([]models.Booking, error)

	CancelIfUnpaid(ctx context.Context, bookingID string) (bool, error)
}
