package busRepo

import (
	"context"

	"ridelink/models"
)

// BusRepository defines persistence operations for buses and their seats.
type BusRepository interface {
	Upsert(bus *models.Bus) error
	GetByID(id string) (*models.Bus, error)
	GetByRouteNo(routeNo string) (*models.Bus, error)
	ListByRoute(source, destination string) ([]models.Bus, error)
	ListByOperator(operatorEmail string) ([]models.Bus, error)

	CountBookedSeats(busID string) (int, error)
	ListBookedSeats(busID string) ([]models.Seat, error)

	// ReserveSeats books every requested seat and inserts the booking inside
	// one all-or-nothing transaction. It returns the seat numbers already
	// booked when the reservation conflicts; on conflict nothing is
	// committed.
	ReserveSeats(ctx context.Context, bus *models.Bus, seats []string, userID string, booking *models.Booking) (conflicts []string, err error)
}
