package bookingRepo

import "ridelink/models"

// BookingRepository defines persistence operations for bookings. All list
// methods return bookings newest booking date first.
type BookingRepository interface {
	Insert(booking *models.Booking) error
	// GetByID returns (nil, nil) when the booking does not exist.
	GetByID(id string) (*models.Booking, error)
	Update(booking *models.Booking) error

	ListByUserEmail(email string) ([]models.Booking, error)
	ListPaidByBusIDs(busIDs []string) ([]models.Booking, error)
	ListPaidWithTaxi() ([]models.Booking, error)

	// CancelIfPending flips a booking to cancelled only while its payment is
	// still pending; reports whether the transition happened.
	CancelIfPending(id string) (bool, error)
}
