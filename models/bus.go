package models

import "time"

// Bus is a catalog record for a scheduled bus on a fixed route. Seat counts
// are derived from the seats collection; everything else is static.
type Bus struct {
	ID            string  `bson:"id" json:"id"`
	RouteNo       string  `bson:"route_no" json:"routeNo"`
	Source        string  `bson:"source" json:"source"`
	Destination   string  `bson:"destination" json:"destination"`
	DistanceKm    float64 `bson:"distance_km" json:"distance"`
	ETAMinutes    int     `bson:"eta_minutes" json:"etaMinutes"`
	FarePerSeat   float64 `bson:"fare_per_seat" json:"farePerSeat"`
	TotalSeats    int     `bson:"total_seats" json:"totalSeats"`
	OperatorEmail string  `bson:"operator_email,omitempty" json:"operatorEmail,omitempty"`

	// SeatsAvailable is computed (TotalSeats minus booked seats), never stored.
	SeatsAvailable int `bson:"-" json:"seatsAvailable"`
}

// SeatAvailable reports whether the bus has at least one open seat.
func (b Bus) SeatAvailable() bool {
	return b.SeatsAvailable > 0
}

// Seat tracks the booking state of a single seat on a bus. Documents are
// created lazily on the first booking attempt and only ever flip to booked.
type Seat struct {
	BusID       string    `bson:"bus_id" json:"busId"`
	SeatNumber  string    `bson:"seat_number" json:"seatNumber"`
	IsBooked    bool      `bson:"is_booked" json:"isBooked"`
	BookedBy    string    `bson:"booked_by,omitempty" json:"bookedBy,omitempty"`
	BookingDate time.Time `bson:"booking_date,omitempty" json:"bookingDate,omitempty"`
}
