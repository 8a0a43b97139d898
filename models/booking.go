package models

import "time"

// Booking status values. Both status fields move forward only.
const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"

	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// RouteLeg is the from/to pair a booking covers.
type RouteLeg struct {
	From string `bson:"from" json:"from"`
	To   string `bson:"to" json:"to"`
}

// Booking is a persisted purchase: bus seats plus at most one optional taxi
// leg. The taxi leg is one flat set of fields guarded by TaxiSelected, so the
// document has a single unambiguous shape. Invariant:
// TotalFare == BusFare + TaxiFare.
type Booking struct {
	ID             string   `bson:"id" json:"id"`
	UserEmail      string   `bson:"user_email" json:"userEmail"`
	PassengerName  string   `bson:"passenger_name" json:"passengerName"`
	PassengerPhone string   `bson:"passenger_phone,omitempty" json:"passengerPhone,omitempty"`
	Route          RouteLeg `bson:"route" json:"route"`
	BusID          string   `bson:"bus_id" json:"busId"`
	BusName        string   `bson:"bus_name,omitempty" json:"busName,omitempty"`
	SeatNumbers    []string `bson:"seat_numbers" json:"seatNumbers"`

	BusFare   float64 `bson:"bus_fare" json:"busFare"`
	TaxiFare  float64 `bson:"taxi_fare" json:"taxiFare"`
	TotalFare float64 `bson:"total_fare" json:"totalFare"`

	TaxiSelected   bool    `bson:"taxi_selected" json:"taxiSelected"`
	TaxiDistanceKm float64 `bson:"taxi_distance_km,omitempty" json:"taxiDistanceKm,omitempty"`
	TaxiPickup     string  `bson:"taxi_pickup,omitempty" json:"taxiPickup,omitempty"`
	TaxiDrop       string  `bson:"taxi_drop,omitempty" json:"taxiDrop,omitempty"`

	PaymentStatus string `bson:"payment_status" json:"paymentStatus"`
	TransactionID string `bson:"transaction_id,omitempty" json:"transactionId,omitempty"`

	BookingDate time.Time `bson:"booking_date" json:"bookingDate"`
	Status      string    `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
