package booking

import (
	"context"
	"fmt"
	"math"

	"ridelink/config"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// amountInCents converts a fare to the smallest currency unit. Rounding, not
// truncation: float representations like 19.99*100 = 1998.99… must not lose
// a cent.
func amountInCents(total float64) int64 {
	return int64(math.Round(total * 100))
}

// CreatePaymentIntent creates a Stripe PaymentIntent for a booking's current
// total and returns its client secret. The amount comes from the stored
// booking, never from the client.
func (s *DefaultBookingService) CreatePaymentIntent(ctx context.Context, bookingID string) (string, error) {
	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return "", err
	}
	if booking == nil {
		return "", &NotFoundError{Entity: "booking", ID: bookingID}
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountInCents(booking.TotalFare)),
		Currency: stripe.String(config.AppConfig.Currency),
		Metadata: map[string]string{
			"bookingId": booking.ID,
			"userEmail": booking.UserEmail,
		},
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}
