package fare

import (
	"errors"
	"math"
	"testing"

	"ridelink/models"
)

func TestTaxiFare(t *testing.T) {
	got, err := TaxiFare(10, 15, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 200 {
		t.Fatalf("TaxiFare(10, 15, 50) = %v, want 200", got)
	}
}

func TestTaxiFareDefaultsBaseFee(t *testing.T) {
	got, err := TaxiFare(10, 15, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 200 {
		t.Fatalf("TaxiFare with zero base fee = %v, want 200 (default base %v)", got, DefaultTaxiBaseFee)
	}
}

func TestTaxiFareRejectsBadInputs(t *testing.T) {
	cases := []struct {
		name       string
		distanceKm float64
		farePerKm  float64
	}{
		{"nan distance", math.NaN(), 15},
		{"negative distance", -1, 15},
		{"infinite distance", math.Inf(1), 15},
		{"zero rate", 10, 0},
		{"negative rate", 10, -5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := TaxiFare(tc.distanceKm, tc.farePerKm, 50)
			var vErr ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestTaxiETA(t *testing.T) {
	got, err := TaxiETA(15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 45 {
		t.Fatalf("TaxiETA(15) = %d, want 45", got)
	}
}

func TestHybridSumsLegs(t *testing.T) {
	bus := models.Bus{FarePerSeat: 20, ETAMinutes: 28}

	taxiFare, err := TaxiFare(15, 15, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	taxiETA, err := TaxiETA(15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := HybridFare(bus, taxiFare); got != BusFare(bus)+taxiFare {
		t.Fatalf("HybridFare = %v, want bus + taxi leg = %v", got, BusFare(bus)+taxiFare)
	}
	if got := HybridFare(bus, taxiFare); got != 295 {
		t.Fatalf("HybridFare = %v, want 295", got)
	}
	if got := HybridETA(bus, taxiETA); got != 73 {
		t.Fatalf("HybridETA = %d, want 73", got)
	}
}
