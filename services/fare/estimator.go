// Package fare holds the pure fare/ETA estimator. Functions here have no
// side effects and no store access.
package fare

import (
	"math"

	"ridelink/models"
)

// DefaultTaxiBaseFee is the flag-fall applied when a taxi option carries none.
const DefaultTaxiBaseFee = 50.0

// taxiMinutesPerKm is the fixed average-speed heuristic for taxi legs.
const taxiMinutesPerKm = 3

// ValidationError reports a rejected estimator input. Callers are expected
// to validate distances up front; the estimator never clamps or defaults.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

func checkDistance(distanceKm float64) error {
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) {
		return ValidationError{Field: "distance", Reason: "must be a finite number"}
	}
	if distanceKm < 0 {
		return ValidationError{Field: "distance", Reason: "must not be negative"}
	}
	return nil
}

// TaxiFare computes baseFee + distanceKm * farePerKm. A zero baseFee is
// replaced with DefaultTaxiBaseFee.
func TaxiFare(distanceKm, farePerKm, baseFee float64) (float64, error) {
	if err := checkDistance(distanceKm); err != nil {
		return 0, err
	}
	if farePerKm <= 0 || math.IsNaN(farePerKm) || math.IsInf(farePerKm, 0) {
		return 0, ValidationError{Field: "farePerKm", Reason: "must be positive"}
	}
	if baseFee == 0 {
		baseFee = DefaultTaxiBaseFee
	}
	return baseFee + distanceKm*farePerKm, nil
}

// TaxiETA estimates a taxi leg duration in minutes from its distance.
func TaxiETA(distanceKm float64) (int, error) {
	if err := checkDistance(distanceKm); err != nil {
		return 0, err
	}
	return int(math.Round(distanceKm * taxiMinutesPerKm)), nil
}

// BusFare is the flat catalog-defined per-seat fare.
func BusFare(b models.Bus) float64 {
	return b.FarePerSeat
}

// BusETA is the catalog-defined ETA for the bus option.
func BusETA(b models.Bus) int {
	return b.ETAMinutes
}

// HybridFare sums the bus leg and the taxi leg; the legs are sequential and
// non-overlapping.
func HybridFare(bus models.Bus, taxiLegFare float64) float64 {
	return BusFare(bus) + taxiLegFare
}

// HybridETA sums the bus leg and the taxi leg ETAs.
func HybridETA(bus models.Bus, taxiLegETA int) int {
	return BusETA(bus) + taxiLegETA
}
