package recommend

import (
	"math"
	"testing"

	"ridelink/models"
)

func downtownAirportBuses() []models.Bus {
	return []models.Bus{
		{ID: "bus-b12", RouteNo: "B12", FarePerSeat: 25, ETAMinutes: 35, TotalSeats: 40, SeatsAvailable: 12},
		{ID: "bus-b15", RouteNo: "B15", FarePerSeat: 20, ETAMinutes: 28, TotalSeats: 40, SeatsAvailable: 5},
		{ID: "bus-b08", RouteNo: "B08", FarePerSeat: 30, ETAMinutes: 45, TotalSeats: 0, SeatsAvailable: 0},
	}
}

func downtownAirportTaxis() []models.TaxiOption {
	return []models.TaxiOption{
		{ETAMinutes: 20, FarePerKm: 15, BaseFee: 50, Available: true},
		{ETAMinutes: 15, FarePerKm: 18, BaseFee: 50, Available: true},
	}
}

func TestRecommendDowntownToAirport(t *testing.T) {
	rec, err := Recommend(downtownAirportBuses(), downtownAirportTaxis(), 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !rec.BusOnly.Available || rec.BusOnly.Fare != 20 || rec.BusOnly.ETAMinutes != 28 {
		t.Fatalf("busOnly = %+v, want fare 20 eta 28", rec.BusOnly)
	}
	if rec.BusOnly.Bus == nil || rec.BusOnly.Bus.RouteNo != "B15" {
		t.Fatalf("busOnly should pick B15, got %+v", rec.BusOnly.Bus)
	}
	// 50 base + 15 km * 15/km.
	if !rec.TaxiOnly.Available || rec.TaxiOnly.Fare != 275 || rec.TaxiOnly.ETAMinutes != 45 {
		t.Fatalf("taxiOnly = %+v, want fare 275 eta 45", rec.TaxiOnly)
	}
	if !rec.Hybrid.Available || rec.Hybrid.Fare != 295 || rec.Hybrid.ETAMinutes != 73 {
		t.Fatalf("hybrid = %+v, want fare 295 eta 73", rec.Hybrid)
	}
	if rec.RecommendedOption != models.StrategyBus {
		t.Fatalf("recommendedOption = %q, want %q", rec.RecommendedOption, models.StrategyBus)
	}
}

func TestRecommendWinnerNeverBeaten(t *testing.T) {
	rec, err := Recommend(downtownAirportBuses(), downtownAirportTaxis(), 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var winner models.StrategyQuote
	switch rec.RecommendedOption {
	case models.StrategyBus:
		winner = rec.BusOnly
	case models.StrategyTaxi:
		winner = rec.TaxiOnly
	case models.StrategyHybrid:
		winner = rec.Hybrid
	default:
		t.Fatalf("unexpected recommendedOption %q", rec.RecommendedOption)
	}

	for _, q := range []models.StrategyQuote{rec.BusOnly, rec.TaxiOnly, rec.Hybrid} {
		if q.Available && q.Fare < winner.Fare {
			t.Fatalf("winner fare %v beaten by available option fare %v", winner.Fare, q.Fare)
		}
	}
}

func TestRecommendFareTieBrokenByETA(t *testing.T) {
	// Bus fare equals the taxi fare for this distance: 50 base + 10*15 = 200.
	buses := []models.Bus{
		{ID: "bus-x", RouteNo: "X1", FarePerSeat: 200, ETAMinutes: 50, TotalSeats: 30, SeatsAvailable: 10},
	}
	taxis := []models.TaxiOption{
		{ETAMinutes: 10, FarePerKm: 15, BaseFee: 50, Available: true},
	}

	rec, err := Recommend(buses, taxis, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.BusOnly.Fare != rec.TaxiOnly.Fare {
		t.Fatalf("fixture broken: fares differ (%v vs %v)", rec.BusOnly.Fare, rec.TaxiOnly.Fare)
	}
	// Taxi ETA for 10 km is 30 minutes, under the bus's 50.
	if rec.RecommendedOption != models.StrategyTaxi {
		t.Fatalf("recommendedOption = %q, want %q on ETA tie-break", rec.RecommendedOption, models.StrategyTaxi)
	}
}

func TestRecommendSkipsSoldOutBuses(t *testing.T) {
	buses := []models.Bus{
		{ID: "bus-cheap", RouteNo: "C1", FarePerSeat: 10, ETAMinutes: 20, TotalSeats: 40, SeatsAvailable: 0},
		{ID: "bus-open", RouteNo: "O1", FarePerSeat: 40, ETAMinutes: 30, TotalSeats: 40, SeatsAvailable: 3},
	}

	rec, err := Recommend(buses, nil, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.BusOnly.Bus == nil || rec.BusOnly.Bus.RouteNo != "O1" {
		t.Fatalf("sold-out bus should be skipped, got %+v", rec.BusOnly.Bus)
	}
	if rec.Hybrid.Available {
		t.Fatal("hybrid requires a taxi leg")
	}
}

func TestRecommendNothingAvailable(t *testing.T) {
	buses := []models.Bus{
		{ID: "bus-full", RouteNo: "F1", FarePerSeat: 10, TotalSeats: 40, SeatsAvailable: 0},
	}
	taxis := []models.TaxiOption{
		{ETAMinutes: 20, FarePerKm: 15, BaseFee: 50, Available: false},
	}

	rec, err := Recommend(buses, taxis, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.BusOnly.Available || rec.TaxiOnly.Available || rec.Hybrid.Available {
		t.Fatalf("no strategy should be available: %+v", rec)
	}
	if rec.RecommendedOption != "" {
		t.Fatalf("recommendedOption = %q, want empty", rec.RecommendedOption)
	}
}

func TestRecommendRejectsBadDistance(t *testing.T) {
	_, err := Recommend(nil, downtownAirportTaxis(), math.NaN())
	if err == nil {
		t.Fatal("NaN distance should be rejected")
	}
}
