// Package recommend implements the hybrid recommender: it compares the
// BusOnly, TaxiOnly and Hybrid strategies for a route and names a winner.
package recommend

import (
	"ridelink/models"
	"ridelink/services/fare"
)

// Recommend builds the three candidate strategies from the given bus and
// taxi options and the route distance, and tags the winner. Selection rule:
// among available strategies the lowest total fare wins; a fare tie is
// broken by the lowest total ETA; a full tie keeps Bus > Taxi > Hybrid
// precedence. With no available strategy all three are marked unavailable
// and no option is recommended. Pure function over its inputs.
func Recommend(buses []models.Bus, taxis []models.TaxiOption, distanceKm float64) (models.Recommendation, error) {
	var rec models.Recommendation

	if bus, ok := cheapestBus(buses); ok {
		rec.BusOnly = models.StrategyQuote{
			Available:  true,
			Fare:       fare.BusFare(*bus),
			ETAMinutes: fare.BusETA(*bus),
			Bus:        bus,
		}
	}

	if taxi, taxiFare, ok, err := cheapestTaxi(taxis, distanceKm); err != nil {
		return models.Recommendation{}, err
	} else if ok {
		eta, err := fare.TaxiETA(distanceKm)
		if err != nil {
			return models.Recommendation{}, err
		}
		rec.TaxiOnly = models.StrategyQuote{
			Available:  true,
			Fare:       taxiFare,
			ETAMinutes: eta,
			Taxi:       taxi,
		}

		// Hybrid needs both legs.
		if rec.BusOnly.Available {
			rec.Hybrid = models.StrategyQuote{
				Available:  true,
				Fare:       fare.HybridFare(*rec.BusOnly.Bus, taxiFare),
				ETAMinutes: fare.HybridETA(*rec.BusOnly.Bus, eta),
				Bus:        rec.BusOnly.Bus,
				Taxi:       taxi,
			}
		}
	}

	rec.RecommendedOption = pickWinner(rec)
	return rec, nil
}

// cheapestBus selects the lowest-fare seat-available bus, ETA breaking ties.
func cheapestBus(buses []models.Bus) (*models.Bus, bool) {
	var best *models.Bus
	for i := range buses {
		b := &buses[i]
		if !b.SeatAvailable() {
			continue
		}
		if best == nil || b.FarePerSeat < best.FarePerSeat ||
			(b.FarePerSeat == best.FarePerSeat && b.ETAMinutes < best.ETAMinutes) {
			best = b
		}
	}
	return best, best != nil
}

// cheapestTaxi selects the available taxi with the lowest computed fare for
// the route distance.
func cheapestTaxi(taxis []models.TaxiOption, distanceKm float64) (*models.TaxiOption, float64, bool, error) {
	var best *models.TaxiOption
	var bestFare float64
	for i := range taxis {
		t := &taxis[i]
		if !t.Available {
			continue
		}
		f, err := fare.TaxiFare(distanceKm, t.FarePerKm, t.BaseFee)
		if err != nil {
			return nil, 0, false, err
		}
		if best == nil || f < bestFare {
			best = t
			bestFare = f
		}
	}
	return best, bestFare, best != nil, nil
}

func pickWinner(rec models.Recommendation) string {
	type candidate struct {
		tag   string
		quote models.StrategyQuote
	}
	// Order encodes the full-tie precedence.
	candidates := []candidate{
		{models.StrategyBus, rec.BusOnly},
		{models.StrategyTaxi, rec.TaxiOnly},
		{models.StrategyHybrid, rec.Hybrid},
	}

	winner := ""
	var best models.StrategyQuote
	for _, c := range candidates {
		if !c.quote.Available {
			continue
		}
		if winner == "" || c.quote.Fare < best.Fare ||
			(c.quote.Fare == best.Fare && c.quote.ETAMinutes < best.ETAMinutes) {
			winner = c.tag
			best = c.quote
		}
	}
	return winner
}
