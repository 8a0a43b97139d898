package models

// Strategy tags for the hybrid recommender.
const (
	StrategyBus    = "Bus"
	StrategyTaxi   = "Taxi"
	StrategyHybrid = "Hybrid"
)

// StrategyQuote is one candidate travel strategy with its totals and the
// catalog entries it was built from.
type StrategyQuote struct {
	Available  bool        `json:"available"`
	Fare       float64     `json:"fare"`
	ETAMinutes int         `json:"etaMinutes"`
	Bus        *Bus        `json:"bus,omitempty"`
	Taxi       *TaxiOption `json:"taxi,omitempty"`
}

// Recommendation compares the three candidate strategies for a route.
// RecommendedOption is empty when no strategy is available.
type Recommendation struct {
	BusOnly           StrategyQuote `json:"busOnly"`
	TaxiOnly          StrategyQuote `json:"taxiOnly"`
	Hybrid            StrategyQuote `json:"hybrid"`
	RecommendedOption string        `json:"recommendedOption,omitempty"`
}
