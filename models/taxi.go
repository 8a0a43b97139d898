package models

// TaxiOption is a stateless catalog entry: fares are recomputed per request
// from the route distance.
type TaxiOption struct {
	ETAMinutes int     `json:"etaMinutes"`
	FarePerKm  float64 `json:"farePerKm"`
	BaseFee    float64 `json:"baseFee"`
	Available  bool    `json:"available"`
}
