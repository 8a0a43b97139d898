package models

// Route is a static catalog entry keyed by (source, destination),
// case-insensitive, with reverse-direction fallback at lookup time.
type Route struct {
	Source           string  `json:"source"`
	Destination      string  `json:"destination"`
	DistanceKm       float64 `json:"distance"`
	EstimatedTimeMin int     `json:"estimatedTime"`
}
