// Package catalog holds the static route, bus and taxi tables the service
// ships with, and seeds the bus collection from them on startup.
package catalog

import (
	"strings"

	"ridelink/models"
)

var routes = []models.Route{
	{Source: "Downtown", Destination: "Airport", DistanceKm: 15, EstimatedTimeMin: 30},
	{Source: "City Center", Destination: "Mall", DistanceKm: 8, EstimatedTimeMin: 15},
}

var buses = []models.Bus{
	{ID: "bus-b12", RouteNo: "B12", Source: "Downtown", Destination: "Airport", DistanceKm: 15, ETAMinutes: 35, FarePerSeat: 25, TotalSeats: 40, OperatorEmail: "citylines@ridelink.dev"},
	{ID: "bus-b15", RouteNo: "B15", Source: "Downtown", Destination: "Airport", DistanceKm: 15, ETAMinutes: 28, FarePerSeat: 20, TotalSeats: 40, OperatorEmail: "citylines@ridelink.dev"},
	{ID: "bus-b08", RouteNo: "B08", Source: "Downtown", Destination: "Airport", DistanceKm: 15, ETAMinutes: 45, FarePerSeat: 30, TotalSeats: 0, OperatorEmail: "metroways@ridelink.dev"},
	{ID: "bus-b22", RouteNo: "B22", Source: "City Center", Destination: "Mall", DistanceKm: 8, ETAMinutes: 40, FarePerSeat: 22, TotalSeats: 36, OperatorEmail: "metroways@ridelink.dev"},
	{ID: "bus-b05", RouteNo: "B05", Source: "City Center", Destination: "Mall", DistanceKm: 8, ETAMinutes: 25, FarePerSeat: 18, TotalSeats: 36, OperatorEmail: "citylines@ridelink.dev"},
}

var taxis = []models.TaxiOption{
	{ETAMinutes: 20, FarePerKm: 15, BaseFee: 50, Available: true},
	{ETAMinutes: 15, FarePerKm: 18, BaseFee: 50, Available: true},
	{ETAMinutes: 25, FarePerKm: 15, BaseFee: 50, Available: true},
}

// LookupRoute finds the catalog route for a (source, destination) pair,
// case-insensitive. When only the reverse direction is known, the legs are
// swapped; distance and time carry over.
func LookupRoute(source, destination string) (models.Route, bool) {
	for _, r := range routes {
		if strings.EqualFold(r.Source, source) && strings.EqualFold(r.Destination, destination) {
			return r, true
		}
		if strings.EqualFold(r.Source, destination) && strings.EqualFold(r.Destination, source) {
			return models.Route{
				Source:           r.Destination,
				Destination:      r.Source,
				DistanceKm:       r.DistanceKm,
				EstimatedTimeMin: r.EstimatedTimeMin,
			}, true
		}
	}
	return models.Route{}, false
}

// Buses returns a copy of the bus catalog.
func Buses() []models.Bus {
	out := make([]models.Bus, len(buses))
	copy(out, buses)
	return out
}

// BusesForRoute returns catalog buses matching the pair case-insensitively.
func BusesForRoute(source, destination string) []models.Bus {
	var out []models.Bus
	for _, b := range buses {
		if strings.EqualFold(b.Source, source) && strings.EqualFold(b.Destination, destination) {
			out = append(out, b)
		}
	}
	return out
}

// Taxis returns a copy of the taxi catalog.
func Taxis() []models.TaxiOption {
	out := make([]models.TaxiOption, len(taxis))
	copy(out, taxis)
	return out
}

// AvailableTaxis returns the taxis currently flagged available.
func AvailableTaxis() []models.TaxiOption {
	var out []models.TaxiOption
	for _, t := range taxis {
		if t.Available {
			out = append(out, t)
		}
	}
	return out
}
