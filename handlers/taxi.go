package handlers

import (
	"net/http"

	"ridelink/catalog"
	"ridelink/services/fare"

	"github.com/gin-gonic/gin"
)

// TaxiOptionsHandler handles POST /api/taxis/options: available taxis with
// fares recomputed for the requested route distance.
func TaxiOptionsHandler(c *gin.Context) {
	var req struct {
		Source      string `json:"source"`
		Destination string `json:"destination"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Source == "" || req.Destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Source and destination are required"})
		return
	}

	route, ok := catalog.LookupRoute(req.Source, req.Destination)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No route found between source and destination"})
		return
	}

	type taxiQuote struct {
		ETAMinutes  int     `json:"etaMinutes"`
		FarePerKm   float64 `json:"farePerKm"`
		BaseFee     float64 `json:"baseFee"`
		TotalFare   float64 `json:"totalFare"`
		Source      string  `json:"source"`
		Destination string  `json:"destination"`
		Distance    float64 `json:"distance"`
	}

	taxis := catalog.AvailableTaxis()
	quotes := make([]taxiQuote, 0, len(taxis))
	for _, t := range taxis {
		total, err := fare.TaxiFare(route.DistanceKm, t.FarePerKm, t.BaseFee)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching taxi options", "details": err.Error()})
			return
		}
		quotes = append(quotes, taxiQuote{
			ETAMinutes:  t.ETAMinutes,
			FarePerKm:   t.FarePerKm,
			BaseFee:     t.BaseFee,
			TotalFare:   total,
			Source:      req.Source,
			Destination: req.Destination,
			Distance:    route.DistanceKm,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": quotes, "count": len(quotes)})
}
