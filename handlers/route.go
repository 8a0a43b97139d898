package handlers

import (
	"net/http"

	"ridelink/catalog"

	"github.com/gin-gonic/gin"
)

// CalculateRouteHandler handles POST /api/routes/calculate: catalog lookup
// with reverse-direction fallback. Unknown pairs are an error, never a
// defaulted distance.
func CalculateRouteHandler(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"success": true, "data": route})
}
