package handlers

import (
	"fmt"
	"net/http"

	busRepo "ridelink/database/repository/bus"

	"github.com/gin-gonic/gin"
)

// BusHandler exposes bus catalog and seat-map queries.
type BusHandler struct {
	repo busRepo.BusRepository
}

// NewBusHandler creates a BusHandler.
func NewBusHandler(repo busRepo.BusRepository) *BusHandler {
	return &BusHandler{repo: repo}
}

// Options handles POST /api/buses/options: buses for a route with live seat
// availability derived from booked-seat counts.
func (h *BusHandler) Options(c *gin.Context) {
	var req struct {
		Source      string `json:"source"`
		Destination string `json:"destination"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Source == "" || req.Destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Source and destination are required"})
		return
	}

	buses, err := h.repo.ListByRoute(req.Source, req.Destination)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Database not connected. Please try again."})
		return
	}

	for i := range buses {
		booked, err := h.repo.CountBookedSeats(buses[i].ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching bus options", "details": err.Error()})
			return
		}
		available := buses[i].TotalSeats - booked
		if available < 0 {
			available = 0
		}
		buses[i].SeatsAvailable = available
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": buses, "count": len(buses)})
}

// seatMapEntry is one seat in the details response.
type seatMapEntry struct {
	SeatNumber string `json:"seatNumber"`
	IsBooked   bool   `json:"isBooked"`
}

// Details handles POST /api/buses/details: the bus plus its full seat map.
// Seat documents are created lazily, so the map is generated 01..N and
// merged with the booked set.
func (h *BusHandler) Details(c *gin.Context) {
	var req struct {
		BusID string `json:"busId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.BusID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "busId is required"})
		return
	}

	bus, err := h.repo.GetByID(req.BusID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching bus details", "details": err.Error()})
		return
	}
	if bus == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Bus not found"})
		return
	}

	booked, err := h.repo.ListBookedSeats(bus.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching bus details", "details": err.Error()})
		return
	}

	bookedSet := make(map[string]bool, len(booked))
	for _, s := range booked {
		bookedSet[s.SeatNumber] = true
	}

	seats := make([]seatMapEntry, 0, bus.TotalSeats)
	for i := 1; i <= bus.TotalSeats; i++ {
		seatNum := fmt.Sprintf("%02d", i)
		seats = append(seats, seatMapEntry{SeatNumber: seatNum, IsBooked: bookedSet[seatNum]})
	}

	available := bus.TotalSeats - len(booked)
	if available < 0 {
		available = 0
	}
	bus.SeatsAvailable = available

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"bus": bus, "seats": seats}})
}
