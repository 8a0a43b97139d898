package handlers

import (
	"net/http"

	"ridelink/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking service over HTTP.
type BookingHandler struct {
	svc    booking.BookingService
	logger *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, logger: logger}
}

// ReserveSeats handles POST /api/bookings/seats.
func (h *BookingHandler) ReserveSeats(c *gin.Context) {
	var req booking.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.svc.ReserveSeats(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	message := "Seats booked successfully"
	if result.Degraded {
		// Lease-backed only: the caller must know the guarantee is weaker.
		message = "Seats held in degraded mode; booking is not durable"
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"data":     result.Booking,
		"degraded": result.Degraded,
		"message":  message,
	})
}

// AttachTaxi handles POST /api/bookings/taxi.
func (h *BookingHandler) AttachTaxi(c *gin.Context) {
	var req struct {
		BookingID  string  `json:"bookingId"`
		DistanceKm float64 `json:"distance"`
		Pickup     string  `json:"taxiPickup"`
		Drop       string  `json:"taxiDrop"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input", "details": err.Error()})
		return
	}
	if req.BookingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "bookingId is required"})
		return
	}

	updated, err := h.svc.AttachTaxiLeg(c.Request.Context(), req.BookingID, req.DistanceKm, req.Pickup, req.Drop)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": updated, "message": "Taxi added successfully"})
}

// FinalizePayment handles POST /api/bookings/finalize.
func (h *BookingHandler) FinalizePayment(c *gin.Context) {
	var req booking.FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input", "details": err.Error()})
		return
	}

	confirmed, err := h.svc.FinalizeWithPayment(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Booking confirmed", "booking": confirmed})
}

// PaymentIntent handles POST /api/bookings/payment-intent.
func (h *BookingHandler) PaymentIntent(c *gin.Context) {
	var req struct {
		BookingID string `json:"bookingId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.BookingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "bookingId is required"})
		return
	}

	secret, err := h.svc.CreatePaymentIntent(c.Request.Context(), req.BookingID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "clientSecret": secret})
}

// UserBookings handles GET /api/bookings/user/:userId.
func (h *BookingHandler) UserBookings(c *gin.Context) {
	userID := c.Param("userId")

	bookings, err := h.svc.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": bookings, "count": len(bookings)})
}

// OperatorBookings handles GET /api/bookings/operator?operatorEmail=...
func (h *BookingHandler) OperatorBookings(c *gin.Context) {
	operatorEmail := c.Query("operatorEmail")
	if operatorEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "operatorEmail is required"})
		return
	}

	bookings, err := h.svc.ListForBusOperator(c.Request.Context(), operatorEmail)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": bookings})
}

// TaxiBookings handles GET /api/bookings/taxi.
func (h *BookingHandler) TaxiBookings(c *gin.Context) {
	bookings, err := h.svc.ListForTaxiOperator(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": bookings})
}
