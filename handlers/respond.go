package handlers

import (
	"errors"
	"net/http"

	"ridelink/services/booking"
	"ridelink/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps the booking error taxonomy onto HTTP statuses.
// Conflicts carry the offending seat numbers so the client can re-render
// only those seats.
func respondServiceError(c *gin.Context, err error) {
	var (
		conflictErr   *booking.ConflictError
		notFoundErr   *booking.NotFoundError
		validationErr *booking.ValidationError
		mismatchErr   *booking.FareMismatchError
	)

	switch {
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{
			"success":          false,
			"message":          err.Error(),
			"unavailableSeats": conflictErr.Seats,
		})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case errors.As(err, &mismatchErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"success":       false,
			"message":       err.Error(),
			"expectedTotal": mismatchErr.Expected,
		})
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
