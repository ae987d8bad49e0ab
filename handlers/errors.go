package handlers

import (
	"net/http"

	"campusminds/services/booking"

	"github.com/gin-gonic/gin"
)

// respondBookingError maps the booking error taxonomy onto HTTP status codes.
// Conflict and illegal-state both come back as 409 so clients refresh their
// view; storage failures are 503 and safe to retry.
func respondBookingError(c *gin.Context, err error) {
	switch {
	case booking.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case booking.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case booking.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": "Slot just got booked! Please refresh.", "details": err.Error()})
	case booking.IsIllegalState(err):
		c.JSON(http.StatusConflict, gin.H{"error": "Appointment state changed, please refresh.", "details": err.Error()})
	case booking.IsStorage(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable, please retry."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
