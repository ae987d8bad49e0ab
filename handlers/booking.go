package handlers

import (
	"net/http"

	"campusminds/models"
	"campusminds/services/booking"
	"campusminds/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes slot availability and booking creation.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(service booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: service}
}

// GetSlotsHandler handles GET /api/slots?counselorId=&date=.
func (h *BookingHandler) GetSlotsHandler(c *gin.Context) {
	counselorID := c.Query("counselorId")
	date := c.Query("date")

	slots, err := h.Service.GetSlots(c.Request.Context(), counselorID, date)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// CreateBookingHandler handles POST /api/book.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	appt, err := h.Service.Book(c.Request.Context(), req, booking.BookingOptions{})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	logger.Info("booking created via API", zap.String("id", appt.ID))
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Request sent to counselor!",
		"appointment": appt,
	})
}

// StudentAppointmentsHandler handles GET /api/students/appointments?nickname=.
func (h *BookingHandler) StudentAppointmentsHandler(c *gin.Context) {
	nickname := c.Query("nickname")

	appointments, err := h.Service.StudentAppointments(c.Request.Context(), nickname)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}
