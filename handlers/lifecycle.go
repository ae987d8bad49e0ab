package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApproveAppointmentHandler handles PUT /api/counselors/approve/:id.
func (h *BookingHandler) ApproveAppointmentHandler(c *gin.Context) {
	id := c.Param("id")

	appt, err := h.Service.Approve(c.Request.Context(), id)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "appointment": appt})
}

// CompleteAppointmentHandler handles PUT /api/counselors/complete/:id.
func (h *BookingHandler) CompleteAppointmentHandler(c *gin.Context) {
	id := c.Param("id")

	appt, err := h.Service.Complete(c.Request.Context(), id)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "appointment": appt})
}

// DeclineAppointmentHandler handles DELETE /api/counselors/decline/:id.
func (h *BookingHandler) DeclineAppointmentHandler(c *gin.Context) {
	id := c.Param("id")

	if err := h.Service.Decline(c.Request.Context(), id); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
