package handlers

import (
	"net/http"

	"campusminds/services/booking"
	"campusminds/services/urgent"
	"campusminds/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the counselor dashboard projection.
type DashboardHandler struct {
	Booking booking.BookingService
	Urgent  urgent.UrgentService
}

func NewDashboardHandler(bookingSvc booking.BookingService, urgentSvc urgent.UrgentService) *DashboardHandler {
	return &DashboardHandler{Booking: bookingSvc, Urgent: urgentSvc}
}

// GetDashboardHandler handles GET /api/dashboard?counselorId=.
// The authenticated counselor id from the token wins over the query parameter.
func (h *DashboardHandler) GetDashboardHandler(c *gin.Context) {
	logger := utils.GetLogger()

	counselorID := c.Query("counselorId")
	if id, ok := c.Get("counselorID"); ok {
		if idStr, ok := id.(string); ok && idStr != "" {
			counselorID = idStr
		}
	}

	summary, err := h.Booking.Dashboard(c.Request.Context(), counselorID)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	urgentRequests, err := h.Urgent.List(c.Request.Context())
	if err != nil {
		logger.Error("failed to list urgent requests", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable, please retry."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pendingRequests": summary.Pending,
		"appointments":    summary.Confirmed,
		"history":         summary.Completed,
		"urgentRequests":  urgentRequests,
		"stats":           summary.Stats,
	})
}
