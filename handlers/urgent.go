package handlers

import (
	"errors"
	"net/http"

	"campusminds/services/counselor"
	"campusminds/services/urgent"
	"campusminds/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UrgentHandler exposes the urgent session request flow.
type UrgentHandler struct {
	Service    urgent.UrgentService
	Counselors counselor.CounselorService
}

func NewUrgentHandler(service urgent.UrgentService, counselors counselor.CounselorService) *UrgentHandler {
	return &UrgentHandler{Service: service, Counselors: counselors}
}

// SubmitHandler handles POST /api/urgent.
func (h *UrgentHandler) SubmitHandler(c *gin.Context) {
	var req struct {
		Student string `json:"student" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	stored, err := h.Service.Submit(c.Request.Context(), req.Student, req.Message)
	if err != nil {
		if errors.Is(err, urgent.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Student and message are required."})
			return
		}
		utils.GetLogger().Error("failed to submit urgent request", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error submitting request"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "request": stored})
}

// ListHandler handles GET /api/urgent, newest first.
func (h *UrgentHandler) ListHandler(c *gin.Context) {
	requests, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list urgent requests", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching urgent requests"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

// AcceptHandler handles POST /api/urgent/accept/:id. The accepting counselor
// comes from the authenticated session.
func (h *UrgentHandler) AcceptHandler(c *gin.Context) {
	requestID := c.Param("id")

	counselorID := c.GetString("counselorID")
	cnslr, err := h.Counselors.GetByID(c.Request.Context(), counselorID)
	if err != nil {
		if errors.Is(err, counselor.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unknown counselor session."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error resolving counselor"})
		return
	}

	appt, err := h.Service.Accept(c.Request.Context(), requestID, cnslr)
	if err != nil {
		if errors.Is(err, urgent.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Urgent request not found"})
			return
		}
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "appointment": appt})
}

// DeclineHandler handles DELETE /api/urgent/:id.
func (h *UrgentHandler) DeclineHandler(c *gin.Context) {
	if err := h.Service.Decline(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, urgent.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Urgent request not found"})
			return
		}
		utils.GetLogger().Error("failed to decline urgent request", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error declining request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
