package handlers

import (
	"errors"
	"net/http"

	"campusminds/services/counselor"
	"campusminds/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CounselorHandler exposes the counselor directory and counselor sessions.
type CounselorHandler struct {
	Service counselor.CounselorService
}

func NewCounselorHandler(service counselor.CounselorService) *CounselorHandler {
	return &CounselorHandler{Service: service}
}

// LoginHandler handles POST /api/counselors/login.
func (h *CounselorHandler) LoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Name string `json:"name" binding:"required"`
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	token, cnslr, err := h.Service.Login(c.Request.Context(), req.Name, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, counselor.ErrInvalidAccessCode):
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid access code."})
		case errors.Is(err, counselor.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Access Denied: Counselor name not recognized."})
		default:
			logger.Error("counselor login failed", zap.String("name", req.Name), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error during login."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"token":         token,
		"counselorId":   cnslr.ID,
		"counselorName": cnslr.Name,
	})
}

// ListHandler handles GET /api/counselors.
func (h *CounselorHandler) ListHandler(c *gin.Context) {
	counselors, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list counselors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching counselors"})
		return
	}
	c.JSON(http.StatusOK, counselors)
}

// GetMeHandler handles GET /api/counselors/me?name=.
func (h *CounselorHandler) GetMeHandler(c *gin.Context) {
	name := c.Query("name")

	cnslr, err := h.Service.GetByName(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, counselor.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Counselor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching counselor details"})
		return
	}
	c.JSON(http.StatusOK, cnslr)
}

// UpdateStatusHandler handles PUT /api/counselors/status.
func (h *CounselorHandler) UpdateStatusHandler(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		IsOnline *bool  `json:"isOnline" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	isOnline, err := h.Service.SetOnlineStatus(c.Request.Context(), req.Name, *req.IsOnline)
	if err != nil {
		if errors.Is(err, counselor.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Counselor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "isOnline": isOnline})
}
