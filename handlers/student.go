package handlers

import (
	"errors"
	"net/http"

	"campusminds/models"
	"campusminds/services/student"
	"campusminds/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StudentHandler exposes anonymous student profiles and student sessions.
type StudentHandler struct {
	Service student.StudentService
}

func NewStudentHandler(service student.StudentService) *StudentHandler {
	return &StudentHandler{Service: service}
}

// UpsertProfileHandler handles POST /api/students.
func (h *StudentHandler) UpsertProfileHandler(c *gin.Context) {
	var profile models.Student
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	stored, err := h.Service.UpsertProfile(c.Request.Context(), profile)
	if err != nil {
		if errors.Is(err, student.ErrInvalidProfile) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Nickname, email, age and gender are required."})
			return
		}
		utils.GetLogger().Error("failed to save student profile", zap.String("nickname", profile.Nickname), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error saving profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": stored})
}

// GetProfileHandler handles GET /api/students/:nickname.
func (h *StudentHandler) GetProfileHandler(c *gin.Context) {
	nickname := c.Param("nickname")

	stored, err := h.Service.GetProfile(c.Request.Context(), nickname)
	if err != nil {
		if errors.Is(err, student.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching profile"})
		return
	}
	c.JSON(http.StatusOK, stored)
}

// LoginHandler handles POST /api/students/login.
func (h *StudentHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Nickname string `json:"nickname" binding:"required"`
		Email    string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	token, stored, err := h.Service.Login(c.Request.Context(), req.Nickname, req.Email)
	if err != nil {
		if errors.Is(err, student.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid nickname or email."})
			return
		}
		utils.GetLogger().Error("student login failed", zap.String("nickname", req.Nickname), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error during login."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "user": stored})
}
