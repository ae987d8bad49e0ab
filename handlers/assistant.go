package handlers

import (
	"net/http"

	"campusminds/services/assistant"
	"campusminds/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler exposes the support chat endpoint.
type AssistantHandler struct {
	Service assistant.AssistantService
}

func NewAssistantHandler(service assistant.AssistantService) *AssistantHandler {
	return &AssistantHandler{Service: service}
}

// ChatHandler handles POST /api/assistant/chat.
func (h *AssistantHandler) ChatHandler(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	reply, err := h.Service.Chat(c.Request.Context(), req.Message)
	if err != nil {
		utils.GetLogger().Error("assistant chat failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"reply": "I'm having trouble responding right now. Please try again in a moment."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
