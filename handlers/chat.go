package handlers

import (
	"net/http"

	"movebot/models"
	"movebot/services/assistant"
	"movebot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Home reports service status.
func Home() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "online",
			"service": "USF Moving Company Chatbot API",
			"version": "1.0",
		})
	}
}

// Health exposes the internal health snapshot.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	}
}

// Welcome returns the greeting shown by front-ends on load.
func Welcome(svc assistant.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": svc.Welcome()})
	}
}

// Chat handles one text turn of the conversation.
func Chat(svc assistant.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		if req.Message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No message provided"})
			return
		}

		resp, err := svc.Chat(c.Request.Context(), req.SessionID, req.Message)
		if err != nil {
			utils.GetLogger().Error("Chat endpoint error", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// ResetConversation discards the transcript for a session.
func ResetConversation(svc assistant.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			SessionID string `json:"session_id"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		if err := svc.Reset(c.Request.Context(), req.SessionID); err != nil {
			utils.GetLogger().Error("Reset conversation error", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Conversation reset"})
	}
}
