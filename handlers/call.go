package handlers

import (
	"net/http"

	"movebot/models"
	"movebot/services/notification"
	"movebot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestCall forwards a customer callback request to management.
func RequestCall(notifier notification.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CallRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		if req.Phone == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number required"})
			return
		}
		if req.Name == "" {
			req.Name = "Unknown"
		}
		if req.Timing == "" {
			req.Timing = "immediate"
		}

		if err := notifier.SendCallRequest(c.Request.Context(), req.Name, req.Phone, req.Timing, ""); err != nil {
			utils.GetLogger().Error("Call request failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Call request submitted"})
	}
}
