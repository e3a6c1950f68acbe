package handlers

import (
	"net/http"
	"strings"

	"movebot/models"
	"movebot/services/booking"
	"movebot/services/notification"
	"movebot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubmitBooking accepts a direct booking request from the widget, persists it
// and notifies management.
func SubmitBooking(svc booking.Service, notifier notification.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var data models.BookingData
		if err := c.ShouldBindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		result, err := svc.Submit(c.Request.Context(), &data)
		if err != nil {
			if strings.HasPrefix(err.Error(), "missing required field") {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			utils.GetLogger().Error("Booking submission failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if !result.Success {
			// Date conflict: report alternates with a 200 so the widget can
			// continue the conversation.
			c.JSON(http.StatusOK, result)
			return
		}

		if err := notifier.SendBookingToManager(c.Request.Context(), data); err != nil {
			utils.GetLogger().Error("Manager notification failed", zap.Error(err))
		}
		if err := notifier.SendCustomerConfirmation(c.Request.Context(), data); err != nil {
			utils.GetLogger().Warn("Customer confirmation skipped or failed", zap.Error(err))
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": result.Message})
	}
}
