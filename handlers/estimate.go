package handlers

import (
	"net/http"

	"movebot/models"
	"movebot/services/estimate"
	"movebot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GenerateEstimate quotes crew size and hourly rate for a move. The response
// is deliberately slim: hourly rate and crew recommendation, never a final
// total.
func GenerateEstimate(svc estimate.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.EstimateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		if input.Rooms <= 0 || input.PickupAddress == "" || input.DropAddress == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "rooms, pickup_address, and drop_address are required"})
			return
		}

		est, err := svc.Generate(c.Request.Context(), input)
		if err != nil {
			utils.GetLogger().Error("Estimate generation failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"estimate": gin.H{
				"rooms":               est.Rooms,
				"crew_size":           est.CrewSize,
				"hourly_rate":         est.HourlyRate,
				"travel_time_minutes": est.TravelTimeMinutes,
				"minimum_hours":       est.MinimumHours,
				"pickup_drop_miles":   est.PickupDropMiles,
				"move_category":       est.MoveCategory,
				"notes":               est.Notes,
			},
		})
	}
}
