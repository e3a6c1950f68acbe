package handlers

import (
	"net/http"

	"movebot/services/assistant"
	"movebot/services/estimate"
	"movebot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalculateDistance returns driving distance between two addresses and
// whether the move counts as local or long-distance.
func CalculateDistance(distance assistant.DistanceLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Origin      string `json:"origin"`
			Destination string `json:"destination"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}
		if req.Origin == "" || req.Destination == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Origin and destination required"})
			return
		}

		miles, err := distance.Miles(c.Request.Context(), req.Origin, req.Destination)
		if err != nil {
			utils.GetLogger().Error("Distance calculation failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not calculate distance"})
			return
		}

		moveType := "local"
		if miles >= estimate.LocalMoveMaxMiles {
			moveType = "long-distance"
		}
		c.JSON(http.StatusOK, gin.H{
			"distance_miles": miles,
			"move_type":      moveType,
		})
	}
}
