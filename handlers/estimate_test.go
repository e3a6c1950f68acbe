package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movebot/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEstimator struct {
	est *models.Estimate
	err error
}

func (s *stubEstimator) Generate(ctx context.Context, input models.EstimateInput) (*models.Estimate, error) {
	return s.est, s.err
}

func estimateRouter(svc *stubEstimator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/generate-estimate", GenerateEstimate(svc))
	return router
}

func TestGenerateEstimateValidation(t *testing.T) {
	router := estimateRouter(&stubEstimator{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate-estimate",
		strings.NewReader(`{"rooms": 0, "pickup_address": "a", "drop_address": "b"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "rooms, pickup_address, and drop_address are required")
}

func TestGenerateEstimateSlimResponse(t *testing.T) {
	router := estimateRouter(&stubEstimator{est: &models.Estimate{
		Rooms:             3,
		CrewSize:          "3 movers + truck",
		HourlyRate:        150,
		TravelTimeMinutes: 30,
		MinimumHours:      3,
		PickupDropMiles:   18.5,
		MoveCategory:      "local",
		Notes:             []string{},
		BasePrice:         125,
		TotalRouteMiles:   40.2,
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate-estimate",
		strings.NewReader(`{"rooms": 3, "pickup_address": "100 Main St", "drop_address": "200 Oak Ave"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success  bool           `json:"success"`
		Estimate map[string]any `json:"estimate"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "3 movers + truck", body.Estimate["crew_size"])
	assert.Equal(t, float64(150), body.Estimate["hourly_rate"])
	assert.Equal(t, 18.5, body.Estimate["pickup_drop_miles"])
	// The slim response never exposes internal pricing anchors.
	assert.NotContains(t, body.Estimate, "base_price")
	assert.NotContains(t, body.Estimate, "total_route_miles")
}
