package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Status endpoints
	HomeHandler    gin.HandlerFunc
	HealthHandler  gin.HandlerFunc
	WelcomeHandler gin.HandlerFunc

	// Chat endpoints
	ChatHandler         gin.HandlerFunc
	ResetHandler        gin.HandlerFunc
	SpeechChatHandler   gin.HandlerFunc
	SpeechStreamHandler gin.HandlerFunc

	// Quote endpoints
	CalculateDistanceHandler gin.HandlerFunc
	GenerateEstimateHandler  gin.HandlerFunc

	// Booking endpoints
	SubmitBookingHandler gin.HandlerFunc
	RequestCallHandler   gin.HandlerFunc

	// Telephony
	TwilioVoiceHandler gin.HandlerFunc
}
