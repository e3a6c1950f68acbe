package routes

import (
	"time"

	"movebot/config"
	"movebot/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the conversational endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/welcome", hb.WelcomeHandler)
	r.POST("/chat", hb.ChatHandler)
	r.POST("/reset-conversation", hb.ResetHandler)
	r.POST("/chat/reset", hb.ResetHandler)
	r.POST("/speech-chat", hb.SpeechChatHandler)
	// Alias kept for older front-end builds.
	r.POST("/chat/speech", hb.SpeechChatHandler)
	r.GET("/speech-stream", hb.SpeechStreamHandler)
}

// RegisterQuoteRoutes registers distance and estimate endpoints.
func RegisterQuoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/calculate-distance", hb.CalculateDistanceHandler)
	r.POST("/generate-estimate", hb.GenerateEstimateHandler)
}

// RegisterBookingRoutes registers booking submission and call requests.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/submit-booking", hb.SubmitBookingHandler)
	r.POST("/request-call", hb.RequestCallHandler)
}

// RegisterTelephonyRoutes registers the Twilio webhook.
func RegisterTelephonyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/twilio/voice", hb.TwilioVoiceHandler)
}

// RegisterStatusRoutes registers the root status and health endpoints.
func RegisterStatusRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.HomeHandler)
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AllowedOriginList(),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterStatusRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterQuoteRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterTelephonyRoutes(r, hb)
}
