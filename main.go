package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"movebot/config"
	"movebot/cron"
	bookingRepo "movebot/database/repository/booking"
	"movebot/handlers"
	"movebot/middleware"
	"movebot/routes"
	"movebot/services/assistant"
	bookingSvc "movebot/services/booking"
	"movebot/services/estimate"
	"movebot/services/notification"
	"movebot/services/transcribe"
	"movebot/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Redis is optional: without it sessions live in memory and mail goes out
	// synchronously.
	var mailQueue *asynq.Client
	mailer := notification.NewSMTPMailer()
	if utils.RedisConfigured() {
		utils.InitRedis()
		mailQueue = asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisMailQueueDB,
		})
		cron.InitMailWorker(mailer)
		utils.StartHealthMonitor([]*redis.Client{utils.GetSessionClient(), utils.GetCacheClient()})
	} else {
		logger.Warn("REDIS_ADDR not set; using in-memory sessions and synchronous email delivery")
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	ctx := context.Background()
	var sheetRepo bookingRepo.Repository
	if config.AppConfig.BookingSheetID != "" && config.AppConfig.GoogleSheetsCreds != "" {
		repo, err := bookingRepo.NewSheetsBookingRepo(ctx)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize sheets repository: %v", err)
		}
		sheetRepo = repo
	} else {
		logger.Warn("Google Sheets not configured; bookings will not be persisted")
	}

	// Services.
	var distanceCache estimate.DistanceCache
	if utils.RedisConfigured() {
		distanceCache = estimate.NewRedisDistanceCache(utils.GetCacheClient(), 24*time.Hour)
	} else {
		distanceCache = estimate.NewMemoryDistanceCache()
	}
	distanceClient, err := estimate.NewDistanceClient(config.AppConfig.GoogleMapsAPIKey, distanceCache)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize maps client: %v", err)
	}

	estimateService := &estimate.DefaultEstimateService{
		Distance:      distanceClient,
		Bookings:      sheetRepo,
		OfficeAddress: config.AppConfig.OfficeAddress,
		PeakDates:     config.PeakDateSet(),
	}

	bookingService := &bookingSvc.DefaultBookingService{
		Repo:          sheetRepo,
		Estimator:     estimateService,
		DailyCapacity: config.AppConfig.DailyCapacity,
	}

	notificationService := &notification.DefaultNotificationService{
		Mailer:            mailer,
		Queue:             mailQueue,
		ManagerEmail:      config.AppConfig.ManagerEmail,
		CompanyPhone:      config.AppConfig.CompanyPhone,
		SendCustomerEmail: config.AppConfig.SendCustomerEmail,
	}

	var chatModel assistant.ChatModel
	if config.AppConfig.ChatProvider == "gemini" {
		gemini, err := assistant.NewGeminiChatModel(ctx, config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
		}
		chatModel = gemini
	} else {
		if config.AppConfig.OpenAIAPIKey == "" {
			logger.Sugar().Fatal("main: OPENAI_API_KEY is required")
		}
		chatModel = assistant.NewOpenAIChatModel(config.AppConfig.OpenAIAPIKey, config.AppConfig.OpenAIModel)
	}

	var sessionStore assistant.ConversationStore
	if utils.RedisConfigured() {
		ttl := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
		sessionStore = assistant.NewRedisStore(utils.GetSessionClient(), ttl)
	} else {
		sessionStore = assistant.NewMemoryStore()
	}

	var transcriber transcribe.Transcriber
	if config.AppConfig.STTProvider == "google" {
		transcriber = transcribe.NewGoogleTranscriber(config.AppConfig.GoogleServiceAccountFile)
	} else {
		whisper, err := transcribe.NewWhisperTranscriber(
			config.AppConfig.OpenAIAPIKey, config.AppConfig.OpenAITranscribeModel)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize transcriber: %v", err)
		}
		transcriber = whisper
	}

	assistantService := assistant.NewAssistantService(
		chatModel, sessionStore, distanceClient, estimateService, bookingService, notificationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		HomeHandler:    handlers.Home(),
		HealthHandler:  handlers.Health(),
		WelcomeHandler: handlers.Welcome(assistantService),

		ChatHandler:       handlers.Chat(assistantService),
		ResetHandler:      handlers.ResetConversation(assistantService),
		SpeechChatHandler:   handlers.SpeechChat(transcriber, assistantService),
		SpeechStreamHandler: handlers.SpeechStream(transcriber, assistantService),

		CalculateDistanceHandler: handlers.CalculateDistance(distanceClient),
		GenerateEstimateHandler:  handlers.GenerateEstimate(estimateService),

		SubmitBookingHandler: handlers.SubmitBooking(bookingService, notificationService),
		RequestCallHandler:   handlers.RequestCall(notificationService),

		TwilioVoiceHandler: handlers.TwilioVoice(config.AppConfig.CompanyPhone),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
