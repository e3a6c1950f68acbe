package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigins    string `mapstructure:"ALLOWED_ORIGINS"`

	// Redis configuration. Optional: when RedisAddr is empty the server runs
	// with in-memory sessions and synchronous email delivery.
	RedisAddr         string `mapstructure:"REDIS_ADDR"`
	RedisPassword     string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB    int    `mapstructure:"REDIS_SESSION_DB"`
	RedisCacheDB      int    `mapstructure:"REDIS_CACHE_DB"`
	RedisMailQueueDB  int    `mapstructure:"REDIS_MAIL_QUEUE_DB"`
	SessionTTLMinutes int    `mapstructure:"SESSION_TTL_MINUTES"`

	// Language-model backends.
	ChatProvider          string `mapstructure:"CHAT_PROVIDER"` // "openai" or "gemini"
	OpenAIAPIKey          string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel           string `mapstructure:"OPENAI_MODEL"`
	OpenAITranscribeModel string `mapstructure:"OPENAI_TRANSCRIBE_MODEL"`
	GeminiAPIKey          string `mapstructure:"GEMINI_API_KEY"`

	// Speech-to-text backend: "openai" or "google".
	STTProvider              string `mapstructure:"STT_PROVIDER"`
	GoogleServiceAccountFile string `mapstructure:"GOOGLE_SERVICE_ACCOUNT_FILE"`

	// Google Maps Distance Matrix.
	GoogleMapsAPIKey string `mapstructure:"GOOGLE_MAPS_API_KEY"`

	// Google Sheets persistence.
	GoogleSheetsCreds string `mapstructure:"GOOGLE_SHEETS_CREDS"` // service-account JSON
	BookingSheetID    string `mapstructure:"BOOKING_SHEET_ID"`

	// Email notification.
	SMTPServer        string `mapstructure:"SMTP_SERVER"`
	SMTPPort          int    `mapstructure:"SMTP_PORT"`
	EmailAddress      string `mapstructure:"EMAIL_ADDRESS"`
	EmailPassword     string `mapstructure:"EMAIL_PASSWORD"`
	ManagerEmail      string `mapstructure:"MANAGER_EMAIL"`
	SendCustomerEmail bool   `mapstructure:"SEND_CUSTOMER_EMAIL"`

	// Business settings.
	OfficeAddress string `mapstructure:"OFFICE_ADDRESS"`
	CompanyPhone  string `mapstructure:"COMPANY_PHONE"`
	DailyCapacity int    `mapstructure:"DAILY_CAPACITY"`
	PeakDates     string `mapstructure:"PEAK_DATES"` // comma-separated YYYY-MM-DD
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("ALLOWED_ORIGINS", "https://www.usfhoustonmoving.com,https://usfhoustonmoving.com,http://www.usfhoustonmoving.com,http://usfhoustonmoving.com")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_CACHE_DB", 1)
	viper.SetDefault("REDIS_MAIL_QUEUE_DB", 2)
	viper.SetDefault("SESSION_TTL_MINUTES", 120)
	viper.SetDefault("CHAT_PROVIDER", "openai")
	viper.SetDefault("OPENAI_MODEL", "")
	viper.SetDefault("OPENAI_TRANSCRIBE_MODEL", "gpt-4o-mini-transcribe")
	viper.SetDefault("STT_PROVIDER", "openai")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SEND_CUSTOMER_EMAIL", false)
	viper.SetDefault("OFFICE_ADDRESS", "2800 Rolido Dr Apt 238, Houston, TX 77063")
	viper.SetDefault("COMPANY_PHONE", "(281) 743-4503")
	viper.SetDefault("DAILY_CAPACITY", 3)
	viper.SetDefault("PEAK_DATES", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// AllowedOriginList splits the configured CORS origins.
func AllowedOriginList() []string {
	var out []string
	for _, o := range strings.Split(AppConfig.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// PeakDateSet returns the configured peak dates as a lookup set.
func PeakDateSet() map[string]bool {
	set := make(map[string]bool)
	for _, d := range strings.Split(AppConfig.PeakDates, ",") {
		if d = strings.TrimSpace(d); d != "" {
			set[d] = true
		}
	}
	return set
}
