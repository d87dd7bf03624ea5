package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT shared secret. Access tokens are minted by the main SpendSense
	// app; this service only validates them.
	JWTSecret string

	// Pipeline
	PipelineAPIKey string

	// Scheduler
	SignalFeedURL string
	ScoreCronSpec string
	PipelineURL   string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "spendsense"),
		DBPassword: getEnv("DB_PASSWORD", "spendsense"),
		DBName:     getEnv("DB_NAME", "spendsense"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		// Pipeline endpoints are disabled unless a key is configured.
		PipelineAPIKey: getEnv("PIPELINE_API_KEY", ""),

		// Scheduler
		SignalFeedURL: getEnv("SIGNAL_FEED_URL", ""),
		ScoreCronSpec: getEnv("SCORE_CRON_SPEC", "0 6 * * *"),
		PipelineURL:   getEnv("PIPELINE_URL", "http://localhost:8080/api/v1/pipeline/scores"),
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
