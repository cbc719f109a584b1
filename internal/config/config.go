// Package config provides application configuration management.
// It loads settings from environment variables and provides defaults for
// server mode, chatbot thresholds, upload limits, and session settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server Configuration
	Port            string
	LogLevel        string
	Environment     string // Deployment environment label ("production", "staging", ...)
	ShutdownTimeout time.Duration

	// Data Configuration
	DataDir   string // Directory for the SQLite database
	UploadDir string // Directory for student project uploads

	// Error Tracking
	SentryDSN string // Sentry DSN (empty = error tracking disabled)

	// Staff Configuration
	AdminRegistrationPassword string        // Shared password required to register staff accounts
	SessionTTL                time.Duration // Staff/dialogue session lifetime

	// Chatbot Configuration
	Chat ChatConfig

	// Upload Configuration
	MaxUploadBytes int64 // Maximum size of a single project upload
}

// ChatConfig holds chatbot-specific configuration
type ChatConfig struct {
	IntentThreshold float64 // Minimum fuzzy-match score (0-100) for an intent to apply

	// Rate Limits (Token Bucket Algorithm)
	RateBurst        float64 // Maximum burst tokens per session (default: 10)
	RateRefillPerSec float64 // Tokens refilled per second (default: 0.5)

	HistoryRetention  time.Duration // How long chat history rows are kept
	RecommendationTop int           // Courses returned at the end of the funnel
}

// Load reads configuration from environment variables.
// It attempts to load .env file first, then reads from env vars.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Environment:     getEnv("ENVIRONMENT", "production"),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),

		DataDir:   getEnv("DATA_DIR", "./data"),
		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),

		SentryDSN: getEnv("SENTRY_DSN", ""),

		AdminRegistrationPassword: getEnv("ADMIN_REGISTRATION_PASSWORD", ""),
		SessionTTL:                getDurationEnv("SESSION_TTL", 120*time.Hour), // 5 days

		Chat: ChatConfig{
			IntentThreshold:   getFloatEnv("INTENT_THRESHOLD", 70.0),
			RateBurst:         getFloatEnv("CHAT_RATE_BURST", 10.0),
			RateRefillPerSec:  getFloatEnv("CHAT_RATE_REFILL_PER_SEC", 0.5),
			HistoryRetention:  getDurationEnv("CHAT_HISTORY_RETENTION", 720*time.Hour), // 30 days
			RecommendationTop: getIntEnv("RECOMMENDATION_TOP_N", 3),
		},

		MaxUploadBytes: getInt64Env("MAX_UPLOAD_BYTES", 32<<20), // 32 MiB
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if c.DataDir == "" {
		errs = append(errs, errors.New("DATA_DIR is required"))
	}
	if c.UploadDir == "" {
		errs = append(errs, errors.New("UPLOAD_DIR is required"))
	}
	if c.AdminRegistrationPassword == "" {
		errs = append(errs, errors.New("ADMIN_REGISTRATION_PASSWORD is required"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("SESSION_TTL must be positive, got %v", c.SessionTTL))
	}
	if c.Chat.IntentThreshold < 0 || c.Chat.IntentThreshold > 100 {
		errs = append(errs, fmt.Errorf("INTENT_THRESHOLD must be in [0, 100], got %v", c.Chat.IntentThreshold))
	}
	if c.Chat.RecommendationTop < 1 {
		errs = append(errs, fmt.Errorf("RECOMMENDATION_TOP_N must be at least 1, got %d", c.Chat.RecommendationTop))
	}
	if c.MaxUploadBytes <= 0 {
		errs = append(errs, fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// SQLitePath returns the full path to the SQLite database file
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "institute.db")
}

// ProjectUploadDir returns the directory where project files are stored
func (c *Config) ProjectUploadDir() string {
	return filepath.Join(c.UploadDir, "projects")
}

// getEnv retrieves environment variable with fallback to default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv retrieves integer environment variable with fallback to default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getInt64Env retrieves int64 environment variable with fallback to default value
func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getDurationEnv retrieves duration environment variable with fallback to default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getFloatEnv retrieves float64 environment variable with fallback to default value
func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
