package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration. Credentials and manual
// overrides live here and are passed into constructors explicitly; nothing
// below internal/config reads the environment.
type Config struct {
	FredAPIKey     string
	NasdaqAPIKey   string
	TwelveAPIKey   string
	GroqAPIKey     string
	GroqModel      string
	TelegramToken  string
	TelegramChatID int64

	// Operator overrides for indicators where the published number beats
	// any API (PMI releases lag on FRED; CAPE scraping is brittle).
	PMIManual  *float64
	PMIPrev    *float64
	CAPEManual *float64

	LogLevel       string
	RequestTimeout int // seconds
}

// Load initializes configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	var cfg Config

	cfg.FredAPIKey = os.Getenv("FRED_API_KEY")
	cfg.NasdaqAPIKey = os.Getenv("NASDAQ_DATA_LINK_API_KEY")
	cfg.TwelveAPIKey = os.Getenv("TWELVE_API_KEY")
	cfg.GroqAPIKey = os.Getenv("GROQ_API_KEY")
	cfg.GroqModel = getEnvWithDefault("GROQ_MODEL", "llama-3.3-70b-versatile")
	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	cfg.TelegramChatID = getEnvInt64WithDefault("TELEGRAM_CHAT_ID", 0)

	cfg.PMIManual = getEnvOptionalFloat("PMI_MANUAL")
	cfg.PMIPrev = getEnvOptionalFloat("PMI_PREV")
	cfg.CAPEManual = getEnvOptionalFloat("CAPE_MANUAL")

	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")
	cfg.RequestTimeout = getEnvIntWithDefault("REQUEST_TIMEOUT", 10)

	return &cfg, nil
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64WithDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvOptionalFloat returns nil when the variable is unset or does not
// parse; a malformed override behaves as if it was never supplied.
func getEnvOptionalFloat(key string) *float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return nil
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("Ignoring unparsable override")
		return nil
	}
	return &floatValue
}
