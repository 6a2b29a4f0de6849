// config.go - Configuration loaded from environment variables

package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	// OCR provider selection
	OCR_PROVIDER string

	// Gemini configuration
	GEMINI_API_KEY             string
	GEMINI_MODEL               string
	GEMINI_REQUESTS_PER_MINUTE int

	// Tesseract configuration
	TESSERACT_CMD   string
	TESSERACT_LANGS string

	// Recognition timeouts and retry behavior
	OCR_TIMEOUT_SECONDS    int
	MAX_RETRY_ATTEMPTS     int
	RETRY_INITIAL_DELAY_MS int
	RETRY_MAX_DELAY_MS     int
	RETRY_BACKOFF_MULTIPLE float64

	// Image preprocessing settings
	ENABLE_IMAGE_PREPROCESSING = true
)

// LoadConfig loads configuration from environment variables
func LoadConfig() {
	// Load .env file if exists (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	OCR_PROVIDER = getEnv("OCR_PROVIDER", "gemini")

	// Gemini settings. The API key is validated by the provider factory so
	// running with OCR_PROVIDER=tesseract needs no key at all.
	GEMINI_API_KEY = getEnv("GEMINI_API_KEY", "")
	GEMINI_MODEL = getEnv("GEMINI_MODEL", "gemini-2.5-flash")
	GEMINI_REQUESTS_PER_MINUTE = getEnvInt("GEMINI_REQUESTS_PER_MINUTE", 15)

	TESSERACT_CMD = getEnv("TESSERACT_CMD", "tesseract")
	TESSERACT_LANGS = getEnv("TESSERACT_LANGS", "eng")

	OCR_TIMEOUT_SECONDS = getEnvInt("OCR_TIMEOUT_SECONDS", 45)
	MAX_RETRY_ATTEMPTS = getEnvInt("MAX_RETRY_ATTEMPTS", 3)
	RETRY_INITIAL_DELAY_MS = getEnvInt("RETRY_INITIAL_DELAY_MS", 1000)
	RETRY_MAX_DELAY_MS = getEnvInt("RETRY_MAX_DELAY_MS", 10000)
	RETRY_BACKOFF_MULTIPLE = getEnvFloat("RETRY_BACKOFF_MULTIPLE", 2.0)

	ENABLE_IMAGE_PREPROCESSING = getEnvBool("ENABLE_IMAGE_PREPROCESSING", true)

	log.Println("✓ Configuration loaded successfully")
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
