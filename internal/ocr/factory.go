// factory.go - Recognizer factory for creating backend instances

package ocr

import (
	"fmt"
	"log"
	"time"

	"github.com/SumitR-washimkar/hackthon2/configs"
)

// NewRecognizer creates a recognizer based on configuration
func NewRecognizer(cfg RecognizerConfig) (Recognizer, error) {
	switch cfg.Provider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required when OCR_PROVIDER is gemini")
		}
		log.Printf("🔵 Creating Gemini recognizer (model: %s)", cfg.GeminiModel)
		return NewGeminiRecognizer(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.RequestsPerMinute, cfg.Retry), nil

	case "tesseract":
		log.Printf("⬜ Creating Tesseract recognizer (cmd: %s)", cfg.TesseractCmd)
		return NewTesseractRecognizer(cfg.TesseractCmd, cfg.TesseractLangs), nil

	default:
		return nil, fmt.Errorf("unsupported OCR provider: %s (supported: gemini, tesseract)", cfg.Provider)
	}
}

// ConfigFromEnv builds a RecognizerConfig from the loaded environment
func ConfigFromEnv() RecognizerConfig {
	return RecognizerConfig{
		Provider:          configs.OCR_PROVIDER,
		GeminiAPIKey:      configs.GEMINI_API_KEY,
		GeminiModel:       configs.GEMINI_MODEL,
		RequestsPerMinute: configs.GEMINI_REQUESTS_PER_MINUTE,
		TesseractCmd:      configs.TESSERACT_CMD,
		TesseractLangs:    configs.TESSERACT_LANGS,
		Retry: RetryConfig{
			MaxAttempts:     configs.MAX_RETRY_ATTEMPTS,
			InitialDelay:    time.Duration(configs.RETRY_INITIAL_DELAY_MS) * time.Millisecond,
			MaxDelay:        time.Duration(configs.RETRY_MAX_DELAY_MS) * time.Millisecond,
			BackoffMultiple: configs.RETRY_BACKOFF_MULTIPLE,
		},
	}
}
