// recognizer.go - Recognizer interface for supporting multiple OCR backends

package ocr

import (
	"context"

	"github.com/SumitR-washimkar/hackthon2/internal/common"
)

// Recognizer defines the interface that all OCR backends must implement
// This allows us to support multiple backends (Gemini, Tesseract, etc.) with the same interface
type Recognizer interface {
	// Recognize transcribes a receipt image into raw text
	// image: encoded image bytes, mimeType: MIME type of those bytes
	// reqCtx: request context for logging and tracking
	// Returns: raw text, TokenUsage (nil for backends that do not meter tokens), and error
	Recognize(ctx context.Context, reqCtx *common.RequestContext, image []byte, mimeType string) (string, *common.TokenUsage, error)

	// Name returns the name of the backend (e.g., "gemini", "tesseract")
	Name() string

	// Ready reports whether the backend is configured well enough to accept
	// calls. Calls on an unready recognizer fail with a normal error.
	Ready() bool
}

// RecognizerConfig contains configuration for OCR backends
type RecognizerConfig struct {
	// Provider name: "gemini" or "tesseract"
	Provider string

	// Gemini configuration
	GeminiAPIKey      string
	GeminiModel       string
	RequestsPerMinute int

	// Tesseract configuration
	TesseractCmd   string
	TesseractLangs string

	// Retry behavior shared by API-backed recognizers
	Retry RetryConfig
}

// RecognizerFunc adapts a plain function to the Recognizer interface.
// It reports itself always ready; tests use it to stub recognition.
type RecognizerFunc func(ctx context.Context, reqCtx *common.RequestContext, image []byte, mimeType string) (string, *common.TokenUsage, error)

func (f RecognizerFunc) Recognize(ctx context.Context, reqCtx *common.RequestContext, image []byte, mimeType string) (string, *common.TokenUsage, error) {
	return f(ctx, reqCtx, image, mimeType)
}

func (f RecognizerFunc) Name() string { return "func" }

func (f RecognizerFunc) Ready() bool { return true }
