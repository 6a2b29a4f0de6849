// retry.go - Retry logic and error classification for recognizer API calls

package ocr

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/SumitR-washimkar/hackthon2/internal/common"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
)

// RetryConfig defines retry behavior for recognizer API calls
type RetryConfig struct {
	MaxAttempts     int
	InitialDelay    time.Duration
	MaxDelay        time.Duration
	BackoffMultiple float64
}

// DefaultRetryConfig provides sensible defaults for retry behavior
var DefaultRetryConfig = RetryConfig{
	MaxAttempts:     3,
	InitialDelay:    1 * time.Second,
	MaxDelay:        10 * time.Second,
	BackoffMultiple: 2.0,
}

// RecognitionError represents a categorized recognizer API error
type RecognitionError struct {
	Err        error
	Category   string
	StatusCode int
	Message    string
	Retryable  bool
}

func (e *RecognitionError) Error() string {
	return fmt.Sprintf("[%s] %s (status: %d, retryable: %v)", e.Category, e.Message, e.StatusCode, e.Retryable)
}

func (e *RecognitionError) Unwrap() error {
	return e.Err
}

// categorizeError analyzes an error and determines the retry strategy
func categorizeError(err error) *RecognitionError {
	if err == nil {
		return nil
	}

	recErr := &RecognitionError{
		Err:       err,
		Category:  "unknown",
		Message:   err.Error(),
		Retryable: false,
	}

	// Check if it's a Google API error
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		recErr.StatusCode = apiErr.Code

		switch apiErr.Code {
		case 400:
			recErr.Category = "bad_request"
			recErr.Message = "Invalid request format or parameters"
			recErr.Retryable = false

		case 401:
			recErr.Category = "unauthorized"
			recErr.Message = "Invalid API key or authentication failed"
			recErr.Retryable = false

		case 403:
			recErr.Category = "forbidden"
			recErr.Message = "API key lacks required permissions"
			recErr.Retryable = false

		case 404:
			recErr.Category = "not_found"
			recErr.Message = "Model not found or invalid endpoint"
			recErr.Retryable = false

		case 413:
			recErr.Category = "payload_too_large"
			recErr.Message = "Request size exceeds limit (reduce image size)"
			recErr.Retryable = false

		case 429:
			recErr.Category = "rate_limit"
			recErr.Message = "Rate limit exceeded - too many requests"
			recErr.Retryable = true

		case 500, 502, 503, 504:
			recErr.Category = "server_error"
			recErr.Message = fmt.Sprintf("Recognizer server error (%d)", apiErr.Code)
			recErr.Retryable = true

		default:
			recErr.Category = "unknown_api_error"
			recErr.Message = fmt.Sprintf("API error: %s", apiErr.Message)
			recErr.Retryable = apiErr.Code >= 500
		}

		return recErr
	}

	// Check for context errors
	if errors.Is(err, context.DeadlineExceeded) {
		recErr.Category = "timeout"
		recErr.Message = "Request timeout - processing took too long"
		recErr.Retryable = true
		return recErr
	}

	if errors.Is(err, context.Canceled) {
		recErr.Category = "canceled"
		recErr.Message = "Request was canceled"
		recErr.Retryable = false
		return recErr
	}

	// Check error message for common patterns
	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "limit") {
		recErr.Category = "quota_exceeded"
		recErr.Message = "API quota exceeded - daily or monthly limit reached"
		recErr.Retryable = false
		return recErr
	}

	if strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "deadline") {
		recErr.Category = "timeout"
		recErr.Message = "Request timeout"
		recErr.Retryable = true
		return recErr
	}

	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "network") {
		recErr.Category = "network_error"
		recErr.Message = "Network connection error"
		recErr.Retryable = true
		return recErr
	}

	return recErr
}

// generateWithRetry executes a Gemini generate call with retry logic
func generateWithRetry(
	ctx context.Context,
	model *genai.GenerativeModel,
	prompt genai.Part,
	image genai.Part,
	reqCtx *common.RequestContext,
	config RetryConfig,
) (*genai.GenerateContentResponse, error) {

	var lastErr *RecognitionError

	for attempt := 1; attempt <= config.MaxAttempts; attempt++ {
		if attempt > 1 {
			reqCtx.LogInfo("Retry attempt %d/%d", attempt, config.MaxAttempts)
		}

		resp, err := model.GenerateContent(ctx, prompt, image)
		if err == nil {
			if attempt > 1 {
				reqCtx.LogInfo("✅ Retry succeeded on attempt %d", attempt)
			}
			return resp, nil
		}

		lastErr = categorizeError(err)
		reqCtx.LogError("API call failed (attempt %d/%d): %s", attempt, config.MaxAttempts, lastErr.Error())

		// If error is not retryable, fail immediately
		if !lastErr.Retryable {
			reqCtx.LogError("Non-retryable error detected, aborting")
			return nil, lastErr
		}

		if attempt >= config.MaxAttempts {
			break
		}

		delay := backoffDelay(attempt, config)

		// Rate limits clear slowly, give them extra room
		if lastErr.Category == "rate_limit" {
			delay = delay * 2
			reqCtx.LogWarning("Rate limit hit, waiting %v before retry", delay)
		} else {
			reqCtx.LogInfo("Waiting %v before retry", delay)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context canceled during retry wait: %w", ctx.Err())
		case <-time.After(delay):
		}
	}

	reqCtx.LogError("❌ All %d attempts failed, last error: %s", config.MaxAttempts, lastErr.Error())
	return nil, fmt.Errorf("recognizer API call failed after %d attempts: %w", config.MaxAttempts, lastErr)
}

// backoffDelay computes exponential backoff capped at MaxDelay
func backoffDelay(attempt int, config RetryConfig) time.Duration {
	delay := float64(config.InitialDelay) * math.Pow(config.BackoffMultiple, float64(attempt-1))

	if delay > float64(config.MaxDelay) {
		delay = float64(config.MaxDelay)
	}

	return time.Duration(delay)
}
