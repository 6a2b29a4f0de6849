// gemini.go - Gemini-backed recognizer for receipt text transcription

package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/SumitR-washimkar/hackthon2/internal/common"
	"github.com/google/generative-ai-go/genai"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
)

// transcriptionPrompt asks for raw text only. Formatting or analysis in the
// response would pollute the downstream field extraction.
const transcriptionPrompt = `Extract ALL visible text from this receipt.
Read everything from top to bottom, left to right.
Include headers, line items, totals, footers, notes, and any other text.
Keep one printed line per output line.
Return ONLY the extracted text, nothing else.`

// maxOutputTokens is Gemini's output limit, set explicitly to surface
// truncation through FinishReason instead of silent cutoff
const maxOutputTokens = 8192

// GeminiRecognizer implements Recognizer using the Gemini API
type GeminiRecognizer struct {
	apiKey    string
	modelName string
	limiter   *rate.Limiter
	retry     RetryConfig
}

// NewGeminiRecognizer creates a Gemini recognizer. Calls are paced to
// requestsPerMinute to stay inside the API quota.
func NewGeminiRecognizer(apiKey, modelName string, requestsPerMinute int, retry RetryConfig) *GeminiRecognizer {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 15
	}
	return &GeminiRecognizer{
		apiKey:    apiKey,
		modelName: modelName,
		limiter:   rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 1),
		retry:     retry,
	}
}

// Name returns "gemini"
func (g *GeminiRecognizer) Name() string {
	return "gemini"
}

// Ready reports whether an API key is configured
func (g *GeminiRecognizer) Ready() bool {
	return g.apiKey != ""
}

// Recognize sends the image to Gemini and returns the transcribed text
func (g *GeminiRecognizer) Recognize(ctx context.Context, reqCtx *common.RequestContext, image []byte, mimeType string) (string, *common.TokenUsage, error) {
	// Step 1: Initialize the Gemini client
	reqCtx.StartSubStep("init_client")
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		reqCtx.EndSubStep("❌ FAILED")
		return "", nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.modelName)
	model.GenerationConfig = genai.GenerationConfig{
		MaxOutputTokens: ptr(int32(maxOutputTokens)),
	}
	reqCtx.LogInfo("📖 OCR model: %s (MaxOutputTokens: %d)", g.modelName, maxOutputTokens)
	reqCtx.EndSubStep("")

	// Step 2: Call the Gemini API with the image (paced, with retry logic)
	reqCtx.StartSubStep("call_recognizer")
	if err := g.limiter.Wait(ctx); err != nil {
		reqCtx.EndSubStep("❌ FAILED")
		return "", nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	resp, err := generateWithRetry(ctx, model,
		genai.Text(transcriptionPrompt),
		genai.Blob{
			MIMEType: mimeType,
			Data:     image,
		},
		reqCtx,
		g.retry,
	)
	if err != nil {
		reqCtx.EndSubStep("❌ FAILED")
		return "", nil, err
	}
	reqCtx.EndSubStep("")

	// Step 3: Collect the text parts of the response
	reqCtx.StartSubStep("collect_text")
	if len(resp.Candidates) == 0 {
		reqCtx.LogError("⚠️  Gemini returned 0 candidates")
		if resp.PromptFeedback != nil {
			reqCtx.LogError("⚠️  PromptFeedback BlockReason: %v", resp.PromptFeedback.BlockReason)
		}
		reqCtx.EndSubStep("❌ EMPTY")
		return "", nil, fmt.Errorf("no candidates from Gemini API (possibly blocked or rate limited)")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		reqCtx.LogError("⚠️  Candidate has 0 parts. FinishReason: %v", candidate.FinishReason)
		reqCtx.EndSubStep("❌ EMPTY")
		return "", nil, fmt.Errorf("no content parts from Gemini API (FinishReason: %v)", candidate.FinishReason)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	text := sb.String()

	if candidate.FinishReason == genai.FinishReasonMaxTokens {
		reqCtx.LogWarning("⚠️  Response was truncated (FinishReason: MAX_TOKENS). Text may be incomplete.")
	}

	// Extract token usage if available
	var tokenUsage *common.TokenUsage
	if resp.UsageMetadata != nil {
		tokens := common.NewTokenUsage(
			int(resp.UsageMetadata.PromptTokenCount),
			int(resp.UsageMetadata.CandidatesTokenCount),
		)
		tokenUsage = &tokens
		reqCtx.EndSubStep(fmt.Sprintf("tokens: %d", tokens.TotalTokens))
	} else {
		reqCtx.EndSubStep("")
	}

	reqCtx.LogInfo("📦 Recognized text: %d chars", len(text))
	return text, tokenUsage, nil
}

// ptr is a helper function to get a pointer to an int32 value
func ptr(i int32) *int32 {
	return &i
}
