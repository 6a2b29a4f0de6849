// request_context.go - Request tracking and logging system

package common

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// RequestContext tracks one extraction request with per-step timing
type RequestContext struct {
	RequestID           string
	Source              string
	StartTime           time.Time
	Steps               []StepLog
	TotalTokens         TokenUsage
	CurrentStep         string
	CurrentStepStart    time.Time
	CurrentSubSteps     []SubStepLog
	CurrentSubStep      string
	CurrentSubStepStart time.Time
}

// StepLog represents a single processing step
type StepLog struct {
	Name      string       `json:"name"`
	StartTime time.Time    `json:"start_time"`
	Duration  int64        `json:"duration_ms"`
	Status    string       `json:"status"` // "success", "failed", "skipped"
	Tokens    *TokenUsage  `json:"tokens,omitempty"`
	Error     string       `json:"error,omitempty"`
	SubSteps  []SubStepLog `json:"sub_steps,omitempty"`
}

// SubStepLog represents a detailed sub-operation within a step
type SubStepLog struct {
	Name      string    `json:"name"`
	StartTime time.Time `json:"start_time"`
	Duration  int64     `json:"duration_ms"`
	Details   string    `json:"details,omitempty"`
}

// TokenUsage tracks recognizer API token consumption
type TokenUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// NewTokenUsage builds a TokenUsage from prompt and candidate counts
func NewTokenUsage(inputTokens, outputTokens int) TokenUsage {
	return TokenUsage{
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		TotalTokens:  inputTokens + outputTokens,
	}
}

// NewRequestContext creates a new request tracking context. Source is a
// caller-chosen label for the image origin, usually the file name.
func NewRequestContext(source string) *RequestContext {
	reqID := uuid.New().String()
	now := time.Now()

	log.Printf("[%s] 🚀 New extraction request | Source: %s | Time: %s", reqID, source, now.Format("15:04:05"))

	return &RequestContext{
		RequestID:   reqID,
		Source:      source,
		StartTime:   now,
		Steps:       []StepLog{},
		TotalTokens: TokenUsage{},
	}
}

// StartStep begins tracking a new processing step
func (rc *RequestContext) StartStep(stepName string) {
	rc.CurrentStep = stepName
	rc.CurrentStepStart = time.Now()

	stepDescriptions := map[string]string{
		"normalize_image": "🖼  Normalizing receipt image",
		"recognize_text":  "🔍 Recognizing receipt text",
		"extract_fields":  "📋 Extracting expense fields",
	}

	desc := stepDescriptions[stepName]
	if desc == "" {
		desc = stepName
	}

	log.Printf("[%s] \n┌── %s", rc.RequestID, desc)
}

// EndStep completes the current step and records timing
func (rc *RequestContext) EndStep(status string, tokens *TokenUsage, err error) {
	duration := time.Since(rc.CurrentStepStart).Milliseconds()

	stepLog := StepLog{
		Name:      rc.CurrentStep,
		StartTime: rc.CurrentStepStart,
		Duration:  duration,
		Status:    status,
		Tokens:    tokens,
		SubSteps:  rc.CurrentSubSteps,
	}

	if err != nil {
		stepLog.Error = err.Error()
		log.Printf("[%s] └── ❌ FAILED - %s (%.2fs) - Error: %v",
			rc.RequestID, rc.CurrentStep, float64(duration)/1000, err)
	} else {
		logMsg := fmt.Sprintf("[%s] └── ✅ Done: %.2fs",
			rc.RequestID, float64(duration)/1000)

		if tokens != nil {
			rc.TotalTokens.InputTokens += tokens.InputTokens
			rc.TotalTokens.OutputTokens += tokens.OutputTokens
			rc.TotalTokens.TotalTokens += tokens.TotalTokens

			logMsg += fmt.Sprintf(" | 🪙 Tokens: %d in + %d out = %d",
				tokens.InputTokens, tokens.OutputTokens, tokens.TotalTokens)
		}

		if len(rc.CurrentSubSteps) > 0 {
			logMsg += fmt.Sprintf(" | Sub-steps: %d", len(rc.CurrentSubSteps))
		}

		log.Print(logMsg)
	}

	rc.Steps = append(rc.Steps, stepLog)
	rc.CurrentStep = ""
	rc.CurrentSubSteps = []SubStepLog{}
}

// StartSubStep begins tracking a detailed sub-operation
func (rc *RequestContext) StartSubStep(subStepName string) {
	rc.CurrentSubStep = subStepName
	rc.CurrentSubStepStart = time.Now()

	subStepDesc := map[string]string{
		"init_client":     "🤖 Connecting to recognizer",
		"call_recognizer": "🚀 Calling recognizer",
		"collect_text":    "🔄 Collecting recognized text",
	}

	desc := subStepDesc[subStepName]
	if desc == "" {
		desc = subStepName
	}

	log.Printf("[%s]    ├─ %s...", rc.RequestID, desc)
}

// EndSubStep completes the current sub-step and records timing
func (rc *RequestContext) EndSubStep(details string) {
	if rc.CurrentSubStep == "" {
		return
	}

	duration := time.Since(rc.CurrentSubStepStart).Milliseconds()

	subStepLog := SubStepLog{
		Name:      rc.CurrentSubStep,
		StartTime: rc.CurrentSubStepStart,
		Duration:  duration,
		Details:   details,
	}

	rc.CurrentSubSteps = append(rc.CurrentSubSteps, subStepLog)

	detailsMsg := ""
	if details != "" {
		detailsMsg = " | " + details
	}
	log.Printf("[%s]    └─ ✅ %.2fs%s",
		rc.RequestID, float64(duration)/1000, detailsMsg)

	rc.CurrentSubStep = ""
}

// LogInfo logs info-level message with request ID prefix
func (rc *RequestContext) LogInfo(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	log.Printf("[%s] ℹ️  %s", rc.RequestID, msg)
}

// LogWarning logs warning-level message with request ID prefix
func (rc *RequestContext) LogWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	log.Printf("[%s] ⚠️  %s", rc.RequestID, msg)
}

// LogError logs error-level message with request ID prefix
func (rc *RequestContext) LogError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	log.Printf("[%s] ❌ %s", rc.RequestID, msg)
}

// GetSummary logs and returns a final summary of the entire request
func (rc *RequestContext) GetSummary() map[string]interface{} {
	totalDuration := time.Since(rc.StartTime).Milliseconds()

	stepBreakdown := make(map[string]int64)
	for _, step := range rc.Steps {
		stepBreakdown[step.Name] = step.Duration
	}

	summary := map[string]interface{}{
		"request_id":         rc.RequestID,
		"source":             rc.Source,
		"total_duration_ms":  totalDuration,
		"total_duration_sec": float64(totalDuration) / 1000,
		"step_breakdown":     stepBreakdown,
		"total_steps":        len(rc.Steps),
		"token_usage": map[string]interface{}{
			"input_tokens":  rc.TotalTokens.InputTokens,
			"output_tokens": rc.TotalTokens.OutputTokens,
			"total_tokens":  rc.TotalTokens.TotalTokens,
		},
	}

	log.Printf("[%s] \n═══ 🎯 Summary ═══", rc.RequestID)
	log.Printf("[%s] ⏱  Total: %.2fs | 📝 Steps: %d | 🪙 Tokens: %s in + %s out = %s",
		rc.RequestID,
		float64(totalDuration)/1000,
		len(rc.Steps),
		formatNumber(rc.TotalTokens.InputTokens),
		formatNumber(rc.TotalTokens.OutputTokens),
		formatNumber(rc.TotalTokens.TotalTokens))
	log.Printf("[%s] ═══════════════════════════\n", rc.RequestID)

	return summary
}

// formatNumber adds comma separators to numbers
func formatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	if n < 1000000 {
		return fmt.Sprintf("%d,%03d", n/1000, n%1000)
	}
	return fmt.Sprintf("%d,%03d,%03d", n/1000000, (n%1000000)/1000, n%1000)
}
