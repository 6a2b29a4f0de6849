// engine.go - Extraction engine orchestrating recognition and field extraction

package extraction

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/SumitR-washimkar/hackthon2/internal/common"
	"github.com/SumitR-washimkar/hackthon2/internal/ocr"
	"github.com/SumitR-washimkar/hackthon2/internal/processor"
	"github.com/samber/lo"
)

// minTextRunes is the stripped-length floor below which recognized text is
// treated as carrying no signal at all
const minTextRunes = 10

const noTextMessage = "No text detected in image. Please ensure the receipt is clear and well-lit."

// Engine turns receipt images into structured expense details. It is
// stateless apart from the injected recognizer and safe for concurrent use
// as long as the recognizer is.
type Engine struct {
	recognizer ocr.Recognizer
}

// NewEngine creates an extraction engine on top of the given recognizer
func NewEngine(recognizer ocr.Recognizer) *Engine {
	return &Engine{recognizer: recognizer}
}

// ExtractExpenseDetails runs the full pipeline: normalize the image,
// recognize text, extract fields. The only hard failure is an image that
// cannot be decoded. Recognition errors and unusable text degrade to the
// canonical empty record with a diagnostic message in the description, so
// callers always have a well-formed result to render.
func (e *Engine) ExtractExpenseDetails(ctx context.Context, reqCtx *common.RequestContext, image []byte) (Details, error) {
	reqCtx.StartStep("normalize_image")
	normalized, mimeType, err := processor.Normalize(image)
	if err != nil {
		reqCtx.EndStep("failed", nil, err)
		return Details{}, err
	}
	reqCtx.EndStep("success", nil, nil)

	reqCtx.StartStep("recognize_text")
	text, tokens, err := e.recognizer.Recognize(ctx, reqCtx, normalized, mimeType)
	if err != nil {
		reqCtx.EndStep("failed", tokens, err)
		reqCtx.LogWarning("Recognition failed, returning empty details: %v", err)
		return emptyDetails(fmt.Sprintf("OCR processing failed: %v", err)), nil
	}
	reqCtx.EndStep("success", tokens, nil)

	if utf8.RuneCountInString(strings.TrimSpace(text)) < minTextRunes {
		reqCtx.LogWarning("Recognized text too short to extract from, returning empty details")
		return emptyDetails(noTextMessage), nil
	}

	reqCtx.StartStep("extract_fields")
	details := extractFields(text)
	reqCtx.EndStep("success", nil, nil)

	return details, nil
}

// extractFields runs the seven field extractors over the recognized text.
// The extractors are independent: each either yields a value or leaves its
// field absent, and no extractor can block another.
func extractFields(text string) Details {
	details := Details{
		Date:     extractDate(text),
		Category: extractCategory(text),
		PaidBy:   extractPaymentMethod(text),
	}

	if employee, ok := extractEmployee(text); ok {
		details.Employee = lo.ToPtr(employee)
	}
	if description, ok := extractDescription(text); ok {
		details.Description = lo.ToPtr(description)
	}
	if remark, ok := extractRemark(text); ok {
		details.Remark = lo.ToPtr(remark)
	}
	if amount, ok := extractAmount(text); ok {
		details.Amount = lo.ToPtr(amount)
	}

	return details
}

// emptyDetails is the canonical fallback record: today's date, Other, Cash,
// and a diagnostic message in the description when one is given.
func emptyDetails(message string) Details {
	details := Details{
		Date:     time.Now().Format("2006-01-02"),
		Category: CategoryOther,
		PaidBy:   PaymentCash,
	}
	if message != "" {
		details.Description = lo.ToPtr(message)
	}
	return details
}
