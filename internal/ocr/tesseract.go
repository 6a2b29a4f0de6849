// tesseract.go - Local tesseract binary as a recognizer backend

package ocr

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os/exec"
	"strings"

	"github.com/SumitR-washimkar/hackthon2/internal/common"
)

// TesseractRecognizer implements Recognizer using a local tesseract binary.
// It needs no API key or network access and does not meter tokens.
type TesseractRecognizer struct {
	cmd   string
	langs string
	ready bool
}

// NewTesseractRecognizer creates a tesseract recognizer. It probes the
// binary with --version; a failed probe logs a warning and marks the
// recognizer unready instead of failing construction, so callers can
// still surface a per-call error.
func NewTesseractRecognizer(cmd, langs string) *TesseractRecognizer {
	t := &TesseractRecognizer{
		cmd:   cmd,
		langs: langs,
	}

	out, err := exec.Command(cmd, "--version").CombinedOutput()
	if err != nil {
		log.Printf("⚠️  tesseract probe failed (%s --version): %v", cmd, err)
		return t
	}

	version := strings.SplitN(strings.TrimSpace(string(out)), "\n", 2)[0]
	log.Printf("✓ tesseract available: %s", version)
	t.ready = true
	return t
}

// Name returns "tesseract"
func (t *TesseractRecognizer) Name() string {
	return "tesseract"
}

// Ready reports whether the version probe succeeded
func (t *TesseractRecognizer) Ready() bool {
	return t.ready
}

// Recognize runs the tesseract binary with the image bytes on stdin and
// collects the recognized text from stdout. mimeType is ignored, tesseract
// sniffs the format itself.
func (t *TesseractRecognizer) Recognize(ctx context.Context, reqCtx *common.RequestContext, image []byte, mimeType string) (string, *common.TokenUsage, error) {
	reqCtx.StartSubStep("call_recognizer")
	reqCtx.LogInfo("⬜ Running %s (langs: %s) on %d bytes", t.cmd, t.langs, len(image))

	cmd := exec.CommandContext(ctx, t.cmd, "stdin", "stdout", "-l", t.langs)
	cmd.Stdin = bytes.NewReader(image)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		reqCtx.EndSubStep("❌ FAILED")
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", nil, fmt.Errorf("tesseract: %s: %w", msg, err)
		}
		return "", nil, fmt.Errorf("tesseract: %w", err)
	}
	reqCtx.EndSubStep("")

	text := stdout.String()
	reqCtx.LogInfo("📦 Recognized text: %d chars", len(text))
	return text, nil, nil
}
