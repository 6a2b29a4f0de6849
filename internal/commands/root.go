package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/SumitR-washimkar/hackthon2/configs"
	"github.com/SumitR-washimkar/hackthon2/internal/extraction"
	"github.com/SumitR-washimkar/hackthon2/internal/ocr"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "receiptocr",
		Short: "Extract expense fields from receipt images",
		Long: `receiptocr turns receipt photos into structured expense records:
amount, date, category, payment method, merchant, employee and remark.
Recognition runs through the configured OCR provider (Gemini or a local
tesseract binary), everything after that is offline heuristics.`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configs.LoadConfig()
		},
	}

	rootCmd.AddCommand(newExtractCommand())
	rootCmd.AddCommand(newBatchCommand())

	return rootCmd
}

// newEngine wires an extraction engine from the environment configuration.
// An unready recognizer only warns: extractions still run and degrade to
// the empty record per call.
func newEngine() (*extraction.Engine, error) {
	recognizer, err := ocr.NewRecognizer(ocr.ConfigFromEnv())
	if err != nil {
		return nil, err
	}
	if !recognizer.Ready() {
		color.Yellow("⚠ recognizer %q is not ready, extractions will come back empty", recognizer.Name())
	}
	return extraction.NewEngine(recognizer), nil
}
