package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/SumitR-washimkar/hackthon2/internal/extraction"
	"github.com/SumitR-washimkar/hackthon2/internal/upload"
)

func newBatchCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Extract expense fields from every receipt image in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit one JSON object per file")

	return cmd
}

// batchResult is one per-file outcome. Exactly one of Details and Error is
// set.
type batchResult struct {
	File    string              `json:"file"`
	Details *extraction.Details `json:"details,omitempty"`
	Error   string              `json:"error,omitempty"`
}

func runBatch(dir string, asJSON bool) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	files, err := scanReceipts(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		color.Yellow("No receipt images found in %s", dir)
		return nil
	}

	color.Cyan("Processing %d receipt(s) from %s", len(files), dir)
	bar := getProgressBar(len(files), "Extracting")

	results := make([]batchResult, 0, len(files))
	for _, path := range files {
		details, _, err := extractOne(engine, path)
		if err != nil {
			results = append(results, batchResult{File: filepath.Base(path), Error: err.Error()})
		} else {
			results = append(results, batchResult{File: filepath.Base(path), Details: &details})
		}
		_ = bar.Add(1)
	}
	fmt.Println()

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		for _, result := range results {
			if err := enc.Encode(result); err != nil {
				return fmt.Errorf("encoding result: %w", err)
			}
		}
		return nil
	}

	printBatchTable(results)
	return nil
}

// scanReceipts lists files with an allowed receipt extension directly
// inside dir, in name order.
func scanReceipts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !upload.AllowedFile(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

func printBatchTable(results []batchResult) {
	table := newPlainTable([]string{"File", "Amount", "Date", "Category", "Paid By"})
	failed := 0
	for _, result := range results {
		if result.Details == nil {
			failed++
			table.Append([]string{result.File, color.RedString("failed"), "-", "-", "-"})
			continue
		}
		amount := "-"
		if result.Details.Amount != nil {
			amount = result.Details.Amount.String()
		}
		table.Append([]string{
			result.File,
			amount,
			result.Details.Date,
			string(result.Details.Category),
			string(result.Details.PaidBy),
		})
	}
	table.Render()

	for _, result := range results {
		if result.Error != "" {
			color.Red("✗ %s: %s", result.File, result.Error)
		}
	}
	color.Green("Done: %d succeeded, %d failed", len(results)-failed, failed)
}

func getProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(color.BlueString(description)),
		progressbar.OptionSetItsString("receipts"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetRenderBlankState(true),
	)
}
