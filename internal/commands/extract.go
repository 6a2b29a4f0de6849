package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/SumitR-washimkar/hackthon2/configs"
	"github.com/SumitR-washimkar/hackthon2/internal/common"
	"github.com/SumitR-washimkar/hackthon2/internal/extraction"
	"github.com/SumitR-washimkar/hackthon2/internal/upload"
)

func newExtractCommand() *cobra.Command {
	var asJSON bool
	var showSteps bool

	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Extract expense fields from a single receipt image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(args[0], asJSON, showSteps)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&showSteps, "steps", false, "print the per-step timing breakdown")

	return cmd
}

func runExtract(path string, asJSON, showSteps bool) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	details, reqCtx, err := extractOne(engine, path)
	if err != nil {
		return err
	}

	if asJSON {
		out, err := json.MarshalIndent(details, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Println(string(out))
	} else {
		printDetails(details)
	}

	if showSteps {
		printSteps(reqCtx)
	}

	return nil
}

// extractOne validates one file against the upload policy and runs the
// extraction pipeline on it, with the configured per-call timeout.
func extractOne(engine *extraction.Engine, path string) (extraction.Details, *common.RequestContext, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return extraction.Details{}, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := upload.Validate(filepath.Base(path), data); err != nil {
		return extraction.Details{}, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.OCR_TIMEOUT_SECONDS)*time.Second)
	defer cancel()

	reqCtx := common.NewRequestContext(filepath.Base(path))
	details, err := engine.ExtractExpenseDetails(ctx, reqCtx, data)
	if err != nil {
		return extraction.Details{}, reqCtx, err
	}
	return details, reqCtx, nil
}

// printDetails renders a two-column field table.
func printDetails(details extraction.Details) {
	amount := "-"
	if details.Amount != nil {
		amount = details.Amount.String()
	}

	table := newPlainTable([]string{"Field", "Value"})
	table.Append([]string{"Employee", lo.FromPtrOr(details.Employee, "-")})
	table.Append([]string{"Description", lo.FromPtrOr(details.Description, "-")})
	table.Append([]string{"Date", details.Date})
	table.Append([]string{"Category", string(details.Category)})
	table.Append([]string{"Paid By", string(details.PaidBy)})
	table.Append([]string{"Remark", lo.FromPtrOr(details.Remark, "-")})
	table.Append([]string{"Amount", amount})
	table.Render()
}

// printSteps renders the recorded pipeline steps and the request totals.
func printSteps(reqCtx *common.RequestContext) {
	fmt.Println()
	table := newPlainTable([]string{"Step", "Status", "Duration", "Tokens"})
	for _, step := range reqCtx.Steps {
		tokens := "-"
		if step.Tokens != nil {
			tokens = fmt.Sprintf("%d", step.Tokens.TotalTokens)
		}
		table.Append([]string{
			step.Name,
			step.Status,
			fmt.Sprintf("%.2fs", float64(step.Duration)/1000),
			tokens,
		})
	}
	table.Render()
	reqCtx.GetSummary() // emits the summary log block
}

// newPlainTable builds a borderless left-aligned table writer.
func newPlainTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
