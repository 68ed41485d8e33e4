package commands

import (
	"fmt"
	"time"

	"github.com/de-tools/report-builder/pkg/models/domain"
	"github.com/de-tools/report-builder/pkg/services/report"
	"github.com/spf13/cobra"
)

// NewDemoCmd walks through the builder with a hand-written chain, then the
// director presets.
func NewDemoCmd(director *report.Director, reporter Reporter) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build the sample sales reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			monthly := monthlySales()

			quarterly := report.NewExcelBuilder()
			director.MakeQuarterlyReport(quarterly)

			annual := report.NewPDFBuilder()
			director.MakeAnnualReport(annual)

			steps := []struct {
				label  string
				report *domain.Report
			}{
				{label: "fluent chain", report: monthly},
				{label: "director: quarterly", report: quarterly.Build()},
				{label: "director: annual", report: annual.Build()},
			}

			for _, s := range steps {
				fmt.Fprintf(out, "=== %s ===\n", s.label)
				s.report.Generate(ctx)
				if err := reporter.Handle(s.report); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// monthlySales spells out every setter of the January 2024 report by hand.
func monthlySales() *domain.Report {
	return report.NewPDFBuilder().
		WithTitle("Monthly Sales").
		WithStartDate(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)).
		WithEndDate(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)).
		WithIncludeHeader(true).
		WithHeaderText("Sales Report").
		WithIncludeFooter(true).
		WithFooterText("Confidential").
		WithIncludeCharts(true).
		WithChartType("Bar").
		WithIncludeSummary(true).
		WithColumns([]string{"Product", "Quantity", "Value"}).
		WithFilters([]string{"Status=Active"}).
		WithSortBy("Value").
		WithGroupBy("Category").
		WithIncludeTotals(true).
		WithOrientation("Portrait").
		WithPageSize("A4").
		WithIncludePageNumbers(true).
		WithCompanyLogo("logo.png").
		WithWatermark("Confidential").
		Build()
}
