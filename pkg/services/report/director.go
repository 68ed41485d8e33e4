package report

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var ErrUnknownPreset = errors.New("unknown report preset")

const (
	PresetAnnual    = "annual"
	PresetMonthly   = "monthly"
	PresetQuarterly = "quarterly"
)

// Director applies named configuration presets onto any Builder. It holds no state;
// callers still call Build on the builder afterwards.
type Director struct{}

func NewDirector() *Director {
	return &Director{}
}

// Presets returns the names accepted by Apply, sorted.
func (d *Director) Presets() []string {
	presets := d.presets()
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply runs the preset registered under name on b.
func (d *Director) Apply(name string, b Builder) error {
	preset, ok := d.presets()[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	preset(b)
	return nil
}

func (d *Director) presets() map[string]func(Builder) {
	return map[string]func(Builder){
		PresetAnnual:    d.MakeAnnualReport,
		PresetMonthly:   d.MakeMonthlyReport,
		PresetQuarterly: d.MakeQuarterlyReport,
	}
}

// MakeAnnualReport configures the yearly sales overview for 2024.
func (d *Director) MakeAnnualReport(b Builder) {
	b.WithTitle("Annual Sales").
		WithStartDate(date(2024, time.January, 1)).
		WithEndDate(date(2024, time.December, 31)).
		WithIncludeHeader(true).
		WithHeaderText("Sales Report").
		WithIncludeFooter(true).
		WithFooterText("Confidential").
		WithColumns([]string{"Product", "Quantity", "Value"}).
		WithIncludeCharts(true).
		WithChartType("Pie").
		WithIncludeTotals(true).
		WithOrientation("Landscape").
		WithPageSize("A4")
}

// MakeMonthlyReport configures the January 2024 sales report with the full page
// layout: header, footer, summary, page numbers, logo and watermark.
func (d *Director) MakeMonthlyReport(b Builder) {
	b.WithTitle("Monthly Sales").
		WithStartDate(date(2024, time.January, 1)).
		WithEndDate(date(2024, time.January, 31)).
		WithIncludeHeader(true).
		WithIncludeFooter(true).
		WithHeaderText("Sales Report").
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
		WithWatermark("Confidential")
}

// MakeQuarterlyReport configures the Q1 2024 per-region sales report.
func (d *Director) MakeQuarterlyReport(b Builder) {
	b.WithTitle("Quarterly Report").
		WithStartDate(date(2024, time.January, 1)).
		WithEndDate(date(2024, time.March, 31)).
		WithColumns([]string{"Seller", "Region", "Total"}).
		WithIncludeCharts(true).
		WithChartType("Line").
		WithIncludeHeader(true).
		WithGroupBy("Region").
		WithIncludeTotals(true)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
