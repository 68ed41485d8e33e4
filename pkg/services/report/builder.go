package report

import (
	"slices"
	"time"

	"github.com/de-tools/report-builder/pkg/models/domain"
)

// Builder incrementally configures a domain.Report. Every setter stores its value
// verbatim and returns the receiver so calls can be chained.
type Builder interface {
	WithTitle(title string) Builder
	WithFormat(format domain.Format) Builder
	WithStartDate(start time.Time) Builder
	WithEndDate(end time.Time) Builder
	WithColumns(columns []string) Builder
	WithFilters(filters []string) Builder
	WithSortBy(field string) Builder
	WithGroupBy(field string) Builder
	WithIncludeHeader(include bool) Builder
	WithHeaderText(text string) Builder
	WithIncludeFooter(include bool) Builder
	WithFooterText(text string) Builder
	WithIncludeCharts(include bool) Builder
	WithChartType(chartType string) Builder
	WithIncludeSummary(include bool) Builder
	WithIncludeTotals(include bool) Builder
	WithOrientation(orientation string) Builder
	WithPageSize(pageSize string) Builder
	WithIncludePageNumbers(include bool) Builder
	WithCompanyLogo(path string) Builder
	WithWatermark(text string) Builder

	// Reset discards the report being accumulated and starts over from the
	// builder's defaults.
	Reset()
	// Build hands the accumulated report to the caller and resets the builder.
	Build() *domain.Report
}

// formatBuilder is shared by all concrete builders; they differ only in seed.
type formatBuilder struct {
	seed   func(r *domain.Report)
	report *domain.Report
}

func newFormatBuilder(seed func(r *domain.Report)) *formatBuilder {
	b := &formatBuilder{seed: seed}
	b.Reset()
	return b
}

func seedFormat(format domain.Format) func(r *domain.Report) {
	return func(r *domain.Report) {
		r.Format = format
	}
}

// NewPDFBuilder returns a builder whose reports default to the PDF format.
func NewPDFBuilder() Builder {
	return newFormatBuilder(seedFormat(domain.FormatPDF))
}

// NewExcelBuilder returns a builder whose reports default to the Excel format.
func NewExcelBuilder() Builder {
	return newFormatBuilder(seedFormat(domain.FormatExcel))
}

// NewHTMLBuilder returns a builder whose reports default to the HTML format.
func NewHTMLBuilder() Builder {
	return newFormatBuilder(seedFormat(domain.FormatHTML))
}

func (b *formatBuilder) Reset() {
	b.report = &domain.Report{}
	if b.seed != nil {
		b.seed(b.report)
	}
}

func (b *formatBuilder) Build() *domain.Report {
	result := b.report
	b.Reset()
	return result
}

func (b *formatBuilder) WithTitle(title string) Builder {
	b.report.Title = title
	return b
}

func (b *formatBuilder) WithFormat(format domain.Format) Builder {
	b.report.Format = format
	return b
}

func (b *formatBuilder) WithStartDate(start time.Time) Builder {
	b.report.StartDate = start
	return b
}

func (b *formatBuilder) WithEndDate(end time.Time) Builder {
	b.report.EndDate = end
	return b
}

// WithColumns stores a copy of columns; later changes to the caller's slice are not
// observed by the builder.
func (b *formatBuilder) WithColumns(columns []string) Builder {
	b.report.Columns = slices.Clone(columns)
	return b
}

func (b *formatBuilder) WithFilters(filters []string) Builder {
	b.report.Filters = slices.Clone(filters)
	return b
}

func (b *formatBuilder) WithSortBy(field string) Builder {
	b.report.SortBy = field
	return b
}

func (b *formatBuilder) WithGroupBy(field string) Builder {
	b.report.GroupBy = field
	return b
}

func (b *formatBuilder) WithIncludeHeader(include bool) Builder {
	b.report.IncludeHeader = include
	return b
}

func (b *formatBuilder) WithHeaderText(text string) Builder {
	b.report.HeaderText = text
	return b
}

func (b *formatBuilder) WithIncludeFooter(include bool) Builder {
	b.report.IncludeFooter = include
	return b
}

func (b *formatBuilder) WithFooterText(text string) Builder {
	b.report.FooterText = text
	return b
}

func (b *formatBuilder) WithIncludeCharts(include bool) Builder {
	b.report.IncludeCharts = include
	return b
}

func (b *formatBuilder) WithChartType(chartType string) Builder {
	b.report.ChartType = chartType
	return b
}

func (b *formatBuilder) WithIncludeSummary(include bool) Builder {
	b.report.IncludeSummary = include
	return b
}

func (b *formatBuilder) WithIncludeTotals(include bool) Builder {
	b.report.IncludeTotals = include
	return b
}

func (b *formatBuilder) WithOrientation(orientation string) Builder {
	b.report.Orientation = orientation
	return b
}

func (b *formatBuilder) WithPageSize(pageSize string) Builder {
	b.report.PageSize = pageSize
	return b
}

func (b *formatBuilder) WithIncludePageNumbers(include bool) Builder {
	b.report.IncludePageNumbers = include
	return b
}

func (b *formatBuilder) WithCompanyLogo(path string) Builder {
	b.report.CompanyLogo = path
	return b
}

func (b *formatBuilder) WithWatermark(text string) Builder {
	b.report.WaterMark = text
	return b
}
