package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Format identifies the output flavour of a report. Unknown values are kept verbatim.
type Format string

const (
	FormatPDF   Format = "PDF"
	FormatExcel Format = "Excel"
	FormatHTML  Format = "HTML"
)

// Report represents one fully configured report request
type Report struct {
	Title     string
	Format    Format
	StartDate time.Time
	EndDate   time.Time
	Columns   []string // display order matters
	Filters   []string
	SortBy    string
	GroupBy   string

	IncludeHeader      bool
	HeaderText         string
	IncludeFooter      bool
	FooterText         string
	IncludeCharts      bool
	ChartType          string // Bar, Line, Pie
	IncludeSummary     bool
	IncludeTotals      bool
	Orientation        string // Portrait, Landscape
	PageSize           string // A4, Letter
	IncludePageNumbers bool
	CompanyLogo        string // path to the logo image
	WaterMark          string
}

// Generate is the rendering extension point. It only emits a log event through the
// logger carried by ctx.
func (r *Report) Generate(ctx context.Context) {
	logger := zerolog.Ctx(ctx)

	logger.Info().
		Str("generation_id", uuid.NewString()).
		Str("title", r.Title).
		Str("format", string(r.Format)).
		Time("start_date", r.StartDate).
		Time("end_date", r.EndDate).
		Strs("columns", r.Columns).
		Strs("filters", r.Filters).
		Bool("charts", r.IncludeCharts).
		Str("chart_type", r.ChartType).
		Str("orientation", r.Orientation).
		Str("page_size", r.PageSize).
		Msgf("generating %s report", r.Format)
}
