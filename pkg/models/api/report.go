package api

import "time"

type TimePeriod struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

type Layout struct {
	IncludeHeader      bool   `json:"include_header"`
	HeaderText         string `json:"header_text,omitempty"`
	IncludeFooter      bool   `json:"include_footer"`
	FooterText         string `json:"footer_text,omitempty"`
	IncludeCharts      bool   `json:"include_charts"`
	ChartType          string `json:"chart_type,omitempty"`
	IncludeSummary     bool   `json:"include_summary"`
	IncludeTotals      bool   `json:"include_totals"`
	Orientation        string `json:"orientation,omitempty"`
	PageSize           string `json:"page_size,omitempty"`
	IncludePageNumbers bool   `json:"include_page_numbers"`
	CompanyLogo        string `json:"company_logo,omitempty"`
	WaterMark          string `json:"watermark,omitempty"`
}

type Report struct {
	Title   string     `json:"title"`
	Format  string     `json:"format"`
	Period  TimePeriod `json:"period"`
	Columns []string   `json:"columns"`
	Filters []string   `json:"filters"`
	SortBy  string     `json:"sort_by,omitempty"`
	GroupBy string     `json:"group_by,omitempty"`
	Layout  Layout     `json:"layout"`
}

// ReportRequest configures a report through the builder for Format. Settings keys
// are report field keys.
type ReportRequest struct {
	Format   string            `json:"format"`
	Settings map[string]string `json:"settings"`
}

type Preset struct {
	Name   string `json:"name"`
	Source string `json:"source"` // builtin, catalog
}

type Error struct {
	Message       string   `json:"error"`
	MissingFields []string `json:"missing_fields,omitempty"`
}
