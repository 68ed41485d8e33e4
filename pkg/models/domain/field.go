package domain

import (
	"errors"
	"fmt"
)

// Field names a configurable report attribute by its stable key.
type Field string

const (
	FieldTitle              Field = "title"
	FieldFormat             Field = "format"
	FieldStartDate          Field = "start_date"
	FieldEndDate            Field = "end_date"
	FieldColumns            Field = "columns"
	FieldFilters            Field = "filters"
	FieldSortBy             Field = "sort_by"
	FieldGroupBy            Field = "group_by"
	FieldIncludeHeader      Field = "include_header"
	FieldHeaderText         Field = "header_text"
	FieldIncludeFooter      Field = "include_footer"
	FieldFooterText         Field = "footer_text"
	FieldIncludeCharts      Field = "include_charts"
	FieldChartType          Field = "chart_type"
	FieldIncludeSummary     Field = "include_summary"
	FieldIncludeTotals      Field = "include_totals"
	FieldOrientation        Field = "orientation"
	FieldPageSize           Field = "page_size"
	FieldIncludePageNumbers Field = "include_page_numbers"
	FieldCompanyLogo        Field = "company_logo"
	FieldWaterMark          Field = "watermark"
)

// ErrUnknownField is returned when a key does not name a report field.
var ErrUnknownField = errors.New("unknown report field")

var fields = []Field{
	FieldTitle,
	FieldFormat,
	FieldStartDate,
	FieldEndDate,
	FieldColumns,
	FieldFilters,
	FieldSortBy,
	FieldGroupBy,
	FieldIncludeHeader,
	FieldHeaderText,
	FieldIncludeFooter,
	FieldFooterText,
	FieldIncludeCharts,
	FieldChartType,
	FieldIncludeSummary,
	FieldIncludeTotals,
	FieldOrientation,
	FieldPageSize,
	FieldIncludePageNumbers,
	FieldCompanyLogo,
	FieldWaterMark,
}

// Fields returns every configurable field in declaration order.
func Fields() []Field {
	return append([]Field(nil), fields...)
}

func ParseField(key string) (Field, error) {
	for _, f := range fields {
		if string(f) == key {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, key)
}

func (f Field) String() string {
	return string(f)
}

// IsSet reports whether the field holds a non-zero value on r.
func (r *Report) IsSet(f Field) bool {
	switch f {
	case FieldTitle:
		return r.Title != ""
	case FieldFormat:
		return r.Format != ""
	case FieldStartDate:
		return !r.StartDate.IsZero()
	case FieldEndDate:
		return !r.EndDate.IsZero()
	case FieldColumns:
		return len(r.Columns) > 0
	case FieldFilters:
		return len(r.Filters) > 0
	case FieldSortBy:
		return r.SortBy != ""
	case FieldGroupBy:
		return r.GroupBy != ""
	case FieldIncludeHeader:
		return r.IncludeHeader
	case FieldHeaderText:
		return r.HeaderText != ""
	case FieldIncludeFooter:
		return r.IncludeFooter
	case FieldFooterText:
		return r.FooterText != ""
	case FieldIncludeCharts:
		return r.IncludeCharts
	case FieldChartType:
		return r.ChartType != ""
	case FieldIncludeSummary:
		return r.IncludeSummary
	case FieldIncludeTotals:
		return r.IncludeTotals
	case FieldOrientation:
		return r.Orientation != ""
	case FieldPageSize:
		return r.PageSize != ""
	case FieldIncludePageNumbers:
		return r.IncludePageNumbers
	case FieldCompanyLogo:
		return r.CompanyLogo != ""
	case FieldWaterMark:
		return r.WaterMark != ""
	}
	return false
}

// IsFlag reports whether the field is a boolean layout switch.
func (f Field) IsFlag() bool {
	switch f {
	case FieldIncludeHeader, FieldIncludeFooter, FieldIncludeCharts,
		FieldIncludeSummary, FieldIncludeTotals, FieldIncludePageNumbers:
		return true
	}
	return false
}
