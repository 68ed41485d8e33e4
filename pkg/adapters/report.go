package adapters

import (
	"slices"
	"time"

	"github.com/de-tools/report-builder/pkg/models/api"
	"github.com/de-tools/report-builder/pkg/models/domain"
)

func MapReportDomainToApi(r *domain.Report) api.Report {
	columns := slices.Clone(r.Columns)
	if columns == nil {
		columns = []string{}
	}
	filters := slices.Clone(r.Filters)
	if filters == nil {
		filters = []string{}
	}

	return api.Report{
		Title:   r.Title,
		Format:  string(r.Format),
		Period:  MapPeriodDomainToApi(r.StartDate, r.EndDate),
		Columns: columns,
		Filters: filters,
		SortBy:  r.SortBy,
		GroupBy: r.GroupBy,
		Layout: api.Layout{
			IncludeHeader:      r.IncludeHeader,
			HeaderText:         r.HeaderText,
			IncludeFooter:      r.IncludeFooter,
			FooterText:         r.FooterText,
			IncludeCharts:      r.IncludeCharts,
			ChartType:          r.ChartType,
			IncludeSummary:     r.IncludeSummary,
			IncludeTotals:      r.IncludeTotals,
			Orientation:        r.Orientation,
			PageSize:           r.PageSize,
			IncludePageNumbers: r.IncludePageNumbers,
			CompanyLogo:        r.CompanyLogo,
			WaterMark:          r.WaterMark,
		},
	}
}

func MapPeriodDomainToApi(start, end time.Time) api.TimePeriod {
	var p api.TimePeriod
	if !start.IsZero() {
		p.Start = &start
	}
	if !end.IsZero() {
		p.End = &end
	}
	return p
}

func MapFieldsDomainToApi(fields []domain.Field) []string {
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.String())
	}
	return keys
}
