package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/de-tools/report-builder/pkg/models/domain"
)

type TableConfig struct {
	SettingWidth int
	ValueWidth   int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		SettingWidth: 22,
		ValueWidth:   50,
	}
}

// Reporter prints the report configuration as a two-column table
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *domain.Report) error {
	funcMap := template.FuncMap{
		"formatRow": func(name string, value interface{}) string {
			return fmt.Sprintf("| %-*s | %-*v |",
				c.config.SettingWidth, name,
				c.config.ValueWidth, value)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+",
				strings.Repeat("-", c.config.SettingWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2))
		},
		"date": formatDate,
		"join": func(items []string) string {
			return strings.Join(items, ", ")
		},
	}

	tmpl := `
{{.Title}} [{{.Format}}]

Period: {{date .StartDate}} to {{date .EndDate}}

{{separator}}
{{formatRow "Setting" "Value"}}
{{separator}}
{{formatRow "Columns" (join .Columns)}}
{{formatRow "Filters" (join .Filters)}}
{{formatRow "Sort by" .SortBy}}
{{formatRow "Group by" .GroupBy}}
{{formatRow "Header" .IncludeHeader}}
{{if .HeaderText}}{{formatRow "Header text" .HeaderText}}
{{end}}{{formatRow "Footer" .IncludeFooter}}
{{if .FooterText}}{{formatRow "Footer text" .FooterText}}
{{end}}{{formatRow "Charts" .IncludeCharts}}
{{if .ChartType}}{{formatRow "Chart type" .ChartType}}
{{end}}{{formatRow "Summary" .IncludeSummary}}
{{formatRow "Totals" .IncludeTotals}}
{{formatRow "Orientation" .Orientation}}
{{formatRow "Page size" .PageSize}}
{{formatRow "Page numbers" .IncludePageNumbers}}
{{formatRow "Company logo" .CompanyLogo}}
{{formatRow "Watermark" .WaterMark}}
{{separator}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}
