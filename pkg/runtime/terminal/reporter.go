package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/report-builder/pkg/models/domain"
)

// Reporter outputs a short plain-text summary of a report configuration
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *domain.Report) error {
	tmpl := `{{.Format}} report "{{.Title}}"{{if not .StartDate.IsZero}} from {{.StartDate.Format "2006-01-02"}}{{end}}{{if not .EndDate.IsZero}} to {{.EndDate.Format "2006-01-02"}}{{end}}
{{- if .Columns}}
  columns: {{range $i, $c := .Columns}}{{if $i}}, {{end}}{{$c}}{{end}}{{end}}
{{- if .IncludeCharts}}
  chart: {{.ChartType}}{{end}}
{{- if or .Orientation .PageSize}}
  page: {{.Orientation}} {{.PageSize}}{{end}}
`
	t, err := template.New("summary").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
