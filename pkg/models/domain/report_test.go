package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_Generate(t *testing.T) {
	t.Run("logs through the context logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := zerolog.New(&buf)
		ctx := logger.WithContext(context.Background())

		report := &Report{
			Title:     "Annual Sales",
			Format:    FormatExcel,
			StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Columns:   []string{"Product"},
		}
		report.Generate(ctx)

		var event map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
		assert.Equal(t, "Annual Sales", event["title"])
		assert.Equal(t, "Excel", event["format"])
		assert.Equal(t, "generating Excel report", event["message"])
		assert.NotEmpty(t, event["generation_id"])
	})

	t.Run("no logger attached", func(t *testing.T) {
		report := &Report{}
		assert.NotPanics(t, func() { report.Generate(context.Background()) })
	})
}

func TestParseField(t *testing.T) {
	for _, f := range Fields() {
		parsed, err := ParseField(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}

	_, err := ParseField("colour")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestReport_IsSet(t *testing.T) {
	empty := &Report{}
	for _, f := range Fields() {
		assert.False(t, empty.IsSet(f), "field %s", f)
	}

	full := &Report{
		Title:              "t",
		Format:             FormatHTML,
		StartDate:          time.Now(),
		EndDate:            time.Now(),
		Columns:            []string{"a"},
		Filters:            []string{"b"},
		SortBy:             "c",
		GroupBy:            "d",
		IncludeHeader:      true,
		HeaderText:         "e",
		IncludeFooter:      true,
		FooterText:         "f",
		IncludeCharts:      true,
		ChartType:          "Pie",
		IncludeSummary:     true,
		IncludeTotals:      true,
		Orientation:        "Portrait",
		PageSize:           "A4",
		IncludePageNumbers: true,
		CompanyLogo:        "logo.png",
		WaterMark:          "Draft",
	}
	for _, f := range Fields() {
		assert.True(t, full.IsSet(f), "field %s", f)
	}
}
