package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/de-tools/report-builder/pkg/models/domain"
	"github.com/spf13/cast"
)

const DateLayout = "2006-01-02"

var ErrInvalidValue = errors.New("invalid report setting value")

// ApplySettings configures b from a flat key/value preset. Keys are domain.Field
// keys; sequences are comma separated and dates use DateLayout. Every value is
// converted before any setter runs, so on error b is left unchanged. Settings are
// applied in domain.Fields order so the result does not depend on map iteration.
func ApplySettings(b Builder, settings map[string]string) error {
	for key := range settings {
		if _, err := domain.ParseField(key); err != nil {
			return err
		}
	}

	var pending []func(Builder)
	for _, field := range domain.Fields() {
		raw, ok := settings[field.String()]
		if !ok {
			continue
		}
		set, err := settingFor(field, raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, field, raw, err)
		}
		pending = append(pending, set)
	}

	for _, set := range pending {
		set(b)
	}
	return nil
}

// settingFor converts raw into the setter call for field.
func settingFor(field domain.Field, raw string) (func(Builder), error) {
	switch field {
	case domain.FieldTitle:
		return func(b Builder) { b.WithTitle(raw) }, nil
	case domain.FieldFormat:
		return func(b Builder) { b.WithFormat(domain.Format(raw)) }, nil
	case domain.FieldStartDate, domain.FieldEndDate:
		t, err := parseDate(raw)
		if err != nil {
			return nil, err
		}
		if field == domain.FieldStartDate {
			return func(b Builder) { b.WithStartDate(t) }, nil
		}
		return func(b Builder) { b.WithEndDate(t) }, nil
	case domain.FieldColumns:
		columns := splitList(raw)
		return func(b Builder) { b.WithColumns(columns) }, nil
	case domain.FieldFilters:
		filters := splitList(raw)
		return func(b Builder) { b.WithFilters(filters) }, nil
	case domain.FieldSortBy:
		return func(b Builder) { b.WithSortBy(raw) }, nil
	case domain.FieldGroupBy:
		return func(b Builder) { b.WithGroupBy(raw) }, nil
	case domain.FieldHeaderText:
		return func(b Builder) { b.WithHeaderText(raw) }, nil
	case domain.FieldFooterText:
		return func(b Builder) { b.WithFooterText(raw) }, nil
	case domain.FieldChartType:
		return func(b Builder) { b.WithChartType(raw) }, nil
	case domain.FieldOrientation:
		return func(b Builder) { b.WithOrientation(raw) }, nil
	case domain.FieldPageSize:
		return func(b Builder) { b.WithPageSize(raw) }, nil
	case domain.FieldCompanyLogo:
		return func(b Builder) { b.WithCompanyLogo(raw) }, nil
	case domain.FieldWaterMark:
		return func(b Builder) { b.WithWatermark(raw) }, nil
	}

	v, err := cast.ToBoolE(strings.TrimSpace(raw))
	if err != nil {
		return nil, err
	}
	return flagSetting(field, v), nil
}

func flagSetting(field domain.Field, v bool) func(Builder) {
	switch field {
	case domain.FieldIncludeHeader:
		return func(b Builder) { b.WithIncludeHeader(v) }
	case domain.FieldIncludeFooter:
		return func(b Builder) { b.WithIncludeFooter(v) }
	case domain.FieldIncludeCharts:
		return func(b Builder) { b.WithIncludeCharts(v) }
	case domain.FieldIncludeSummary:
		return func(b Builder) { b.WithIncludeSummary(v) }
	case domain.FieldIncludeTotals:
		return func(b Builder) { b.WithIncludeTotals(v) }
	case domain.FieldIncludePageNumbers:
		return func(b Builder) { b.WithIncludePageNumbers(v) }
	}
	return func(Builder) {}
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(DateLayout, raw); err == nil {
		return t, nil
	}
	return cast.ToTimeE(raw)
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
