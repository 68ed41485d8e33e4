package report

import (
	"errors"
	"testing"
	"time"

	"github.com/de-tools/report-builder/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("default required fields present", func(t *testing.T) {
		b := NewPDFBuilder()
		NewDirector().MakeAnnualReport(b)
		assert.NoError(t, Validate(b.Build()))
	})

	t.Run("every missing field reported", func(t *testing.T) {
		err := Validate(NewPDFBuilder().WithTitle("Only title").Build())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingField)
		assert.Equal(t, []domain.Field{domain.FieldStartDate, domain.FieldEndDate}, MissingFields(err))
	})

	t.Run("explicit field set", func(t *testing.T) {
		r := NewExcelBuilder().WithTitle("t").Build()
		err := Validate(r, domain.FieldColumns)

		var mf *MissingFieldError
		require.True(t, errors.As(err, &mf))
		assert.Equal(t, domain.FieldColumns, mf.Field)
		assert.Equal(t, []domain.Field{domain.FieldColumns}, MissingFields(err))

		assert.NoError(t, Validate(r, domain.FieldTitle, domain.FieldFormat))
	})

	t.Run("nil report", func(t *testing.T) {
		assert.Len(t, MissingFields(Validate(nil)), len(DefaultRequiredFields))
	})

	t.Run("unrelated error", func(t *testing.T) {
		assert.Nil(t, MissingFields(errors.New("boom")))
		assert.Nil(t, MissingFields(nil))
	})
}

func TestBuildValidated(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		b := NewHTMLBuilder().
			WithTitle("Weekly").
			WithStartDate(time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)).
			WithEndDate(time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC))

		r, err := BuildValidated(b)
		require.NoError(t, err)
		assert.Equal(t, "Weekly", r.Title)
	})

	t.Run("invalid still resets", func(t *testing.T) {
		b := NewHTMLBuilder().WithTitle("Weekly")

		r, err := BuildValidated(b)
		assert.Nil(t, r)
		assert.ErrorIs(t, err, ErrMissingField)
		assert.Equal(t, &domain.Report{Format: domain.FormatHTML}, b.Build())
	})
}
