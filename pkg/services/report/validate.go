package report

import (
	"errors"
	"fmt"

	"github.com/de-tools/report-builder/pkg/models/domain"
)

var ErrMissingField = errors.New("required report field is missing")

// DefaultRequiredFields is the field set checked when no explicit set is given.
var DefaultRequiredFields = []domain.Field{
	domain.FieldTitle,
	domain.FieldStartDate,
	domain.FieldEndDate,
}

// MissingFieldError reports one required field left at its zero value.
type MissingFieldError struct {
	Field domain.Field
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required report field %q is missing", e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// Validate runs presence checks only. With no required fields given it checks
// DefaultRequiredFields. Every missing field is reported.
func Validate(r *domain.Report, required ...domain.Field) error {
	if len(required) == 0 {
		required = DefaultRequiredFields
	}
	if r == nil {
		r = &domain.Report{}
	}

	var errs []error
	for _, f := range required {
		if !r.IsSet(f) {
			errs = append(errs, &MissingFieldError{Field: f})
		}
	}
	return errors.Join(errs...)
}

// BuildValidated builds b and validates the result. The builder is reset even
// when validation fails.
func BuildValidated(b Builder, required ...domain.Field) (*domain.Report, error) {
	r := b.Build()
	if err := Validate(r, required...); err != nil {
		return nil, err
	}
	return r, nil
}

// MissingFields extracts the field keys reported by a Validate error.
func MissingFields(err error) []domain.Field {
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		var single *MissingFieldError
		if errors.As(err, &single) {
			return []domain.Field{single.Field}
		}
		return nil
	}

	var missing []domain.Field
	for _, e := range joined.Unwrap() {
		var mf *MissingFieldError
		if errors.As(e, &mf) {
			missing = append(missing, mf.Field)
		}
	}
	return missing
}
