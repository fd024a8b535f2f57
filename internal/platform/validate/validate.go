// Package validate holds field checks shared by the domain services. All
// failures are apperr Validation errors.
package validate

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/pharmacy/pharmacy/internal/platform/apperr"
)

// Text requires a non-blank value of at most max characters.
func Text(field, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return apperr.Validation("%s is required", field)
	}
	if utf8.RuneCountInString(value) > max {
		return apperr.Validation("%s must be at most %d characters", field, max)
	}
	return nil
}

// NonNegative requires a finite value >= 0.
func NonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return apperr.Validation("%s must be a non-negative number", field)
	}
	return nil
}

// PositiveID requires a referenced identifier to be set.
func PositiveID(field string, id int64) error {
	if id <= 0 {
		return apperr.Validation("%s must be a positive integer", field)
	}
	return nil
}

// First returns the first non-nil error.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
