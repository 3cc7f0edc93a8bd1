package helpers

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"vibin_web/apperrors"
	"vibin_web/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterStructValidation(searchFiltersRanges, models.SearchFilters{})
	})
	return validate
}

// searchFiltersRanges rejects inverted age or fame ranges
func searchFiltersRanges(sl validator.StructLevel) {
	f := sl.Current().Interface().(models.SearchFilters)
	if f.AgeRange[0] > f.AgeRange[1] {
		sl.ReportError(f.AgeRange, "AgeRange", "ageRange", "ordered", "")
	}
	if f.FameRange[0] > f.FameRange[1] {
		sl.ReportError(f.FameRange, "FameRange", "fameRange", "ordered", "")
	}
}

// Validate runs struct tag validation and wraps failures as validation errors
func Validate(v interface{}) error {
	if err := validatorInstance().Struct(v); err != nil {
		return apperrors.Validation(err.Error(), err)
	}
	return nil
}
