package apperror

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// formatFieldName: graduation_year -> Graduation Year
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return cases.Title(language.English).String(s)
}

// MapValidationError mengubah error binding gin menjadi VALIDATION_ERROR
// dengan pesan dari field pertama dan daftar semua field yang gagal.
func MapValidationError(err error) *AppError {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		details := make([]FieldError, 0, len(errs))
		for _, fe := range errs {
			details = append(details, FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}

		first := errs[0]
		human := formatFieldName(first.Field())
		var appErr *AppError
		if first.Tag() == "required" || first.Tag() == TagNotBlank {
			appErr = RequiredField(human)
		} else {
			appErr = InvalidField(human)
		}
		return appErr.WithDetails(details)
	}

	return Validation("Invalid request body")
}
