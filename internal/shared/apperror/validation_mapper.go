package apperror

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// base_salary -> Base Salary
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns a gin binding failure into a field-named AppError.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]
		field := e.Field()
		human := formatFieldName(field)

		var appErr *AppError
		switch e.Tag() {
		case "required":
			appErr = RequiredField(human)
		default:
			appErr = InvalidField(human)
		}
		return appErr.WithDetails(map[string]string{
			"field": field,
			"rule":  e.Tag(),
		})
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return InvalidField(formatFieldName(typeErr.Field)).
			WithDetails(map[string]string{"field": typeErr.Field})
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	).WithDetails(err.Error())
}
