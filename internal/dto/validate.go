package dto

import (
	"fmt"
	"regexp"

	"github.com/retailcore/branch_retail_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// personNameRegexp matches full names: letters and spaces, at least two
// characters overall.
var personNameRegexp = regexp.MustCompile(`^[A-Za-z][A-Za-z ]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// "personname" covers full-name fields; the builtin alpha validators
	// reject the embedded spaces.
	_ = v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return personNameRegexp.MatchString(fl.Field().String())
	})
	return v
}

// Validate runs struct-tag validation on a request DTO and wraps any failure
// in apperrors.ErrValidation so callers can classify it.
func Validate(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	return nil
}
