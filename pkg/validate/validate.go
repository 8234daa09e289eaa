package validate

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var isbnRe = regexp.MustCompile(`^(\d{9}[\dX]|\d{13})$`)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("isbn_digits", func(fl validator.FieldLevel) bool { //nolint:errcheck
		return isbnRe.MatchString(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
