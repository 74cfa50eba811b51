package validators

import (
	"reflect"
	"regexp"

	"nfeparser/cmd/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

var hasSpaces = regexp.MustCompile(`\s+`)

// CNPJ accepts 14-digit tax ids with valid RFB check digits.
func CNPJ(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		log.Warnf("validator 'cnpj' applied to non-string type: %s", field.Kind().String())
		return false
	}
	return utils.IsCNPJValid(field.String())
}

// NoWhiteSpaces returns false if the string contains any whitespace (rejecting the input).
func NoWhiteSpaces(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	str := field.String()
	return !hasSpaces.MatchString(str)
}

// Register installs the custom tags on validate.
func Register(validate *validator.Validate) {
	_ = validate.RegisterValidation("cnpj", CNPJ)
	_ = validate.RegisterValidation("nospaces", NoWhiteSpaces)
}
