package validators

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a validator that names fields by their mapstructure key, so a
// failure reads like the YAML that caused it. It also knows the loglevel tag.
func New() *Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("loglevel", isLogLevel); err != nil {
		panic(err)
	}
	return v
}

func isLogLevel(fl validator.FieldLevel) bool {
	_, err := zerolog.ParseLevel(fl.Field().String())
	return err == nil
}
