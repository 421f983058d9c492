package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report errors against the json field name, not the Go field name
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Check validates a struct against its validate tags and returns a
// field-to-message map, empty when the value is valid.
func Check(val any) map[string]string {
	errs := make(map[string]string)

	if err := validate.Struct(val); err != nil {
		verrors, ok := err.(validator.ValidationErrors)
		if !ok {
			errs["_"] = err.Error()
			return errs
		}
		for _, ve := range verrors {
			errs[ve.Field()] = messageFor(ve)
		}
	}

	return errs
}

func messageFor(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return fmt.Sprintf("%s is required!", ve.Field())
	case "email":
		return "Invalid email address!"
	case "min":
		if ve.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long!", ve.Field(), ve.Param())
		}
		return fmt.Sprintf("%s must be at least %s!", ve.Field(), ve.Param())
	case "max":
		if ve.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long!", ve.Field(), ve.Param())
		}
		return fmt.Sprintf("%s must be at most %s!", ve.Field(), ve.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s!", ve.Field(), ve.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s!", ve.Field(), strings.ReplaceAll(ve.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid!", ve.Field())
	}
}
