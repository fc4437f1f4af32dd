package middleware

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// InitValidator initializes the validator with custom validators
func InitValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()

		_ = validate.RegisterValidation("handling_category", validateHandlingCategory)
		_ = validate.RegisterValidation("measurement_field", validateMeasurementField)

		// Use JSON tag names for error messages
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return fld.Name
			}
			return name
		})

		// Register the same validators on Gin's binding validator
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("handling_category", validateHandlingCategory)
			_ = v.RegisterValidation("measurement_field", validateMeasurementField)

			v.RegisterTagNameFunc(func(fld reflect.StructField) string {
				name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
				if name == "-" {
					return fld.Name
				}
				return name
			})
		}
	})

	return validate
}

// GetValidator returns the singleton validator instance
func GetValidator() *validator.Validate {
	if validate == nil {
		return InitValidator()
	}
	return validate
}

// Custom validators

var (
	categoryRegex = regexp.MustCompile(`^(STANDARD|SPECIAL|REJECTED)$`)
	fieldRegex    = regexp.MustCompile(`^(width|height|length|mass)$`)
)

func validateHandlingCategory(fl validator.FieldLevel) bool {
	return categoryRegex.MatchString(fl.Field().String())
}

func validateMeasurementField(fl validator.FieldLevel) bool {
	return fieldRegex.MatchString(fl.Field().String())
}
