package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with decimal-aware rules and
// error formatting
type Validator struct {
	validate *validator.Validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	// decimal.Decimal is a struct; expose it to tag rules as its canonical string.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("decimal_gt", validateDecimalGreaterThan)
	_ = v.RegisterValidation("decimal_gte", validateDecimalGreaterOrEqual)
	_ = v.RegisterValidation("decimal_lte", validateDecimalLessOrEqual)
	_ = v.RegisterValidation("decimal_places", validateDecimalPlaces)
	_ = v.RegisterValidation("notblank", validateNotBlank)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s against its validate tags.
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FieldErrors flattens a validation failure into field name -> message.
// Non-validation errors come back under the "_" key.
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"_": err.Error()}
	}

	out := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		out[fe.Field()] = describe(fe)
	}
	return out
}

// FailedTags returns field name -> failing tag for a validation failure.
func FailedTags(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	out := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "decimal_gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "decimal_gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "decimal_lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "decimal_places":
		return fmt.Sprintf("must have at most %s decimal places", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// Custom validation functions

func fieldDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func paramDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// validateDecimalGreaterThan validates that a decimal is strictly above the tag parameter
func validateDecimalGreaterThan(fl validator.FieldLevel) bool {
	value, ok := fieldDecimal(fl)
	bound, okBound := paramDecimal(fl)
	return ok && okBound && value.GreaterThan(bound)
}

func validateDecimalGreaterOrEqual(fl validator.FieldLevel) bool {
	value, ok := fieldDecimal(fl)
	bound, okBound := paramDecimal(fl)
	return ok && okBound && value.GreaterThanOrEqual(bound)
}

func validateDecimalLessOrEqual(fl validator.FieldLevel) bool {
	value, ok := fieldDecimal(fl)
	bound, okBound := paramDecimal(fl)
	return ok && okBound && value.LessThanOrEqual(bound)
}

// validateDecimalPlaces validates that a decimal carries no more fractional
// digits than the tag parameter
func validateDecimalPlaces(fl validator.FieldLevel) bool {
	value, ok := fieldDecimal(fl)
	if !ok {
		return false
	}
	places, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	return value.Equal(value.Round(int32(places.IntPart())))
}

// validateNotBlank validates that a string has content beyond whitespace
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
