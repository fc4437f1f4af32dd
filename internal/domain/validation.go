package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// FailureKind identifies why a measurement was rejected
type FailureKind string

const (
	FailureTypeMismatch FailureKind = "TYPE_MISMATCH"
	FailureNotFinite    FailureKind = "NOT_FINITE"
	FailureNotPositive  FailureKind = "NOT_POSITIVE"
	FailureTooLarge     FailureKind = "TOO_LARGE"
)

// FieldError reports the first measurement that failed validation. For
// TYPE_MISMATCH, Value holds the encountered type category (e.g. "text",
// "null"); for NOT_FINITE and NOT_POSITIVE it holds the offending value.
// TOO_LARGE carries no value so the message stays readable.
type FieldError struct {
	Field string      `json:"field"`
	Kind  FailureKind `json:"kind"`
	Value any         `json:"value,omitempty"`
}

// Error implements the error interface
func (e *FieldError) Error() string {
	switch e.Kind {
	case FailureTypeMismatch:
		return fmt.Sprintf("%s must be a number, got %v", e.Field, e.Value)
	case FailureNotFinite:
		return fmt.Sprintf("%s must be finite, got %v", e.Field, e.Value)
	case FailureNotPositive:
		return fmt.Sprintf("%s must be greater than zero, got %v", e.Field, e.Value)
	case FailureTooLarge:
		return fmt.Sprintf("%s exceeds the maximum supported magnitude", e.Field)
	default:
		return fmt.Sprintf("%s is not a valid measurement", e.Field)
	}
}

// ValidateMeasurement checks that a measurement is finite, strictly positive
// and within the safe magnitude bound. The checks run in that fixed order and
// the first failure wins.
func ValidateMeasurement(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return &FieldError{Field: field, Kind: FailureNotFinite, Value: value}
	}
	if value <= 0 {
		return &FieldError{Field: field, Kind: FailureNotPositive, Value: value}
	}
	if value > MaxMeasurement {
		return &FieldError{Field: field, Kind: FailureTooLarge}
	}
	return nil
}

// CoerceMeasurement converts a dynamically typed input value (decoded JSON or
// a raw CLI argument) into a measurement. Non-numeric input fails with a
// TYPE_MISMATCH naming the encountered type category. Range checks are left
// to ValidateMeasurement.
func CoerceMeasurement(field string, raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, &FieldError{Field: field, Kind: FailureTypeMismatch, Value: "text"}
		}
		return f, nil
	default:
		return 0, &FieldError{Field: field, Kind: FailureTypeMismatch, Value: TypeCategory(raw)}
	}
}

// ErrMissingMeasurement reports a field that was absent from the input entirely.
func ErrMissingMeasurement(field string) error {
	return &FieldError{Field: field, Kind: FailureTypeMismatch, Value: "undefined"}
}

// TypeCategory names the category of a decoded input value for diagnostics
func TypeCategory(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case string:
		return "text"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case float64, float32, int, int64, json.Number:
		return "number"
	default:
		return "object"
	}
}
