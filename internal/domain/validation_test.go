package domain

import (
	"math"
	"strings"
	"testing"
)

func TestValidateMeasurement(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		wantKind FailureKind
	}{
		{name: "positive value passes", value: 42.5, wantKind: ""},
		{name: "smallest useful value passes", value: 0.001, wantKind: ""},
		{name: "value at magnitude bound passes", value: MaxMeasurement, wantKind: ""},
		{name: "NaN fails as not finite", value: math.NaN(), wantKind: FailureNotFinite},
		{name: "positive infinity fails as not finite", value: math.Inf(1), wantKind: FailureNotFinite},
		{name: "negative infinity fails as not finite", value: math.Inf(-1), wantKind: FailureNotFinite},
		{name: "zero fails as not positive", value: 0, wantKind: FailureNotPositive},
		{name: "negative value fails as not positive", value: -3, wantKind: FailureNotPositive},
		{name: "value above magnitude bound fails as too large", value: MaxMeasurement + 1024, wantKind: FailureTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMeasurement("width", tt.value)
			if tt.wantKind == "" {
				if err != nil {
					t.Errorf("ValidateMeasurement(%v) error = %v, want nil", tt.value, err)
				}
				return
			}
			fieldErr, ok := err.(*FieldError)
			if !ok {
				t.Fatalf("ValidateMeasurement(%v) error type = %T, want *FieldError", tt.value, err)
			}
			if fieldErr.Kind != tt.wantKind {
				t.Errorf("ValidateMeasurement(%v) kind = %s, want %s", tt.value, fieldErr.Kind, tt.wantKind)
			}
			if fieldErr.Field != "width" {
				t.Errorf("ValidateMeasurement(%v) field = %s, want width", tt.value, fieldErr.Field)
			}
		})
	}
}

func TestFieldErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "not positive echoes the offending value",
			err:  ValidateMeasurement("height", -2.5),
			want: []string{"height", "-2.5"},
		},
		{
			name: "not finite echoes the literal",
			err:  ValidateMeasurement("mass", math.NaN()),
			want: []string{"mass", "NaN"},
		},
		{
			name: "too large names the field only",
			err:  ValidateMeasurement("length", MaxMeasurement*2),
			want: []string{"length", "magnitude"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("expected a validation error")
			}
			msg := tt.err.Error()
			for _, fragment := range tt.want {
				if !strings.Contains(msg, fragment) {
					t.Errorf("message %q does not contain %q", msg, fragment)
				}
			}
		})
	}

	// The too-large message must not print the unwieldy literal.
	err := ValidateMeasurement("width", MaxMeasurement*2)
	if strings.ContainsAny(err.Error(), "0123456789") {
		t.Errorf("too-large message %q should not echo the value", err.Error())
	}
}

func TestCoerceMeasurement(t *testing.T) {
	tests := []struct {
		name         string
		raw          any
		want         float64
		wantCategory string
	}{
		{name: "float64 passes through", raw: 12.5, want: 12.5},
		{name: "int converts", raw: 7, want: 7},
		{name: "string fails as text", raw: "twelve", wantCategory: "text"},
		{name: "nil fails as null", raw: nil, wantCategory: "null"},
		{name: "bool fails as boolean", raw: true, wantCategory: "boolean"},
		{name: "array fails as array", raw: []any{1.0, 2.0}, wantCategory: "array"},
		{name: "map fails as object", raw: map[string]any{"value": 1.0}, wantCategory: "object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CoerceMeasurement("mass", tt.raw)
			if tt.wantCategory == "" {
				if err != nil {
					t.Fatalf("CoerceMeasurement(%v) error = %v", tt.raw, err)
				}
				if got != tt.want {
					t.Errorf("CoerceMeasurement(%v) = %v, want %v", tt.raw, got, tt.want)
				}
				return
			}
			fieldErr, ok := err.(*FieldError)
			if !ok {
				t.Fatalf("CoerceMeasurement(%v) error type = %T, want *FieldError", tt.raw, err)
			}
			if fieldErr.Kind != FailureTypeMismatch {
				t.Errorf("kind = %s, want %s", fieldErr.Kind, FailureTypeMismatch)
			}
			if fieldErr.Value != tt.wantCategory {
				t.Errorf("type category = %v, want %s", fieldErr.Value, tt.wantCategory)
			}
		})
	}
}

func TestErrMissingMeasurement(t *testing.T) {
	err := ErrMissingMeasurement("length")
	fieldErr, ok := err.(*FieldError)
	if !ok {
		t.Fatalf("error type = %T, want *FieldError", err)
	}
	if fieldErr.Kind != FailureTypeMismatch {
		t.Errorf("kind = %s, want %s", fieldErr.Kind, FailureTypeMismatch)
	}
	if !strings.Contains(fieldErr.Error(), "undefined") {
		t.Errorf("message %q should report undefined", fieldErr.Error())
	}
}
