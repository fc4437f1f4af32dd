package domain

import (
	"math"
	"testing"
)

func TestClassifyDecisionTable(t *testing.T) {
	tests := []struct {
		name string
		spec PackageSpec
		want HandlingCategory
	}{
		{
			name: "small light package is standard",
			spec: PackageSpec{Width: 10, Height: 10, Length: 10, Mass: 1},
			want: CategoryStandard,
		},
		{
			name: "bulky by volume only is special",
			spec: PackageSpec{Width: 100, Height: 100, Length: 100, Mass: 1},
			want: CategorySpecial,
		},
		{
			name: "just under volume threshold is standard",
			spec: PackageSpec{Width: 99.99, Height: 100, Length: 100, Mass: 1},
			want: CategoryStandard,
		},
		{
			name: "bulky by width only is special",
			spec: PackageSpec{Width: 150, Height: 1, Length: 1, Mass: 1},
			want: CategorySpecial,
		},
		{
			name: "width just under dimension threshold is standard",
			spec: PackageSpec{Width: 149.99, Height: 1, Length: 1, Mass: 1},
			want: CategoryStandard,
		},
		{
			name: "bulky by height only is special",
			spec: PackageSpec{Width: 1, Height: 150, Length: 1, Mass: 1},
			want: CategorySpecial,
		},
		{
			name: "bulky by length only is special",
			spec: PackageSpec{Width: 1, Height: 1, Length: 150, Mass: 1},
			want: CategorySpecial,
		},
		{
			name: "heavy only is special",
			spec: PackageSpec{Width: 1, Height: 1, Length: 1, Mass: 20},
			want: CategorySpecial,
		},
		{
			name: "mass just under threshold is standard",
			spec: PackageSpec{Width: 1, Height: 1, Length: 1, Mass: 19.99},
			want: CategoryStandard,
		},
		{
			name: "bulky and heavy is rejected",
			spec: PackageSpec{Width: 150, Height: 150, Length: 150, Mass: 20},
			want: CategoryRejected,
		},
		{
			name: "bulky via dimension and heavy via mass is rejected",
			spec: PackageSpec{Width: 150, Height: 1, Length: 1, Mass: 20},
			want: CategoryRejected,
		},
		{
			name: "bulky via volume and heavy is rejected",
			spec: PackageSpec{Width: 100, Height: 100, Length: 100, Mass: 25},
			want: CategoryRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, err := Classify(tt.spec)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if decision.Category != tt.want {
				t.Errorf("Classify() category = %s, want %s", decision.Category, tt.want)
			}
		})
	}
}

func TestClassifyAlwaysComputesVolume(t *testing.T) {
	// Bulky by dimension alone; volume must still be reported.
	decision, err := Classify(PackageSpec{Width: 200, Height: 2, Length: 3, Mass: 1})
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if decision.Volume != 1200 {
		t.Errorf("Classify() volume = %v, want 1200", decision.Volume)
	}
	if !decision.Bulky {
		t.Error("Classify() bulky = false, want true")
	}
	if decision.Heavy {
		t.Error("Classify() heavy = true, want false")
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	spec := PackageSpec{Width: 120, Height: 80, Length: 110, Mass: 19}

	first, err := Classify(spec)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	for i := 0; i < 10; i++ {
		again, err := Classify(spec)
		if err != nil {
			t.Fatalf("Classify() error on repeat call = %v", err)
		}
		if *again != *first {
			t.Errorf("Classify() repeat call = %+v, want %+v", again, first)
		}
	}
}

func TestClassifyWidthMonotonicity(t *testing.T) {
	// Holding the other measurements fixed, growing width may only move the
	// category forward: STANDARD -> SPECIAL -> REJECTED.
	rank := map[HandlingCategory]int{
		CategoryStandard: 0,
		CategorySpecial:  1,
		CategoryRejected: 2,
	}

	tests := []struct {
		name string
		mass float64
	}{
		{name: "light package", mass: 1},
		{name: "heavy package", mass: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := -1
			for _, width := range []float64{0.5, 50, 149.99, 150, 300, 10_000} {
				decision, err := Classify(PackageSpec{Width: width, Height: 40, Length: 40, Mass: tt.mass})
				if err != nil {
					t.Fatalf("Classify(width=%v) error = %v", width, err)
				}
				if rank[decision.Category] < prev {
					t.Errorf("Classify(width=%v) category %s moved backward", width, decision.Category)
				}
				prev = rank[decision.Category]
			}
		})
	}
}

func TestClassifyValidationOrder(t *testing.T) {
	tests := []struct {
		name      string
		spec      PackageSpec
		wantField string
		wantKind  FailureKind
	}{
		{
			name:      "invalid width reported first even when other fields invalid",
			spec:      PackageSpec{Width: -1, Height: -5, Length: 0, Mass: -10},
			wantField: "width",
			wantKind:  FailureNotPositive,
		},
		{
			name:      "invalid height reported before length and mass",
			spec:      PackageSpec{Width: 10, Height: math.NaN(), Length: 0, Mass: -1},
			wantField: "height",
			wantKind:  FailureNotFinite,
		},
		{
			name:      "invalid length reported before mass",
			spec:      PackageSpec{Width: 10, Height: 10, Length: math.Inf(1), Mass: 0},
			wantField: "length",
			wantKind:  FailureNotFinite,
		},
		{
			name:      "invalid mass reported last",
			spec:      PackageSpec{Width: 10, Height: 10, Length: 10, Mass: 0},
			wantField: "mass",
			wantKind:  FailureNotPositive,
		},
		{
			name:      "oversized width reported as too large",
			spec:      PackageSpec{Width: MaxMeasurement * 2, Height: 10, Length: 10, Mass: 10},
			wantField: "width",
			wantKind:  FailureTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(tt.spec)
			if err == nil {
				t.Fatal("Classify() error = nil, want FieldError")
			}
			fieldErr, ok := err.(*FieldError)
			if !ok {
				t.Fatalf("Classify() error type = %T, want *FieldError", err)
			}
			if fieldErr.Field != tt.wantField {
				t.Errorf("FieldError.Field = %s, want %s", fieldErr.Field, tt.wantField)
			}
			if fieldErr.Kind != tt.wantKind {
				t.Errorf("FieldError.Kind = %s, want %s", fieldErr.Kind, tt.wantKind)
			}
		})
	}
}

func TestClassifyThresholdBoundaries(t *testing.T) {
	// Exactly at each threshold counts as qualifying.
	atVolume, err := Classify(PackageSpec{Width: 100, Height: 100, Length: 100, Mass: 1})
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if atVolume.Volume != BulkyVolumeThreshold {
		t.Errorf("volume = %v, want exactly %v", atVolume.Volume, BulkyVolumeThreshold)
	}
	if !atVolume.Bulky || atVolume.Category != CategorySpecial {
		t.Errorf("package at exact volume threshold: bulky=%v category=%s, want bulky SPECIAL",
			atVolume.Bulky, atVolume.Category)
	}

	atMax, err := Classify(PackageSpec{Width: MaxMeasurement, Height: 1, Length: 1, Mass: 1})
	if err != nil {
		t.Fatalf("Classify() at MaxMeasurement error = %v", err)
	}
	if atMax.Category != CategorySpecial {
		t.Errorf("package at exact magnitude bound = %s, want SPECIAL", atMax.Category)
	}
}
