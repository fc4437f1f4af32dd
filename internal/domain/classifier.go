package domain

// Classify assigns a handling category to a package based on its measurements.
//
// Measurements are validated in width, height, length, mass order; the first
// invalid field aborts the call with a *FieldError and no Decision is produced.
//
// A package is bulky when its volume reaches 1,000,000 cm³ or any dimension
// reaches 150 cm, and heavy when its mass reaches 20 kg. All comparisons are
// inclusive. Both bulky and heavy rejects the package; exactly one of the two
// routes it to special handling; neither keeps it on the standard path.
//
// Classify is a pure function with no shared state and is safe to call from
// any number of goroutines without synchronization.
func Classify(spec PackageSpec) (*Decision, error) {
	measurements := []struct {
		field string
		value float64
	}{
		{"width", spec.Width},
		{"height", spec.Height},
		{"length", spec.Length},
		{"mass", spec.Mass},
	}
	for _, m := range measurements {
		if err := ValidateMeasurement(m.field, m.value); err != nil {
			return nil, err
		}
	}

	// Volume is computed unconditionally so the rule stays declarative and the
	// result never depends on which bulky condition fired first.
	volume := spec.Width * spec.Height * spec.Length

	bulky := volume >= BulkyVolumeThreshold ||
		spec.Width >= BulkyDimensionThreshold ||
		spec.Height >= BulkyDimensionThreshold ||
		spec.Length >= BulkyDimensionThreshold
	heavy := spec.Mass >= HeavyMassThreshold

	category := CategoryStandard
	switch {
	case bulky && heavy:
		category = CategoryRejected
	case bulky || heavy:
		category = CategorySpecial
	}

	return &Decision{
		Category: category,
		Volume:   volume,
		Bulky:    bulky,
		Heavy:    heavy,
	}, nil
}
