package domain

// HandlingCategory represents the handling category assigned to a package at intake
type HandlingCategory string

const (
	// CategoryStandard - package can follow the standard process path
	CategoryStandard HandlingCategory = "STANDARD"

	// CategorySpecial - package is bulky or heavy and needs special handling
	CategorySpecial HandlingCategory = "SPECIAL"

	// CategoryRejected - package is both bulky and heavy and cannot be accepted
	CategoryRejected HandlingCategory = "REJECTED"
)

// Classification thresholds. Dimensions are in centimeters, mass in kilograms.
const (
	// BulkyVolumeThreshold is the volume (cm³) at or above which a package is bulky
	BulkyVolumeThreshold = 1_000_000.0

	// BulkyDimensionThreshold is the single-dimension length (cm) at or above
	// which a package is bulky regardless of volume
	BulkyDimensionThreshold = 150.0

	// HeavyMassThreshold is the mass (kg) at or above which a package is heavy
	HeavyMassThreshold = 20.0

	// MaxMeasurement is the largest accepted measurement value (2^53 - 1,
	// the double-precision safe-integer bound)
	MaxMeasurement = float64(1<<53 - 1)
)

// PackageSpec holds the four measurements of a single package. It carries no
// identity and lives only for the duration of one classification call.
type PackageSpec struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Length float64 `json:"length"`
	Mass   float64 `json:"mass"`
}

// Decision is the outcome of classifying a package. Volume is always computed,
// even when a single dimension already makes the package bulky, so downstream
// consumers can rely on it being present.
type Decision struct {
	Category HandlingCategory `json:"category"`
	Volume   float64          `json:"volume"`
	Bulky    bool             `json:"bulky"`
	Heavy    bool             `json:"heavy"`
}
