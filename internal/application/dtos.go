package application

// missingValue marks a measurement that was absent from the input entirely,
// as opposed to present with a null value.
type missingValue struct{}

// Missing is the sentinel callers pass for a field absent from the input.
var Missing = missingValue{}

// ClassifyPackageCommand carries the raw measurement values exactly as they
// arrived on the wire. Values stay dynamically typed so a non-numeric payload
// reaches the measurement coercion with full diagnostic information.
type ClassifyPackageCommand struct {
	Width  any
	Height any
	Length any
	Mass   any
}

// ClassificationResult is the response DTO for a classification call
type ClassificationResult struct {
	Category string  `json:"category"`
	Volume   float64 `json:"volume"`
	Bulky    bool    `json:"bulky"`
	Heavy    bool    `json:"heavy"`
}
