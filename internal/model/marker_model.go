package model

// Status is the classification outcome for a single lab marker.
type Status string

const (
	StatusLow     Status = "low"
	StatusNormal  Status = "normal"
	StatusHigh    Status = "high"
	StatusUnknown Status = "unknown"
)

// MarkerReading is one submitted lab value. A nil Value means "not measured".
type MarkerReading struct {
	MarkerID string
	Value    *float64
}

// ClassificationResult pairs a reading with its derived status.
// Instances are never mutated after creation.
type ClassificationResult struct {
	MarkerID string
	Value    *float64
	Status   Status
	Note     string
}
