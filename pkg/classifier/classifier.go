// Package classifier maps raw lab readings to categorical statuses against
// a reference table. Classification is total and deterministic: it never
// returns an error and never panics on odd input.
package classifier

import (
	"fmt"
	"math"

	"github.com/jubyaid123/hemovita/internal/model"
	"github.com/jubyaid123/hemovita/pkg/reference"
)

type Classifier struct {
	table *reference.Table
}

func New(table *reference.Table) *Classifier {
	return &Classifier{table: table}
}

// Classify returns the status for one reading. Absent or non-finite values
// and markers without a reference range classify as unknown, never as an
// error. Boundary values are inclusive: value == low or value == high is
// normal.
func (c *Classifier) Classify(markerID string, value *float64) model.Status {
	if value == nil || math.IsNaN(*value) || math.IsInf(*value, 0) {
		return model.StatusUnknown
	}

	rng, ok := c.table.Lookup(markerID)
	if !ok {
		return model.StatusUnknown
	}

	if rng.Low != nil && *value < *rng.Low {
		return model.StatusLow
	}
	if rng.High != nil && *value > *rng.High {
		return model.StatusHigh
	}
	return model.StatusNormal
}

// ClassifyPanel classifies a full lab panel, one entry per submitted marker.
func (c *Classifier) ClassifyPanel(labs map[string]*float64) map[string]model.Status {
	labels := make(map[string]model.Status, len(labs))
	for marker, value := range labs {
		labels[marker] = c.Classify(marker, value)
	}
	return labels
}

// ClassifyAll classifies an ordered sequence of readings, preserving input
// order and attaching a short human-readable note per result.
func (c *Classifier) ClassifyAll(readings []model.MarkerReading) []model.ClassificationResult {
	results := make([]model.ClassificationResult, 0, len(readings))
	for _, reading := range readings {
		status := c.Classify(reading.MarkerID, reading.Value)
		results = append(results, model.ClassificationResult{
			MarkerID: reading.MarkerID,
			Value:    reading.Value,
			Status:   status,
			Note:     c.note(reading.MarkerID, status),
		})
	}
	return results
}

func (c *Classifier) note(markerID string, status model.Status) string {
	rng, ok := c.table.Lookup(markerID)
	switch status {
	case model.StatusLow:
		return fmt.Sprintf("below reference low %g", *rng.Low)
	case model.StatusHigh:
		return fmt.Sprintf("above reference high %g", *rng.High)
	case model.StatusNormal:
		return "within reference range"
	default:
		if !ok {
			return "no reference range for this marker"
		}
		return "value not measured"
	}
}
