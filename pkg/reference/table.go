// Package reference holds the clinical reference ranges used to classify
// lab marker readings. Ranges are derived from a structured cutoffs table
// so they can be updated independently of the code.
package reference

import "fmt"

// Range is the clinical bounds for one marker. Either side may be absent.
type Range struct {
	Low  *float64
	High *float64
}

// Table is an immutable lookup from marker identifier to its Range.
// It is built once at startup and shared read-only afterwards.
type Table struct {
	ranges map[string]Range
}

// NewTable builds a Table from an explicit range map. When both bounds are
// present, low must be strictly below high.
func NewTable(ranges map[string]Range) (*Table, error) {
	copied := make(map[string]Range, len(ranges))
	for marker, rng := range ranges {
		if rng.Low != nil && rng.High != nil && *rng.Low >= *rng.High {
			return nil, fmt.Errorf("reference range for %q: low (%g) must be below high (%g)", marker, *rng.Low, *rng.High)
		}
		copied[marker] = rng
	}
	return &Table{ranges: copied}, nil
}

// Lookup returns the range for a marker. A miss is a normal outcome, not an
// error: callers classify such markers as unknown.
func (t *Table) Lookup(markerID string) (Range, bool) {
	rng, ok := t.ranges[markerID]
	return rng, ok
}

// Len reports how many markers carry at least one bound.
func (t *Table) Len() int {
	return len(t.ranges)
}
