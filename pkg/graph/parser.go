// Package graph parses the nutrient relationship table and builds the typed
// interaction graph consumed by the visualization layer.
package graph

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jubyaid123/hemovita/internal/model"
)

// The two fatal table-read conditions. Everything else the parser encounters
// is recovered locally (malformed rows are skipped, never fatal).
var (
	ErrSourceMissing = errors.New("relationship table unreadable")
	ErrSourceEmpty   = errors.New("relationship table has no data rows")
)

// SkippedRow describes a data line the parser dropped. Callers are expected
// to log these; they never abort a parse.
type SkippedRow struct {
	Line   int
	Raw    string
	Fields int
}

// ParseResult is the outcome of parsing one relationship table.
type ParseResult struct {
	Records []model.EdgeRecord
	Skipped []SkippedRow
}

// ParseRelationships parses the raw relationship table. Format: one header
// line (discarded), then one relationship per line with comma-separated
// fields source,target,effect,confidence,notes. The notes field may itself
// contain commas and is reconstructed by rejoining everything past the
// fourth separator. There is no quoting mechanism, so an embedded comma in
// any of the first four fields will misparse; this matches the upstream
// table format and is covered by fixtures, so it must not be "fixed" by
// switching to a quoting CSV reader.
//
// Blank lines are dropped before parsing begins. Rows with fewer than five
// fields are skipped. Input order and duplicate rows are preserved.
func ParseRelationships(raw []byte) ParseResult {
	var lines []string
	for _, line := range strings.Split(string(raw), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) <= 1 {
		return ParseResult{}
	}

	result := ParseResult{Records: make([]model.EdgeRecord, 0, len(lines)-1)}
	for i, line := range lines[1:] {
		fields := strings.Split(line, ",")
		if len(fields) < 5 {
			result.Skipped = append(result.Skipped, SkippedRow{
				Line:   i + 2, // 1-based, after the header
				Raw:    line,
				Fields: len(fields),
			})
			continue
		}

		result.Records = append(result.Records, model.EdgeRecord{
			Source:          strings.TrimSpace(fields[0]),
			Target:          strings.TrimSpace(fields[1]),
			Effect:          strings.TrimSpace(fields[2]),
			ConfidenceLabel: strings.TrimSpace(fields[3]),
			Notes:           strings.TrimSpace(strings.Join(fields[4:], ",")),
		})
	}
	return result
}

// LoadRelationships reads and parses the relationship table at path. An
// unreadable file surfaces as ErrSourceMissing and a table with no accepted
// data rows as ErrSourceEmpty, so callers can distinguish "absent" from
// "empty". No partial result is ever returned alongside an error.
func LoadRelationships(path string) (ParseResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ParseResult{}, fmt.Errorf("%w: %s: %v", ErrSourceMissing, path, err)
	}

	result := ParseRelationships(raw)
	if len(result.Records) == 0 {
		return ParseResult{}, fmt.Errorf("%w: %s", ErrSourceEmpty, path)
	}
	return result, nil
}
