package reference

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// MarkerSpec selects which rows of the structured cutoffs table apply to a
// lab marker, and which cutoff tiers become its low/high bounds.
type MarkerSpec struct {
	Micronutrient   string
	Biomarker       string
	PopulationGroup string
	Unit            string
	LowType         string
	HighType        string
}

// DefaultMarkerSpecs maps the marker names used in submitted lab panels to
// the cutoff rows that define their ranges. Units must match the units the
// labs are reported in.
func DefaultMarkerSpecs() map[string]MarkerSpec {
	return map[string]MarkerSpec{
		"Hemoglobin": {
			Micronutrient:   "iron_related_anemia",
			Biomarker:       "hemoglobin",
			PopulationGroup: "nonpregnant_women",
			LowType:         "anemia",
			Unit:            "g/dL",
		},
		"MCV": {
			Micronutrient:   "iron_related_anemia",
			Biomarker:       "MCV",
			PopulationGroup: "adults",
			LowType:         "microcytosis",
			HighType:        "macrocytosis",
			Unit:            "fL",
		},
		"ferritin": {
			Micronutrient:   "iron",
			Biomarker:       "serum_ferritin",
			PopulationGroup: "nonpregnant_adults",
			LowType:         "deficiency",
			Unit:            "µg/L",
		},
		"vitamin_B12": {
			Micronutrient:   "vitamin_B12",
			Biomarker:       "serum_B12",
			PopulationGroup: "adults",
			LowType:         "deficiency",
			Unit:            "pg/mL",
		},
		"folate_plasma": {
			Micronutrient:   "folate",
			Biomarker:       "plasma_or_serum_folate",
			PopulationGroup: "adults",
			LowType:         "deficiency",
			Unit:            "nmol/L",
		},
		"vitamin_D": {
			Micronutrient:   "vitamin_D",
			Biomarker:       "serum_25OHD",
			PopulationGroup: "general",
			LowType:         "deficiency",
			Unit:            "nmol/L",
		},
		"vitamin_A": {
			Micronutrient:   "vitamin_A",
			Biomarker:       "serum_retinol",
			PopulationGroup: "children_and_adults_nonpregnant",
			LowType:         "deficiency",
			Unit:            "µmol/L",
		},
		"vitamin_E": {
			Micronutrient:   "vitamin_E",
			Biomarker:       "plasma_alpha_tocopherol",
			PopulationGroup: "adults",
			LowType:         "deficiency",
			Unit:            "µmol/L",
		},
		"vitamin_C": {
			Micronutrient:   "vitamin_C",
			Biomarker:       "plasma_vitamin_C",
			PopulationGroup: "adults",
			LowType:         "deficiency",
			Unit:            "µmol/L",
		},
		"vitamin_B6": {
			Micronutrient:   "vitamin_B6",
			Biomarker:       "plasma_PLP",
			PopulationGroup: "adults",
			LowType:         "deficiency",
			Unit:            "nmol/L",
		},
		"magnesium": {
			Micronutrient:   "magnesium",
			Biomarker:       "serum_magnesium",
			PopulationGroup: "adults",
			LowType:         "deficiency",
			Unit:            "mmol/L",
		},
		"calcium": {
			Micronutrient:   "calcium",
			Biomarker:       "serum_total_calcium",
			PopulationGroup: "adults",
			LowType:         "low",
			HighType:        "high",
			Unit:            "mmol/L",
		},
		"zinc": {
			Micronutrient:   "zinc",
			Biomarker:       "plasma_or_serum_zinc",
			PopulationGroup: "females_over_10",
			LowType:         "deficiency",
			Unit:            "µg/dL",
		},
		"homocysteine": {
			Micronutrient:   "homocysteine_related",
			Biomarker:       "plasma_homocysteine",
			PopulationGroup: "adults",
			HighType:        "high_mild",
			Unit:            "µmol/L",
		},
	}
}

// cutoffTier is one (cutoff_type, cutoff_value) pair in table order. Order
// matters for the fallback tier selection below.
type cutoffTier struct {
	Type  string
	Value float64
}

// LoadCutoffs reads the structured cutoffs CSV and derives a reference Table
// for the given marker specs. Expected columns:
// micronutrient,biomarker,population_group,unit,cutoff_type,cutoff_value.
// Markers whose rows yield neither a low nor a high bound are omitted from
// the table; lookups for them return absent.
func LoadCutoffs(path string, specs map[string]MarkerSpec) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cutoffs table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read cutoffs table: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("cutoffs table %s has no data rows", path)
	}

	col := map[string]int{}
	for i, name := range rows[0] {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"micronutrient", "biomarker", "population_group", "unit", "cutoff_type", "cutoff_value"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("cutoffs table %s is missing column %q", path, required)
		}
	}

	ranges := make(map[string]Range, len(specs))
	for marker, spec := range specs {
		tiers := selectTiers(rows[1:], col, spec)
		if len(tiers) == 0 {
			continue
		}

		low := pickTier(tiers, spec.LowType, []string{"deficiency", "anemia", "micro", "ntd_insufficient"})
		high := pickTier(tiers, spec.HighType, []string{"high", "macro"})
		if low == nil && high == nil {
			continue
		}
		ranges[marker] = Range{Low: low, High: high}
	}

	return NewTable(ranges)
}

func selectTiers(rows [][]string, col map[string]int, spec MarkerSpec) []cutoffTier {
	var tiers []cutoffTier
	for _, row := range rows {
		if strings.TrimSpace(row[col["micronutrient"]]) != spec.Micronutrient {
			continue
		}
		if strings.TrimSpace(row[col["biomarker"]]) != spec.Biomarker {
			continue
		}
		if spec.PopulationGroup != "" && strings.TrimSpace(row[col["population_group"]]) != spec.PopulationGroup {
			continue
		}
		if spec.Unit != "" && strings.TrimSpace(row[col["unit"]]) != spec.Unit {
			continue
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(row[col["cutoff_value"]]), 64)
		if err != nil {
			continue
		}
		tiers = append(tiers, cutoffTier{
			Type:  strings.TrimSpace(row[col["cutoff_type"]]),
			Value: value,
		})
	}
	return tiers
}

// pickTier resolves a bound: the explicitly named tier wins; otherwise the
// first tier (in table order) whose name contains one of the fallback
// substrings is used.
func pickTier(tiers []cutoffTier, explicit string, fallbacks []string) *float64 {
	if explicit != "" {
		for _, tier := range tiers {
			if tier.Type == explicit {
				v := tier.Value
				return &v
			}
		}
	}
	for _, tier := range tiers {
		for _, sub := range fallbacks {
			if strings.Contains(tier.Type, sub) {
				v := tier.Value
				return &v
			}
		}
	}
	return nil
}
