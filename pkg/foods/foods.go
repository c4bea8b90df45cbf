// Package foods suggests dietary sources for flagged deficiencies from a
// curated USDA-derived food table.
package foods

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jubyaid123/hemovita/internal/model"
)

// Item is one curated food entry. ServingGrams is nil when the table has no
// usable serving size.
type Item struct {
	Name         string
	Category     string
	Bundle       string
	ServingGrams *float64
	DietTag      string
}

// DefaultBundleMap maps lab markers onto the nutrient bundle column of the
// food table. The anemia cluster collapses into a single iron bundle; high
// homocysteine is treated as B12-driven.
func DefaultBundleMap() map[string]string {
	return map[string]string{
		"Hemoglobin":     "iron",
		"MCV":            "iron",
		"ferritin":       "iron",
		"Serum ferritin": "iron",
		"vitamin_B12":    "vitamin_B12",
		"folate_plasma":  "folate",
		"vitamin_D":      "vitamin_D",
		"vitamin_C":      "vitamin_C",
		"vitamin_E":      "vitamin_E",
		"vitamin_A":      "vitamin_A",
		"vitamin_B6":     "vitamin_B6",
		"magnesium":      "magnesium",
		"calcium":        "calcium",
		"zinc":           "zinc",
		"homocysteine":   "vitamin_B12",
	}
}

// Load reads the curated food table. Unlike the relationship table this is a
// proper quoted CSV, so it goes through encoding/csv. Expected columns:
// Food, Category, Bundle, Typical_serve_g, Diet_tag (extra columns are
// ignored).
func Load(path string) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open food table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read food table: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("food table %s has no data rows", path)
	}

	col := map[string]int{}
	for i, name := range rows[0] {
		col[strings.TrimSpace(name)] = i
	}
	get := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	items := make([]Item, 0, len(rows)-1)
	for _, row := range rows[1:] {
		item := Item{
			Name:     get(row, "Food"),
			Category: get(row, "Category"),
			Bundle:   get(row, "Bundle"),
			DietTag:  get(row, "Diet_tag"),
		}
		if item.Name == "" || item.Bundle == "" {
			continue
		}
		if grams, err := strconv.ParseFloat(get(row, "Typical_serve_g"), 64); err == nil {
			item.ServingGrams = &grams
		}
		items = append(items, item)
	}
	return items, nil
}

// Suggester picks top foods per flagged nutrient bundle.
type Suggester struct {
	items   []Item
	bundles map[string]string
}

func NewSuggester(items []Item, bundleMap map[string]string) *Suggester {
	return &Suggester{items: items, bundles: bundleMap}
}

// Suggest returns up to topN foods per bundle that needs attention. The
// trigger is a low status for every marker except homocysteine, which
// triggers on high. Bundle order follows the order of the flagged results;
// duplicate food names within a bundle are dropped. dietFilter, when set,
// keeps only items whose diet tag contains it (case-insensitive).
func (s *Suggester) Suggest(results []model.ClassificationResult, topN int, dietFilter string) (map[string][]Item, []string) {
	var bundleOrder []string
	needed := make(map[string]struct{})
	for _, r := range results {
		if r.MarkerID == "homocysteine" {
			if r.Status != model.StatusHigh {
				continue
			}
		} else if r.Status != model.StatusLow {
			continue
		}

		bundle, ok := s.bundles[r.MarkerID]
		if !ok {
			continue
		}
		if _, dup := needed[bundle]; !dup {
			needed[bundle] = struct{}{}
			bundleOrder = append(bundleOrder, bundle)
		}
	}

	out := make(map[string][]Item, len(bundleOrder))
	var present []string
	for _, bundle := range bundleOrder {
		picked := s.pick(bundle, topN, dietFilter)
		if len(picked) == 0 {
			continue
		}
		out[bundle] = picked
		present = append(present, bundle)
	}
	return out, present
}

func (s *Suggester) pick(bundle string, topN int, dietFilter string) []Item {
	var picked []Item
	seen := make(map[string]struct{})
	filter := strings.ToLower(dietFilter)
	for _, item := range s.items {
		if item.Bundle != bundle {
			continue
		}
		if filter != "" && !strings.Contains(strings.ToLower(item.DietTag), filter) {
			continue
		}
		if _, dup := seen[item.Name]; dup {
			continue
		}
		seen[item.Name] = struct{}{}
		picked = append(picked, item)
		if len(picked) == topN {
			break
		}
	}
	return picked
}
