// Package report renders the narrative micronutrient report text.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jubyaid123/hemovita/internal/model"
	"github.com/jubyaid123/hemovita/pkg/foods"
)

// DefaultHumanLabels renders marker and supplement keys for humans.
func DefaultHumanLabels() map[string]string {
	return map[string]string{
		"Hemoglobin":    "Hemoglobin",
		"MCV":           "Mean corpuscular volume (MCV)",
		"ferritin":      "Serum ferritin",
		"iron":          "Iron",
		"vitamin_B12":   "Vitamin B12",
		"folate_plasma": "Folic Acid",
		"folate":        "Folate",
		"vitamin_D":     "Vitamin D (25(OH)D)",
		"vitamin_C":     "Vitamin C",
		"vitamin_E":     "Vitamin E",
		"vitamin_A":     "Vitamin A (retinol)",
		"vitamin_B6":    "Vitamin B6 (PLP)",
		"magnesium":     "Magnesium",
		"calcium":       "Calcium",
		"zinc":          "Zinc",
		"homocysteine":  "Homocysteine",
	}
}

// Patient is the demographic summary printed in the report header. All
// fields are optional.
type Patient struct {
	Age      *float64
	Sex      string
	Pregnant *bool
	Country  string
	Notes    string
}

// Input carries everything the generator needs, already derived by the
// engines. Slots and FoodOrder fix iteration order over the plan and foods
// maps.
type Input struct {
	Patient          Patient
	Results          []model.ClassificationResult
	Plan             map[string][]string
	Slots            []string
	Foods            map[string][]foods.Item
	FoodOrder        []string
	NetworkChains    map[string][]string
	NetworkAvailable bool
}

type Generator struct {
	labels map[string]string
}

func NewGenerator(labels map[string]string) *Generator {
	if labels == nil {
		labels = DefaultHumanLabels()
	}
	return &Generator{labels: labels}
}

// Pretty renders a marker or supplement key for humans: the label map wins,
// anything else is title-cased with underscores replaced by spaces.
func (g *Generator) Pretty(key string) string {
	if label, ok := g.labels[key]; ok {
		return label
	}
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// Generate renders the full narrative report.
func (g *Generator) Generate(in Input) string {
	parts := []string{
		g.header(in.Patient),
		"",
		"1. Lab overview",
		"---------------",
		orDefault(g.labBlock(in.Results), "No labs provided."),
		"",
		"2. Supplement plan",
		"------------------",
		g.supplementBlock(in.Plan, in.Slots),
		"",
		"3. Food suggestions",
		"-------------------",
		g.foodBlock(in.Foods, in.FoodOrder),
		"",
		"4. Notes on cutoffs",
		"-------------------",
		"All low/normal/high classifications are derived from a unified cutoff table built from WHO guidelines and widely used clinical consensus cutoffs. The table can be updated independently of the code as evidence changes.",
		"",
		"5. Network-based nutrient interactions",
		"--------------------------------------",
		g.networkBlock(in.NetworkChains, in.NetworkAvailable),
	}
	return strings.Join(parts, "\n")
}

func (g *Generator) header(p Patient) string {
	lines := []string{
		"HemoVita - Personalized Micronutrient Report",
		"============================================",
		"",
		"Patient summary:",
		"- Age: " + floatOrNA(p.Age),
		"- Sex: " + stringOrNA(p.Sex),
		"- Pregnant: " + boolOrNA(p.Pregnant),
		"- Country: " + stringOrNA(p.Country),
	}
	if p.Notes != "" {
		lines = append(lines, "- Notes: "+p.Notes)
	}
	return strings.Join(lines, "\n")
}

func (g *Generator) labBlock(results []model.ClassificationResult) string {
	var lines []string
	for _, r := range results {
		value := "not measured"
		if r.Value != nil {
			value = fmt.Sprintf("%g", *r.Value)
		}
		lines = append(lines, fmt.Sprintf("- %s: %s -> %s", g.Pretty(r.MarkerID), value, r.Status))
	}
	return strings.Join(lines, "\n")
}

func (g *Generator) supplementBlock(plan map[string][]string, slots []string) string {
	var lines []string
	for _, slot := range slots {
		nutrients := plan[slot]
		if len(nutrients) == 0 {
			continue
		}
		pretty := make([]string, len(nutrients))
		for i, n := range nutrients {
			pretty[i] = g.Pretty(n)
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", capitalize(slot), strings.Join(pretty, ", ")))
	}
	if len(lines) == 0 {
		return "No supplements recommended based on current labs."
	}
	return strings.Join(lines, "\n")
}

func (g *Generator) foodBlock(suggestions map[string][]foods.Item, order []string) string {
	var chunks []string
	for _, bundle := range order {
		items := suggestions[bundle]
		if len(items) == 0 {
			continue
		}
		lines := []string{g.Pretty(bundle) + " - suggested food sources:"}
		for _, item := range items {
			line := "  * " + item.Name
			if item.Category != "" {
				line += " [" + item.Category + "]"
			}
			if item.ServingGrams != nil {
				line += fmt.Sprintf(" - typical serving ~%g g", *item.ServingGrams)
			}
			lines = append(lines, line)
		}
		chunks = append(chunks, strings.Join(lines, "\n"))
	}
	if len(chunks) == 0 {
		return "No specific food suggestions (no matching entries for the flagged deficiencies)."
	}
	return strings.Join(chunks, "\n\n")
}

func (g *Generator) networkBlock(chains map[string][]string, available bool) string {
	if !available {
		return "Nutrient interaction network not available."
	}
	if len(chains) == 0 {
		return "No network-based causal chains found for the flagged deficiencies."
	}

	targets := make([]string, 0, len(chains))
	for target := range chains {
		targets = append(targets, target)
	}
	sort.Strings(targets)

	var lines []string
	for _, target := range targets {
		lines = append(lines, g.Pretty(target)+":")
		shown := chains[target]
		if len(shown) > 3 {
			shown = shown[:3]
		}
		for _, chain := range shown {
			lines = append(lines, "  * "+chain)
		}
	}
	return strings.Join(lines, "\n")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func floatOrNA(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%g", *v)
}

func stringOrNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func boolOrNA(v *bool) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%t", *v)
}
