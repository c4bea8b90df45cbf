// Package schedule derives the follow-up plan from classification results:
// a fixed-order list of time-boxed schedule items, plus the slot-based
// supplement plan driven by the nutrient interaction network.
package schedule

import (
	"github.com/jubyaid123/hemovita/internal/model"
)

// Config names the marker subsets that trigger the conditional follow-up
// items. Injectable so tests can substitute alternate subsets.
type Config struct {
	IronMarkers     []string
	BVitaminMarkers []string
	VitaminDMarker  string
}

func DefaultConfig() Config {
	return Config{
		IronMarkers:     []string{"Hemoglobin", "MCV", "ferritin", "Serum ferritin"},
		BVitaminMarkers: []string{"vitamin_B12", "folate_plasma", "vitamin_B6", "homocysteine"},
		VitaminDMarker:  "vitamin_D",
	}
}

type Builder struct {
	cfg Config
}

func NewBuilder(cfg Config) *Builder {
	return &Builder{cfg: cfg}
}

// Build emits the follow-up plan for one classification batch. The output is
// deterministic for a given input: two base items, then at most one item per
// triggered category in the fixed order iron, B-complex, vitamin D. No two
// items share a title.
func (b *Builder) Build(results []model.ClassificationResult) []model.ScheduleItem {
	followUps := 0
	for _, r := range results {
		if r.Status != model.StatusNormal {
			followUps++
		}
	}

	reviewTimeframe := "Within 6 months"
	if followUps > 0 {
		reviewTimeframe = "Within 2 weeks"
	}

	items := []model.ScheduleItem{
		{
			Title:       "Lifestyle Check-In",
			Timeframe:   "Ongoing",
			Description: "Keep a simple diary of meals, energy levels and supplement intake to review with your practitioner.",
		},
		{
			Title:       "Practitioner Review",
			Timeframe:   reviewTimeframe,
			Description: "Discuss the flagged results and this plan with a qualified practitioner before changing supplementation.",
		},
	}

	if b.ironFlag(results) {
		items = append(items, model.ScheduleItem{
			Title:       "Iron Re-evaluation",
			Timeframe:   "In 8-12 weeks",
			Description: "Repeat hemoglobin, ferritin and red cell indices after the supplementation window to confirm iron stores are recovering.",
		})
	}
	if b.bComplexFlag(results) {
		items = append(items, model.ScheduleItem{
			Title:       "B-Complex Recheck",
			Timeframe:   "In 3 months",
			Description: "Recheck B12, folate and related functional markers once intake has stabilized.",
		})
	}
	if b.vitaminDFlag(results) {
		items = append(items, model.ScheduleItem{
			Title:       "Vitamin D Follow-Up",
			Timeframe:   "In 3 months",
			Description: "Re-test 25(OH)D after a season of consistent dosing and adjust with your practitioner.",
		})
	}

	return items
}

func (b *Builder) ironFlag(results []model.ClassificationResult) bool {
	for _, r := range results {
		if r.Status != model.StatusLow {
			continue
		}
		for _, marker := range b.cfg.IronMarkers {
			if r.MarkerID == marker {
				return true
			}
		}
	}
	return false
}

func (b *Builder) bComplexFlag(results []model.ClassificationResult) bool {
	for _, r := range results {
		if r.Status != model.StatusLow && r.Status != model.StatusHigh {
			continue
		}
		for _, marker := range b.cfg.BVitaminMarkers {
			if r.MarkerID == marker {
				return true
			}
		}
	}
	return false
}

// vitaminDFlag triggers on any non-normal status, including unknown: a
// submitted but unmeasured vitamin D reading still warrants a follow-up.
func (b *Builder) vitaminDFlag(results []model.ClassificationResult) bool {
	for _, r := range results {
		if r.MarkerID == b.cfg.VitaminDMarker && r.Status != model.StatusNormal {
			return true
		}
	}
	return false
}
