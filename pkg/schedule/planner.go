package schedule

import (
	"strings"

	"github.com/jubyaid123/hemovita/internal/model"
)

// DefaultSlots are the daily dosing slots, in plan order.
func DefaultSlots() []string {
	return []string{"morning", "midday", "evening"}
}

// Planner places deficient supplements into daily slots, keeping network
// antagonists apart and co-dosing network boosters.
type Planner struct {
	slots    []string
	proxy    map[string]string
	planKeys map[string]string
	rules    InteractionRules
	pretty   func(string) string
}

// NewPlanner builds a planner. planKeys must be the same node collapsing map
// the interaction rules were built with. pretty renders supplement keys for
// humans in the network notes; nil falls back to a title-cased key.
func NewPlanner(slots []string, proxy, planKeys map[string]string, rules InteractionRules, pretty func(string) string) *Planner {
	if pretty == nil {
		pretty = fallbackPretty
	}
	return &Planner{slots: slots, proxy: proxy, planKeys: planKeys, rules: rules, pretty: pretty}
}

func fallbackPretty(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// Plan schedules one supplement per low marker (after proxy collapsing,
// order-preserving dedupe). First pass places each deficient supplement into
// the earliest conflict-free slot, overflowing into the last slot when no
// slot is conflict-free. Second pass co-doses the network boosters of each
// placed target into its slot when that causes no conflict.
func (p *Planner) Plan(results []model.ClassificationResult) map[string][]string {
	var deficient []string
	for _, r := range results {
		if r.Status != model.StatusLow {
			continue
		}
		supp := p.supplementFor(r.MarkerID)
		if !containsString(deficient, supp) {
			deficient = append(deficient, supp)
		}
	}

	plan := make(map[string][]string, len(p.slots))
	for _, slot := range p.slots {
		plan[slot] = []string{}
	}

	for _, nutrient := range deficient {
		placed := false
		for _, slot := range p.slots {
			if p.canPlace(plan, nutrient, slot) {
				plan[slot] = append(plan[slot], nutrient)
				placed = true
				break
			}
		}
		if !placed {
			last := p.slots[len(p.slots)-1]
			plan[last] = append(plan[last], nutrient)
		}
	}

	for _, bundle := range p.rules.Boosters {
		if !containsString(deficient, bundle.Target) {
			continue
		}
		targetSlot := p.slotOf(plan, bundle.Target)
		if targetSlot == "" {
			continue
		}
		for _, booster := range bundle.Boosters {
			supp := p.supplementFor(booster)
			if containsString(plan[targetSlot], supp) {
				continue
			}
			if p.canPlace(plan, supp, targetSlot) {
				plan[targetSlot] = append(plan[targetSlot], supp)
			}
		}
	}

	return plan
}

func (p *Planner) supplementFor(marker string) string {
	if supp, ok := p.proxy[marker]; ok {
		return supp
	}
	return marker
}

func (p *Planner) canPlace(plan map[string][]string, nutrient, slot string) bool {
	for _, already := range plan[slot] {
		if p.rules.conflicts(nutrient, already) {
			return false
		}
	}
	return true
}

func (p *Planner) slotOf(plan map[string][]string, nutrient string) string {
	for _, slot := range p.slots {
		if containsString(plan[slot], nutrient) {
			return slot
		}
	}
	return ""
}
