package schedule

import (
	"sort"
	"strings"

	"github.com/jubyaid123/hemovita/internal/model"
)

// DefaultPlanKeys collapses network node names onto the supplement keys that
// appear in the plan: all iron-status biomarkers and constructs bundle into
// a single "iron" key. Everything else passes through unchanged.
func DefaultPlanKeys() map[string]string {
	return map[string]string{
		"indicator_iron_serum":        "iron",
		"Hemoglobin":                  "iron",
		"ferritin":                    "iron",
		"total_iron_binding_capacity": "iron",
		"transferrin":                 "iron",
		"iron_deficiency_anemia":      "iron",
	}
}

// DefaultSupplementProxy maps lab markers onto the supplement actually
// scheduled. Anemia markers must not show up as "supplements" themselves.
func DefaultSupplementProxy() map[string]string {
	return map[string]string{
		"Hemoglobin":     "iron",
		"MCV":            "iron",
		"ferritin":       "iron",
		"Serum ferritin": "iron",
	}
}

// BoosterBundle groups the network boosters for one supplement key, in
// first-seen order.
type BoosterBundle struct {
	Target   string
	Boosters []string
}

// InteractionRules are the co-dosing and conflict rules derived purely from
// the relationship table: a "boosts" edge makes the source a co-dosed
// booster for the target's bundle, an "inhibits" edge makes the pair a
// symmetric do-not-share-a-slot conflict.
type InteractionRules struct {
	Boosters    []BoosterBundle
	avoidWith   map[string]map[string]struct{}
}

// AvoidWith reports the sorted conflict partners for a supplement key.
func (r InteractionRules) AvoidWith(key string) []string {
	set, ok := r.avoidWith[key]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for partner := range set {
		out = append(out, partner)
	}
	sort.Strings(out)
	return out
}

func (r InteractionRules) conflicts(a, b string) bool {
	if set, ok := r.avoidWith[a]; ok {
		if _, hit := set[b]; hit {
			return true
		}
	}
	if set, ok := r.avoidWith[b]; ok {
		if _, hit := set[a]; hit {
			return true
		}
	}
	return false
}

// BuildInteractionRules derives the rules from parsed edge records. Node
// names collapse through planKeys before use; self-loops after collapsing
// (e.g. two iron biomarkers) are ignored.
func BuildInteractionRules(records []model.EdgeRecord, planKeys map[string]string) InteractionRules {
	rules := InteractionRules{avoidWith: make(map[string]map[string]struct{})}
	bundleIndex := make(map[string]int)

	for _, rec := range records {
		effect := strings.ToLower(strings.TrimSpace(rec.Effect))
		source := planKey(rec.Source, planKeys)
		target := planKey(rec.Target, planKeys)
		if source == "" || target == "" || source == target {
			continue
		}

		switch effect {
		case "boosts":
			idx, ok := bundleIndex[target]
			if !ok {
				idx = len(rules.Boosters)
				bundleIndex[target] = idx
				rules.Boosters = append(rules.Boosters, BoosterBundle{Target: target})
			}
			if !containsString(rules.Boosters[idx].Boosters, source) {
				rules.Boosters[idx].Boosters = append(rules.Boosters[idx].Boosters, source)
			}
		case "inhibits":
			addAvoid(rules.avoidWith, source, target)
			addAvoid(rules.avoidWith, target, source)
		}
	}

	return rules
}

func planKey(node string, planKeys map[string]string) string {
	node = strings.TrimSpace(node)
	if mapped, ok := planKeys[node]; ok {
		return mapped
	}
	return node
}

func addAvoid(avoid map[string]map[string]struct{}, key, partner string) {
	set, ok := avoid[key]
	if !ok {
		set = make(map[string]struct{})
		avoid[key] = set
	}
	set[partner] = struct{}{}
}

func containsString(values []string, v string) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}
