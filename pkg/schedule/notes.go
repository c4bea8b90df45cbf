package schedule

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jubyaid123/hemovita/internal/model"
)

// NetworkNotes explains the plan using the relationship table: a note for
// every boosts edge whose endpoints share a slot (why they are co-dosed) and
// for every inhibits edge whose endpoints appear in the plan but never share
// a slot (why they are separated). Notes are deduplicated; when nothing
// matched, a single generic note is returned.
func (p *Planner) NetworkNotes(plan map[string][]string, records []model.EdgeRecord) []string {
	if len(records) == 0 {
		return []string{
			"Supplement timing uses a nutrient interaction network, but no relationships were available.",
		}
	}

	nutrientSlots := make(map[string]map[string]struct{})
	for _, slot := range p.slots {
		for _, nutrient := range plan[slot] {
			if nutrientSlots[nutrient] == nil {
				nutrientSlots[nutrient] = make(map[string]struct{})
			}
			nutrientSlots[nutrient][slot] = struct{}{}
		}
	}

	var notes []string
	seen := make(map[string]struct{})
	appendNote := func(key, note string) {
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		notes = append(notes, note)
	}

	for _, rec := range records {
		effect := strings.ToLower(strings.TrimSpace(rec.Effect))
		source := planKey(rec.Source, p.planKeys)
		target := planKey(rec.Target, p.planKeys)
		if source == target {
			continue
		}
		srcSlots, srcInPlan := nutrientSlots[source]
		tgtSlots, tgtInPlan := nutrientSlots[target]
		if !srcInPlan || !tgtInPlan {
			continue
		}

		switch effect {
		case "boosts":
			for _, slot := range p.slots {
				_, srcHere := srcSlots[slot]
				_, tgtHere := tgtSlots[slot]
				if !srcHere || !tgtHere {
					continue
				}
				prettySrc := p.pretty(source)
				prettyTgt := p.pretty(target)
				snippet := rec.Notes
				if snippet == "" {
					snippet = fmt.Sprintf("%s helps the effectiveness of %s.", prettySrc, prettyTgt)
				}
				appendNote(
					"boost|"+slot+"|"+pairKey(source, target),
					fmt.Sprintf("%s and %s are scheduled together in the %s slot because %s%s.",
						prettySrc, prettyTgt, slot, snippet, evidenceSuffix(rec.ConfidenceLabel)),
				)
			}
		case "inhibits":
			if !disjoint(srcSlots, tgtSlots) {
				continue
			}
			prettySrc := p.pretty(source)
			prettyTgt := p.pretty(target)
			snippet := rec.Notes
			if snippet == "" {
				snippet = fmt.Sprintf("%s can reduce the absorption or effect of %s when taken together.", prettyTgt, prettySrc)
			}
			appendNote(
				"inhibit|"+pairKey(source, target),
				fmt.Sprintf("%s is kept in the %s slot and %s in the %s slot to avoid interaction: %s%s.",
					prettySrc, slotsPhrase(srcSlots), prettyTgt, slotsPhrase(tgtSlots),
					snippet, evidenceSuffix(rec.ConfidenceLabel)),
			)
		}
	}

	if len(notes) == 0 {
		notes = append(notes,
			"Supplement timing groups compatible nutrients and separates antagonistic ones based on the nutrient interaction network.")
	}
	return notes
}

func evidenceSuffix(confidence string) string {
	if confidence == "" {
		return ""
	}
	return fmt.Sprintf(" (evidence: %s)", confidence)
}

func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

func disjoint(a, b map[string]struct{}) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	for slot := range a {
		if _, shared := b[slot]; shared {
			return false
		}
	}
	return true
}

func slotsPhrase(slots map[string]struct{}) string {
	sorted := make([]string, 0, len(slots))
	for slot := range slots {
		sorted = append(sorted, slot)
	}
	sort.Strings(sorted)
	switch len(sorted) {
	case 0:
		return ""
	case 1:
		return sorted[0]
	case 2:
		return sorted[0] + " and " + sorted[1]
	default:
		return strings.Join(sorted[:len(sorted)-1], ", ") + ", and " + sorted[len(sorted)-1]
	}
}
