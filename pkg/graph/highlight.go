package graph

import (
	"strings"

	"github.com/jubyaid123/hemovita/internal/model"
)

// NormalizeName canonicalizes a nutrient name for matching: lowercase, with
// every run of whitespace collapsed to a single underscore. Kept as a pure
// function of one string so it can be fuzzed in isolation.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "_")
}

// Highlight maps externally supplied nutrient names onto graph node
// identifiers. A node matches when its normalized id or normalized label
// equals any normalized target name. The returned ids preserve node order.
// No match is not an error; it simply yields an empty set.
func Highlight(names []string, nodes []model.GraphNode) []string {
	targets := make(map[string]struct{}, len(names))
	for _, name := range names {
		normalized := NormalizeName(name)
		if normalized == "" {
			continue
		}
		targets[normalized] = struct{}{}
	}
	if len(targets) == 0 {
		return []string{}
	}

	matched := make([]string, 0)
	for _, node := range nodes {
		if _, ok := targets[NormalizeName(node.ID)]; ok {
			matched = append(matched, node.ID)
			continue
		}
		if _, ok := targets[NormalizeName(node.Label)]; ok {
			matched = append(matched, node.ID)
		}
	}
	return matched
}

// HighlightSnapshot highlights against the union of a snapshot's deficiency
// and high-risk name lists.
func HighlightSnapshot(snapshot *model.RecommendationSnapshot, nodes []model.GraphNode) []string {
	if snapshot == nil {
		return []string{}
	}
	names := make([]string, 0, len(snapshot.Deficiencies)+len(snapshot.HighRisk))
	names = append(names, snapshot.Deficiencies...)
	names = append(names, snapshot.HighRisk...)
	return Highlight(names, nodes)
}
