package graph

import (
	"strings"

	"github.com/jubyaid123/hemovita/internal/model"
)

// The identifier heuristics below are inherently order-sensitive, so every
// one of them is an explicit ordered rule list: first match wins, and the
// precedence is visible and unit-testable instead of buried in conditional
// chains.

// RelationRule classifies a raw effect string. The rule fires when the
// lowercased effect contains any of its keywords.
type RelationRule struct {
	Keywords []string
	Relation model.Relation
}

// ConfidenceRule converts a textual confidence label into a numeric
// strength. The rule fires when the lowercased label contains every entry
// of Contains, which is why combined rules ("high"+"moderate") must come
// before their single-word counterparts: labels like "Moderate-High"
// contain both words.
type ConfidenceRule struct {
	Contains []string
	Strength float64
}

// IdentifierRule categorizes a node identifier. The rule fires when the
// identifier has the given prefix, equals one of Exact, or contains one of
// Contains. Unused matchers are left empty.
type IdentifierRule[T ~string] struct {
	Prefix   string
	Exact    []string
	Contains []string
	Value    T
}

func (r IdentifierRule[T]) matches(id string) bool {
	if r.Prefix != "" && strings.HasPrefix(id, r.Prefix) {
		return true
	}
	for _, exact := range r.Exact {
		if id == exact {
			return true
		}
	}
	for _, sub := range r.Contains {
		if strings.Contains(id, sub) {
			return true
		}
	}
	return false
}

// RiskScorer assigns the per-node risk value. Pluggable so the coarse
// default heuristic can be swapped without touching the build pipeline.
type RiskScorer func(id string) float64

// Rules is the full configuration of the graph builder. Construct with
// DefaultRules and override pieces in tests as needed.
type Rules struct {
	Relations       []RelationRule
	Confidence      []ConfidenceRule
	DefaultStrength float64
	DefaultNodeConf float64
	Types           []IdentifierRule[model.NodeType]
	Clusters        []IdentifierRule[model.Cluster]
	Risk            RiskScorer
}

// DefaultRules mirrors the heuristics of the upstream relationship table:
// keyword-based relation classes, ordered confidence-label matching and
// identifier-shape typing/clustering.
func DefaultRules() Rules {
	return Rules{
		Relations: []RelationRule{
			{Keywords: []string{"boosts", "enhances"}, Relation: model.RelationBooster},
			{Keywords: []string{"inhibits", "reduces", "blocks"}, Relation: model.RelationAntagonist},
			{Keywords: []string{"cofactor", "supports"}, Relation: model.RelationCofactor},
		},
		Confidence: []ConfidenceRule{
			{Contains: []string{"high", "moderate"}, Strength: 0.75},
			{Contains: []string{"high"}, Strength: 0.9},
			{Contains: []string{"moderate", "low"}, Strength: 0.45},
			{Contains: []string{"moderate"}, Strength: 0.6},
			{Contains: []string{"low"}, Strength: 0.3},
		},
		DefaultStrength: 0.5,
		DefaultNodeConf: 0.5,
		Types: []IdentifierRule[model.NodeType]{
			{Prefix: "vitamin_", Value: model.NodeTypeVitamin},
			{
				Exact: []string{"iron", "calcium", "zinc", "magnesium", "copper", "selenium", "phosphorus", "potassium"},
				Value: model.NodeTypeMineral,
			},
			{
				Contains: []string{"hemoglobin", "ferritin", "transferrin", "mcv", "tibc", "indicator_", "homocysteine", "anemia"},
				Value:    model.NodeTypeMarker,
			},
		},
		Clusters: []IdentifierRule[model.Cluster]{
			{
				Contains: []string{"iron", "ferritin", "hemoglobin", "transferrin", "tibc", "anemia"},
				Value:    model.ClusterIron,
			},
			{Prefix: "vitamin_b", Value: model.ClusterBComplex},
			{
				Exact: []string{"vitamin_a", "vitamin_d", "vitamin_e", "vitamin_k"},
				Value: model.ClusterFatSoluble,
			},
		},
		Risk: DefaultRiskScorer,
	}
}

// DefaultRiskScorer is a coarse static heuristic: anemia-related identifiers
// score 1.0, everything else a flat 0.5.
func DefaultRiskScorer(id string) float64 {
	if strings.Contains(strings.ToLower(id), "anemia") {
		return 1.0
	}
	return 0.5
}
