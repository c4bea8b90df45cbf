package graph

import (
	"strings"

	"github.com/jubyaid123/hemovita/internal/model"
)

// Builder turns parsed edge records into the typed node/edge graph with
// derived per-node metrics. It holds only immutable rule tables, so a single
// Builder is safe for concurrent use.
type Builder struct {
	rules Rules
}

func NewBuilder(rules Rules) *Builder {
	if rules.Risk == nil {
		rules.Risk = DefaultRiskScorer
	}
	return &Builder{rules: rules}
}

// nodeAccumulator collects per-endpoint stats in pass one. Final node values
// are derived in pass two; published nodes are never mutated.
type nodeAccumulator struct {
	degree    int
	strengths []float64
}

// Build derives the graph. Node identity is the endpoint identifier exactly
// as parsed (case and whitespace sensitive); each distinct identifier yields
// exactly one node, created lazily in first-seen order. Parallel edges
// between the same pair are kept and classified independently.
func (b *Builder) Build(records []model.EdgeRecord) model.Graph {
	edges := make([]model.GraphEdge, 0, len(records))
	acc := make(map[string]*nodeAccumulator)
	var order []string

	touch := func(id string, strength float64) {
		a, ok := acc[id]
		if !ok {
			a = &nodeAccumulator{}
			acc[id] = a
			order = append(order, id)
		}
		a.degree++
		a.strengths = append(a.strengths, strength)
	}

	for _, rec := range records {
		strength := b.Strength(rec.ConfidenceLabel)
		edges = append(edges, model.GraphEdge{
			Source:          rec.Source,
			Target:          rec.Target,
			Relation:        b.ClassifyRelation(rec.Effect),
			Strength:        strength,
			ConfidenceLabel: rec.ConfidenceLabel,
			Notes:           rec.Notes,
		})
		touch(rec.Source, strength)
		touch(rec.Target, strength)
	}

	maxDegree := 1
	for _, a := range acc {
		if a.degree > maxDegree {
			maxDegree = a.degree
		}
	}

	nodes := make([]model.GraphNode, 0, len(order))
	for _, id := range order {
		a := acc[id]
		confidence := b.rules.DefaultNodeConf
		if len(a.strengths) > 0 {
			sum := 0.0
			for _, s := range a.strengths {
				sum += s
			}
			confidence = sum / float64(len(a.strengths))
		}

		nodes = append(nodes, model.GraphNode{
			ID:         id,
			Label:      strings.ReplaceAll(id, "_", " "),
			Type:       b.NodeType(id),
			Cluster:    b.Cluster(id),
			Importance: float64(a.degree) / float64(maxDegree),
			Risk:       b.rules.Risk(id),
			Confidence: confidence,
		})
	}

	return model.Graph{Nodes: nodes, Edges: edges}
}

// ClassifyRelation maps a raw effect string onto a relation class via
// case-insensitive keyword match. Unmatched effects fall back to shared,
// never to an error.
func (b *Builder) ClassifyRelation(effect string) model.Relation {
	lowered := strings.ToLower(effect)
	for _, rule := range b.rules.Relations {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				return rule.Relation
			}
		}
	}
	return model.RelationShared
}

// Strength converts a textual confidence label into a numeric strength via
// the ordered rule list. Labels containing several confidence words (for
// example "Moderate-High") resolve to the first rule whose words are all
// present.
func (b *Builder) Strength(confidenceLabel string) float64 {
	lowered := strings.ToLower(confidenceLabel)
	for _, rule := range b.rules.Confidence {
		matched := true
		for _, word := range rule.Contains {
			if !strings.Contains(lowered, word) {
				matched = false
				break
			}
		}
		if matched {
			return rule.Strength
		}
	}
	return b.rules.DefaultStrength
}

// NodeType infers the node category from the identifier shape. Rules match
// against the lowercased identifier; node identity itself stays
// case-sensitive.
func (b *Builder) NodeType(id string) model.NodeType {
	lowered := strings.ToLower(id)
	for _, rule := range b.rules.Types {
		if rule.matches(lowered) {
			return rule.Value
		}
	}
	return model.NodeTypeCompound
}

// Cluster infers the visualization cluster from the identifier shape.
func (b *Builder) Cluster(id string) model.Cluster {
	lowered := strings.ToLower(id)
	for _, rule := range b.rules.Clusters {
		if rule.matches(lowered) {
			return rule.Value
		}
	}
	return model.ClusterOther
}
