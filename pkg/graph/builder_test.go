package graph

import (
	"math"
	"testing"

	"github.com/jubyaid123/hemovita/internal/model"
)

func TestBuildNodeIdentityAndOrder(t *testing.T) {
	b := NewBuilder(DefaultRules())

	g := b.Build([]model.EdgeRecord{
		{Source: "vitamin_c", Target: "iron", Effect: "boosts", ConfidenceLabel: "High"},
		{Source: "calcium", Target: "iron", Effect: "inhibits", ConfidenceLabel: "High"},
		{Source: "vitamin_c", Target: "iron", Effect: "boosts", ConfidenceLabel: "High"},
	})

	// One node per distinct endpoint, in first-seen order; parallel edges kept.
	wantOrder := []string{"vitamin_c", "iron", "calcium"}
	if len(g.Nodes) != len(wantOrder) {
		t.Fatalf("got %d nodes, want %d", len(g.Nodes), len(wantOrder))
	}
	for i, id := range wantOrder {
		if g.Nodes[i].ID != id {
			t.Errorf("nodes[%d] = %s, want %s", i, g.Nodes[i].ID, id)
		}
	}
	if len(g.Edges) != 3 {
		t.Errorf("got %d edges, want 3", len(g.Edges))
	}

	// Node identity is case-sensitive.
	g2 := b.Build([]model.EdgeRecord{
		{Source: "Iron", Target: "iron", Effect: "boosts", ConfidenceLabel: "High"},
	})
	if len(g2.Nodes) != 2 {
		t.Errorf("case-distinct endpoints must stay distinct, got %d nodes", len(g2.Nodes))
	}
}

func TestBuildDegreeSumInvariant(t *testing.T) {
	b := NewBuilder(DefaultRules())
	records := []model.EdgeRecord{
		{Source: "a", Target: "b", Effect: "boosts", ConfidenceLabel: "High"},
		{Source: "b", Target: "c", Effect: "inhibits", ConfidenceLabel: "Low"},
		{Source: "a", Target: "c", Effect: "supports", ConfidenceLabel: "Moderate"},
		{Source: "a", Target: "a", Effect: "boosts", ConfidenceLabel: "High"},
	}
	g := b.Build(records)

	// Importance is degree/maxDegree, so degrees are recoverable. The degree
	// sum over all nodes must be twice the edge count (self-loops count both
	// endpoints too).
	maxDegree := 0
	degrees := map[string]int{}
	for _, rec := range records {
		degrees[rec.Source]++
		degrees[rec.Target]++
	}
	for _, d := range degrees {
		if d > maxDegree {
			maxDegree = d
		}
	}

	sum := 0
	for _, node := range g.Nodes {
		d := int(math.Round(node.Importance * float64(maxDegree)))
		sum += d
		if d != degrees[node.ID] {
			t.Errorf("node %s degree = %d, want %d", node.ID, d, degrees[node.ID])
		}
	}
	if sum != 2*len(g.Edges) {
		t.Errorf("degree sum = %d, want %d", sum, 2*len(g.Edges))
	}
}

func TestStrength(t *testing.T) {
	b := NewBuilder(DefaultRules())

	tests := []struct {
		label string
		want  float64
	}{
		{"High", 0.9},
		{"high", 0.9},
		{"Low", 0.3},
		{"Moderate", 0.6},
		// Labels containing both words hit the combined rule first.
		{"Moderate-High", 0.75},
		{"high to moderate", 0.75},
		{"Low-Moderate", 0.45},
		{"unrated", 0.5},
		{"", 0.5},
	}
	for _, tt := range tests {
		if got := b.Strength(tt.label); got != tt.want {
			t.Errorf("Strength(%q) = %g, want %g", tt.label, got, tt.want)
		}
	}
}

func TestNodeConfidenceIsMeanOfEdgeStrengths(t *testing.T) {
	b := NewBuilder(DefaultRules())

	g := b.Build([]model.EdgeRecord{
		{Source: "a", Target: "x", Effect: "boosts", ConfidenceLabel: "High"},
		{Source: "b", Target: "x", Effect: "boosts", ConfidenceLabel: "Low"},
	})

	for _, node := range g.Nodes {
		if node.ID != "x" {
			continue
		}
		if math.Abs(node.Confidence-0.6) > 1e-9 {
			t.Errorf("x confidence = %g, want 0.6 (mean of 0.9 and 0.3)", node.Confidence)
		}
		return
	}
	t.Fatal("node x not found")
}

func TestClassifyRelation(t *testing.T) {
	b := NewBuilder(DefaultRules())

	tests := []struct {
		effect string
		want   model.Relation
	}{
		{"boosts", model.RelationBooster},
		{"Enhances uptake", model.RelationBooster},
		{"inhibits", model.RelationAntagonist},
		{"reduces absorption", model.RelationAntagonist},
		{"blocks transporter", model.RelationAntagonist},
		{"cofactor", model.RelationCofactor},
		{"supports", model.RelationCofactor},
		{"shared_pathway", model.RelationShared},
		{"", model.RelationShared},
	}
	for _, tt := range tests {
		if got := b.ClassifyRelation(tt.effect); got != tt.want {
			t.Errorf("ClassifyRelation(%q) = %s, want %s", tt.effect, got, tt.want)
		}
	}
}

func TestNodeTypeAndCluster(t *testing.T) {
	b := NewBuilder(DefaultRules())

	typeTests := []struct {
		id   string
		want model.NodeType
	}{
		{"vitamin_c", model.NodeTypeVitamin},
		{"Vitamin_D", model.NodeTypeVitamin},
		{"iron", model.NodeTypeMineral},
		{"zinc", model.NodeTypeMineral},
		{"hemoglobin", model.NodeTypeMarker},
		{"serum_ferritin", model.NodeTypeMarker},
		{"iron_deficiency_anemia", model.NodeTypeMarker},
		{"homocysteine", model.NodeTypeMarker},
		{"phytate", model.NodeTypeCompound},
	}
	for _, tt := range typeTests {
		if got := b.NodeType(tt.id); got != tt.want {
			t.Errorf("NodeType(%q) = %s, want %s", tt.id, got, tt.want)
		}
	}

	clusterTests := []struct {
		id   string
		want model.Cluster
	}{
		{"iron", model.ClusterIron},
		{"hemoglobin", model.ClusterIron},
		{"iron_deficiency_anemia", model.ClusterIron},
		{"vitamin_b12", model.ClusterBComplex},
		{"Vitamin_B6", model.ClusterBComplex},
		{"vitamin_d", model.ClusterFatSoluble},
		{"vitamin_c", model.ClusterOther},
		{"magnesium", model.ClusterOther},
	}
	for _, tt := range clusterTests {
		if got := b.Cluster(tt.id); got != tt.want {
			t.Errorf("Cluster(%q) = %s, want %s", tt.id, got, tt.want)
		}
	}
}

func TestBuildLabels(t *testing.T) {
	b := NewBuilder(DefaultRules())
	g := b.Build([]model.EdgeRecord{
		{Source: "vitamin_b12", Target: "homocysteine", Effect: "inhibits", ConfidenceLabel: "High"},
	})
	if g.Nodes[0].Label != "vitamin b12" {
		t.Errorf("label = %q, want underscores replaced by spaces", g.Nodes[0].Label)
	}
}

func TestRiskScorer(t *testing.T) {
	if DefaultRiskScorer("iron_deficiency_anemia") != 1.0 {
		t.Error("anemia identifiers must score 1.0")
	}
	if DefaultRiskScorer("vitamin_c") != 0.5 {
		t.Error("non-anemia identifiers must score 0.5")
	}
}
