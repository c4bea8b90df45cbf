package graph

import (
	"reflect"
	"testing"

	"github.com/jubyaid123/hemovita/internal/model"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Vitamin D", "vitamin_d"},
		{"  Vitamin   D  ", "vitamin_d"},
		{"IRON", "iron"},
		{"vitamin_b12", "vitamin_b12"},
		{"Serum\tFerritin", "serum_ferritin"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func highlightNodes() []model.GraphNode {
	return []model.GraphNode{
		{ID: "vitamin_d", Label: "vitamin d"},
		{ID: "iron", Label: "iron"},
		{ID: "vitamin_b12", Label: "vitamin b12"},
		{ID: "hemoglobin", Label: "hemoglobin"},
	}
}

func TestHighlight(t *testing.T) {
	nodes := highlightNodes()

	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{"id match via normalization", []string{"Vitamin D"}, []string{"vitamin_d"}},
		{"label match", []string{"vitamin b12"}, []string{"vitamin_b12"}},
		{"node order preserved regardless of request order", []string{"iron", "Vitamin D"}, []string{"vitamin_d", "iron"}},
		{"unmatched names ignored", []string{"selenium", "IRON"}, []string{"iron"}},
		{"no names", nil, []string{}},
		{"whitespace-only names", []string{"  "}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Highlight(tt.names, nodes)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Highlight(%v) = %v, want %v", tt.names, got, tt.want)
			}
		})
	}
}

func TestHighlightDoesNotDuplicate(t *testing.T) {
	got := Highlight([]string{"Vitamin D", "vitamin_d"}, highlightNodes())
	if !reflect.DeepEqual(got, []string{"vitamin_d"}) {
		t.Errorf("Highlight = %v, want single vitamin_d", got)
	}
}

func TestHighlightSnapshot(t *testing.T) {
	nodes := highlightNodes()

	if got := HighlightSnapshot(nil, nodes); len(got) != 0 {
		t.Errorf("nil snapshot should highlight nothing, got %v", got)
	}

	snapshot := &model.RecommendationSnapshot{
		Deficiencies: []string{"Vitamin D", "Iron"},
		HighRisk:     []string{"hemoglobin"},
	}
	got := HighlightSnapshot(snapshot, nodes)
	want := []string{"vitamin_d", "iron", "hemoglobin"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("HighlightSnapshot = %v, want %v", got, want)
	}
}
